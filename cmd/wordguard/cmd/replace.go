package cmd

import (
	"bufio"
	"fmt"
	"io"
	"unicode/utf8"

	"wordguard/internal/core/detector"

	"github.com/spf13/cobra"
)

var replaceMask string

var replaceCmd = &cobra.Command{
	Use:   "replace [file...]",
	Short: "Mask banned keywords and write the text to stdout",
	RunE:  runReplace,
}

func init() {
	replaceCmd.Flags().StringVar(&replaceMask, "mask", "", "mask rune; the pack's mask when empty")
}

func runReplace(cmd *cobra.Command, args []string) error {
	p, err := loadPack()
	if err != nil {
		return err
	}
	m, err := compile(p)
	if err != nil {
		return err
	}
	mask, err := parseMask(replaceMask, p.MaskRune(detector.DefaultMask))
	if err != nil {
		return err
	}

	w := bufio.NewWriter(cmd.OutOrStdout())
	for _, in := range inputsOf(args, cmd.InOrStdin()) {
		if err := maskInput(w, m, mask, in); err != nil {
			return fmt.Errorf("%s: %w", in.name, err)
		}
	}
	return w.Flush()
}

// parseMask accepts exactly one rune; empty means def
func parseMask(s string, def rune) (rune, error) {
	if s == "" {
		return def, nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("mask must be exactly one character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

// maskInput masks line by line so line breaks never join two keyword halves
func maskInput(w io.Writer, m *detector.Matcher, mask rune, in input) error {
	rc, err := in.open()
	if err != nil {
		return err
	}
	defer rc.Close()

	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for sc.Scan() {
		if _, err := io.WriteString(w, m.Replace(sc.Text(), mask)+"\n"); err != nil {
			return err
		}
	}
	return sc.Err()
}
