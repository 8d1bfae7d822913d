package cmd

import (
	"errors"
	"io"
	"os"

	"wordguard/internal/core/detector"
	"wordguard/internal/core/wordpack"

	"github.com/spf13/cobra"
)

// ErrFound is returned by scan when at least one input line holds a match; main maps it to
// exit status 1 the way grep does
var ErrFound = errors.New("banned keyword found")

var (
	packPath string
	jumpFlag int
)

var rootCmd = &cobra.Command{
	Use:           "wordguard",
	Short:         "wordguard: banned keyword detection",
	Long:          "Scan and mask text against a keyword pack. Reads the named files, or stdin when none or \"-\" is given.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&packPath, "pack", "p", "", "keyword pack (.json, .toml or .txt); embedded pack when empty")
	rootCmd.PersistentFlags().IntVarP(&jumpFlag, "jump", "j", -1, "filler runes tolerated between keyword runes; the pack's value when negative")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(replaceCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadPack reads --pack or the embedded pack
func loadPack() (*wordpack.Pack, error) {
	if packPath == "" {
		return wordpack.Load()
	}
	return wordpack.ReadFile(packPath)
}

// compile builds a Matcher from the pack; --jump overrides the pack's jump length
func compile(p *wordpack.Pack) (*detector.Matcher, error) {
	jump := jumpFlag
	if jump < 0 {
		jump = p.Jump(detector.DefaultJumpLength)
	}
	return detector.Compile(p.Terms(), jump, nil)
}

// input is one named source of text
type input struct {
	name string
	open func() (io.ReadCloser, error)
}

// inputsOf maps args to inputs; no args or "-" is stdin
func inputsOf(args []string, stdin io.Reader) []input {
	if len(args) == 0 {
		args = []string{"-"}
	}
	out := make([]input, 0, len(args))
	for _, a := range args {
		a := a
		if a == "-" {
			out = append(out, input{name: "(stdin)", open: func() (io.ReadCloser, error) {
				return io.NopCloser(stdin), nil
			}})
			continue
		}
		out = append(out, input{name: a, open: func() (io.ReadCloser, error) { return os.Open(a) }})
	}
	return out
}
