// Command wordguard-packer merges keyword pack fragments into one pack file
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"wordguard/internal/core/wordpack"
)

func must(err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// findFragments lists pack files under root in lexical order so output is reproducible
func findFragments(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".json", ".toml", ".txt":
			files = append(files, path)
		}
		return nil
	})
	sort.Strings(files)
	return files, err
}

func isDir(p string) bool {
	st, err := os.Stat(p)
	return err == nil && st.IsDir()
}

// resolveRoot tries, in order: flag, WORDGUARD_PACK_ROOT, common locations.
// It returns the chosen root and every path it tried
func resolveRoot(flagRoot string) (string, []string, error) {
	var attempts []string
	candidates := []string{flagRoot, strings.TrimSpace(os.Getenv("WORDGUARD_PACK_ROOT")), "./packs", "/app/packs"}
	for _, c := range candidates {
		if c == "" {
			continue
		}
		attempts = append(attempts, c)
		if isDir(c) {
			return c, attempts, nil
		}
	}
	return "", attempts, errors.New("no pack directory found")
}

// assemble merges every fragment under root. Text fragments land in a group named after
// the file; keywords are deduplicated per group keeping first occurrence
func assemble(root string) (*wordpack.Pack, error) {
	paths, err := findFragments(root)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, errors.New("no fragment files found under " + root)
	}

	out := &wordpack.Pack{Version: wordpack.Version}
	for _, p := range paths {
		frag, err := wordpack.ReadFile(p)
		if err != nil {
			return nil, err
		}
		if wordpack.FormatOf(p) == wordpack.FormatText {
			name := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
			frag = &wordpack.Pack{Version: frag.Version, Groups: []wordpack.Group{{Name: name, Keywords: frag.Keywords}}}
		}
		out.Merge(frag)
	}

	out.Keywords = dedupe(out.Keywords)
	for i := range out.Groups {
		out.Groups[i].Keywords = dedupe(out.Groups[i].Keywords)
	}
	sort.SliceStable(out.Groups, func(i, j int) bool { return out.Groups[i].Name < out.Groups[j].Name })
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := in[:0]
	for _, kw := range in {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}
	return out
}

func main() {
	var (
		flagRoot = flag.String("root", "", "directory of pack fragments; auto-discovered when empty")
		out      = flag.String("out", "./internal/core/wordpack/keywords.json", "output path or '-' for stdout")
		jump     = flag.Int("jump", -1, "jump length to stamp into the pack; fragments decide when negative")
		mask     = flag.String("mask", "", "mask rune to stamp into the pack")
		verbose  = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	root, attempts, err := resolveRoot(strings.TrimSpace(*flagRoot))
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to locate pack root (looked in):\n")
		for _, a := range attempts {
			_, _ = fmt.Fprintf(os.Stderr, "  - %s\n", a)
		}
		must(err)
	}
	if *verbose {
		_, _ = fmt.Fprintf(os.Stderr, "using pack root: %s\n", root)
	}

	pack, err := assemble(root)
	must(err)
	if *jump >= 0 {
		j := *jump
		pack.JumpLength = &j
	}
	if *mask != "" {
		if utf8.RuneCountInString(*mask) != 1 {
			must(fmt.Errorf("mask must be exactly one character, got %q", *mask))
		}
		pack.Mask = *mask
	}

	enc, err := pack.Encode()
	must(err)

	if *out == "-" {
		_, err := os.Stdout.Write(enc)
		must(err)
		return
	}
	must(os.MkdirAll(filepath.Dir(*out), 0o755))
	must(os.WriteFile(*out, enc, 0o644))
	if *verbose {
		_, _ = fmt.Fprintf(os.Stderr, "wrote %s (%d keywords, %d bytes)\n", *out, len(pack.Terms()), len(enc))
	}
}
