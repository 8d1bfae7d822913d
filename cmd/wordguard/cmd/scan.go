package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"wordguard/internal/core/detector"

	"github.com/panjf2000/ants/v2"
	"github.com/spf13/cobra"
)

var (
	scanMode    string
	scanWorkers int
)

var scanCmd = &cobra.Command{
	Use:   "scan [file...]",
	Short: "Report lines that hold banned keywords",
	Long:  "Scan every line of the inputs. Output is file:line in contains mode and file:line: start|source keyword per match otherwise. Exit status is 1 when anything matched.",
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().StringVarP(&scanMode, "mode", "m", "all", "contains, first or all")
	scanCmd.Flags().IntVarP(&scanWorkers, "workers", "w", 4, "files scanned in parallel")
}

// lineHit is one flagged input line
type lineHit struct {
	line    int
	matches []detector.Match
}

// fileHits is the outcome of one input, hits in line order
type fileHits struct {
	name string
	hits []lineHit
	err  error
}

func runScan(cmd *cobra.Command, args []string) error {
	switch scanMode {
	case "contains", "first", "all":
	default:
		return fmt.Errorf("unknown mode %q, want contains, first or all", scanMode)
	}
	p, err := loadPack()
	if err != nil {
		return err
	}
	m, err := compile(p)
	if err != nil {
		return err
	}

	results, err := scanInputs(m, scanMode, inputsOf(args, cmd.InOrStdin()), scanWorkers)
	if err != nil {
		return err
	}
	found, err := printHits(cmd.OutOrStdout(), scanMode, results)
	if err != nil {
		return err
	}
	if found {
		return ErrFound
	}
	return nil
}

// scanInputs scans every input on an ants pool; results keep input order
func scanInputs(m *detector.Matcher, mode string, inputs []input, workers int) ([]fileHits, error) {
	if workers <= 0 {
		workers = 1
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	out := make([]fileHits, len(inputs))
	var wg sync.WaitGroup
	for i, in := range inputs {
		i, in := i, in
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			out[i] = scanInput(m, mode, in)
		}); err != nil {
			wg.Done()
			wg.Wait()
			return nil, err
		}
	}
	wg.Wait()
	return out, nil
}

func scanInput(m *detector.Matcher, mode string, in input) fileHits {
	res := fileHits{name: in.name}
	rc, err := in.open()
	if err != nil {
		res.err = err
		return res
	}
	defer rc.Close()
	res.hits, res.err = scanLines(m, mode, rc)
	return res
}

// scanLines scans r line by line; line numbers start at 1
func scanLines(m *detector.Matcher, mode string, r io.Reader) ([]lineHit, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)

	var hits []lineHit
	for n := 1; sc.Scan(); n++ {
		text := sc.Text()
		switch mode {
		case "contains":
			if m.ContainsAny(text) {
				hits = append(hits, lineHit{line: n})
			}
		case "first":
			if x, ok := m.FindFirst(text); ok {
				hits = append(hits, lineHit{line: n, matches: []detector.Match{x}})
			}
		default:
			if all := m.FindAll(text); len(all) > 0 {
				hits = append(hits, lineHit{line: n, matches: all})
			}
		}
	}
	return hits, sc.Err()
}

// printHits writes results and reports whether anything matched. A failed input is
// reported inline and does not stop the others
func printHits(w io.Writer, mode string, results []fileHits) (bool, error) {
	bw := bufio.NewWriter(w)
	found := false
	for _, r := range results {
		if r.err != nil {
			fmt.Fprintf(bw, "%s: error: %v\n", r.name, r.err)
		}
		for _, h := range r.hits {
			found = true
			if mode == "contains" {
				fmt.Fprintf(bw, "%s:%d\n", r.name, h.line)
				continue
			}
			for _, x := range h.matches {
				fmt.Fprintf(bw, "%s:%d: %s %s\n", r.name, h.line, x.String(), strings.TrimSpace(x.Keyword))
			}
		}
	}
	return found, bw.Flush()
}
