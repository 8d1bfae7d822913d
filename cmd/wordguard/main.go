// Command wordguard scans and masks text from files or stdin against a keyword pack
package main

import (
	"errors"
	"fmt"
	"os"

	"wordguard/cmd/wordguard/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, cmd.ErrFound) {
			os.Exit(1)
		}
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
}
