// Command textformat reads and writes numbers and date-times with the
// textformat presets and locale contexts.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "textformat:", err)
		os.Exit(1)
	}
}
