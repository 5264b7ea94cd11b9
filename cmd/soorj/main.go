// Command soorj runs and interactively evaluates Soorj programs.
package main

import (
	"fmt"
	"os"

	"github.com/soorj-lang/soorj/cmd/soorj/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
