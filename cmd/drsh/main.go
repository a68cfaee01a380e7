// Command drsh is an interactive line-editing shell: run with no
// arguments for a REPL, or with one or more file paths to source each in
// turn and exit, mirroring the original's MAIN argument handling.
package main

import (
	"fmt"
	"os"

	"github.com/drpriver/drsh/internal/shell"
)

func main() {
	s, err := shell.New(os.Stdin, os.Stdout, os.Environ())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := s.Run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
