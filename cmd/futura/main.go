// Command futura is the futura toolkit CLI.
package main

import (
	"fmt"
	"os"

	"github.com/go-futura/futura/cmd/futura/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
