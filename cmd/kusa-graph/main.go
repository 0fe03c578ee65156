package main

import (
	"os"

	"github.com/fchimpan/gh-kusa-graph/cmd"
)

func main() {
	if err := cmd.Execute(cmd.DefaultDeps()); err != nil {
		os.Exit(1)
	}
}
