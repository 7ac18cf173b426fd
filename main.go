package main

import (
	"os"

	"github.com/mrbrightsides/mermaind/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
