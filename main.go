package main

import (
	"os"

	"github.com/amahle/famcheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
