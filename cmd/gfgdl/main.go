package main

import (
	"os"

	"github.com/bnema/gfg-downloader/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
