package main

import (
	"os"

	"github.com/quintale/botlog/cmd/botlog/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
