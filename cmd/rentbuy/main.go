package main

import (
	"os"

	"rentbuy-engine/cmd/rentbuy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
