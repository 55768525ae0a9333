package main

import (
	"os"

	"github.com/on-the-ground/allsums/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
