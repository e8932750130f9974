package main

import (
	"os"

	"docdrift/internal/docdriftcli"
)

func main() {
	if err := docdriftcli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
