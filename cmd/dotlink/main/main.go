package main

import (
	"os"

	"github.com/arthur-debert/dotlink/cmd/dotlink"
)

func main() {
	rootCmd := dotlink.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		dotlink.PrintError(err)
		os.Exit(1)
	}
}
