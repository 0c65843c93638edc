package main

import (
	"os"

	"github.com/beamer-cli/beamer/cmd/cli"
	"github.com/beamer-cli/beamer/pkg/version"
)

func main() {
	// Set custom version template that shows more detailed version info
	cli.RootCmd.SetVersionTemplate(version.GetInfo().String() + "\n")
	os.Exit(cli.Execute())
}
