// Package main implements the linguist CLI.
// It detects programming languages by extension, filename and content,
// and checks whether paths are vendored.
package main

import (
	"os"

	"github.com/drshade/linguist/cmd/linguist/commands"
)

var version = "dev"

func main() {
	commands.RootCmd.Version = version
	commands.RootCmd.SetVersionTemplate(`linguist version {{.Version}}
`)

	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
