package main

import (
	"os"

	// Packages
	version "github.com/mutablelogic/go-modelsdev/pkg/version"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type VersionCommand struct{}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *VersionCommand) Run(ctx *Globals) error {
	_, err := os.Stdout.Write(append(version.JSON(ctx.execName), '\n'))
	return err
}
