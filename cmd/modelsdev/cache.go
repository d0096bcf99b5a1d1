package main

import (
	"errors"
	"fmt"
	"time"

	// Packages
	modelsdev "github.com/mutablelogic/go-modelsdev"
	table "github.com/mutablelogic/go-modelsdev/pkg/ui/table"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type CacheCommands struct {
	Cache CacheCommand `cmd:"" name:"cache" help:"Show or clear the cached catalog." group:"CACHE"`
}

type CacheCommand struct {
	Clear bool `name:"clear" help:"Remove the cached catalog"`
}

type cacheTable [][]any

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *CacheCommand) Run(ctx *Globals) error {
	store, err := ctx.Store()
	if err != nil {
		return err
	}

	if cmd.Clear {
		if err := store.Clear(); err != nil {
			return err
		}
		ctx.log.Info().Str("path", store.Path()).Msg("cache cleared")
		return nil
	}

	entry, err := store.Read()
	if errors.Is(err, modelsdev.ErrNotFound) {
		fmt.Println("No cached catalog at", store.Path())
		return nil
	} else if err != nil {
		return err
	}

	fmt.Println(table.Render(cacheTable{{
		store.Path(),
		entry.Time().Local().Format(time.DateTime),
		time.Since(entry.Time()).Round(time.Second).String(),
		len(entry.Data.Providers),
		len(entry.Data.Models),
	}}))
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// TABLE

func (t cacheTable) Header() []string {
	return []string{"Path", "Updated", "Age", "Providers", "Models"}
}

func (t cacheTable) Len() int {
	return len(t)
}

func (t cacheTable) Row(i int) []any {
	return t[i]
}
