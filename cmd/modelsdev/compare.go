package main

import (
	"fmt"
	"os"

	// Packages
	glamour "github.com/charmbracelet/glamour"
	termenv "github.com/muesli/termenv"
	otel "github.com/mutablelogic/go-client/pkg/otel"
	modelsdev "github.com/mutablelogic/go-modelsdev"
	compare "github.com/mutablelogic/go-modelsdev/pkg/compare"
	query "github.com/mutablelogic/go-modelsdev/pkg/query"
	schema "github.com/mutablelogic/go-modelsdev/pkg/schema"
	table "github.com/mutablelogic/go-modelsdev/pkg/ui/table"
	attribute "go.opentelemetry.io/otel/attribute"
	term "golang.org/x/term"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type CompareCommands struct {
	Compare CompareCommand `cmd:"" name:"compare" help:"Compare two or three models side by side." group:"COMPARE"`
}

type CompareCommand struct {
	Keys     []string `arg:"" name:"key" help:"Model keys, as provider/model"`
	Markdown bool     `name:"markdown" help:"Print the comparison as Markdown"`
	Table    bool     `name:"table" help:"Print the comparison as a plain table"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Word wrap when stdout is not a terminal
	defaultWrap = 100
)

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *CompareCommand) Run(ctx *Globals) (err error) {
	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "CompareCommand",
		attribute.StringSlice("keys", cmd.Keys),
	)
	defer func() { endSpan(err) }()

	if cmd.Markdown && cmd.Table {
		return modelsdev.ErrBadParameter.With("--markdown and --table cannot be used together")
	}

	data, err := ctx.Data(parent)
	if err != nil {
		return err
	}

	// Resolve the keys in the order given
	models := make([]schema.Model, 0, len(cmd.Keys))
	for _, key := range cmd.Keys {
		model := query.FindModel(data.Models, key)
		if model == nil {
			return modelsdev.ErrNotFound.Withf("model %q", key)
		}
		models = append(models, *model)
	}

	selection, err := compare.NewSelection(models...)
	if err != nil {
		return err
	}
	comparison, err := selection.Compare()
	if err != nil {
		return err
	}

	switch {
	case cmd.Markdown:
		fmt.Print(comparison.Markdown())
	case cmd.Table:
		fmt.Println(table.Render(comparison))
	default:
		out, err := renderMarkdown(comparison.Markdown())
		if err != nil {
			return err
		}
		fmt.Print(out)
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// renderMarkdown styles Markdown for the terminal, choosing a light or dark
// theme from the terminal background
func renderMarkdown(markdown string) (string, error) {
	style, wrap := "notty", defaultWrap
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		style = "dark"
		if !termenv.HasDarkBackground() {
			style = "light"
		}
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			wrap = w
		}
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return "", err
	}
	return r.Render(markdown)
}
