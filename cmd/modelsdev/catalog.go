package main

import (
	"fmt"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	modelsdev "github.com/mutablelogic/go-modelsdev"
	query "github.com/mutablelogic/go-modelsdev/pkg/query"
	schema "github.com/mutablelogic/go-modelsdev/pkg/schema"
	table "github.com/mutablelogic/go-modelsdev/pkg/ui/table"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type CatalogCommands struct {
	Providers    ProvidersCommand    `cmd:"" name:"providers" help:"List providers." group:"CATALOG"`
	Models       ModelsCommand       `cmd:"" name:"models" help:"List models." group:"CATALOG"`
	Model        ModelCommand        `cmd:"" name:"model" help:"Show a model." group:"CATALOG"`
	Capabilities CapabilitiesCommand `cmd:"" name:"capabilities" help:"List capabilities and the number of models with each." group:"CATALOG"`
	Pricing      PricingCommand      `cmd:"" name:"pricing" help:"List models by output price." group:"CATALOG"`
}

type ProvidersCommand struct {
	Search string `name:"search" short:"s" help:"Filter by provider name or identifier" optional:""`
}

type ModelsCommand struct {
	Provider   string `name:"provider" short:"p" help:"Filter by provider identifier" optional:""`
	Capability string `name:"capability" short:"c" help:"Filter by capability (reasoning, tool_call, structured_output, vision, audio, attachment, open_weights)" optional:""`
	Search     string `name:"search" short:"s" help:"Filter by model name, identifier, provider or family" optional:""`
	Deprecated bool   `name:"deprecated" help:"Include deprecated models"`
}

type CapabilitiesCommand struct{}

type PricingCommand struct {
	Bucket string `name:"bucket" short:"b" help:"Output price range (all, free, non-free, under-1, under-2, under-5, under-15, over-1, over-2, over-5, over-15)" default:"all"`
	Search string `name:"search" short:"s" help:"Filter by model name, identifier, provider or family" optional:""`
	Tokens uint64 `name:"tokens" help:"Number of output tokens to estimate the cost of" default:"100000"`
}

///////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ProvidersCommand) Run(ctx *Globals) (err error) {
	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ProvidersCommand",
		attribute.String("search", cmd.Search),
	)
	defer func() { endSpan(err) }()

	data, err := ctx.Data(parent)
	if err != nil {
		return err
	}

	fmt.Println(table.Render(providerTable(query.SearchProviders(data.Providers, cmd.Search))))
	return nil
}

func (cmd *ModelsCommand) Run(ctx *Globals) (err error) {
	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ModelsCommand",
		attribute.String("provider", cmd.Provider),
		attribute.String("capability", cmd.Capability),
		attribute.String("search", cmd.Search),
	)
	defer func() { endSpan(err) }()

	// Check the capability before fetching anything
	var capability *schema.Capability
	if cmd.Capability != "" {
		if c, err := schema.ParseCapability(cmd.Capability); err != nil {
			return err
		} else {
			capability = &c
		}
	}

	data, err := ctx.Data(parent)
	if err != nil {
		return err
	}

	models := data.Models
	if !cmd.Deprecated {
		models = query.FilterOutDeprecated(models)
	}
	if cmd.Provider != "" {
		if query.FindProvider(data.Providers, cmd.Provider) == nil {
			return modelsdev.ErrNotFound.Withf("provider %q", cmd.Provider)
		}
		models = query.FilterByProvider(models, cmd.Provider)
	}
	if capability != nil {
		models = query.FilterByCapability(models, *capability)
	}
	models = query.SortByProviderThenName(query.Search(models, cmd.Search))

	fmt.Println(table.Render(modelTable(models)))
	return nil
}

func (cmd *CapabilitiesCommand) Run(ctx *Globals) (err error) {
	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "CapabilitiesCommand")
	defer func() { endSpan(err) }()

	data, err := ctx.Data(parent)
	if err != nil {
		return err
	}

	fmt.Println(table.Render(capabilityTable{models: data.Models, capabilities: schema.Capabilities()}))
	return nil
}

func (cmd *PricingCommand) Run(ctx *Globals) (err error) {
	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "PricingCommand",
		attribute.String("bucket", cmd.Bucket),
		attribute.String("search", cmd.Search),
	)
	defer func() { endSpan(err) }()

	bucket, err := query.ParsePriceBucket(cmd.Bucket)
	if err != nil {
		return err
	}

	data, err := ctx.Data(parent)
	if err != nil {
		return err
	}

	models := query.FilterByPrice(query.Search(data.Models, cmd.Search), bucket)
	fmt.Println(table.Render(pricingTable{
		models: query.SortByOutputPrice(models),
		tokens: cmd.Tokens,
	}))
	return nil
}
