package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	cache "github.com/mutablelogic/go-modelsdev/pkg/cache"
	loader "github.com/mutablelogic/go-modelsdev/pkg/loader"
	zerolog "github.com/rs/zerolog"
	otel "go.opentelemetry.io/otel"
	trace "go.opentelemetry.io/otel/trace"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type CLI struct {
	Globals
	CatalogCommands
	CompareCommands
	CacheCommands

	Version VersionCommand `cmd:"" name:"version" help:"Print version information."`
}

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// Catalog
	Endpoint string        `name:"endpoint" env:"MODELSDEV_ENDPOINT" help:"Catalog endpoint" default:"${endpoint}"`
	LogoBase string        `name:"logo-base" help:"Base URL for provider logos" default:"${logo_base}"`
	CacheDir string        `name:"cache-dir" env:"MODELSDEV_CACHE_DIR" help:"Cache directory" default:"${cache_dir}"`
	Timeout  time.Duration `name:"timeout" help:"Catalog request timeout" default:"${timeout}"`
	Offline  bool          `name:"offline" help:"Use the cached catalog without refreshing"`

	// Private
	ctx      context.Context
	cancel   context.CancelFunc
	execName string
	log      zerolog.Logger
	tracer   trace.Tracer
	store    *cache.FileStore
	loader   *loader.Loader
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	name := execName()

	// Read defaults from the config file
	config, err := LoadConfig(configPath(name))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}

	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(name),
		kong.Description("Browse the models.dev catalog of AI models"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		config.Vars(name),
	)

	// Create a context
	cli.ctx, cli.cancel = signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cli.cancel()

	// Logging and tracing
	cli.execName = name
	cli.log = newLogger(cli.Debug, cli.Verbose)
	cli.tracer = otel.Tracer(name)

	// Run the command
	err = cmd.Run(&cli.Globals)
	if cerr := cli.Close(); err == nil {
		err = cerr
	}
	cmd.FatalIfErrorf(err)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}

// Console logger on stderr, warnings only unless asked for more
func newLogger(debug, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	switch {
	case debug:
		level = zerolog.DebugLevel
	case verbose:
		level = zerolog.InfoLevel
	}
	writer := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}
	return zerolog.New(writer).With().Timestamp().Logger().Level(level)
}
