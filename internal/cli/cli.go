// Package cli implements the ketchup command line: serving the catalog over
// HTTP, exporting it as a static asset, and inspecting individual messages.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/ketchup/internal/config"
	"github.com/dmitrymomot/ketchup/pkg/catalog"
)

// ErrUnknownRule is returned by commands given a rule the catalog lacks.
var ErrUnknownRule = errors.New("unknown rule")

// app carries state shared by all commands, filled in by the root Before hook.
type app struct {
	cfg            *config.Config
	messagesFile   string
	skipArityCheck bool
}

// Run executes the command line and returns the first error.
func Run(ctx context.Context, args []string, version string) error {
	return New(version).Run(ctx, args)
}

// New builds the root command.
func New(version string) *cli.Command {
	a := &app{}

	return &cli.Command{
		Name:    "ketchup",
		Usage:   "Validation message catalog for the Ketchup form plugin",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "messages",
				Aliases:     []string{"m"},
				Usage:       "JSON, YAML or TOML file overriding built-in messages (default: $KETCHUP_MESSAGES_FILE)",
				Destination: &a.messagesFile,
			},
			&cli.BoolFlag{
				Name:        "skip-arity-check",
				Usage:       "accept custom messages whose placeholders do not match rule arity",
				Destination: &a.skipArityCheck,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			cfg, err := config.Load()
			if err != nil {
				return ctx, err
			}
			if a.messagesFile != "" {
				cfg.MessagesFile = a.messagesFile
			}
			if a.skipArityCheck {
				cfg.SkipArityCheck = true
			}
			a.cfg = cfg
			return ctx, nil
		},
		Commands: []*cli.Command{
			a.cmdServe(),
			a.cmdExport(),
			a.cmdLookup(),
			a.cmdFormat(),
			a.cmdRules(),
			a.cmdCheck(),
		},
	}
}

// catalog builds the catalog from the built-in messages plus the configured
// override file, and verifies placeholder arity unless disabled.
func (a *app) catalog() (*catalog.Catalog, error) {
	opts := []catalog.Option{catalog.WithBase(catalog.Default())}
	if path := a.cfg.MessagesFile; path != "" {
		opts = append(opts, catalog.WithFile(os.DirFS(filepath.Dir(path)), filepath.Base(path)))
	}

	cat, err := catalog.New(opts...)
	if err != nil {
		return nil, err
	}

	if !a.cfg.SkipArityCheck {
		if err := cat.CheckArity(catalog.DefaultArity()); err != nil {
			return nil, fmt.Errorf("messages file %q: %w", a.cfg.MessagesFile, err)
		}
	}
	return cat, nil
}
