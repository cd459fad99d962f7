package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/ketchup/pkg/catalog"
)

func (a *app) cmdLookup() *cli.Command {
	return &cli.Command{
		Name:      "lookup",
		Usage:     "Print the raw template of a rule",
		ArgsUsage: "RULE",
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.NArg() != 1 {
				return errors.New("lookup expects exactly one RULE argument")
			}

			cat, err := a.catalog()
			if err != nil {
				return err
			}

			rule := c.Args().First()
			tmpl, ok := cat.Lookup(rule)
			if !ok {
				return fmt.Errorf("%w: %q", ErrUnknownRule, rule)
			}
			_, err = fmt.Fprintln(c.Root().Writer, tmpl)
			return err
		},
	}
}

func (a *app) cmdFormat() *cli.Command {
	var strict bool

	return &cli.Command{
		Name:      "format",
		Usage:     "Render a rule's message with positional arguments",
		ArgsUsage: "RULE [ARG...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "strict",
				Usage:       "fail when the template needs more arguments than given",
				Destination: &strict,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.NArg() < 1 {
				return errors.New("format expects a RULE argument")
			}

			cat, err := a.catalog()
			if err != nil {
				return err
			}

			argv := c.Args().Slice()
			tmpl, ok := cat.Lookup(argv[0])
			if !ok {
				return fmt.Errorf("%w: %q", ErrUnknownRule, argv[0])
			}

			args := make([]any, len(argv)-1)
			for i, v := range argv[1:] {
				args[i] = v
			}

			msg := catalog.Format(tmpl, args...)
			if strict {
				if msg, err = catalog.FormatStrict(tmpl, args...); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintln(c.Root().Writer, msg)
			return err
		},
	}
}

func (a *app) cmdRules() *cli.Command {
	return &cli.Command{
		Name:  "rules",
		Usage: "List every rule with its expected arity, placeholder count and template",
		Action: func(ctx context.Context, c *cli.Command) error {
			cat, err := a.catalog()
			if err != nil {
				return err
			}

			// Rules outside the built-in set have no expected arity.
			arity := catalog.DefaultArity()

			tw := tabwriter.NewWriter(c.Root().Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "RULE\tARITY\tPLACEHOLDERS\tTEMPLATE")
			for rule, tmpl := range cat.All() {
				expected := "-"
				if n, ok := arity[rule]; ok {
					expected = strconv.Itoa(n)
				}
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", rule, expected, catalog.Placeholders(tmpl), tmpl)
			}
			return tw.Flush()
		},
	}
}

func (a *app) cmdCheck() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Verify that every built-in rule is present with the expected placeholders",
		Action: func(ctx context.Context, c *cli.Command) error {
			// Always checked, regardless of --skip-arity-check.
			cfg := *a.cfg
			cfg.SkipArityCheck = false
			cat, err := (&app{cfg: &cfg}).catalog()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(c.Root().Writer, "ok: %d rules\n", cat.Len())
			return err
		},
	}
}
