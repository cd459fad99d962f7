package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

const (
	exportJS   = "js"
	exportJSON = "json"
)

func (a *app) cmdExport() *cli.Command {
	var (
		format string
		target string
		output string
	)

	return &cli.Command{
		Name:    "export",
		Aliases: []string{"e"},
		Usage:   "Write the catalog as a JavaScript asset or JSON document",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"f"},
				Usage:       "output format: js or json",
				Value:       exportJS,
				Destination: &format,
			},
			&cli.StringFlag{
				Name:        "target",
				Usage:       "JavaScript property to assign (default: $KETCHUP_JS_TARGET or $.fn.ketchup.messages)",
				Destination: &target,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "output file (default: stdout)",
				Destination: &output,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if format != exportJS && format != exportJSON {
				return fmt.Errorf("unsupported format %q: use %s or %s", format, exportJS, exportJSON)
			}
			if target == "" {
				target = a.cfg.JSTarget
			}

			cat, err := a.catalog()
			if err != nil {
				return err
			}

			write := func(w io.Writer) error {
				if format == exportJSON {
					return cat.WriteJSON(w)
				}
				return cat.WriteJS(w, target)
			}
			if output == "" {
				return write(c.Root().Writer)
			}
			return writeFile(output, write)
		},
	}
}

// writeFile creates path and fills it with write. A partially written file is
// removed on failure, and the close error is reported.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
		if err != nil {
			err = errors.Join(err, os.Remove(path))
		}
	}()

	return write(f)
}
