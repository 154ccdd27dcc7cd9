package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/devmemory/pkg/domain/types"
	"github.com/m-mizutani/devmemory/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdExport(g *globals) *cli.Command {
	var (
		output string
		format string
	)

	return &cli.Command{
		Name:  "export",
		Usage: "Write every decision to a file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Output file path, '-' for stdout",
				Value:       types.DefaultExportFile,
				Destination: &output,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "Output format (markdown, json, yaml)",
				Value:       usecase.FormatMarkdown,
				Destination: &format,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			normalized, err := usecase.ParseFormat(format)
			if err != nil {
				return err
			}

			repo, _, err := g.openStore(ctx, c)
			if err != nil {
				return err
			}
			defer closeStore(ctx, repo)

			uc := usecase.NewExport(repo)
			if output == "-" {
				_, err := uc.Export(ctx, g.stdout, normalized)
				return err
			}

			f, err := os.Create(output)
			if err != nil {
				return goerr.Wrap(err, "failed to create export file", goerr.V("path", output))
			}

			n, err := uc.Export(ctx, f, normalized)
			if cerr := f.Close(); err == nil && cerr != nil {
				err = goerr.Wrap(cerr, "failed to close export file", goerr.V("path", output))
			}
			if err != nil {
				return err
			}

			g.printer(g.stdout).Success("Exported %d decisions to %s", n, output)
			return nil
		},
	}
}
