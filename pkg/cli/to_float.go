package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/dataprep/pkg/domain/types"
	"github.com/secmon-lab/dataprep/pkg/usecase"
	"github.com/secmon-lab/dataprep/pkg/utils/currency"
	"github.com/secmon-lab/dataprep/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func toFloatCommand(w io.Writer) *cli.Command {
	var (
		csvFile string
		columns []string
		output  string
	)

	return &cli.Command{
		Name:      "to-float",
		Aliases:   []string{"tf"},
		Usage:     "Convert dollar formatted values into numbers",
		ArgsUsage: "[VALUE...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "csv",
				Usage:       "CSV file to convert instead of arguments ('-' for stdin)",
				Destination: &csvFile,
			},
			&cli.StringSliceFlag{
				Name:        "column",
				Aliases:     []string{"c"},
				Usage:       "CSV column to convert (repeatable, all columns if not set)",
				Destination: &columns,
			},
			&cli.StringFlag{
				Name:        "output",
				Usage:       "Output file for converted CSV (default: stdout)",
				Destination: &output,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if csvFile == "" {
				if c.Args().Len() == 0 {
					return goerr.Wrap(types.ErrInvalidOption, "either values or --csv is required")
				}
				for _, v := range currency.ToFloatStrings(c.Args().Slice()) {
					if _, err := fmt.Fprintln(w, currency.Format(v)); err != nil {
						return goerr.Wrap(err, "failed to write value")
					}
				}
				return nil
			}

			var r io.Reader = os.Stdin
			if csvFile != "-" {
				fd, err := os.Open(filepath.Clean(csvFile))
				if err != nil {
					return goerr.Wrap(err, "failed to open CSV file", goerr.V("path", csvFile))
				}
				defer safe.Close(fd)
				r = fd
			}

			if output == "" {
				return usecase.ConvertCSV(ctx, r, w, columns)
			}

			out, err := os.Create(filepath.Clean(output))
			if err != nil {
				return goerr.Wrap(err, "failed to create output file", goerr.V("path", output))
			}
			if err := usecase.ConvertCSV(ctx, r, out, columns); err != nil {
				safe.Close(out)
				return err
			}
			if err := out.Close(); err != nil {
				return goerr.Wrap(err, "failed to close output file", goerr.V("path", output))
			}
			return nil
		},
	}
}
