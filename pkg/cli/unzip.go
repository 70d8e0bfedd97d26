package cli

import (
	"context"
	"io"

	"github.com/secmon-lab/dataprep/pkg/domain/model"
	"github.com/secmon-lab/dataprep/pkg/infra"
	"github.com/secmon-lab/dataprep/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func unzipCommand(w io.Writer) *cli.Command {
	var input model.UnzipDataInput

	return &cli.Command{
		Name:    "unzip",
		Aliases: []string{"uz"},
		Usage:   "List and extract a zip archive",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "zip-file",
				Aliases:     []string{"z"},
				Usage:       "Path to the zip archive",
				Required:    true,
				Sources:     cli.EnvVars("DATAPREP_ZIP_FILE"),
				Destination: &input.ZipFile,
			},
			&cli.StringFlag{
				Name:        "unzip-loc",
				Aliases:     []string{"d"},
				Usage:       "Directory to extract the archive into",
				Value:       ".",
				Sources:     cli.EnvVars("DATAPREP_UNZIP_LOC"),
				Destination: &input.UnzipLoc,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			uc := usecase.New(infra.New(infra.WithStdout(w)))
			return uc.UnzipData(ctx, &input)
		},
	}
}
