package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/dataprep/pkg/cli/config"
	"github.com/secmon-lab/dataprep/pkg/domain/model"
	"github.com/secmon-lab/dataprep/pkg/infra"
	"github.com/secmon-lab/dataprep/pkg/usecase"
	"github.com/secmon-lab/dataprep/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func prepareCommand(w io.Writer) *cli.Command {
	var (
		dataset config.Dataset
		storage config.Storage
		input   model.PrepareDatasetInput
	)

	return &cli.Command{
		Name:    "prepare",
		Aliases: []string{"prep"},
		Usage:   "Download the dataset archive and extract it",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "download-path",
				Aliases:     []string{"p"},
				Usage:       "File path to keep the archive at (temporary file if not set)",
				Sources:     cli.EnvVars("DATAPREP_DOWNLOAD_PATH"),
				Destination: &input.DownloadPath,
			},
			&cli.StringFlag{
				Name:        "unzip-loc",
				Aliases:     []string{"d"},
				Usage:       "Directory to extract the archive into",
				Value:       ".",
				Sources:     cli.EnvVars("DATAPREP_UNZIP_LOC"),
				Destination: &input.UnzipLoc,
			},
		}, dataset.Flags(), storage.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			input.Source = dataset.Source()

			logging.From(ctx).Info("Starting prepare",
				slog.String("download_path", input.DownloadPath),
				slog.String("unzip_loc", input.UnzipLoc),
				slog.Any("dataset", &dataset),
				slog.Any("storage", &storage),
			)

			client, closeClient, err := storage.NewClient(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to create object storage client")
			}
			defer closeClient()

			uc := usecase.New(infra.New(
				infra.WithObjectStorage(client),
				infra.WithStdout(w),
			))

			return uc.PrepareDataset(ctx, &input)
		},
	}
}
