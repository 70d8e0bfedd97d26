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

func downloadCommand(w io.Writer) *cli.Command {
	var (
		dataset      config.Dataset
		storage      config.Storage
		downloadPath string
	)

	return &cli.Command{
		Name:    "download",
		Aliases: []string{"dl"},
		Usage:   "Download the dataset archive from object storage",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "download-path",
				Aliases:     []string{"p"},
				Usage:       "File path to save the archive to",
				Required:    true,
				Sources:     cli.EnvVars("DATAPREP_DOWNLOAD_PATH"),
				Destination: &downloadPath,
			},
		}, dataset.Flags(), storage.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.From(ctx).Info("Starting download",
				slog.String("download_path", downloadPath),
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

			return uc.DownloadDataset(ctx, &model.DownloadDatasetInput{
				Source:       dataset.Source(),
				DownloadPath: downloadPath,
			})
		},
	}
}
