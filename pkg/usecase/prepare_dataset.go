package usecase

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/dataprep/pkg/domain/model"
	"github.com/secmon-lab/dataprep/pkg/utils/safe"
)

// PrepareDataset downloads the dataset archive and extracts it. When input.DownloadPath is empty the archive goes to a temporary file that is removed afterwards.
func (x *UseCase) PrepareDataset(ctx context.Context, input *model.PrepareDatasetInput) error {
	zipPath := input.DownloadPath
	if zipPath == "" {
		tmpZip, err := os.CreateTemp("", "dataprep.*.zip")
		if err != nil {
			return goerr.Wrap(err, "failed to create temp file for zip file")
		}
		if err := tmpZip.Close(); err != nil {
			return goerr.Wrap(err, "failed to close temp file for zip file")
		}
		defer safe.Remove(tmpZip.Name())
		zipPath = tmpZip.Name()
	}

	if err := x.DownloadDataset(ctx, &model.DownloadDatasetInput{
		Source:       input.Source,
		DownloadPath: zipPath,
	}); err != nil {
		return err
	}

	return x.UnzipData(ctx, &model.UnzipDataInput{
		ZipFile:  zipPath,
		UnzipLoc: input.UnzipLoc,
	})
}
