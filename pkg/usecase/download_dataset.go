package usecase

import (
	"context"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/dataprep/pkg/domain/model"
	"github.com/secmon-lab/dataprep/pkg/domain/types"
	"github.com/secmon-lab/dataprep/pkg/utils/logging"
)

// DownloadDataset retrieves one object from the object storage and writes it to input.DownloadPath. An existing file at the path is overwritten.
// Empty bucket or object names fall back to the default dataset. Storage errors are returned as they are, and a partially written file is left in place.
func (x *UseCase) DownloadDataset(ctx context.Context, input *model.DownloadDatasetInput) error {
	storage := x.clients.ObjectStorage()
	if storage == nil {
		return goerr.Wrap(types.ErrInvalidOption, "object storage is not configured")
	}

	src := input.Source.OrDefault()
	logger := logging.From(ctx).With("bucket", src.Bucket, "object", src.Object, "path", input.DownloadPath)

	fd, err := os.Create(filepath.Clean(input.DownloadPath))
	if err != nil {
		return goerr.Wrap(err, "failed to create download file", goerr.V("path", input.DownloadPath))
	}

	if err := storage.Download(ctx, src.Bucket, src.Object, fd); err != nil {
		_ = fd.Close()
		return err
	}

	if err := fd.Close(); err != nil {
		return goerr.Wrap(err, "failed to close download file", goerr.V("path", input.DownloadPath))
	}

	logger.Info("dataset downloaded")
	return nil
}
