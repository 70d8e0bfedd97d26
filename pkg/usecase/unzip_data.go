package usecase

import (
	"context"

	"github.com/secmon-lab/dataprep/pkg/domain/model"
	"github.com/secmon-lab/dataprep/pkg/utils/logging"
)

// UnzipData prints the archive listing to stdout and then expands every entry into input.UnzipLoc.
func (x *UseCase) UnzipData(ctx context.Context, input *model.UnzipDataInput) error {
	archiver := x.clients.Archiver()

	if err := archiver.List(ctx, input.ZipFile, x.clients.Stdout()); err != nil {
		return err
	}

	written, err := archiver.ExtractAll(ctx, input.ZipFile, input.UnzipLoc)
	if err != nil {
		return err
	}

	logging.From(ctx).Info("archive extracted",
		"zip_file", input.ZipFile,
		"unzip_loc", input.UnzipLoc,
		"files", len(written),
	)
	return nil
}
