package interfaces

import (
	"context"

	"github.com/secmon-lab/dataprep/pkg/domain/model"
)

type UseCase interface {
	DownloadDataset(ctx context.Context, input *model.DownloadDatasetInput) error
	UnzipData(ctx context.Context, input *model.UnzipDataInput) error
	PrepareDataset(ctx context.Context, input *model.PrepareDatasetInput) error
}
