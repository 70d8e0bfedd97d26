package config

import (
	"log/slog"

	"github.com/secmon-lab/dataprep/pkg/domain/model"
	"github.com/secmon-lab/dataprep/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

type Dataset struct {
	bucket string
	object string
}

func (x *Dataset) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bucket",
			Aliases:     []string{"b"},
			Usage:       "Bucket name of the dataset archive",
			Category:    "Dataset",
			Value:       model.DefaultBucketName.String(),
			Destination: &x.bucket,
			Sources:     cli.EnvVars("DATAPREP_BUCKET"),
		},
		&cli.StringFlag{
			Name:        "object",
			Usage:       "Object name of the dataset archive",
			Category:    "Dataset",
			Value:       model.DefaultObjectName.String(),
			Destination: &x.object,
			Sources:     cli.EnvVars("DATAPREP_OBJECT"),
		},
	}
}

func (x *Dataset) Source() model.DatasetSource {
	return model.DatasetSource{
		Bucket: types.BucketName(x.bucket),
		Object: types.ObjectName(x.object),
	}.OrDefault()
}

func (x *Dataset) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("bucket", x.bucket),
		slog.String("object", x.object),
	)
}
