package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/dataprep/pkg/domain/interfaces"
	"github.com/secmon-lab/dataprep/pkg/domain/types"
	"github.com/secmon-lab/dataprep/pkg/infra/gcs"
	"github.com/secmon-lab/dataprep/pkg/infra/s3"
	"github.com/secmon-lab/dataprep/pkg/utils/logging"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/option"
)

type Storage struct {
	backend string

	awsRegion          string
	s3Endpoint         string
	s3PathStyle        bool
	awsAccessKeyID     string
	awsSecretAccessKey types.AWSSecretAccessKey `masq:"secret"`
	awsSessionToken    types.AWSSessionToken    `masq:"secret"`

	gcsEndpoint    string
	gcsWithoutAuth bool
}

func (x *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "storage",
			Usage:       "Object storage backend [s3|gcs]",
			Category:    "Storage",
			Value:       string(types.StorageS3),
			Destination: &x.backend,
			Sources:     cli.EnvVars("DATAPREP_STORAGE"),
		},
		&cli.StringFlag{
			Name:        "aws-region",
			Usage:       "AWS region of the S3 bucket (default: AWS config)",
			Category:    "Storage",
			Destination: &x.awsRegion,
			Sources:     cli.EnvVars("DATAPREP_AWS_REGION"),
		},
		&cli.StringFlag{
			Name:        "s3-endpoint",
			Usage:       "Custom S3 endpoint URL for S3 compatible storage",
			Category:    "Storage",
			Destination: &x.s3Endpoint,
			Sources:     cli.EnvVars("DATAPREP_S3_ENDPOINT"),
		},
		&cli.BoolFlag{
			Name:        "s3-path-style",
			Usage:       "Use path style S3 addressing",
			Category:    "Storage",
			Destination: &x.s3PathStyle,
			Sources:     cli.EnvVars("DATAPREP_S3_PATH_STYLE"),
		},
		&cli.StringFlag{
			Name:        "aws-access-key-id",
			Usage:       "AWS access key ID (default: AWS credential chain)",
			Category:    "Storage",
			Destination: &x.awsAccessKeyID,
			Sources:     cli.EnvVars("DATAPREP_AWS_ACCESS_KEY_ID"),
		},
		&cli.StringFlag{
			Name:        "aws-secret-access-key",
			Usage:       "AWS secret access key",
			Category:    "Storage",
			Destination: (*string)(&x.awsSecretAccessKey),
			Sources:     cli.EnvVars("DATAPREP_AWS_SECRET_ACCESS_KEY"),
		},
		&cli.StringFlag{
			Name:        "aws-session-token",
			Usage:       "AWS session token",
			Category:    "Storage",
			Destination: (*string)(&x.awsSessionToken),
			Sources:     cli.EnvVars("DATAPREP_AWS_SESSION_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "gcs-endpoint",
			Usage:       "Custom Cloud Storage endpoint URL",
			Category:    "Storage",
			Destination: &x.gcsEndpoint,
			Sources:     cli.EnvVars("DATAPREP_GCS_ENDPOINT"),
		},
		&cli.BoolFlag{
			Name:        "gcs-without-auth",
			Usage:       "Access Cloud Storage without credentials (public buckets, emulators)",
			Category:    "Storage",
			Destination: &x.gcsWithoutAuth,
			Sources:     cli.EnvVars("DATAPREP_GCS_WITHOUT_AUTH"),
		},
	}
}

func (x *Storage) Backend() types.StorageBackend {
	return types.StorageBackend(x.backend)
}

// NewClient creates the object storage client of the selected backend. The
// returned function releases the client and must be called when done.
func (x *Storage) NewClient(ctx context.Context) (interfaces.ObjectStorage, func(), error) {
	switch x.Backend() {
	case types.StorageS3:
		var opts []s3.Option
		if x.awsRegion != "" {
			opts = append(opts, s3.WithRegion(types.AWSRegion(x.awsRegion)))
		}
		if x.s3Endpoint != "" {
			opts = append(opts, s3.WithEndpoint(x.s3Endpoint))
		}
		if x.s3PathStyle {
			opts = append(opts, s3.WithPathStyle(true))
		}
		if x.awsAccessKeyID != "" {
			opts = append(opts, s3.WithStaticCredentials(
				types.AWSAccessKeyID(x.awsAccessKeyID),
				x.awsSecretAccessKey,
				x.awsSessionToken,
			))
		}

		client, err := s3.New(ctx, opts...)
		if err != nil {
			return nil, nil, err
		}
		return client, func() {}, nil

	case types.StorageGCS:
		var opts []option.ClientOption
		if x.gcsEndpoint != "" {
			opts = append(opts, option.WithEndpoint(x.gcsEndpoint))
		}
		if x.gcsWithoutAuth {
			opts = append(opts, option.WithoutAuthentication())
		}

		client, err := gcs.New(ctx, opts...)
		if err != nil {
			return nil, nil, err
		}
		return client, func() {
			if err := client.Close(); err != nil {
				logging.From(ctx).Warn("failed to close storage client", "error", err)
			}
		}, nil

	default:
		return nil, nil, goerr.Wrap(types.ErrInvalidOption, "invalid storage backend, should be 's3' or 'gcs'", goerr.V("value", x.backend))
	}
}

func (x *Storage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("backend", x.backend),
		slog.String("awsRegion", x.awsRegion),
		slog.String("s3Endpoint", x.s3Endpoint),
		slog.Bool("s3PathStyle", x.s3PathStyle),
		slog.Bool("staticCredentials", x.awsAccessKeyID != ""),
		slog.String("gcsEndpoint", x.gcsEndpoint),
		slog.Bool("gcsWithoutAuth", x.gcsWithoutAuth),
	)
}
