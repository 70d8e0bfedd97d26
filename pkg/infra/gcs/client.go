package gcs

import (
	"context"
	"io"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/dataprep/pkg/domain/interfaces"
	"github.com/secmon-lab/dataprep/pkg/domain/types"
	"github.com/secmon-lab/dataprep/pkg/utils/logging"
	"github.com/secmon-lab/dataprep/pkg/utils/safe"
	"google.golang.org/api/option"
)

type Client struct {
	client *storage.Client
}

var _ interfaces.ObjectStorage = (*Client)(nil)

func New(ctx context.Context, options ...option.ClientOption) (*Client, error) {
	client, err := storage.NewClient(ctx, options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Cloud Storage client")
	}

	return &Client{client: client}, nil
}

// Download implements interfaces.ObjectStorage.
func (x *Client) Download(ctx context.Context, bucket types.BucketName, object types.ObjectName, w io.Writer) error {
	r, err := x.client.Bucket(bucket.String()).Object(object.String()).NewReader(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to open Cloud Storage object", goerr.V("bucket", bucket), goerr.V("object", object))
	}
	defer safe.Close(r)

	n, err := io.Copy(w, r)
	if err != nil {
		return goerr.Wrap(err, "failed to read Cloud Storage object", goerr.V("bucket", bucket), goerr.V("object", object))
	}

	logging.From(ctx).Debug("Cloud Storage object downloaded", "bucket", bucket, "object", object, "bytes", n)

	return nil
}

func (x *Client) Close() error {
	if err := x.client.Close(); err != nil {
		return goerr.Wrap(err, "failed to close Cloud Storage client")
	}
	return nil
}
