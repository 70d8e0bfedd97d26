package s3

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/dataprep/pkg/domain/interfaces"
	"github.com/secmon-lab/dataprep/pkg/domain/types"
	"github.com/secmon-lab/dataprep/pkg/utils/logging"
	"github.com/secmon-lab/dataprep/pkg/utils/safe"
)

// GetObjectAPI is the subset of the S3 API used by Client.
type GetObjectAPI interface {
	GetObject(ctx context.Context, params *awss3.GetObjectInput, optFns ...func(*awss3.Options)) (*awss3.GetObjectOutput, error)
}

type Client struct {
	api GetObjectAPI
}

var _ interfaces.ObjectStorage = (*Client)(nil)

type options struct {
	region          types.AWSRegion
	endpoint        string
	usePathStyle    bool
	accessKeyID     types.AWSAccessKeyID
	secretAccessKey types.AWSSecretAccessKey
	sessionToken    types.AWSSessionToken
}

type Option func(*options)

func WithRegion(region types.AWSRegion) Option {
	return func(o *options) {
		o.region = region
	}
}

// WithEndpoint overrides the S3 endpoint, e.g. for S3 compatible storage.
func WithEndpoint(endpoint string) Option {
	return func(o *options) {
		o.endpoint = endpoint
	}
}

func WithPathStyle(usePathStyle bool) Option {
	return func(o *options) {
		o.usePathStyle = usePathStyle
	}
}

// WithStaticCredentials uses the given key pair instead of the default
// credential chain.
func WithStaticCredentials(keyID types.AWSAccessKeyID, secret types.AWSSecretAccessKey, token types.AWSSessionToken) Option {
	return func(o *options) {
		o.accessKeyID = keyID
		o.secretAccessKey = secret
		o.sessionToken = token
	}
}

// New creates a client from the default AWS configuration (environment,
// shared config files, instance role) adjusted by opts.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var loadOpts []func(*config.LoadOptions) error
	if o.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.region.String()))
	}
	if o.accessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(string(o.accessKeyID), string(o.secretAccessKey), string(o.sessionToken)),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load AWS config", goerr.V("region", o.region))
	}

	client := awss3.NewFromConfig(cfg, func(so *awss3.Options) {
		if o.endpoint != "" {
			so.BaseEndpoint = aws.String(o.endpoint)
		}
		so.UsePathStyle = o.usePathStyle
	})

	return &Client{api: client}, nil
}

// NewWithAPI wraps an existing S3 API implementation.
func NewWithAPI(api GetObjectAPI) *Client {
	return &Client{api: api}
}

// Download implements interfaces.ObjectStorage.
func (x *Client) Download(ctx context.Context, bucket types.BucketName, object types.ObjectName, w io.Writer) error {
	out, err := x.api.GetObject(ctx, &awss3.GetObjectInput{
		Bucket: aws.String(bucket.String()),
		Key:    aws.String(object.String()),
	})
	if err != nil {
		return goerr.Wrap(err, "failed to get S3 object", goerr.V("bucket", bucket), goerr.V("object", object))
	}
	defer safe.Close(out.Body)

	n, err := io.Copy(w, out.Body)
	if err != nil {
		return goerr.Wrap(err, "failed to read S3 object", goerr.V("bucket", bucket), goerr.V("object", object))
	}

	logging.From(ctx).Debug("S3 object downloaded", "bucket", bucket, "object", object, "bytes", n)

	return nil
}
