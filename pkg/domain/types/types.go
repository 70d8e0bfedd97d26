package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	BucketName         string
	ObjectName         string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSSessionToken    string
	StorageBackend     string
	RunID              string
)

const (
	StorageS3  StorageBackend = "s3"
	StorageGCS StorageBackend = "gcs"
)

func (x BucketName) String() string { return string(x) }
func (x ObjectName) String() string { return string(x) }
func (x AWSRegion) String() string { return string(x) }
func (x RunID) String() string { return string(x) }

func NewRunID() RunID {
	return RunID(uuid.NewString())
}

func (x AWSSecretAccessKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x AWSSecretAccessKey) String() string {
	return "***********"
}

func (x AWSSessionToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x AWSSessionToken) String() string {
	return "***********"
}
