package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . ObjectStorage Archiver

import (
	"context"
	"io"

	"github.com/secmon-lab/dataprep/pkg/domain/types"
)

// ObjectStorage retrieves a single object from a bucket.
type ObjectStorage interface {
	Download(ctx context.Context, bucket types.BucketName, object types.ObjectName, w io.Writer) error
}

// Archiver lists and expands a compressed archive on the local filesystem.
type Archiver interface {
	// List writes a human readable table of the archive entries to w.
	List(ctx context.Context, src string, w io.Writer) error
	// ExtractAll expands every entry of src under dst and returns the written paths.
	ExtractAll(ctx context.Context, src, dst string) ([]string, error)
}
