package model

import (
	"time"

	"github.com/secmon-lab/dataprep/pkg/domain/types"
)

const (
	DefaultBucketName types.BucketName = "fairmarkit-hiring-challenges"
	DefaultObjectName types.ObjectName = "California Purchases.zip"
)

// DatasetSource points to a single object in a bucket.
type DatasetSource struct {
	Bucket types.BucketName
	Object types.ObjectName
}

// DefaultDatasetSource returns the location of the purchase dataset archive.
func DefaultDatasetSource() DatasetSource {
	return DatasetSource{
		Bucket: DefaultBucketName,
		Object: DefaultObjectName,
	}
}

// OrDefault fills empty fields with the default dataset location. The
// receiver is not modified.
func (x DatasetSource) OrDefault() DatasetSource {
	def := DefaultDatasetSource()
	if x.Bucket == "" {
		x.Bucket = def.Bucket
	}
	if x.Object == "" {
		x.Object = def.Object
	}
	return x
}

type DownloadDatasetInput struct {
	Source       DatasetSource
	DownloadPath string
}

type UnzipDataInput struct {
	ZipFile  string
	UnzipLoc string
}

type PrepareDatasetInput struct {
	Source DatasetSource
	// DownloadPath is where the archive is kept. If empty, a temporary file is
	// used and removed after extraction.
	DownloadPath string
	UnzipLoc     string
}

// ArchiveEntry is a single row of an archive listing.
type ArchiveEntry struct {
	Name     string
	Modified time.Time
	Size     uint64
}
