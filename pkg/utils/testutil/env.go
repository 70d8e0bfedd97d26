package testutil

import (
	"os"
	"testing"

	"github.com/secmon-lab/dataprep/pkg/domain/types"
)

// GetEnvOrSkip returns the value of the environment variable. If not set, skip the test.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("Environment variable %s is not set, skipping test", key)
	}
	return value
}

// RemoteDataset reads TEST_<backend>_BUCKET and TEST_<backend>_OBJECT, e.g.
// TEST_S3_BUCKET, and skips the test unless both are set.
func RemoteDataset(t *testing.T, backend string) (types.BucketName, types.ObjectName) {
	t.Helper()
	bucket := GetEnvOrSkip(t, "TEST_"+backend+"_BUCKET")
	object := GetEnvOrSkip(t, "TEST_"+backend+"_OBJECT")
	return types.BucketName(bucket), types.ObjectName(object)
}
