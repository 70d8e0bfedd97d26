package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/dataprep/pkg/domain/mock"
	"github.com/secmon-lab/dataprep/pkg/domain/model"
	"github.com/secmon-lab/dataprep/pkg/domain/types"
	"github.com/secmon-lab/dataprep/pkg/infra"
	"github.com/secmon-lab/dataprep/pkg/usecase"
	"github.com/secmon-lab/dataprep/pkg/utils/testutil"
)

func TestDownloadDataset(t *testing.T) {
	t.Run("default bucket and object", func(t *testing.T) {
		mockStorage := &mock.ObjectStorageMock{
			DownloadFunc: func(ctx context.Context, bucket types.BucketName, object types.ObjectName, w io.Writer) error {
				gt.V(t, bucket).Equal(model.DefaultBucketName)
				gt.V(t, object).Equal(model.DefaultObjectName)
				_, err := w.Write([]byte("zip-data"))
				return err
			},
		}
		uc := usecase.New(infra.New(infra.WithObjectStorage(mockStorage)))

		path := filepath.Join(t.TempDir(), "purchases.zip")
		gt.NoError(t, uc.DownloadDataset(context.Background(), &model.DownloadDatasetInput{
			DownloadPath: path,
		}))

		gt.V(t, len(mockStorage.DownloadCalls())).Equal(1)
		data := gt.R1(os.ReadFile(path)).NoError(t)
		gt.V(t, string(data)).Equal("zip-data")
	})

	t.Run("given bucket and object are passed through", func(t *testing.T) {
		mockStorage := &mock.ObjectStorageMock{
			DownloadFunc: func(ctx context.Context, bucket types.BucketName, object types.ObjectName, w io.Writer) error {
				return nil
			},
		}
		uc := usecase.New(infra.New(infra.WithObjectStorage(mockStorage)))

		path := filepath.Join(t.TempDir(), "other.zip")
		gt.NoError(t, uc.DownloadDataset(context.Background(), &model.DownloadDatasetInput{
			Source: model.DatasetSource{
				Bucket: "other-bucket",
				Object: "exports/2024.zip",
			},
			DownloadPath: path,
		}))

		calls := mockStorage.DownloadCalls()
		gt.V(t, len(calls)).Equal(1)
		gt.V(t, calls[0].Bucket).Equal("other-bucket")
		gt.V(t, calls[0].Object).Equal("exports/2024.zip")
	})

	t.Run("existing file is overwritten", func(t *testing.T) {
		mockStorage := &mock.ObjectStorageMock{
			DownloadFunc: func(ctx context.Context, bucket types.BucketName, object types.ObjectName, w io.Writer) error {
				_, err := w.Write([]byte("new"))
				return err
			},
		}
		uc := usecase.New(infra.New(infra.WithObjectStorage(mockStorage)))

		path := filepath.Join(t.TempDir(), "purchases.zip")
		gt.NoError(t, os.WriteFile(path, []byte("much longer old content"), 0644))

		gt.NoError(t, uc.DownloadDataset(context.Background(), &model.DownloadDatasetInput{
			DownloadPath: path,
		}))

		data := gt.R1(os.ReadFile(path)).NoError(t)
		gt.V(t, string(data)).Equal("new")
	})

	t.Run("storage error is returned unchanged", func(t *testing.T) {
		errAuth := errors.New("access denied")
		mockStorage := &mock.ObjectStorageMock{
			DownloadFunc: func(ctx context.Context, bucket types.BucketName, object types.ObjectName, w io.Writer) error {
				return errAuth
			},
		}
		uc := usecase.New(infra.New(infra.WithObjectStorage(mockStorage)))

		err := uc.DownloadDataset(context.Background(), &model.DownloadDatasetInput{
			DownloadPath: filepath.Join(t.TempDir(), "purchases.zip"),
		})
		gt.V(t, err).Equal(errAuth)
		gt.V(t, len(mockStorage.DownloadCalls())).Equal(1)
	})

	t.Run("storage is not configured", func(t *testing.T) {
		uc := usecase.New(infra.New())
		err := uc.DownloadDataset(context.Background(), &model.DownloadDatasetInput{
			DownloadPath: filepath.Join(t.TempDir(), "purchases.zip"),
		})
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("destination directory does not exist", func(t *testing.T) {
		mockStorage := &mock.ObjectStorageMock{}
		uc := usecase.New(infra.New(infra.WithObjectStorage(mockStorage)))

		err := uc.DownloadDataset(context.Background(), &model.DownloadDatasetInput{
			DownloadPath: filepath.Join(t.TempDir(), "no", "such", "dir", "purchases.zip"),
		})
		gt.Error(t, err)
		gt.V(t, len(mockStorage.DownloadCalls())).Equal(0)
	})
}

func TestUnzipData(t *testing.T) {
	t.Run("listing is produced before extraction", func(t *testing.T) {
		var order []string
		mockArchiver := &mock.ArchiverMock{
			ListFunc: func(ctx context.Context, src string, w io.Writer) error {
				order = append(order, "list")
				gt.V(t, src).Equal("/data/purchases.zip")
				_, err := w.Write([]byte("File Name\n"))
				return err
			},
			ExtractAllFunc: func(ctx context.Context, src string, dst string) ([]string, error) {
				order = append(order, "extract")
				gt.V(t, src).Equal("/data/purchases.zip")
				gt.V(t, dst).Equal("/data/out")
				return []string{"/data/out/a.csv"}, nil
			},
		}
		var stdout bytes.Buffer
		uc := usecase.New(infra.New(
			infra.WithArchiver(mockArchiver),
			infra.WithStdout(&stdout),
		))

		gt.NoError(t, uc.UnzipData(context.Background(), &model.UnzipDataInput{
			ZipFile:  "/data/purchases.zip",
			UnzipLoc: "/data/out",
		}))

		gt.V(t, order).Equal([]string{"list", "extract"})
		gt.V(t, stdout.String()).Equal("File Name\n")
	})

	t.Run("listing failure stops extraction", func(t *testing.T) {
		errOpen := errors.New("no such file")
		mockArchiver := &mock.ArchiverMock{
			ListFunc: func(ctx context.Context, src string, w io.Writer) error {
				return errOpen
			},
		}
		uc := usecase.New(infra.New(infra.WithArchiver(mockArchiver), infra.WithStdout(io.Discard)))

		err := uc.UnzipData(context.Background(), &model.UnzipDataInput{ZipFile: "x.zip", UnzipLoc: "out"})
		gt.V(t, err).Equal(errOpen)
		gt.V(t, len(mockArchiver.ExtractAllCalls())).Equal(0)
	})

	t.Run("extraction failure is returned", func(t *testing.T) {
		errCorrupt := errors.New("corrupt")
		mockArchiver := &mock.ArchiverMock{
			ListFunc: func(ctx context.Context, src string, w io.Writer) error {
				return nil
			},
			ExtractAllFunc: func(ctx context.Context, src string, dst string) ([]string, error) {
				return nil, errCorrupt
			},
		}
		uc := usecase.New(infra.New(infra.WithArchiver(mockArchiver), infra.WithStdout(io.Discard)))

		err := uc.UnzipData(context.Background(), &model.UnzipDataInput{ZipFile: "x.zip", UnzipLoc: "out"})
		gt.V(t, err).Equal(errCorrupt)
	})

	t.Run("real zip archive", func(t *testing.T) {
		src := filepath.Join(t.TempDir(), "data.zip")
		gt.NoError(t, os.WriteFile(src, testutil.ZipBytes(t, testutil.ZipFiles(map[string]string{
			"California Purchases/purchases.csv": "Unit Price\n$1.50\n",
		})...), 0644))
		dst := t.TempDir()

		var stdout bytes.Buffer
		uc := usecase.New(infra.New(infra.WithStdout(&stdout)))
		gt.NoError(t, uc.UnzipData(context.Background(), &model.UnzipDataInput{
			ZipFile:  src,
			UnzipLoc: dst,
		}))

		gt.True(t, strings.Contains(stdout.String(), "California Purchases/purchases.csv"))
		data := gt.R1(os.ReadFile(filepath.Join(dst, "California Purchases", "purchases.csv"))).NoError(t)
		gt.V(t, string(data)).Equal("Unit Price\n$1.50\n")
	})
}

func TestPrepareDataset(t *testing.T) {
	zipData := testutil.ZipBytes(t, testutil.ZipFiles(map[string]string{
		"purchases.csv": "Total Price\n$10\n",
	})...)

	newStorage := func() *mock.ObjectStorageMock {
		return &mock.ObjectStorageMock{
			DownloadFunc: func(ctx context.Context, bucket types.BucketName, object types.ObjectName, w io.Writer) error {
				_, err := w.Write(zipData)
				return err
			},
		}
	}

	t.Run("keep archive at download path", func(t *testing.T) {
		mockStorage := newStorage()
		uc := usecase.New(infra.New(
			infra.WithObjectStorage(mockStorage),
			infra.WithStdout(io.Discard),
		))

		dir := t.TempDir()
		zipPath := filepath.Join(dir, "purchases.zip")
		dst := filepath.Join(dir, "data")
		gt.NoError(t, uc.PrepareDataset(context.Background(), &model.PrepareDatasetInput{
			DownloadPath: zipPath,
			UnzipLoc:     dst,
		}))

		gt.R1(os.Stat(zipPath)).NoError(t)
		data := gt.R1(os.ReadFile(filepath.Join(dst, "purchases.csv"))).NoError(t)
		gt.V(t, string(data)).Equal("Total Price\n$10\n")
	})

	t.Run("temporary archive is removed", func(t *testing.T) {
		mockStorage := newStorage()
		var zipPath string
		mockArchiver := &mock.ArchiverMock{
			ListFunc: func(ctx context.Context, src string, w io.Writer) error {
				zipPath = src
				return nil
			},
			ExtractAllFunc: func(ctx context.Context, src string, dst string) ([]string, error) {
				gt.R1(os.Stat(src)).NoError(t)
				return nil, nil
			},
		}
		uc := usecase.New(infra.New(
			infra.WithObjectStorage(mockStorage),
			infra.WithArchiver(mockArchiver),
		))

		gt.NoError(t, uc.PrepareDataset(context.Background(), &model.PrepareDatasetInput{
			UnzipLoc: t.TempDir(),
		}))

		gt.V(t, zipPath).NotEqual("")
		_, err := os.Stat(zipPath)
		gt.True(t, os.IsNotExist(err))
	})

	t.Run("download failure skips extraction", func(t *testing.T) {
		errNet := errors.New("network unreachable")
		mockStorage := &mock.ObjectStorageMock{
			DownloadFunc: func(ctx context.Context, bucket types.BucketName, object types.ObjectName, w io.Writer) error {
				return errNet
			},
		}
		mockArchiver := &mock.ArchiverMock{}
		uc := usecase.New(infra.New(
			infra.WithObjectStorage(mockStorage),
			infra.WithArchiver(mockArchiver),
		))

		err := uc.PrepareDataset(context.Background(), &model.PrepareDatasetInput{
			UnzipLoc: t.TempDir(),
		})
		gt.V(t, err).Equal(errNet)
		gt.V(t, len(mockArchiver.ListCalls())).Equal(0)
	})
}
