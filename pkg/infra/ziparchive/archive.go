package ziparchive

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/dataprep/pkg/domain/interfaces"
	"github.com/secmon-lab/dataprep/pkg/domain/model"
	"github.com/secmon-lab/dataprep/pkg/domain/types"
	"github.com/secmon-lab/dataprep/pkg/utils/logging"
	"github.com/secmon-lab/dataprep/pkg/utils/safe"
)

const listingTimeFormat = "2006-01-02 15:04:05"

type Archive struct{}

var _ interfaces.Archiver = (*Archive)(nil)

func New() *Archive {
	return &Archive{}
}

// Entries returns the listing rows of a zip archive.
func (x *Archive) Entries(_ context.Context, src string) ([]model.ArchiveEntry, error) {
	zipFile, err := openZip(src)
	if err != nil {
		return nil, err
	}
	defer safe.Close(zipFile)

	entries := make([]model.ArchiveEntry, 0, len(zipFile.File))
	for _, f := range zipFile.File {
		entries = append(entries, model.ArchiveEntry{
			Name:     f.Name,
			Modified: f.Modified,
			Size:     f.UncompressedSize64,
		})
	}

	return entries, nil
}

// List implements interfaces.Archiver. The table layout follows the common
// "File Name / Modified / Size" zip directory format.
func (x *Archive) List(ctx context.Context, src string, w io.Writer) error {
	entries, err := x.Entries(ctx, src)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "%-46s %19s %12s\n", "File Name", "Modified", "Size"); err != nil {
		return goerr.Wrap(err, "failed to write listing")
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%-46s %19s %12d\n", e.Name, e.Modified.Format(listingTimeFormat), e.Size); err != nil {
			return goerr.Wrap(err, "failed to write listing", goerr.V("entry", e.Name))
		}
	}

	return nil
}

// ExtractAll implements interfaces.Archiver. An empty dst means the current
// directory. Entries already written stay on disk when a later entry fails.
func (x *Archive) ExtractAll(ctx context.Context, src, dst string) ([]string, error) {
	if dst == "" {
		dst = "."
	}
	zipFile, err := openZip(src)
	if err != nil {
		return nil, err
	}
	defer safe.Close(zipFile)

	if err := os.MkdirAll(dst, 0o755); err != nil {
		return nil, goerr.Wrap(err, "failed to create destination directory", goerr.V("path", dst))
	}

	var written []string
	for _, f := range zipFile.File {
		fpath, err := extractEntry(ctx, f, dst)
		if err != nil {
			return written, err
		}
		if fpath != "" {
			written = append(written, fpath)
		}
	}

	logging.From(ctx).Debug("zip file extracted", "src", src, "dst", dst, "files", len(written))

	return written, nil
}

// openZip opens src. Insecure entry names are accepted here and rejected per
// entry by entryPath.
func openZip(src string) (*zip.ReadCloser, error) {
	zipFile, err := zip.OpenReader(src)
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		return nil, goerr.Wrap(err, "failed to open zip file", goerr.V("file", src))
	}
	return zipFile, nil
}

func extractEntry(_ context.Context, f *zip.File, dst string) (string, error) {
	target, err := entryPath(f.Name)
	if err != nil {
		return "", err
	}
	if target == "" {
		return "", nil
	}

	fpath := filepath.Join(dst, target)
	if !withinDir(dst, fpath) {
		return "", goerr.Wrap(types.ErrInvalidArchive, "illegal file path of zip", goerr.V("path", fpath))
	}

	if f.FileInfo().IsDir() {
		if err := os.MkdirAll(fpath, 0o755); err != nil {
			return "", goerr.Wrap(err, "failed to create directory", goerr.V("path", fpath))
		}
		return "", nil
	}

	if err := os.MkdirAll(filepath.Dir(fpath), 0o755); err != nil {
		return "", goerr.Wrap(err, "failed to create directory", goerr.V("path", fpath))
	}

	mode := f.Mode().Perm()
	if mode == 0 {
		mode = 0o644
	}

	// #nosec
	out, err := os.OpenFile(fpath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return "", goerr.Wrap(err, "failed to open file", goerr.V("fpath", fpath))
	}
	defer safe.Close(out)

	rc, err := f.Open()
	if err != nil {
		return "", goerr.Wrap(err, "failed to open zip entry", goerr.V("entry", f.Name))
	}
	defer safe.Close(rc)

	// #nosec
	if _, err := io.Copy(out, rc); err != nil {
		return "", goerr.Wrap(err, "failed to copy file content", goerr.V("entry", f.Name))
	}

	return fpath, nil
}

// entryPath converts a zip entry name into a relative local path. Empty result
// means the entry has nothing to write.
func entryPath(name string) (string, error) {
	normalized := strings.ReplaceAll(name, "\\", "/")
	if strings.HasPrefix(normalized, "/") || filepath.IsAbs(name) {
		return "", goerr.Wrap(types.ErrInvalidArchive, "illegal file path of zip", goerr.V("path", name))
	}

	var safeParts []string
	for _, part := range strings.Split(normalized, "/") {
		if part == "" || part == "." {
			continue
		}
		if part == ".." {
			return "", goerr.Wrap(types.ErrInvalidArchive, "illegal file path of zip", goerr.V("path", name))
		}
		safeParts = append(safeParts, part)
	}

	if len(safeParts) == 0 {
		return "", nil
	}

	return filepath.Join(safeParts...), nil
}

// withinDir reports whether path stays inside dir. dir may be relative,
// including "." and "./".
func withinDir(dir, path string) bool {
	rel, err := filepath.Rel(filepath.Clean(dir), path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(os.PathSeparator))
}
