package testutil

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
)

// ZipModified is the modification time stamped on every entry built here.
var ZipModified = time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)

// ZipEntry is one member of a test archive. A name ending with "/" is a
// directory.
type ZipEntry struct {
	Name    string
	Content string
}

// ZipFiles turns a name to content map into entries sorted by name.
func ZipFiles(files map[string]string) []ZipEntry {
	entries := make([]ZipEntry, 0, len(files))
	for name, content := range files {
		entries = append(entries, ZipEntry{Name: name, Content: content})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// ZipBytes builds a deflated zip archive holding entries in the given order.
func ZipBytes(t *testing.T, entries ...ZipEntry) []byte {
	t.Helper()
	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)
	for _, e := range entries {
		fw := gt.R1(zw.CreateHeader(&zip.FileHeader{
			Name:     e.Name,
			Method:   zip.Deflate,
			Modified: ZipModified,
		})).NoError(t)
		gt.R1(fw.Write([]byte(e.Content))).NoError(t)
	}
	gt.NoError(t, zw.Close())
	return buf.Bytes()
}

// WriteZip writes the archive to data.zip under a fresh temp dir and returns
// its path.
func WriteZip(t *testing.T, entries ...ZipEntry) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.zip")
	gt.NoError(t, os.WriteFile(path, ZipBytes(t, entries...), 0644))
	return path
}
