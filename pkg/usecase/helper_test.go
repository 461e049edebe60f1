package usecase_test

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
)

// writeTree creates files under root; keys are slash-separated relative paths
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		gt.NoError(t, os.MkdirAll(filepath.Dir(path), 0755)).Required()
		gt.NoError(t, os.WriteFile(path, []byte(content), 0644)).Required()
	}
}

// readArchive returns the entries of a zip file keyed by entry name
func readArchive(t *testing.T, path string) map[string]string {
	t.Helper()
	r, err := zip.OpenReader(path)
	gt.NoError(t, err).Required()
	defer r.Close()

	entries := make(map[string]string)
	for _, f := range r.File {
		rc, err := f.Open()
		gt.NoError(t, err).Required()
		data, err := io.ReadAll(rc)
		gt.NoError(t, err).Required()
		_ = rc.Close() // Error ignored in test
		entries[f.Name] = string(data)
	}
	return entries
}
