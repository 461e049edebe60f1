package usecase

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/oskpack/pkg/domain/model"
)

// ListFolders returns the immediate subdirectories of base in name order.
// Symlinks are included when they point at a directory.
func (p *skinPacker) ListFolders(base string) ([]*model.SkinFolder, error) {
	absBase, err := filepath.Abs(base)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve base directory", goerr.V("base", base))
	}

	entries, err := os.ReadDir(absBase)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read base directory", goerr.V("base", absBase))
	}

	folders := make([]*model.SkinFolder, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(absBase, entry.Name())

		if !entry.IsDir() {
			if entry.Type()&fs.ModeSymlink == 0 {
				continue
			}
			info, err := os.Stat(path)
			if err != nil || !info.IsDir() {
				continue
			}
		}

		folders = append(folders, &model.SkinFolder{
			Name: entry.Name(),
			Path: path,
		})
	}

	return folders, nil
}
