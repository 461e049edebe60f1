package usecase

import (
	"archive/zip"
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/oskpack/pkg/domain/model"
	"github.com/m-mizutani/oskpack/pkg/utils/logging"
)

// ArchiveExt is the extension osu! expects for skin archives
const ArchiveExt = ".osk"

const invalidNameChars = `/\:*?"<>|`

// ArchiveFileName builds the archive file name for a skin display name.
// Characters that cannot appear in a file name are replaced with "_".
func ArchiveFileName(skinName string) string {
	safe := strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f || strings.ContainsRune(invalidNameChars, r) {
			return '_'
		}
		return r
	}, skinName)
	return safe + ArchiveExt
}

// Pack archives a skin folder into destDir as "<skin name>.osk" and returns
// the absolute archive path along with the number of stored files
func (p *skinPacker) Pack(ctx context.Context, source, destDir string) (*model.PackResult, error) {
	name, err := ReadSkinName(source)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read skin name", goerr.V("source", source))
	}

	return p.packAs(ctx, source, destDir, name, ArchiveFileName(name))
}

func (p *skinPacker) packAs(ctx context.Context, source, destDir, skinName, fileName string) (*model.PackResult, error) {
	logger := logging.From(ctx)

	srcAbs, err := filepath.Abs(source)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve skin folder", goerr.V("source", source))
	}
	destAbs, err := filepath.Abs(destDir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve destination", goerr.V("dest", destDir))
	}

	info, err := os.Stat(destAbs)
	if err != nil {
		return nil, goerr.Wrap(err, "destination directory is not accessible", goerr.V("dest", destAbs))
	}
	if !info.IsDir() {
		return nil, goerr.New("destination is not a directory", goerr.V("dest", destAbs))
	}

	archivePath := filepath.Join(destAbs, fileName)
	tmpPath := filepath.Join(destAbs, "."+fileName+"."+uuid.NewString()+".tmp")

	logger.Debug("Writing skin archive",
		"source", srcAbs,
		"archive", archivePath,
		"temp", tmpPath,
	)

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create archive file", goerr.V("path", tmpPath))
	}

	entries, err := p.writeArchive(ctx, f, srcAbs, archivePath, tmpPath)
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = goerr.Wrap(closeErr, "failed to close archive file", goerr.V("path", tmpPath))
	}
	if err != nil {
		if rmErr := os.Remove(tmpPath); rmErr != nil {
			logger.Warn("Failed to remove incomplete archive", "path", tmpPath, "error", rmErr)
		}
		return nil, err
	}

	if err := os.Rename(tmpPath, archivePath); err != nil {
		_ = os.Remove(tmpPath) // Error ignored, rename failure is reported
		return nil, goerr.Wrap(err, "failed to move archive into place", goerr.V("path", archivePath))
	}

	logger.Info("Created skin archive",
		"skin_name", skinName,
		"source", srcAbs,
		"archive", archivePath,
		"entries", entries,
	)

	return &model.PackResult{
		Source:      srcAbs,
		SkinName:    skinName,
		ArchivePath: archivePath,
		Entries:     entries,
	}, nil
}

// writeArchive stores every regular file under root into a zip stream on w.
// Paths listed in skip (the archive being written) are never stored.
func (p *skinPacker) writeArchive(ctx context.Context, w io.Writer, root string, skip ...string) (int, error) {
	logger := logging.From(ctx)
	zw := zip.NewWriter(w)
	count := 0

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return goerr.Wrap(err, "failed to walk skin folder", goerr.V("path", path))
		}
		if err := ctx.Err(); err != nil {
			return goerr.Wrap(err, "archiving interrupted", goerr.V("path", path))
		}
		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return goerr.Wrap(err, "failed to compute relative path", goerr.V("path", path))
		}
		name := filepath.ToSlash(rel)

		if d.IsDir() {
			if p.excluded(name) {
				logger.Debug("Skipping excluded directory", "path", name)
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() || slices.Contains(skip, path) {
			return nil
		}
		if p.excluded(name) {
			logger.Debug("Skipping excluded file", "path", name)
			return nil
		}

		if err := addFile(zw, path, name, d); err != nil {
			return err
		}
		count++
		return nil
	})
	if err != nil {
		return 0, err
	}

	if err := zw.Close(); err != nil {
		return 0, goerr.Wrap(err, "failed to finalize archive")
	}

	return count, nil
}

// addFile copies one file into the zip stream under name, keeping its mode and modification time
func addFile(zw *zip.Writer, path, name string, d fs.DirEntry) error {
	info, err := d.Info()
	if err != nil {
		return goerr.Wrap(err, "failed to stat file", goerr.V("path", path))
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return goerr.Wrap(err, "failed to build zip header", goerr.V("path", path))
	}
	header.Name = name
	header.Method = zip.Deflate

	dst, err := zw.CreateHeader(header)
	if err != nil {
		return goerr.Wrap(err, "failed to create archive entry", goerr.V("name", name))
	}

	src, err := os.Open(path)
	if err != nil {
		return goerr.Wrap(err, "failed to open file", goerr.V("path", path))
	}
	defer src.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return goerr.Wrap(err, "failed to copy file into archive", goerr.V("path", path))
	}

	return nil
}
