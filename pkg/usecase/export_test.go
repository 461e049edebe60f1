package usecase

import (
	"context"
	"io"
)

// WriteArchive exposes the zip writer of a packer without excludes for tests
func WriteArchive(ctx context.Context, w io.Writer, root string) (int, error) {
	return (&skinPacker{}).writeArchive(ctx, w, root)
}
