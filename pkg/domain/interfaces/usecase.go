package interfaces

import (
	"context"

	"github.com/m-mizutani/oskpack/pkg/domain/model"
)

// SkinPacker defines operations for turning skin folders into .osk archives
type SkinPacker interface {
	// ListFolders returns the immediate subdirectories of base, sorted by name
	ListFolders(base string) ([]*model.SkinFolder, error)

	// Pack archives a single skin folder into destDir
	Pack(ctx context.Context, source, destDir string) (*model.PackResult, error)

	// PackAll archives every source in order, continuing past per-folder failures
	PackAll(ctx context.Context, sources []string, destDir string, onDone func(*model.PackResult, *model.PackFailure)) (*model.PackReport, error)
}
