package prompt

import (
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/oskpack/pkg/domain/model"
)

// Destination menu labels, in menu order
const (
	DestDesktop    = "Desktop"
	DestDocuments  = "Documents"
	DestDownloads  = "Downloads"
	DestCurrentDir = "Current Directory"
)

// DestinationLabels lists the fixed destination choices
var DestinationLabels = []string{DestDesktop, DestDocuments, DestDownloads, DestCurrentDir}

// ResolveDestination maps a 1-based destination choice to a directory.
// Current Directory resolves to workDir; every other choice is a folder of
// the same name under homeDir.
func ResolveDestination(choice int, homeDir, workDir string) (*model.Destination, error) {
	if choice < 1 || choice > len(DestinationLabels) {
		return nil, goerr.New("unknown destination choice", goerr.V("choice", choice))
	}
	label := DestinationLabels[choice-1]

	if label == DestCurrentDir {
		return &model.Destination{Label: label, Path: workDir}, nil
	}

	if homeDir == "" {
		return nil, goerr.New("home directory is not available", goerr.V("destination", label))
	}

	return &model.Destination{
		Label: label,
		Path:  filepath.Join(homeDir, label),
	}, nil
}
