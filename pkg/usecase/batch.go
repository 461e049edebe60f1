package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/oskpack/pkg/domain/model"
	"github.com/m-mizutani/oskpack/pkg/utils/logging"
)

// PackAll archives each source into destDir in order. A failing folder is
// recorded in the report and processing continues with the next one. When
// two skins in the same run share a display name, later archives get a
// " (2)", " (3)", ... suffix instead of overwriting earlier ones.
//
// The returned error is non-nil only when ctx is cancelled; per-folder
// failures are available through the report.
func (p *skinPacker) PackAll(ctx context.Context, sources []string, destDir string, onDone func(*model.PackResult, *model.PackFailure)) (*model.PackReport, error) {
	logger := logging.From(ctx)
	report := &model.PackReport{}
	used := make(map[string]bool)

	for _, source := range sources {
		if err := ctx.Err(); err != nil {
			return report, goerr.Wrap(err, "packing interrupted", goerr.V("next_source", source))
		}

		result, err := p.packUnique(ctx, source, destDir, used)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return report, goerr.Wrap(ctxErr, "packing interrupted", goerr.V("source", source))
			}

			logger.Error("Failed to pack skin folder",
				"source", source,
				"error", err,
			)
			failure := &model.PackFailure{Source: source, Err: err}
			report.Failures = append(report.Failures, failure)
			if onDone != nil {
				onDone(nil, failure)
			}
			continue
		}

		report.Results = append(report.Results, result)
		if onDone != nil {
			onDone(result, nil)
		}
	}

	logger.Info("Packing completed",
		"succeeded", len(report.Results),
		"failed", len(report.Failures),
	)

	return report, nil
}

func (p *skinPacker) packUnique(ctx context.Context, source, destDir string, used map[string]bool) (*model.PackResult, error) {
	name, err := ReadSkinName(source)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read skin name", goerr.V("source", source))
	}

	fileName := ArchiveFileName(name)
	renamed := false
	for i := 2; used[strings.ToLower(fileName)]; i++ {
		fileName = ArchiveFileName(fmt.Sprintf("%s (%d)", name, i))
		renamed = true
	}
	if renamed {
		logging.From(ctx).Warn("Duplicate skin name in this run, archive renamed",
			"skin_name", name,
			"source", source,
			"file_name", fileName,
		)
	}

	result, err := p.packAs(ctx, source, destDir, name, fileName)
	if err != nil {
		return nil, err
	}
	used[strings.ToLower(fileName)] = true
	result.Renamed = renamed

	return result, nil
}
