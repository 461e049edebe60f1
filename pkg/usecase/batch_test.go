package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/oskpack/pkg/domain/model"
	"github.com/m-mizutani/oskpack/pkg/usecase"
)

func TestSkinPacker_PackAll_ContinuesAfterFailure(t *testing.T) {
	base := t.TempDir()
	dest := t.TempDir()
	writeTree(t, base, map[string]string{
		"first/Skin.ini":  "Name: First\n",
		"first/a.png":     "a",
		"broken/Skin.ini": "Author: nobody\n",
		"missing/b.png":   "b",
		"third/Skin.ini":  "Name: Third\n",
		"third/sub/c.wav": "c",
	})
	sources := []string{
		filepath.Join(base, "first"),
		filepath.Join(base, "broken"),
		filepath.Join(base, "missing"),
		filepath.Join(base, "third"),
	}

	packer, err := usecase.NewSkinPacker()
	gt.NoError(t, err).Required()

	var order []string
	report, err := packer.PackAll(context.Background(), sources, dest, func(r *model.PackResult, f *model.PackFailure) {
		if r != nil {
			order = append(order, "ok:"+r.SkinName)
		} else {
			order = append(order, "fail:"+filepath.Base(f.Source))
		}
	})
	gt.NoError(t, err).Required()

	gt.Equal(t, order, []string{"ok:First", "fail:broken", "fail:missing", "ok:Third"})
	gt.Number(t, len(report.Results)).Equal(2)
	gt.Number(t, len(report.Failures)).Equal(2)
	gt.True(t, report.Failed())
	gt.True(t, errors.Is(report.Failures[0].Err, usecase.ErrNameNotFound))

	gt.Equal(t, readArchive(t, filepath.Join(dest, "Third.osk")), map[string]string{
		"Skin.ini":  "Name: Third\n",
		"sub/c.wav": "c",
	})

	merged := report.Err()
	gt.Error(t, merged)
	gt.String(t, merged.Error()).Contains("no name field found")
}

func TestSkinPacker_PackAll_DuplicateNames(t *testing.T) {
	base := t.TempDir()
	dest := t.TempDir()
	writeTree(t, base, map[string]string{
		"one/Skin.ini":   "Name: Same\n",
		"one/x.txt":      "one",
		"two/Skin.ini":   "Name: Same\n",
		"two/x.txt":      "two",
		"three/Skin.ini": "Name: same\n",
		"three/x.txt":    "three",
	})
	sources := []string{
		filepath.Join(base, "one"),
		filepath.Join(base, "two"),
		filepath.Join(base, "three"),
	}

	packer, err := usecase.NewSkinPacker()
	gt.NoError(t, err).Required()

	report, err := packer.PackAll(context.Background(), sources, dest, nil)
	gt.NoError(t, err).Required()
	gt.False(t, report.Failed())
	gt.NoError(t, report.Err())
	gt.Number(t, len(report.Results)).Equal(3)

	gt.Equal(t, report.Results[0].ArchivePath, filepath.Join(dest, "Same.osk"))
	gt.False(t, report.Results[0].Renamed)
	gt.Equal(t, report.Results[1].ArchivePath, filepath.Join(dest, "Same (2).osk"))
	gt.True(t, report.Results[1].Renamed)
	gt.Equal(t, report.Results[2].ArchivePath, filepath.Join(dest, "same (3).osk"))

	gt.Equal(t, readArchive(t, filepath.Join(dest, "Same.osk"))["x.txt"], "one")
	gt.Equal(t, readArchive(t, filepath.Join(dest, "Same (2).osk"))["x.txt"], "two")
}

func TestSkinPacker_PackAll_Cancelled(t *testing.T) {
	base := t.TempDir()
	dest := t.TempDir()
	writeTree(t, base, map[string]string{
		"one/Skin.ini": "Name: One\n",
		"two/Skin.ini": "Name: Two\n",
	})
	sources := []string{filepath.Join(base, "one"), filepath.Join(base, "two")}

	packer, err := usecase.NewSkinPacker()
	gt.NoError(t, err).Required()

	ctx, cancel := context.WithCancel(context.Background())
	report, err := packer.PackAll(ctx, sources, dest, func(r *model.PackResult, f *model.PackFailure) {
		cancel()
	})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, context.Canceled))
	gt.Number(t, len(report.Results)).Equal(1)
	gt.Equal(t, report.Results[0].SkinName, "One")
}
