package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/oskpack/pkg/domain/model"
)

func TestPackReport_Err(t *testing.T) {
	t.Run("no failures", func(t *testing.T) {
		report := &model.PackReport{
			Results: []*model.PackResult{{SkinName: "ok"}},
		}
		gt.False(t, report.Failed())
		gt.NoError(t, report.Err())
	})

	t.Run("failures are combined", func(t *testing.T) {
		errMissing := errors.New("metadata missing")
		report := &model.PackReport{
			Failures: []*model.PackFailure{
				{Source: "/skins/a", Err: errMissing},
				{Source: "/skins/b", Err: errors.New("disk full")},
			},
		}

		gt.True(t, report.Failed())
		err := report.Err()
		gt.Error(t, err)
		gt.String(t, err.Error()).Contains("metadata missing")
		gt.String(t, err.Error()).Contains("disk full")
		gt.True(t, errors.Is(err, errMissing))
	})
}
