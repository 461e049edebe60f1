package model

import (
	"github.com/hashicorp/go-multierror"
	"github.com/m-mizutani/goerr/v2"
)

// PackFailure records a skin folder that could not be archived
type PackFailure struct {
	Source string
	Err    error
}

// PackReport aggregates the outcome of archiving several skin folders in one run
type PackReport struct {
	Results  []*PackResult
	Failures []*PackFailure
}

// Failed reports whether at least one folder could not be archived
func (r *PackReport) Failed() bool {
	return len(r.Failures) > 0
}

// Err returns all failures combined into one error, or nil when every folder succeeded
func (r *PackReport) Err() error {
	var merr *multierror.Error
	for _, f := range r.Failures {
		merr = multierror.Append(merr, goerr.Wrap(f.Err, "failed to pack skin folder", goerr.V("source", f.Source)))
	}
	return merr.ErrorOrNil()
}
