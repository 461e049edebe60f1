package usecase

import (
	"github.com/bmatcuk/doublestar/v4"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/oskpack/pkg/domain/interfaces"
)

type skinPacker struct {
	excludes []string
}

// Option is a functional option for the skin packer
type Option func(*skinPacker)

// WithExcludes sets doublestar patterns; files whose slash-separated path
// relative to the skin folder matches one of them are left out of the archive
func WithExcludes(patterns ...string) Option {
	return func(p *skinPacker) {
		p.excludes = append(p.excludes, patterns...)
	}
}

// NewSkinPacker creates a new SkinPacker
func NewSkinPacker(opts ...Option) (interfaces.SkinPacker, error) {
	p := &skinPacker{}
	for _, opt := range opts {
		opt(p)
	}

	for _, pattern := range p.excludes {
		if !doublestar.ValidatePattern(pattern) {
			return nil, goerr.New("invalid exclude pattern", goerr.V("pattern", pattern))
		}
	}

	return p, nil
}

func (p *skinPacker) excluded(name string) bool {
	for _, pattern := range p.excludes {
		if doublestar.MatchUnvalidated(pattern, name) {
			return true
		}
	}
	return false
}
