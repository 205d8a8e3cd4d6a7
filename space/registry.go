// SPDX-License-Identifier: MIT

package space

import (
	"io"
	"log/slog"
	"sync/atomic"
)

// Registry holds one shared Space for applications that want a single
// process-wide space without a package-level singleton.
//
// The first successful Init wins; every later Init fails with
// ErrAlreadyInitialized, including concurrent ones. Get is lock-free and safe
// for concurrent use.
type Registry struct {
	current atomic.Pointer[Space]
	logger  *slog.Logger
}

// NewRegistry returns an empty Registry. A nil logger discards output.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Registry{logger: logger}
}

// Init installs sp. It fails fast if a space is already installed.
func (r *Registry) Init(sp *Space) error {
	if sp == nil {
		return ErrNilSpace
	}
	if !r.current.CompareAndSwap(nil, sp) {
		r.logger.Warn("space registry re-initialization rejected")
		return ErrAlreadyInitialized
	}
	r.logger.Debug("space registry initialized",
		slog.Int("dimensions", sp.N()),
		slog.Any("domains", sp.DomainNames()))
	return nil
}

// Get returns the installed space.
func (r *Registry) Get() (*Space, error) {
	sp := r.current.Load()
	if sp == nil {
		return nil, ErrNotInitialized
	}
	return sp, nil
}
