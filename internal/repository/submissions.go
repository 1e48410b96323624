//go:generate go run go.uber.org/mock/mockgen -source=submissions.go -destination=../mocks/mock_submissions_repository.go -package=mocks
package repository

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/octobees/portfolio-contact/api/internal/entity"
)

var (
	// ErrStoreUnavailable is returned while no store connection has been established.
	ErrStoreUnavailable = errors.New("submission store unavailable")
	// ErrConstraintViolation is returned when the database rejects a row on a schema constraint.
	ErrConstraintViolation = errors.New("submission violates store constraint")
)

// SubmissionsRepository is the append-only store of contact submissions.
// Create validates the record, writes it and fills in its ID and timestamps.
type SubmissionsRepository interface {
	Create(ctx context.Context, submission *entity.Submission) error
	Ping(ctx context.Context) error
}

// Deferred forwards to a repository that becomes available after start-up,
// once the store connection succeeds.
type Deferred struct {
	target atomic.Pointer[deferredTarget]
}

type deferredTarget struct {
	repo SubmissionsRepository
}

// NewDeferred returns a Deferred with no backing store yet.
func NewDeferred() *Deferred {
	return &Deferred{}
}

var _ SubmissionsRepository = (*Deferred)(nil)

// Set installs the backing repository.
func (d *Deferred) Set(repo SubmissionsRepository) {
	d.target.Store(&deferredTarget{repo: repo})
}

// Ready reports whether a backing repository is installed.
func (d *Deferred) Ready() bool {
	return d.target.Load() != nil
}

// Create writes through to the backing repository.
func (d *Deferred) Create(ctx context.Context, submission *entity.Submission) error {
	t := d.target.Load()
	if t == nil {
		return ErrStoreUnavailable
	}
	return t.repo.Create(ctx, submission)
}

// Ping checks the backing repository.
func (d *Deferred) Ping(ctx context.Context) error {
	t := d.target.Load()
	if t == nil {
		return ErrStoreUnavailable
	}
	return t.repo.Ping(ctx)
}
