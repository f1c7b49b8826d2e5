package storage

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("storage: not found")
	ErrInvalidEntry = errors.New("storage: invalid journal entry")
)

// Journal is an append-only log of applied commands for one session.
type Journal interface {
	Record(ctx context.Context, in JournalEntry) (JournalEntry, error)
	Get(ctx context.Context, seq int64) (JournalEntry, error)
	List(ctx context.Context, filter JournalFilter) ([]JournalEntry, error)
	Recent(ctx context.Context, limit int) ([]JournalEntry, error)
	Count(ctx context.Context) (int, error)
}
