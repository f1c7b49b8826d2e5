package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const (
	sqliteTimeLayout = time.RFC3339Nano

	// MemoryDSN keeps the journal inside the process; it is gone on exit.
	MemoryDSN = ":memory:"
)

type SQLiteJournal struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLiteJournal(db *sql.DB) (*SQLiteJournal, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	return &SQLiteJournal{db: db, now: func() time.Time { return time.Now().UTC() }}, nil
}

// OpenSQLiteJournal opens dsn, applies migrations and returns a ready journal.
// An empty dsn means MemoryDSN.
func OpenSQLiteJournal(dsn string) (*SQLiteJournal, error) {
	if strings.TrimSpace(dsn) == "" {
		dsn = MemoryDSN
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// Every new connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	journal, err := NewSQLiteJournal(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return journal, nil
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}

func (j *SQLiteJournal) Record(ctx context.Context, in JournalEntry) (JournalEntry, error) {
	if !in.Kind.IsValid() {
		return JournalEntry{}, fmt.Errorf("%w: kind %q", ErrInvalidEntry, in.Kind)
	}
	if in.CreatedAt.IsZero() {
		in.CreatedAt = j.now()
	}
	res, err := j.db.ExecContext(ctx, `
		INSERT INTO journal_entries (kind, todo_id, detail, created_at)
		VALUES (?, ?, ?, ?)`,
		string(in.Kind), in.TodoID, in.Detail, in.CreatedAt.UTC().Format(sqliteTimeLayout),
	)
	if err != nil {
		return JournalEntry{}, fmt.Errorf("insert journal entry: %w", err)
	}
	seq, err := res.LastInsertId()
	if err != nil {
		return JournalEntry{}, err
	}
	in.Seq = seq
	return in, nil
}

func (j *SQLiteJournal) Get(ctx context.Context, seq int64) (JournalEntry, error) {
	row := j.db.QueryRowContext(ctx, `
		SELECT seq, kind, todo_id, detail, created_at
		FROM journal_entries WHERE seq = ?`, seq)
	entry, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return JournalEntry{}, ErrNotFound
		}
		return JournalEntry{}, err
	}
	return entry, nil
}

// List returns entries oldest first.
func (j *SQLiteJournal) List(ctx context.Context, filter JournalFilter) ([]JournalEntry, error) {
	query := `SELECT seq, kind, todo_id, detail, created_at FROM journal_entries`
	args := make([]any, 0, 3)
	if filter.TodoID != "" {
		query += ` WHERE todo_id = ?`
		args = append(args, filter.TodoID)
	}
	query += ` ORDER BY seq ASC`
	query += applyPagination(&args, filter.Limit, filter.Offset)
	return j.query(ctx, query, args...)
}

// Recent returns up to limit entries, newest first.
func (j *SQLiteJournal) Recent(ctx context.Context, limit int) ([]JournalEntry, error) {
	if limit <= 0 {
		return []JournalEntry{}, nil
	}
	return j.query(ctx, `
		SELECT seq, kind, todo_id, detail, created_at
		FROM journal_entries ORDER BY seq DESC LIMIT ?`, limit)
}

func (j *SQLiteJournal) Count(ctx context.Context) (int, error) {
	var n int
	if err := j.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM journal_entries`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (j *SQLiteJournal) query(ctx context.Context, query string, args ...any) ([]JournalEntry, error) {
	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]JournalEntry, 0)
	for rows.Next() {
		entry, scanErr := scanEntry(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		out = append(out, entry)
	}
	return out, rows.Err()
}

func applyPagination(args *[]any, limit, offset int) string {
	if limit <= 0 {
		if offset > 0 {
			*args = append(*args, offset)
			return ` LIMIT -1 OFFSET ?`
		}
		return ""
	}
	*args = append(*args, limit, offset)
	return ` LIMIT ? OFFSET ?`
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (JournalEntry, error) {
	var out JournalEntry
	var kind string
	var created string
	if err := s.Scan(&out.Seq, &kind, &out.TodoID, &out.Detail, &created); err != nil {
		return JournalEntry{}, err
	}
	createdAt, err := time.Parse(sqliteTimeLayout, created)
	if err != nil {
		return JournalEntry{}, fmt.Errorf("parse created_at: %w", err)
	}
	out.Kind = EntryKind(kind)
	out.CreatedAt = createdAt
	return out, nil
}

var _ Journal = (*SQLiteJournal)(nil)
