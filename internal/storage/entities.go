package storage

import "time"

type EntryKind string

const (
	EntryAdd    EntryKind = "add"
	EntryToggle EntryKind = "toggle"
	EntryDelete EntryKind = "delete"
	EntryTheme  EntryKind = "theme"
)

func (k EntryKind) IsValid() bool {
	switch k {
	case EntryAdd, EntryToggle, EntryDelete, EntryTheme:
		return true
	default:
		return false
	}
}

// JournalEntry records one applied command. Seq is assigned on insert.
type JournalEntry struct {
	Seq       int64
	Kind      EntryKind
	TodoID    string
	Detail    string
	CreatedAt time.Time
}

type JournalFilter struct {
	TodoID string
	Limit  int
	Offset int
}
