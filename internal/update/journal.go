package update

import (
	"context"

	"github.com/sandeepkv93/todo/internal/storage"
	"github.com/sandeepkv93/todo/internal/views"
)

// Journal receives every applied command. It is a session log only; the list
// is never rebuilt from it.
type Journal interface {
	Record(ctx context.Context, in storage.JournalEntry) (storage.JournalEntry, error)
	Recent(ctx context.Context, limit int) ([]storage.JournalEntry, error)
}

type NoopJournal struct{}

func (NoopJournal) Record(_ context.Context, in storage.JournalEntry) (storage.JournalEntry, error) {
	return in, nil
}

func (NoopJournal) Recent(context.Context, int) ([]storage.JournalEntry, error) {
	return nil, nil
}

func (m *Model) record(kind storage.EntryKind, todoID, detail string) {
	m.log.WithFields(map[string]any{"command": string(kind), "todo_id": todoID}).Debug("command applied")
	if m.journal == nil {
		return
	}
	if _, err := m.journal.Record(context.Background(), storage.JournalEntry{Kind: kind, TodoID: todoID, Detail: detail}); err != nil {
		m.LastError = err
		m.journalErr = err.Error()
		m.log.Error(err, "journal record failed")
		return
	}
	if m.JournalVisible {
		m.refreshJournal()
	}
}

func (m *Model) refreshJournal() {
	if m.journal == nil {
		return
	}
	rows, err := m.journal.Recent(context.Background(), m.journalLimit)
	if err != nil {
		m.LastError = err
		m.journalErr = err.Error()
		m.log.Error(err, "journal read failed")
		return
	}
	m.journalErr = ""
	m.journalRows = rows
}

func (m Model) renderJournalIfVisible() string {
	if !m.JournalVisible {
		return ""
	}
	return views.RenderJournalPanel(views.JournalPanelData{
		TableView: m.journalTable.View(),
		Count:     len(m.journalRows),
		ErrorText: m.journalErr,
	})
}
