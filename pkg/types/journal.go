package types

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// journalTimeFormat is the timestamp layout used when rendering entries.
const journalTimeFormat = "2006-01-02 15:04:05"

// JournalEntry records one successful addition. Entries are immutable once
// recorded and are never persisted; the journal lives for a single session.
type JournalEntry struct {
	EntryID string    // UUID v7, generated on record.
	At      time.Time // Timestamp of the addition.
	Item    string    // Item name added.
	Qty     int       // Quantity added.
}

// String renders the entry as "<timestamp>: Added <qty> of <item>".
func (e JournalEntry) String() string {
	return fmt.Sprintf("%s: Added %d of %s", e.At.Format(journalTimeFormat), e.Qty, e.Item)
}

// Journal is an append-only, session-scoped sequence of addition records.
// The zero value is ready to use.
type Journal struct {
	entries []JournalEntry
}

// Record appends an entry for a successful addition of qty units of item.
func (j *Journal) Record(item string, qty int) JournalEntry {
	entry := JournalEntry{
		EntryID: newEntryID(),
		At:      time.Now(),
		Item:    item,
		Qty:     qty,
	}
	j.entries = append(j.entries, entry)
	return entry
}

// Entries returns a copy of all recorded entries in record order.
func (j *Journal) Entries() []JournalEntry {
	out := make([]JournalEntry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Len returns the number of recorded entries.
func (j *Journal) Len() int {
	return len(j.entries)
}

// newEntryID generates a UUID v7 entry ID, falling back to v4 if the
// monotonic clock source fails.
func newEntryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
