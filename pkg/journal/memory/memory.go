package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/Layr-Labs/multisig-stager-go/pkg/journal"
)

// MemoryJournal is an in-memory implementation of IJournal. Records vanish
// when the process exits, which makes it the right choice for tests and for
// one-off runs where no history is wanted.
//
// Thread-safe using sync.RWMutex for concurrent access.
// Copies records on the way in and out to prevent external mutation.
type MemoryJournal struct {
	mu sync.RWMutex

	// Record storage: id -> Record
	records map[string]*journal.Record

	// Closed flag
	closed bool
}

// Compile-time check to ensure MemoryJournal implements IJournal
var _ journal.IJournal = (*MemoryJournal)(nil)

// NewMemoryJournal creates a new in-memory journal.
func NewMemoryJournal() *MemoryJournal {
	return &MemoryJournal{
		records: make(map[string]*journal.Record),
	}
}

// Append stores one record.
func (m *MemoryJournal) Append(record *journal.Record) error {
	stored, err := journal.PrepareRecord(record)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return fmt.Errorf("journal is closed")
	}

	m.records[stored.Id] = stored
	return nil
}

// Get retrieves a record by id.
func (m *MemoryJournal) Get(id string) (*journal.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, fmt.Errorf("journal is closed")
	}

	record, exists := m.records[id]
	if !exists {
		return nil, nil // Not found is not an error
	}

	// Copy to prevent external mutation
	stored := *record
	return &stored, nil
}

// List returns all records sorted by staging time.
func (m *MemoryJournal) List() ([]*journal.Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, fmt.Errorf("journal is closed")
	}

	result := make([]*journal.Record, 0, len(m.records))
	for _, record := range m.records {
		stored := *record
		result = append(result, &stored)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].StagedAt != result[j].StagedAt {
			return result[i].StagedAt < result[j].StagedAt
		}
		return result[i].Id < result[j].Id
	})

	return result, nil
}

// Close shuts down the journal.
func (m *MemoryJournal) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	return nil
}

// HealthCheck verifies the journal is operational.
func (m *MemoryJournal) HealthCheck() error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return fmt.Errorf("journal is closed")
	}

	return nil
}
