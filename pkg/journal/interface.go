package journal

// IJournal defines the interface for recording staging actions across
// sessions. All implementations must be thread-safe; the history command may
// read while a session appends.
//
// The interface supports:
// - Appending one immutable record per staging action
// - Point lookup by record id
// - Listing all records in staging order
// - Lifecycle management (close, health check)
type IJournal interface {
	// Append stores one record. Records are immutable once appended.
	// A missing id or timestamp is filled in before storage.
	// Returns error only on storage failure.
	Append(record *Record) error

	// Get retrieves a record by id.
	// Returns nil if the record doesn't exist, error only on storage failure.
	Get(id string) (*Record, error)

	// List returns all records sorted by staging time (ascending).
	// Returns empty slice if no records exist, error only on storage failure.
	List() ([]*Record, error)

	// Close cleanly shuts down the journal.
	// Idempotent - safe to call multiple times.
	// After Close(), all other operations should return errors.
	Close() error

	// HealthCheck verifies the journal is operational.
	// Returns nil if healthy, error describing the problem if not.
	HealthCheck() error
}
