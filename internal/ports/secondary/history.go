package secondary

import "context"

// GenerationRecord is a journal entry for one written artifact.
type GenerationRecord struct {
	ID        int64
	Kind      string
	Name      string
	Path      string
	Status    string
	Actor     string
	CreatedAt string
}

// HistoryRepository defines the secondary port for the generation journal.
type HistoryRepository interface {
	// Record appends an entry; ID and CreatedAt are assigned by the store.
	Record(ctx context.Context, record *GenerationRecord) error

	// List returns the most recent entries first. limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]*GenerationRecord, error)
}
