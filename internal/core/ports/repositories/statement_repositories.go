package repositories

import (
	"context"

	"github.com/fin-api/fin_api_app/internal/core/domain"
)

// StatementReader defines read operations over the append-only statement log.
type StatementReader interface {
	// ListEntriesByOwner retrieves every statement entry owned by ownerID.
	// The result is a snapshot at call time; no particular order is
	// guaranteed.
	ListEntriesByOwner(ctx context.Context, ownerID string) ([]domain.StatementEntry, error)

	// FindEntryByID retrieves a single entry owned by ownerID. Returns
	// apperrors.ErrNotFound when the entry does not exist or belongs to a
	// different owner.
	FindEntryByID(ctx context.Context, ownerID string, entryID string) (*domain.StatementEntry, error)
}

// StatementWriter defines append operations. Entries are immutable once
// written; there are no update or delete operations.
type StatementWriter interface {
	// AppendEntry persists a single entry and returns the stored record.
	AppendEntry(ctx context.Context, entry domain.StatementEntry) (*domain.StatementEntry, error)

	// AppendEntries persists a group of entries as one atomic unit: either
	// every entry is stored or none is. The transfer orchestrator relies on
	// this to record the debit/credit pair indivisibly.
	AppendEntries(ctx context.Context, entries []domain.StatementEntry) ([]domain.StatementEntry, error)
}

// StatementRepositoryFacade combines all statement-related repository
// interfaces. This is a facade for clients that need access to all
// operations.
type StatementRepositoryFacade interface {
	StatementReader
	StatementWriter
}
