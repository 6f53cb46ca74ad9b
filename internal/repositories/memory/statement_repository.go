package memory

import (
	"context"
	"sync"

	"github.com/fin-api/fin_api_app/internal/apperrors"
	"github.com/fin-api/fin_api_app/internal/core/domain"
	portsrepo "github.com/fin-api/fin_api_app/internal/core/ports/repositories"
)

// MemoryStatementRepository keeps the append-only statement log in a
// mutex-guarded slice per owner. Append order is preserved.
type MemoryStatementRepository struct {
	mu      sync.RWMutex
	entries map[string][]domain.StatementEntry
}

func newMemoryStatementRepository() portsrepo.StatementRepositoryFacade {
	return &MemoryStatementRepository{
		entries: make(map[string][]domain.StatementEntry),
	}
}

var _ portsrepo.StatementRepositoryFacade = (*MemoryStatementRepository)(nil)

func (r *MemoryStatementRepository) AppendEntry(ctx context.Context, entry domain.StatementEntry) (*domain.StatementEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[entry.OwnerID] = append(r.entries[entry.OwnerID], entry)
	return &entry, nil
}

// AppendEntries appends every entry inside a single critical section so the
// group is observed all-or-nothing by concurrent readers.
func (r *MemoryStatementRepository) AppendEntries(ctx context.Context, entries []domain.StatementEntry) ([]domain.StatementEntry, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, entry := range entries {
		r.entries[entry.OwnerID] = append(r.entries[entry.OwnerID], entry)
	}
	return entries, nil
}

func (r *MemoryStatementRepository) ListEntriesByOwner(ctx context.Context, ownerID string) ([]domain.StatementEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	owned := r.entries[ownerID]
	out := make([]domain.StatementEntry, len(owned))
	copy(out, owned)
	return out, nil
}

func (r *MemoryStatementRepository) FindEntryByID(ctx context.Context, ownerID string, entryID string) (*domain.StatementEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, entry := range r.entries[ownerID] {
		if entry.EntryID == entryID {
			e := entry
			return &e, nil
		}
	}
	return nil, apperrors.ErrNotFound
}
