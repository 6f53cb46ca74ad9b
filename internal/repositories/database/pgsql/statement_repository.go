package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fin-api/fin_api_app/internal/apperrors"
	"github.com/fin-api/fin_api_app/internal/core/domain"
	portsrepo "github.com/fin-api/fin_api_app/internal/core/ports/repositories"
	"github.com/fin-api/fin_api_app/internal/models"
	"github.com/fin-api/fin_api_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const insertEntryQuery = `
	INSERT INTO statement_entries (
		entry_id, owner_id, kind, amount, description, counterparty_id, transfer_id,
		created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
`

type PgxStatementRepository struct {
	BaseRepository
}

// newPgxStatementRepository creates a new repository for the append-only
// statement log.
func newPgxStatementRepository(pool *pgxpool.Pool) portsrepo.StatementRepositoryFacade {
	return &PgxStatementRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxStatementRepository implements portsrepo.StatementRepositoryFacade
var _ portsrepo.StatementRepositoryFacade = (*PgxStatementRepository)(nil)

func (r *PgxStatementRepository) AppendEntry(ctx context.Context, entry domain.StatementEntry) (*domain.StatementEntry, error) {
	modelEntry := mapping.ToModelStatementEntry(entry)
	_, err := r.Pool.Exec(ctx, insertEntryQuery, entryInsertArgs(modelEntry)...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert statement entry "+modelEntry.EntryID, err)
	}
	return &entry, nil
}

// AppendEntries inserts all entries within a single DB transaction so that a
// transfer's debit and credit rows are recorded indivisibly.
func (r *PgxStatementRepository) AppendEntries(ctx context.Context, entries []domain.StatementEntry) ([]domain.StatementEntry, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	// Will be ignored if transaction is committed successfully
	defer r.Rollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, entry := range entries {
		modelEntry := mapping.ToModelStatementEntry(entry)
		batch.Queue(insertEntryQuery, entryInsertArgs(modelEntry)...)
	}

	br := tx.SendBatch(ctx, batch)
	for i := range entries {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return nil, apperrors.NewAppError(500, "failed to insert statement entry "+entries[i].EntryID, err)
		}
	}
	if err := br.Close(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to close statement entry batch", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, apperrors.NewAppError(500, "failed to commit statement entries", err)
	}

	return entries, nil
}

func (r *PgxStatementRepository) ListEntriesByOwner(ctx context.Context, ownerID string) ([]domain.StatementEntry, error) {
	query := `
		SELECT entry_id, owner_id, kind, amount, description, counterparty_id, transfer_id,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM statement_entries
		WHERE owner_id = $1
		ORDER BY created_at ASC, entry_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query statement entries for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	modelEntries := []models.StatementEntry{}
	for rows.Next() {
		modelEntry, err := scanEntryRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan statement entry row: %w", err)
		}
		modelEntries = append(modelEntries, modelEntry)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating statement entry rows: %w", rows.Err())
	}

	return mapping.ToDomainStatementEntrySlice(modelEntries), nil
}

func (r *PgxStatementRepository) FindEntryByID(ctx context.Context, ownerID string, entryID string) (*domain.StatementEntry, error) {
	query := `
		SELECT entry_id, owner_id, kind, amount, description, counterparty_id, transfer_id,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM statement_entries
		WHERE owner_id = $1 AND entry_id = $2;
	`
	modelEntry, err := scanEntryRow(r.Pool.QueryRow(ctx, query, ownerID, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find statement entry %s for owner %s: %w", entryID, ownerID, err)
	}

	domainEntry := mapping.ToDomainStatementEntry(modelEntry)
	return &domainEntry, nil
}

func entryInsertArgs(m models.StatementEntry) []any {
	return []any{
		m.EntryID,
		m.OwnerID,
		m.Kind,
		m.Amount,
		m.Description,
		m.CounterpartyID,
		m.TransferID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	}
}

func scanEntryRow(row pgx.Row) (models.StatementEntry, error) {
	var m models.StatementEntry
	err := row.Scan(
		&m.EntryID,
		&m.OwnerID,
		&m.Kind,
		&m.Amount,
		&m.Description,
		&m.CounterpartyID,
		&m.TransferID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}
