package mapping

import (
	"github.com/fin-api/fin_api_app/internal/core/domain"
	"github.com/fin-api/fin_api_app/internal/models"
)

// ToModelStatementEntry converts a domain StatementEntry to a model StatementEntry
func ToModelStatementEntry(d domain.StatementEntry) models.StatementEntry {
	return models.StatementEntry{
		EntryID:        d.EntryID,
		OwnerID:        d.OwnerID,
		Kind:           models.EntryKind(d.Kind),
		Amount:         d.Amount,
		Description:    d.Description,
		CounterpartyID: d.CounterpartyID,
		TransferID:     d.TransferID,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainStatementEntry converts a model StatementEntry to a domain StatementEntry
func ToDomainStatementEntry(m models.StatementEntry) domain.StatementEntry {
	return domain.StatementEntry{
		EntryID:        m.EntryID,
		OwnerID:        m.OwnerID,
		Kind:           domain.EntryKind(m.Kind),
		Amount:         m.Amount,
		Description:    m.Description,
		CounterpartyID: m.CounterpartyID,
		TransferID:     m.TransferID,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainStatementEntrySlice converts a slice of model entries to domain entries
func ToDomainStatementEntrySlice(ms []models.StatementEntry) []domain.StatementEntry {
	ds := make([]domain.StatementEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStatementEntry(m)
	}
	return ds
}
