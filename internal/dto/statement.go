package dto

import (
	"time"

	"github.com/fin-api/fin_api_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OperationRequest carries the amount and description of a ledger operation
// (deposit, withdrawal or transfer). The amount must be strictly positive;
// the "positivedecimal" rule is registered alongside the route setup.
type OperationRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required,positivedecimal"`
	Description string          `json:"description"`
}

// StatementEntryResponse is the client-facing representation of one
// statement entry.
type StatementEntryResponse struct {
	EntryID        string          `json:"entryID"`
	Kind           string          `json:"kind"`
	Amount         decimal.Decimal `json:"amount"`
	Description    string          `json:"description"`
	CounterpartyID *string         `json:"counterpartyID,omitempty"`
	TransferID     *string         `json:"transferID,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// StatementResponse wraps a user's full statement together with the balance
// derived from it.
type StatementResponse struct {
	Entries []StatementEntryResponse `json:"entries"`
	Balance decimal.Decimal          `json:"balance"`
}

// BalanceResponse carries just the derived balance.
type BalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

// ToStatementEntryResponse converts a domain entry to its response DTO.
func ToStatementEntryResponse(e *domain.StatementEntry) StatementEntryResponse {
	return StatementEntryResponse{
		EntryID:        e.EntryID,
		Kind:           string(e.Kind),
		Amount:         e.Amount,
		Description:    e.Description,
		CounterpartyID: e.CounterpartyID,
		TransferID:     e.TransferID,
		CreatedAt:      e.CreatedAt,
	}
}

// ToStatementEntryResponses converts a slice of domain entries.
func ToStatementEntryResponses(entries []domain.StatementEntry) []StatementEntryResponse {
	out := make([]StatementEntryResponse, len(entries))
	for i := range entries {
		out[i] = ToStatementEntryResponse(&entries[i])
	}
	return out
}
