package domain

import "github.com/shopspring/decimal"

// EntryKind classifies a statement entry. The sign of an entry is carried by
// its kind, never by a negative amount.
type EntryKind string

const (
	Deposit     EntryKind = "DEPOSIT"
	Withdrawal  EntryKind = "WITHDRAWAL"
	TransferIn  EntryKind = "TRANSFER_IN"
	TransferOut EntryKind = "TRANSFER_OUT"
)

// IsCredit reports whether entries of this kind increase the owner's balance.
func (k EntryKind) IsCredit() bool {
	return k == Deposit || k == TransferIn
}

// StatementEntry is the immutable record of a single credit or debit event
// for one account. Entries are created exactly once on append and never
// mutated or deleted.
type StatementEntry struct {
	EntryID        string          `json:"entryID"` // Primary Key (e.g., UUID)
	OwnerID        string          `json:"ownerID"` // FK -> User.userID (Not Null)
	Kind           EntryKind       `json:"kind"`
	Amount         decimal.Decimal `json:"amount"`                   // Always positive; direction comes from Kind
	Description    string          `json:"description"`              // Free text, non-semantic
	CounterpartyID *string         `json:"counterpartyID,omitempty"` // Other party, transfers only
	TransferID     *string         `json:"transferID,omitempty"`     // Correlates the two sides of one transfer
	AuditFields
}

// SignedAmount returns the amount with the sign implied by the entry kind.
func (e StatementEntry) SignedAmount() decimal.Decimal {
	if e.Kind.IsCredit() {
		return e.Amount
	}
	return e.Amount.Neg()
}
