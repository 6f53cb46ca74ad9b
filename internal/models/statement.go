package models

import "github.com/shopspring/decimal"

// EntryKind classifies a statement entry row.
type EntryKind string

const (
	Deposit     EntryKind = "DEPOSIT"
	Withdrawal  EntryKind = "WITHDRAWAL"
	TransferIn  EntryKind = "TRANSFER_IN"
	TransferOut EntryKind = "TRANSFER_OUT"
)

// StatementEntry is the database representation of one ledger row.
// Rows are insert-only; there are no update paths for this table.
type StatementEntry struct {
	EntryID        string          `db:"entry_id"`
	OwnerID        string          `db:"owner_id"`
	Kind           EntryKind       `db:"kind"`
	Amount         decimal.Decimal `db:"amount"`
	Description    string          `db:"description"`
	CounterpartyID *string         `db:"counterparty_id"`
	TransferID     *string         `db:"transfer_id"`
	AuditFields
}
