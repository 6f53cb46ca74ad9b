package services

import (
	"context"

	"github.com/fin-api/fin_api_app/internal/core/domain"
	"github.com/fin-api/fin_api_app/internal/dto"
	"github.com/shopspring/decimal"
)

// BalanceCalculatorSvc derives an account balance from its statement log.
type BalanceCalculatorSvc interface {
	// GetBalance computes ownerID's current balance as the sum of credits
	// minus the sum of debits over the full statement log. Returns zero for
	// an account with no entries. Deterministic and side-effect free.
	GetBalance(ctx context.Context, ownerID string) (decimal.Decimal, error)
}

// StatementReaderSvc defines read operations over a user's statement.
type StatementReaderSvc interface {
	// GetStatement retrieves all statement entries for ownerID together with
	// the derived balance.
	GetStatement(ctx context.Context, ownerID string) (*dto.StatementResponse, error)

	// GetStatementEntry retrieves a single entry owned by ownerID.
	GetStatementEntry(ctx context.Context, ownerID string, entryID string) (*domain.StatementEntry, error)
}

// StatementWriterSvc defines the operations that append to the ledger.
type StatementWriterSvc interface {
	// Deposit appends a DEPOSIT entry for ownerID.
	Deposit(ctx context.Context, ownerID string, req dto.OperationRequest) (*domain.StatementEntry, error)

	// Withdraw appends a WITHDRAWAL entry for ownerID after checking the
	// derived balance covers the amount.
	Withdraw(ctx context.Context, ownerID string, req dto.OperationRequest) (*domain.StatementEntry, error)

	// Transfer validates and atomically records a debit/credit pair between
	// two distinct users, returning the sender-side TRANSFER_OUT entry.
	Transfer(ctx context.Context, senderID string, recipientID string, req dto.OperationRequest) (*domain.StatementEntry, error)
}

// StatementSvcFacade combines all statement-related service interfaces
type StatementSvcFacade interface {
	BalanceCalculatorSvc
	StatementReaderSvc
	StatementWriterSvc
}
