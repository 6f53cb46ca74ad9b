package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fin-api/fin_api_app/internal/apperrors"
	"github.com/fin-api/fin_api_app/internal/core/domain"
	portsrepo "github.com/fin-api/fin_api_app/internal/core/ports/repositories"
	portssvc "github.com/fin-api/fin_api_app/internal/core/ports/services"
	"github.com/fin-api/fin_api_app/internal/dto"
	"github.com/fin-api/fin_api_app/internal/middleware"
)

var (
	ErrSenderNotFound                 = errors.New("sender not found")
	ErrRecipientNotFound              = errors.New("recipient not found")
	ErrTransferRequiresDifferentUsers = errors.New("transfer requires two different users")
	ErrInsufficientFunds              = errors.New("insufficient funds")
)

// statementService provides balance derivation and the deposit/withdraw/
// transfer operations over the append-only statement log.
type statementService struct {
	statementRepo portsrepo.StatementRepositoryFacade
	userRepo      portsrepo.UserReader

	// Per-owner locks serializing the check-then-append sequence of
	// withdrawals and transfers. Without this, two concurrent debits could
	// both pass the balance check against a stale balance and jointly
	// overdraw the account.
	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// NewStatementService creates a new StatementService.
func NewStatementService(statementRepo portsrepo.StatementRepositoryFacade, userRepo portsrepo.UserReader) portssvc.StatementSvcFacade {
	return &statementService{
		statementRepo: statementRepo,
		userRepo:      userRepo,
		locks:         make(map[string]*sync.Mutex),
	}
}

var _ portssvc.StatementSvcFacade = (*statementService)(nil)

// ownerLock returns the mutex guarding debit operations for ownerID,
// creating it on first use.
func (s *statementService) ownerLock(ownerID string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	lock, ok := s.locks[ownerID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[ownerID] = lock
	}
	return lock
}

// GetBalance derives ownerID's balance from the full statement log: credits
// (DEPOSIT, TRANSFER_IN) minus debits (WITHDRAWAL, TRANSFER_OUT). The sum is
// order-independent, so no ordering is requested from the repository.
func (s *statementService) GetBalance(ctx context.Context, ownerID string) (decimal.Decimal, error) {
	entries, err := s.statementRepo.ListEntriesByOwner(ctx, ownerID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list statement entries for balance: %w", err)
	}

	balance := decimal.Zero
	for _, entry := range entries {
		balance = balance.Add(entry.SignedAmount())
	}
	return balance, nil
}

// GetStatement retrieves all entries for ownerID together with the derived
// balance.
func (s *statementService) GetStatement(ctx context.Context, ownerID string) (*dto.StatementResponse, error) {
	if _, err := s.userRepo.FindUserByID(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("failed to resolve statement owner %s: %w", ownerID, err)
	}

	entries, err := s.statementRepo.ListEntriesByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list statement entries: %w", err)
	}

	balance := decimal.Zero
	for _, entry := range entries {
		balance = balance.Add(entry.SignedAmount())
	}

	return &dto.StatementResponse{
		Entries: dto.ToStatementEntryResponses(entries),
		Balance: balance,
	}, nil
}

// GetStatementEntry retrieves a single entry owned by ownerID.
func (s *statementService) GetStatementEntry(ctx context.Context, ownerID string, entryID string) (*domain.StatementEntry, error) {
	entry, err := s.statementRepo.FindEntryByID(ctx, ownerID, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find statement entry", slog.String("entry_id", entryID), slog.String("error", err.Error()))
		}
		return nil, fmt.Errorf("failed to find statement entry %s: %w", entryID, err)
	}
	return entry, nil
}

// Deposit appends a DEPOSIT entry for ownerID.
func (s *statementService) Deposit(ctx context.Context, ownerID string, req dto.OperationRequest) (*domain.StatementEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.FindUserByID(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("failed to resolve deposit owner %s: %w", ownerID, err)
	}

	entry := newEntry(ownerID, domain.Deposit, req.Amount, req.Description)
	stored, err := s.statementRepo.AppendEntry(ctx, entry)
	if err != nil {
		logger.Error("Failed to append deposit entry", slog.String("owner_id", ownerID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to append deposit entry: %w", err)
	}

	logger.Info("Deposit recorded", slog.String("entry_id", stored.EntryID), slog.String("owner_id", ownerID))
	return stored, nil
}

// Withdraw appends a WITHDRAWAL entry for ownerID. The balance check and the
// append run under the owner's lock so a concurrent debit cannot overdraw
// the account.
func (s *statementService) Withdraw(ctx context.Context, ownerID string, req dto.OperationRequest) (*domain.StatementEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.FindUserByID(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("failed to resolve withdrawal owner %s: %w", ownerID, err)
	}

	lock := s.ownerLock(ownerID)
	lock.Lock()
	defer lock.Unlock()

	balance, err := s.GetBalance(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if balance.LessThan(req.Amount) {
		return nil, ErrInsufficientFunds
	}

	entry := newEntry(ownerID, domain.Withdrawal, req.Amount, req.Description)
	stored, err := s.statementRepo.AppendEntry(ctx, entry)
	if err != nil {
		logger.Error("Failed to append withdrawal entry", slog.String("owner_id", ownerID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to append withdrawal entry: %w", err)
	}

	logger.Info("Withdrawal recorded", slog.String("entry_id", stored.EntryID), slog.String("owner_id", ownerID))
	return stored, nil
}

// Transfer validates a transfer between two distinct users and atomically
// records the TRANSFER_OUT/TRANSFER_IN pair. Preconditions are checked in a
// fixed order and the first failure wins; nothing is written unless every
// check passes.
func (s *statementService) Transfer(ctx context.Context, senderID string, recipientID string, req dto.OperationRequest) (*domain.StatementEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// 1. Sender must exist.
	if _, err := s.userRepo.FindUserByID(ctx, senderID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrSenderNotFound
		}
		return nil, fmt.Errorf("failed to resolve sender %s: %w", senderID, err)
	}

	// 2. Recipient must exist.
	if _, err := s.userRepo.FindUserByID(ctx, recipientID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrRecipientNotFound
		}
		return nil, fmt.Errorf("failed to resolve recipient %s: %w", recipientID, err)
	}

	// 3. Sender and recipient must differ.
	if senderID == recipientID {
		return nil, ErrTransferRequiresDifferentUsers
	}

	// 4. Amount must be positive (also enforced at binding time).
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}

	// 5. Balance check and paired append, serialized per sender.
	lock := s.ownerLock(senderID)
	lock.Lock()
	defer lock.Unlock()

	balance, err := s.GetBalance(ctx, senderID)
	if err != nil {
		return nil, err
	}
	if balance.LessThan(req.Amount) {
		return nil, ErrInsufficientFunds
	}

	now := time.Now().UTC()
	transferID := uuid.NewString()

	out := domain.StatementEntry{
		EntryID:        uuid.NewString(),
		OwnerID:        senderID,
		Kind:           domain.TransferOut,
		Amount:         req.Amount,
		Description:    req.Description,
		CounterpartyID: &recipientID,
		TransferID:     &transferID,
		AuditFields:    auditFieldsAt(now, senderID),
	}
	in := domain.StatementEntry{
		EntryID:        uuid.NewString(),
		OwnerID:        recipientID,
		Kind:           domain.TransferIn,
		Amount:         req.Amount,
		Description:    req.Description,
		CounterpartyID: &senderID,
		TransferID:     &transferID,
		AuditFields:    auditFieldsAt(now, senderID),
	}

	stored, err := s.statementRepo.AppendEntries(ctx, []domain.StatementEntry{out, in})
	if err != nil {
		logger.Error("Failed to append transfer pair", slog.String("transfer_id", transferID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to append transfer pair: %w", err)
	}

	logger.Info("Transfer recorded",
		slog.String("transfer_id", transferID),
		slog.String("sender_id", senderID),
		slog.String("recipient_id", recipientID))

	// The sender-side record is returned; the paired TRANSFER_IN can be
	// reconciled via the shared transfer id.
	return &stored[0], nil
}

// validateAmount guards the amount > 0 invariant before any ledger mutation.
func validateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	return nil
}

// newEntry builds a single-sided entry (deposit or withdrawal).
func newEntry(ownerID string, kind domain.EntryKind, amount decimal.Decimal, description string) domain.StatementEntry {
	now := time.Now().UTC()
	return domain.StatementEntry{
		EntryID:     uuid.NewString(),
		OwnerID:     ownerID,
		Kind:        kind,
		Amount:      amount,
		Description: description,
		AuditFields: auditFieldsAt(now, ownerID),
	}
}

func auditFieldsAt(now time.Time, userID string) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
}
