package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/fin-api/fin_api_app/internal/apperrors"
	"github.com/fin-api/fin_api_app/internal/core/domain"
	portssvc "github.com/fin-api/fin_api_app/internal/core/ports/services"
	"github.com/fin-api/fin_api_app/internal/core/services"
	"github.com/fin-api/fin_api_app/internal/dto"
	"github.com/fin-api/fin_api_app/internal/repositories/memory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock StatementRepository (based on StatementService usage) ---
type MockStatementRepository struct {
	mock.Mock
	AppendEntryFn        func(ctx context.Context, entry domain.StatementEntry) (*domain.StatementEntry, error)
	AppendEntriesFn      func(ctx context.Context, entries []domain.StatementEntry) ([]domain.StatementEntry, error)
	ListEntriesByOwnerFn func(ctx context.Context, ownerID string) ([]domain.StatementEntry, error)
	FindEntryByIDFn      func(ctx context.Context, ownerID string, entryID string) (*domain.StatementEntry, error)
}

func (m *MockStatementRepository) AppendEntry(ctx context.Context, entry domain.StatementEntry) (*domain.StatementEntry, error) {
	if m.AppendEntryFn != nil {
		return m.AppendEntryFn(ctx, entry)
	}
	args := m.Called(ctx, entry)
	var stored *domain.StatementEntry
	if args.Get(0) != nil {
		stored = args.Get(0).(*domain.StatementEntry)
	}
	return stored, args.Error(1)
}

func (m *MockStatementRepository) AppendEntries(ctx context.Context, entries []domain.StatementEntry) ([]domain.StatementEntry, error) {
	if m.AppendEntriesFn != nil {
		return m.AppendEntriesFn(ctx, entries)
	}
	args := m.Called(ctx, entries)
	var stored []domain.StatementEntry
	if args.Get(0) != nil {
		stored = args.Get(0).([]domain.StatementEntry)
	}
	return stored, args.Error(1)
}

func (m *MockStatementRepository) ListEntriesByOwner(ctx context.Context, ownerID string) ([]domain.StatementEntry, error) {
	if m.ListEntriesByOwnerFn != nil {
		return m.ListEntriesByOwnerFn(ctx, ownerID)
	}
	args := m.Called(ctx, ownerID)
	var entries []domain.StatementEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.StatementEntry)
	}
	return entries, args.Error(1)
}

func (m *MockStatementRepository) FindEntryByID(ctx context.Context, ownerID string, entryID string) (*domain.StatementEntry, error) {
	if m.FindEntryByIDFn != nil {
		return m.FindEntryByIDFn(ctx, ownerID, entryID)
	}
	args := m.Called(ctx, ownerID, entryID)
	var entry *domain.StatementEntry
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.StatementEntry)
	}
	return entry, args.Error(1)
}

// --- Mock UserReader (lookup side only) ---
type MockUserReader struct {
	mock.Mock
}

func (m *MockUserReader) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserReader) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserReader) FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

// --- Test Suite ---
type StatementServiceTestSuite struct {
	suite.Suite
	mockStatementRepo *MockStatementRepository
	mockUserReader    *MockUserReader
	service           portssvc.StatementSvcFacade
}

func (suite *StatementServiceTestSuite) SetupTest() {
	suite.mockStatementRepo = new(MockStatementRepository)
	suite.mockUserReader = new(MockUserReader)
	suite.service = services.NewStatementService(suite.mockStatementRepo, suite.mockUserReader)
}

func entry(ownerID string, kind domain.EntryKind, amount string) domain.StatementEntry {
	return domain.StatementEntry{
		EntryID: uuid.NewString(),
		OwnerID: ownerID,
		Kind:    kind,
		Amount:  decimal.RequireFromString(amount),
	}
}

// --- GetBalance Tests ---

func (suite *StatementServiceTestSuite) TestGetBalance_EmptyStatement() {
	ctx := context.Background()
	ownerID := uuid.NewString()

	suite.mockStatementRepo.On("ListEntriesByOwner", ctx, ownerID).Return([]domain.StatementEntry{}, nil).Once()

	balance, err := suite.service.GetBalance(ctx, ownerID)

	suite.Require().NoError(err)
	suite.True(balance.IsZero())
	suite.mockStatementRepo.AssertExpectations(suite.T())
}

func (suite *StatementServiceTestSuite) TestGetBalance_MixedEntries() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	entries := []domain.StatementEntry{
		entry(ownerID, domain.Deposit, "100.50"),
		entry(ownerID, domain.Withdrawal, "30"),
		entry(ownerID, domain.TransferIn, "10.25"),
		entry(ownerID, domain.TransferOut, "5"),
	}

	suite.mockStatementRepo.On("ListEntriesByOwner", ctx, ownerID).Return(entries, nil).Once()

	balance, err := suite.service.GetBalance(ctx, ownerID)

	suite.Require().NoError(err)
	suite.True(balance.Equal(decimal.RequireFromString("75.75")), "got %s", balance)
	suite.mockStatementRepo.AssertExpectations(suite.T())
}

func (suite *StatementServiceTestSuite) TestGetBalance_RepoError() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	expectedErr := assert.AnError

	suite.mockStatementRepo.On("ListEntriesByOwner", ctx, ownerID).Return(nil, expectedErr).Once()

	_, err := suite.service.GetBalance(ctx, ownerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.mockStatementRepo.AssertExpectations(suite.T())
}

// --- Deposit Tests ---

func (suite *StatementServiceTestSuite) TestDeposit_Success() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	req := dto.OperationRequest{Amount: decimal.RequireFromString("42.10"), Description: "payday"}

	suite.mockUserReader.On("FindUserByID", ctx, ownerID).Return(&domain.User{UserID: ownerID}, nil).Once()
	suite.mockStatementRepo.AppendEntryFn = func(ctx context.Context, e domain.StatementEntry) (*domain.StatementEntry, error) {
		suite.Equal(ownerID, e.OwnerID)
		suite.Equal(domain.Deposit, e.Kind)
		suite.True(e.Amount.Equal(req.Amount))
		suite.Equal("payday", e.Description)
		suite.NotEmpty(e.EntryID)
		suite.Nil(e.CounterpartyID)
		suite.Nil(e.TransferID)
		return &e, nil
	}

	stored, err := suite.service.Deposit(ctx, ownerID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(stored)
	suite.Equal(domain.Deposit, stored.Kind)
	suite.mockUserReader.AssertExpectations(suite.T())
}

func (suite *StatementServiceTestSuite) TestDeposit_NonPositiveAmount() {
	ctx := context.Background()
	ownerID := uuid.NewString()

	for _, amount := range []string{"0", "-5"} {
		req := dto.OperationRequest{Amount: decimal.RequireFromString(amount)}

		stored, err := suite.service.Deposit(ctx, ownerID, req)

		suite.Require().Error(err)
		suite.Nil(stored)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	// No user lookup or append may happen for an invalid amount
	suite.mockUserReader.AssertNotCalled(suite.T(), "FindUserByID", mock.Anything, mock.Anything)
}

func (suite *StatementServiceTestSuite) TestDeposit_OwnerNotFound() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	req := dto.OperationRequest{Amount: decimal.NewFromInt(10)}

	suite.mockUserReader.On("FindUserByID", ctx, ownerID).Return(nil, apperrors.ErrNotFound).Once()

	stored, err := suite.service.Deposit(ctx, ownerID, req)

	suite.Require().Error(err)
	suite.Nil(stored)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockUserReader.AssertExpectations(suite.T())
}

// --- Withdraw Tests ---

func (suite *StatementServiceTestSuite) TestWithdraw_Success() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	req := dto.OperationRequest{Amount: decimal.NewFromInt(40)}

	suite.mockUserReader.On("FindUserByID", ctx, ownerID).Return(&domain.User{UserID: ownerID}, nil).Once()
	suite.mockStatementRepo.On("ListEntriesByOwner", ctx, ownerID).
		Return([]domain.StatementEntry{entry(ownerID, domain.Deposit, "100")}, nil).Once()
	suite.mockStatementRepo.AppendEntryFn = func(ctx context.Context, e domain.StatementEntry) (*domain.StatementEntry, error) {
		suite.Equal(domain.Withdrawal, e.Kind)
		suite.True(e.Amount.Equal(req.Amount))
		return &e, nil
	}

	stored, err := suite.service.Withdraw(ctx, ownerID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(stored)
	suite.Equal(domain.Withdrawal, stored.Kind)
	suite.mockStatementRepo.AssertExpectations(suite.T())
}

func (suite *StatementServiceTestSuite) TestWithdraw_ExactBalanceSucceeds() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	req := dto.OperationRequest{Amount: decimal.NewFromInt(100)}

	suite.mockUserReader.On("FindUserByID", ctx, ownerID).Return(&domain.User{UserID: ownerID}, nil).Once()
	suite.mockStatementRepo.On("ListEntriesByOwner", ctx, ownerID).
		Return([]domain.StatementEntry{entry(ownerID, domain.Deposit, "100")}, nil).Once()
	suite.mockStatementRepo.AppendEntryFn = func(ctx context.Context, e domain.StatementEntry) (*domain.StatementEntry, error) {
		return &e, nil
	}

	stored, err := suite.service.Withdraw(ctx, ownerID, req)

	suite.Require().NoError(err)
	suite.NotNil(stored)
}

func (suite *StatementServiceTestSuite) TestWithdraw_InsufficientFunds() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	req := dto.OperationRequest{Amount: decimal.RequireFromString("100.01")}

	suite.mockUserReader.On("FindUserByID", ctx, ownerID).Return(&domain.User{UserID: ownerID}, nil).Once()
	suite.mockStatementRepo.On("ListEntriesByOwner", ctx, ownerID).
		Return([]domain.StatementEntry{entry(ownerID, domain.Deposit, "100")}, nil).Once()

	stored, err := suite.service.Withdraw(ctx, ownerID, req)

	suite.Require().Error(err)
	suite.Nil(stored)
	suite.ErrorIs(err, services.ErrInsufficientFunds)
	suite.mockStatementRepo.AssertNotCalled(suite.T(), "AppendEntry", mock.Anything, mock.Anything)
}

// --- Transfer Tests ---

func (suite *StatementServiceTestSuite) TestTransfer_Success() {
	ctx := context.Background()
	senderID := uuid.NewString()
	recipientID := uuid.NewString()
	req := dto.OperationRequest{Amount: decimal.NewFromInt(25), Description: "rent"}

	suite.mockUserReader.On("FindUserByID", ctx, senderID).Return(&domain.User{UserID: senderID}, nil).Once()
	suite.mockUserReader.On("FindUserByID", ctx, recipientID).Return(&domain.User{UserID: recipientID}, nil).Once()
	suite.mockStatementRepo.On("ListEntriesByOwner", ctx, senderID).
		Return([]domain.StatementEntry{entry(senderID, domain.Deposit, "100")}, nil).Once()
	suite.mockStatementRepo.AppendEntriesFn = func(ctx context.Context, entries []domain.StatementEntry) ([]domain.StatementEntry, error) {
		suite.Require().Len(entries, 2)
		out, in := entries[0], entries[1]

		suite.Equal(domain.TransferOut, out.Kind)
		suite.Equal(senderID, out.OwnerID)
		suite.Require().NotNil(out.CounterpartyID)
		suite.Equal(recipientID, *out.CounterpartyID)

		suite.Equal(domain.TransferIn, in.Kind)
		suite.Equal(recipientID, in.OwnerID)
		suite.Require().NotNil(in.CounterpartyID)
		suite.Equal(senderID, *in.CounterpartyID)

		// Both sides share the transfer id and timestamp
		suite.Require().NotNil(out.TransferID)
		suite.Require().NotNil(in.TransferID)
		suite.Equal(*out.TransferID, *in.TransferID)
		suite.Equal(out.CreatedAt, in.CreatedAt)

		suite.True(out.Amount.Equal(req.Amount))
		suite.True(in.Amount.Equal(req.Amount))
		return entries, nil
	}

	stored, err := suite.service.Transfer(ctx, senderID, recipientID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(stored)
	suite.Equal(domain.TransferOut, stored.Kind)
	suite.Equal(senderID, stored.OwnerID)
	suite.mockUserReader.AssertExpectations(suite.T())
	suite.mockStatementRepo.AssertExpectations(suite.T())
}

func (suite *StatementServiceTestSuite) TestTransfer_SenderNotFound() {
	ctx := context.Background()
	senderID := uuid.NewString()
	recipientID := uuid.NewString()
	req := dto.OperationRequest{Amount: decimal.NewFromInt(10)}

	suite.mockUserReader.On("FindUserByID", ctx, senderID).Return(nil, apperrors.ErrNotFound).Once()

	stored, err := suite.service.Transfer(ctx, senderID, recipientID, req)

	suite.Require().Error(err)
	suite.Nil(stored)
	suite.ErrorIs(err, services.ErrSenderNotFound)
	// Recipient must not be looked up once the sender check fails
	suite.mockUserReader.AssertNotCalled(suite.T(), "FindUserByID", ctx, recipientID)
}

func (suite *StatementServiceTestSuite) TestTransfer_RecipientNotFound() {
	ctx := context.Background()
	senderID := uuid.NewString()
	recipientID := uuid.NewString()
	req := dto.OperationRequest{Amount: decimal.NewFromInt(10)}

	suite.mockUserReader.On("FindUserByID", ctx, senderID).Return(&domain.User{UserID: senderID}, nil).Once()
	suite.mockUserReader.On("FindUserByID", ctx, recipientID).Return(nil, apperrors.ErrNotFound).Once()

	stored, err := suite.service.Transfer(ctx, senderID, recipientID, req)

	suite.Require().Error(err)
	suite.Nil(stored)
	suite.ErrorIs(err, services.ErrRecipientNotFound)
	suite.mockUserReader.AssertExpectations(suite.T())
}

func (suite *StatementServiceTestSuite) TestTransfer_SelfTransfer() {
	ctx := context.Background()
	userID := uuid.NewString()
	req := dto.OperationRequest{Amount: decimal.NewFromInt(10)}

	suite.mockUserReader.On("FindUserByID", ctx, userID).Return(&domain.User{UserID: userID}, nil).Twice()

	stored, err := suite.service.Transfer(ctx, userID, userID, req)

	suite.Require().Error(err)
	suite.Nil(stored)
	suite.ErrorIs(err, services.ErrTransferRequiresDifferentUsers)
	suite.mockStatementRepo.AssertNotCalled(suite.T(), "AppendEntries", mock.Anything, mock.Anything)
}

func (suite *StatementServiceTestSuite) TestTransfer_NonPositiveAmount() {
	ctx := context.Background()
	senderID := uuid.NewString()
	recipientID := uuid.NewString()
	req := dto.OperationRequest{Amount: decimal.Zero}

	suite.mockUserReader.On("FindUserByID", ctx, senderID).Return(&domain.User{UserID: senderID}, nil).Once()
	suite.mockUserReader.On("FindUserByID", ctx, recipientID).Return(&domain.User{UserID: recipientID}, nil).Once()

	stored, err := suite.service.Transfer(ctx, senderID, recipientID, req)

	suite.Require().Error(err)
	suite.Nil(stored)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockStatementRepo.AssertNotCalled(suite.T(), "ListEntriesByOwner", mock.Anything, mock.Anything)
}

func (suite *StatementServiceTestSuite) TestTransfer_InsufficientFunds() {
	ctx := context.Background()
	senderID := uuid.NewString()
	recipientID := uuid.NewString()
	req := dto.OperationRequest{Amount: decimal.NewFromInt(200)}

	suite.mockUserReader.On("FindUserByID", ctx, senderID).Return(&domain.User{UserID: senderID}, nil).Once()
	suite.mockUserReader.On("FindUserByID", ctx, recipientID).Return(&domain.User{UserID: recipientID}, nil).Once()
	suite.mockStatementRepo.On("ListEntriesByOwner", ctx, senderID).
		Return([]domain.StatementEntry{entry(senderID, domain.Deposit, "100")}, nil).Once()

	stored, err := suite.service.Transfer(ctx, senderID, recipientID, req)

	suite.Require().Error(err)
	suite.Nil(stored)
	suite.ErrorIs(err, services.ErrInsufficientFunds)
	suite.mockStatementRepo.AssertNotCalled(suite.T(), "AppendEntries", mock.Anything, mock.Anything)
}

func (suite *StatementServiceTestSuite) TestTransfer_AppendFailureLeavesNothingReturned() {
	ctx := context.Background()
	senderID := uuid.NewString()
	recipientID := uuid.NewString()
	req := dto.OperationRequest{Amount: decimal.NewFromInt(10)}
	expectedErr := assert.AnError

	suite.mockUserReader.On("FindUserByID", ctx, senderID).Return(&domain.User{UserID: senderID}, nil).Once()
	suite.mockUserReader.On("FindUserByID", ctx, recipientID).Return(&domain.User{UserID: recipientID}, nil).Once()
	suite.mockStatementRepo.On("ListEntriesByOwner", ctx, senderID).
		Return([]domain.StatementEntry{entry(senderID, domain.Deposit, "100")}, nil).Once()
	suite.mockStatementRepo.On("AppendEntries", ctx, mock.AnythingOfType("[]domain.StatementEntry")).
		Return(nil, expectedErr).Once()

	stored, err := suite.service.Transfer(ctx, senderID, recipientID, req)

	suite.Require().Error(err)
	suite.Nil(stored)
	suite.ErrorIs(err, expectedErr)
	suite.mockStatementRepo.AssertExpectations(suite.T())
}

// --- GetStatement / GetStatementEntry Tests ---

func (suite *StatementServiceTestSuite) TestGetStatement_Success() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	entries := []domain.StatementEntry{
		entry(ownerID, domain.Deposit, "50"),
		entry(ownerID, domain.Withdrawal, "20"),
	}

	suite.mockUserReader.On("FindUserByID", ctx, ownerID).Return(&domain.User{UserID: ownerID}, nil).Once()
	suite.mockStatementRepo.On("ListEntriesByOwner", ctx, ownerID).Return(entries, nil).Once()

	statement, err := suite.service.GetStatement(ctx, ownerID)

	suite.Require().NoError(err)
	suite.Require().NotNil(statement)
	suite.Len(statement.Entries, 2)
	suite.True(statement.Balance.Equal(decimal.NewFromInt(30)))
}

func (suite *StatementServiceTestSuite) TestGetStatement_OwnerNotFound() {
	ctx := context.Background()
	ownerID := uuid.NewString()

	suite.mockUserReader.On("FindUserByID", ctx, ownerID).Return(nil, apperrors.ErrNotFound).Once()

	statement, err := suite.service.GetStatement(ctx, ownerID)

	suite.Require().Error(err)
	suite.Nil(statement)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockStatementRepo.AssertNotCalled(suite.T(), "ListEntriesByOwner", mock.Anything, mock.Anything)
}

func (suite *StatementServiceTestSuite) TestGetStatementEntry_NotFound() {
	ctx := context.Background()
	ownerID := uuid.NewString()
	entryID := uuid.NewString()

	suite.mockStatementRepo.On("FindEntryByID", ctx, ownerID, entryID).Return(nil, apperrors.ErrNotFound).Once()

	found, err := suite.service.GetStatementEntry(ctx, ownerID, entryID)

	suite.Require().Error(err)
	suite.Nil(found)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- Concurrency ---

// TestConcurrentWithdrawals_NoOverdraw runs many concurrent withdrawals
// against a real in-memory backend and checks the account never goes
// negative: the per-owner lock serializes the check-then-append sequence.
func TestConcurrentWithdrawals_NoOverdraw(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositoryProvider()
	service := services.NewStatementService(repos.StatementRepo, repos.UserRepo)

	ownerID := uuid.NewString()
	err := repos.UserRepo.SaveUser(ctx, domain.User{UserID: ownerID, Username: "concurrent", Name: "Concurrent User"})
	assert.NoError(t, err)

	_, err = service.Deposit(ctx, ownerID, dto.OperationRequest{Amount: decimal.NewFromInt(100)})
	assert.NoError(t, err)

	const workers = 20
	var wg sync.WaitGroup
	successes := make(chan struct{}, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.Withdraw(ctx, ownerID, dto.OperationRequest{Amount: decimal.NewFromInt(10)})
			if err == nil {
				successes <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(successes)

	succeeded := 0
	for range successes {
		succeeded++
	}
	// 100 on deposit, 10 per withdrawal: at most 10 can succeed
	assert.Equal(t, 10, succeeded)

	balance, err := service.GetBalance(ctx, ownerID)
	assert.NoError(t, err)
	assert.True(t, balance.IsZero(), "expected zero balance, got %s", balance)
}

// TestConcurrentTransfers_NoOverdraw does the same for transfers: concurrent
// sends from one funded account cannot jointly exceed its balance, and every
// successful send is mirrored by exactly one credit on the recipient side.
func TestConcurrentTransfers_NoOverdraw(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositoryProvider()
	service := services.NewStatementService(repos.StatementRepo, repos.UserRepo)

	senderID := uuid.NewString()
	recipientID := uuid.NewString()
	assert.NoError(t, repos.UserRepo.SaveUser(ctx, domain.User{UserID: senderID, Username: "sender", Name: "Sender"}))
	assert.NoError(t, repos.UserRepo.SaveUser(ctx, domain.User{UserID: recipientID, Username: "recipient", Name: "Recipient"}))

	_, err := service.Deposit(ctx, senderID, dto.OperationRequest{Amount: decimal.NewFromInt(50)})
	assert.NoError(t, err)

	const workers = 20
	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.Transfer(ctx, senderID, recipientID, dto.OperationRequest{Amount: decimal.NewFromInt(10)})
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, succeeded)

	senderBalance, err := service.GetBalance(ctx, senderID)
	assert.NoError(t, err)
	assert.True(t, senderBalance.IsZero(), "expected zero sender balance, got %s", senderBalance)

	recipientBalance, err := service.GetBalance(ctx, recipientID)
	assert.NoError(t, err)
	assert.True(t, recipientBalance.Equal(decimal.NewFromInt(50)), "expected 50 recipient balance, got %s", recipientBalance)
}

// --- Run Suite ---
func TestStatementService(t *testing.T) {
	suite.Run(t, new(StatementServiceTestSuite))
}
