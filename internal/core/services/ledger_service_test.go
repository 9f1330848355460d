package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/PulseDigitals/estate-management-system-sub001/internal/apperrors"
	"github.com/PulseDigitals/estate-management-system-sub001/internal/core/domain"
	portsrepo "github.com/PulseDigitals/estate-management-system-sub001/internal/core/ports/repositories"
	portssvc "github.com/PulseDigitals/estate-management-system-sub001/internal/core/ports/services"
	"github.com/PulseDigitals/estate-management-system-sub001/internal/core/services"
	"github.com/PulseDigitals/estate-management-system-sub001/internal/dto"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

// Ensure MockJournalRepository implements portsrepo.JournalRepositoryWithTx
var _ portsrepo.JournalRepositoryWithTx = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalEntryLine, balanceChanges map[string]decimal.Decimal) (string, error) {
	args := m.Called(ctx, entry, lines, balanceChanges)
	return args.String(0), args.Error(1)
}

func (m *MockJournalRepository) SaveEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry, lines []domain.JournalEntryLine, balanceChanges map[string]decimal.Decimal) (string, error) {
	args := m.Called(ctx, tx, entry, lines, balanceChanges)
	return args.String(0), args.Error(1)
}

func (m *MockJournalRepository) VoidEntry(ctx context.Context, entryID string, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, entryID, balanceChanges, userID, now)
	return args.Error(0)
}

func (m *MockJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) ListEntries(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.JournalEntry), returnedNextToken, args.Error(2)
}

func (m *MockJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalEntryLine, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalEntryLine), args.Error(1)
}

func (m *MockJournalRepository) FindLinesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.JournalEntryLine, error) {
	args := m.Called(ctx, entryIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]domain.JournalEntryLine), args.Error(1)
}

func (m *MockJournalRepository) ListLinesByAccountID(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.JournalEntryLine, *string, error) {
	args := m.Called(ctx, accountID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.JournalEntryLine), returnedNextToken, args.Error(2)
}

func (m *MockJournalRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockJournalRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockJournalRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock AccountService (as used by LedgerService) ---
type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, accountID string, userID string) error {
	args := m.Called(ctx, accountID, userID)
	return args.Error(0)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByNumber(ctx context.Context, accountNumber string) (*domain.Account, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

// --- Test Suite Setup ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockAccountSvc  *MockAccountService
	service         portssvc.LedgerSvcFacade
	bankAccount     domain.Account
	arAccount       domain.Account
	incomeAccount   domain.Account
	inactiveAccount domain.Account
	userID          string
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAccountSvc = new(MockAccountService)
	suite.service = services.NewLedgerService(suite.mockJournalRepo, suite.mockAccountSvc)

	suite.userID = uuid.NewString()

	suite.bankAccount = domain.Account{
		AccountID:     uuid.NewString(),
		AccountNumber: "1010",
		AccountType:   domain.Asset,
		NormalBalance: domain.DebitNormal,
		IsActive:      true,
	}
	suite.arAccount = domain.Account{
		AccountID:     uuid.NewString(),
		AccountNumber: "1200",
		AccountType:   domain.Asset,
		NormalBalance: domain.DebitNormal,
		IsActive:      true,
	}
	suite.incomeAccount = domain.Account{
		AccountID:     uuid.NewString(),
		AccountNumber: "4000",
		AccountType:   domain.Revenue,
		NormalBalance: domain.CreditNormal,
		IsActive:      true,
	}
	suite.inactiveAccount = domain.Account{
		AccountID:     uuid.NewString(),
		AccountNumber: "5100",
		AccountType:   domain.ExpenseType,
		NormalBalance: domain.DebitNormal,
		IsActive:      false,
	}
}

func (suite *LedgerServiceTestSuite) accountsMap(accounts ...domain.Account) map[string]domain.Account {
	result := make(map[string]domain.Account, len(accounts))
	for _, acc := range accounts {
		result[acc.AccountID] = acc
	}
	return result
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestPostEntry_Success() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		EntryDate:   time.Now(),
		Description: "Issue Resident Bill - INV-001",
		Reference:   "INV-001",
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: suite.arAccount.AccountID, LineType: domain.Debit, Amount: decimal.NewFromInt(5000)},
			{AccountID: suite.incomeAccount.AccountID, LineType: domain.Credit, Amount: decimal.NewFromInt(5000)},
		},
	}

	suite.mockAccountSvc.On("GetAccountsByIDs", ctx, mock.AnythingOfType("[]string")).
		Return(suite.accountsMap(suite.arAccount, suite.incomeAccount), nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.AnythingOfType("[]domain.JournalEntryLine"), mock.AnythingOfType("map[string]decimal.Decimal")).
		Return("JE-00042", nil).Once()

	entry, err := suite.service.PostEntry(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal("JE-00042", entry.EntryNumber)
	suite.Equal(domain.Posted, entry.Status)
	suite.True(entry.TotalDebit.Equal(decimal.NewFromInt(5000)))
	suite.True(entry.TotalCredit.Equal(decimal.NewFromInt(5000)))
	suite.Equal(suite.userID, entry.CreatedBy)

	suite.mockAccountSvc.AssertExpectations(suite.T())
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestPostEntry_BalanceChangesAreSigned() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		EntryDate:   time.Now(),
		Description: "Receive Payment on Account - INV-001",
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: suite.bankAccount.AccountID, LineType: domain.Debit, Amount: decimal.NewFromInt(1500)},
			{AccountID: suite.arAccount.AccountID, LineType: domain.Credit, Amount: decimal.NewFromInt(1500)},
		},
	}

	suite.mockAccountSvc.On("GetAccountsByIDs", ctx, mock.AnythingOfType("[]string")).
		Return(suite.accountsMap(suite.bankAccount, suite.arAccount), nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.Anything, mock.Anything, mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
		// Debit to an asset raises it, credit to an asset lowers it.
		return changes[suite.bankAccount.AccountID].Equal(decimal.NewFromInt(1500)) &&
			changes[suite.arAccount.AccountID].Equal(decimal.NewFromInt(-1500))
	})).Return("JE-00043", nil).Once()

	_, err := suite.service.PostEntry(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestPostEntry_Unbalanced() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		EntryDate:   time.Now(),
		Description: "Unbalanced",
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: suite.arAccount.AccountID, LineType: domain.Debit, Amount: decimal.NewFromFloat(100.0001)},
			{AccountID: suite.incomeAccount.AccountID, LineType: domain.Credit, Amount: decimal.NewFromInt(100)},
		},
	}

	_, err := suite.service.PostEntry(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnbalancedEntry)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestPostEntry_SingleAccount() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		EntryDate:   time.Now(),
		Description: "Self transfer",
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: suite.bankAccount.AccountID, LineType: domain.Debit, Amount: decimal.NewFromInt(100)},
			{AccountID: suite.bankAccount.AccountID, LineType: domain.Credit, Amount: decimal.NewFromInt(100)},
		},
	}

	_, err := suite.service.PostEntry(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestPostEntry_InactiveAccount() {
	ctx := context.Background()
	req := dto.CreateJournalEntryRequest{
		EntryDate:   time.Now(),
		Description: "Pay Vendor Expense",
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: suite.inactiveAccount.AccountID, LineType: domain.Debit, Amount: decimal.NewFromInt(200)},
			{AccountID: suite.bankAccount.AccountID, LineType: domain.Credit, Amount: decimal.NewFromInt(200)},
		},
	}

	suite.mockAccountSvc.On("GetAccountsByIDs", ctx, mock.AnythingOfType("[]string")).
		Return(suite.accountsMap(suite.inactiveAccount, suite.bankAccount), nil).Once()

	_, err := suite.service.PostEntry(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestPostEntry_AccountNotFound() {
	ctx := context.Background()
	unknownID := uuid.NewString()
	req := dto.CreateJournalEntryRequest{
		EntryDate:   time.Now(),
		Description: "Unknown account",
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: suite.bankAccount.AccountID, LineType: domain.Debit, Amount: decimal.NewFromInt(50)},
			{AccountID: unknownID, LineType: domain.Credit, Amount: decimal.NewFromInt(50)},
		},
	}

	suite.mockAccountSvc.On("GetAccountsByIDs", ctx, mock.AnythingOfType("[]string")).
		Return(suite.accountsMap(suite.bankAccount), nil).Once()

	_, err := suite.service.PostEntry(ctx, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestVoidEntry_Success() {
	ctx := context.Background()
	entryID := uuid.NewString()
	entry := &domain.JournalEntry{
		EntryID:     entryID,
		EntryNumber: "JE-00007",
		Status:      domain.Posted,
		TotalDebit:  decimal.NewFromInt(300),
		TotalCredit: decimal.NewFromInt(300),
	}
	lines := []domain.JournalEntryLine{
		{LineID: uuid.NewString(), EntryID: entryID, AccountID: suite.bankAccount.AccountID, LineType: domain.Debit, Amount: decimal.NewFromInt(300)},
		{LineID: uuid.NewString(), EntryID: entryID, AccountID: suite.incomeAccount.AccountID, LineType: domain.Credit, Amount: decimal.NewFromInt(300)},
	}

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(entry, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, entryID).Return(lines, nil).Once()
	suite.mockAccountSvc.On("GetAccountsByIDs", ctx, mock.AnythingOfType("[]string")).
		Return(suite.accountsMap(suite.bankAccount, suite.incomeAccount), nil).Once()
	suite.mockJournalRepo.On("VoidEntry", ctx, entryID, mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
		// Inverse of the original deltas.
		return changes[suite.bankAccount.AccountID].Equal(decimal.NewFromInt(-300)) &&
			changes[suite.incomeAccount.AccountID].Equal(decimal.NewFromInt(-300))
	}), suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	voided, err := suite.service.VoidEntry(ctx, entryID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.Void, voided.Status)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestVoidEntry_AlreadyVoid() {
	ctx := context.Background()
	entryID := uuid.NewString()
	entry := &domain.JournalEntry{EntryID: entryID, EntryNumber: "JE-00008", Status: domain.Void}

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(entry, nil).Once()

	_, err := suite.service.VoidEntry(ctx, entryID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "VoidEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestReverseEntry_SwapsLineTypes() {
	ctx := context.Background()
	entryID := uuid.NewString()
	original := &domain.JournalEntry{
		EntryID:     entryID,
		EntryNumber: "JE-00009",
		Status:      domain.Posted,
		Description: "Receive Payment on Account - INV-002",
		TotalDebit:  decimal.NewFromInt(800),
		TotalCredit: decimal.NewFromInt(800),
	}
	lines := []domain.JournalEntryLine{
		{LineID: uuid.NewString(), EntryID: entryID, AccountID: suite.bankAccount.AccountID, LineType: domain.Debit, Amount: decimal.NewFromInt(800)},
		{LineID: uuid.NewString(), EntryID: entryID, AccountID: suite.arAccount.AccountID, LineType: domain.Credit, Amount: decimal.NewFromInt(800)},
	}

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(original, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, entryID).Return(lines, nil).Once()
	suite.mockAccountSvc.On("GetAccountsByIDs", ctx, mock.AnythingOfType("[]string")).
		Return(suite.accountsMap(suite.bankAccount, suite.arAccount), nil).Once()
	suite.mockJournalRepo.On("SaveEntry", ctx, mock.AnythingOfType("domain.JournalEntry"), mock.MatchedBy(func(reversed []domain.JournalEntryLine) bool {
		return len(reversed) == 2 &&
			reversed[0].AccountID == suite.bankAccount.AccountID && reversed[0].LineType == domain.Credit &&
			reversed[1].AccountID == suite.arAccount.AccountID && reversed[1].LineType == domain.Debit
	}), mock.AnythingOfType("map[string]decimal.Decimal")).Return("JE-00010", nil).Once()

	reversal, err := suite.service.ReverseEntry(ctx, entryID, suite.userID)

	suite.Require().NoError(err)
	suite.Equal("JE-00010", reversal.EntryNumber)
	suite.Require().NotNil(reversal.ReversalOfEntryID)
	suite.Equal(entryID, *reversal.ReversalOfEntryID)
	// The original entry stays posted; reversal is a brand-new entry.
	suite.Equal(domain.Posted, original.Status)
	suite.NotEqual(original.EntryID, reversal.EntryID)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestReverseEntry_ReversalOfReversalBarred() {
	ctx := context.Background()
	entryID := uuid.NewString()
	originalID := uuid.NewString()
	entry := &domain.JournalEntry{
		EntryID:           entryID,
		EntryNumber:       "JE-00011",
		Status:            domain.Posted,
		ReversalOfEntryID: &originalID,
	}

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(entry, nil).Once()

	_, err := suite.service.ReverseEntry(ctx, entryID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestGetEntryByID_AttachesLines() {
	ctx := context.Background()
	entryID := uuid.NewString()
	entry := &domain.JournalEntry{EntryID: entryID, EntryNumber: "JE-00012", Status: domain.Posted}
	lines := []domain.JournalEntryLine{
		{LineID: uuid.NewString(), EntryID: entryID, AccountID: suite.bankAccount.AccountID, LineType: domain.Debit, Amount: decimal.NewFromInt(10)},
		{LineID: uuid.NewString(), EntryID: entryID, AccountID: suite.incomeAccount.AccountID, LineType: domain.Credit, Amount: decimal.NewFromInt(10)},
	}

	suite.mockJournalRepo.On("FindEntryByID", ctx, entryID).Return(entry, nil).Once()
	suite.mockJournalRepo.On("FindLinesByEntryID", ctx, entryID).Return(lines, nil).Once()

	got, err := suite.service.GetEntryByID(ctx, entryID)

	suite.Require().NoError(err)
	suite.Len(got.Lines, 2)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
