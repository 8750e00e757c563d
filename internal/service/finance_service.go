package service

import (
	"fmt"
	"time"

	"github.com/fajarprasetia/smartone-erp-sub002/internal/model/entity"
	"github.com/fajarprasetia/smartone-erp-sub002/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type FinanceService struct {
	repo   *repository.FinanceRepository
	db     *gorm.DB
	logger *zap.Logger
}

func NewFinanceService(repo *repository.FinanceRepository, db *gorm.DB, logger *zap.Logger) *FinanceService {
	return &FinanceService{repo: repo, db: db, logger: logger}
}

// --- Chart of accounts ---

type CreateAccountRequest struct {
	Code     string `json:"code" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Type     string `json:"type" binding:"required"`
	ParentID string `json:"parent_id"`
}

func (s *FinanceService) CreateAccount(req CreateAccountRequest) (*entity.Account, error) {
	validTypes := map[string]bool{
		entity.AccountAsset:     true,
		entity.AccountLiability: true,
		entity.AccountEquity:    true,
		entity.AccountRevenue:   true,
		entity.AccountExpense:   true,
	}
	if !validTypes[req.Type] {
		return nil, NewValidationError("type", "unknown account type: "+req.Type)
	}
	if _, err := s.repo.GetAccountByCode(req.Code); err == nil {
		return nil, NewValidationError("code", "account code already exists")
	} else if err != repository.ErrNotFound {
		return nil, fmt.Errorf("check account code: %w", err)
	}

	account := &entity.Account{
		ID:     uuid.New().String(),
		Code:   req.Code,
		Name:   req.Name,
		Type:   req.Type,
		Active: true,
	}
	if req.ParentID != "" {
		if _, err := s.repo.GetAccountByID(req.ParentID); err != nil {
			if err == repository.ErrNotFound {
				return nil, NewValidationError("parent_id", "parent account not found")
			}
			return nil, err
		}
		account.ParentID = &req.ParentID
	}
	if err := s.repo.CreateAccount(account); err != nil {
		return nil, translateStoreError(err)
	}
	return account, nil
}

func (s *FinanceService) ListAccounts(accountType string) ([]entity.Account, error) {
	return s.repo.ListAccounts(accountType)
}

// --- Budgets ---

type CreateBudgetRequest struct {
	AccountID string          `json:"account_id" binding:"required"`
	Period    string          `json:"period" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Notes     string          `json:"notes"`
}

func (s *FinanceService) CreateBudget(req CreateBudgetRequest, actor string) (*entity.Budget, error) {
	if _, err := time.Parse("2006-01", req.Period); err != nil {
		return nil, NewValidationError("period", "period must be YYYY-MM")
	}
	if req.Amount.IsNegative() {
		return nil, NewValidationError("amount", "amount must not be negative")
	}
	if _, err := s.repo.GetAccountByID(req.AccountID); err != nil {
		if err == repository.ErrNotFound {
			return nil, NewValidationError("account_id", "account not found")
		}
		return nil, err
	}

	budget := &entity.Budget{
		ID:        uuid.New().String(),
		AccountID: req.AccountID,
		Period:    req.Period,
		Amount:    req.Amount,
		Notes:     req.Notes,
		CreatedBy: actor,
	}
	if err := s.repo.CreateBudget(budget); err != nil {
		return nil, translateStoreError(err)
	}
	return budget, nil
}

func (s *FinanceService) ListBudgets(period string) ([]entity.Budget, error) {
	return s.repo.ListBudgets(period)
}

// --- Payables ---

type CreatePayableRequest struct {
	CounterpartyName string          `json:"counterparty_name" binding:"required"`
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	DueDate          *time.Time      `json:"due_date"`
	Notes            string          `json:"notes"`
}

func (s *FinanceService) CreatePayable(req CreatePayableRequest, actor string) (*entity.Payable, error) {
	if !req.Amount.IsPositive() {
		return nil, NewValidationError("amount", "amount must be positive")
	}
	now := time.Now()
	payable := &entity.Payable{
		ID:               uuid.New().String(),
		RecordCode:       fmt.Sprintf("AP-%s%04d", now.Format("20060102"), now.UnixNano()%10000),
		CounterpartyName: req.CounterpartyName,
		Amount:           req.Amount,
		PaidAmount:       decimal.Zero,
		DueDate:          req.DueDate,
		Status:           entity.PayablePending,
		Notes:            req.Notes,
		CreatedBy:        actor,
	}
	if err := s.repo.CreatePayable(payable); err != nil {
		return nil, translateStoreError(err)
	}
	return payable, nil
}

type PayPayableRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// PayPayable records a payment. Overpaying is rejected; paying the
// remainder flips the status to PAID.
func (s *FinanceService) PayPayable(id string, req PayPayableRequest) (*entity.Payable, error) {
	if !req.Amount.IsPositive() {
		return nil, NewValidationError("amount", "amount must be positive")
	}
	payable, err := s.repo.GetPayableByID(id)
	if err != nil {
		return nil, err
	}
	if payable.Status == entity.PayablePaid {
		return nil, NewValidationError("status", "payable is already paid")
	}

	newPaid := payable.PaidAmount.Add(req.Amount)
	if newPaid.GreaterThan(payable.Amount) {
		remaining := payable.Amount.Sub(payable.PaidAmount)
		return nil, NewValidationError("amount",
			"payment exceeds outstanding amount "+remaining.StringFixed(2))
	}

	payable.PaidAmount = newPaid
	if newPaid.Equal(payable.Amount) {
		payable.Status = entity.PayablePaid
		now := time.Now()
		payable.PaidDate = &now
	} else {
		payable.Status = entity.PayablePartial
	}
	if err := s.repo.UpdatePayable(payable); err != nil {
		return nil, err
	}
	return payable, nil
}

func (s *FinanceService) ListPayables(status string, page, size int) ([]entity.Payable, int64, error) {
	return s.repo.ListPayables(status, page, size)
}

// --- Journal entries ---

type JournalLineInput struct {
	AccountID string          `json:"account_id" binding:"required"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	Memo      string          `json:"memo"`
}

type CreateJournalEntryRequest struct {
	EntryDate   time.Time          `json:"entry_date" binding:"required"`
	Description string             `json:"description"`
	Lines       []JournalLineInput `json:"lines" binding:"required,min=2"`
}

// CreateJournalEntry writes a draft entry. Debits and credits must
// balance before anything is stored.
func (s *FinanceService) CreateJournalEntry(req CreateJournalEntryRequest, actor string) (*entity.JournalEntry, error) {
	if err := s.checkBalance(req.Lines); err != nil {
		return nil, err
	}

	now := time.Now()
	entry := &entity.JournalEntry{
		ID:          uuid.New().String(),
		EntryCode:   fmt.Sprintf("JE-%s%04d", now.Format("20060102"), now.UnixNano()%10000),
		EntryDate:   req.EntryDate,
		Description: req.Description,
		Status:      entity.JournalDraft,
		CreatedBy:   actor,
	}
	for _, line := range req.Lines {
		if _, err := s.repo.GetAccountByID(line.AccountID); err != nil {
			if err == repository.ErrNotFound {
				return nil, NewValidationError("lines", "account not found: "+line.AccountID)
			}
			return nil, err
		}
		entry.Lines = append(entry.Lines, entity.JournalLine{
			ID:        uuid.New().String(),
			EntryID:   entry.ID,
			AccountID: line.AccountID,
			Debit:     line.Debit,
			Credit:    line.Credit,
			Memo:      line.Memo,
		})
	}

	if err := s.repo.CreateEntry(entry); err != nil {
		return nil, translateStoreError(err)
	}
	return entry, nil
}

// PostJournalEntry finalizes a draft. The balance is rechecked at post
// time against what is actually stored.
func (s *FinanceService) PostJournalEntry(id, actor string) (*entity.JournalEntry, error) {
	entry, err := s.repo.GetEntryByID(id)
	if err != nil {
		return nil, err
	}
	if entry.Status != entity.JournalDraft {
		return nil, NewValidationError("status", "entry is not a draft")
	}

	debits, credits := decimal.Zero, decimal.Zero
	for _, line := range entry.Lines {
		debits = debits.Add(line.Debit)
		credits = credits.Add(line.Credit)
	}
	if !debits.Equal(credits) {
		return nil, NewValidationError("lines",
			fmt.Sprintf("entry does not balance: debits %s, credits %s",
				debits.StringFixed(2), credits.StringFixed(2)))
	}

	now := time.Now()
	entry.Status = entity.JournalPosted
	entry.PostedBy = actor
	entry.PostedAt = &now
	if err := s.repo.UpdateEntry(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *FinanceService) GetJournalEntry(id string) (*entity.JournalEntry, error) {
	return s.repo.GetEntryByID(id)
}

func (s *FinanceService) ListJournalEntries(status string, page, size int) ([]entity.JournalEntry, int64, error) {
	return s.repo.ListEntries(status, page, size)
}

func (s *FinanceService) checkBalance(lines []JournalLineInput) error {
	debits, credits := decimal.Zero, decimal.Zero
	for _, line := range lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return NewValidationError("lines", "debit and credit must not be negative")
		}
		if line.Debit.IsPositive() && line.Credit.IsPositive() {
			return NewValidationError("lines", "a line may carry a debit or a credit, not both")
		}
		debits = debits.Add(line.Debit)
		credits = credits.Add(line.Credit)
	}
	if !debits.Equal(credits) {
		return NewValidationError("lines",
			fmt.Sprintf("entry does not balance: debits %s, credits %s",
				debits.StringFixed(2), credits.StringFixed(2)))
	}
	if debits.IsZero() {
		return NewValidationError("lines", "entry must move a non-zero amount")
	}
	return nil
}
