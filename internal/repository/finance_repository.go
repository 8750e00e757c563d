package repository

import (
	"github.com/fajarprasetia/smartone-erp-sub002/internal/model/entity"
	"gorm.io/gorm"
)

type FinanceRepository struct {
	db *gorm.DB
}

func NewFinanceRepository(db *gorm.DB) *FinanceRepository {
	return &FinanceRepository{db: db}
}

// --- Accounts ---

func (r *FinanceRepository) CreateAccount(a *entity.Account) error {
	return r.db.Create(a).Error
}

func (r *FinanceRepository) GetAccountByID(id string) (*entity.Account, error) {
	var a entity.Account
	err := r.db.Where("id = ? AND deleted_at IS NULL", id).First(&a).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &a, nil
}

func (r *FinanceRepository) GetAccountByCode(code string) (*entity.Account, error) {
	var a entity.Account
	err := r.db.Where("code = ? AND deleted_at IS NULL", code).First(&a).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &a, nil
}

func (r *FinanceRepository) ListAccounts(accountType string) ([]entity.Account, error) {
	query := r.db.Where("deleted_at IS NULL")
	if accountType != "" {
		query = query.Where("type = ?", accountType)
	}
	var accounts []entity.Account
	err := query.Order("code ASC").Find(&accounts).Error
	return accounts, err
}

// --- Budgets ---

func (r *FinanceRepository) CreateBudget(b *entity.Budget) error {
	return r.db.Create(b).Error
}

func (r *FinanceRepository) ListBudgets(period string) ([]entity.Budget, error) {
	query := r.db.Preload("Account")
	if period != "" {
		query = query.Where("period = ?", period)
	}
	var budgets []entity.Budget
	err := query.Order("period DESC").Find(&budgets).Error
	return budgets, err
}

// --- Payables ---

func (r *FinanceRepository) CreatePayable(p *entity.Payable) error {
	return r.db.Create(p).Error
}

func (r *FinanceRepository) GetPayableByID(id string) (*entity.Payable, error) {
	var p entity.Payable
	err := r.db.Where("id = ? AND deleted_at IS NULL", id).First(&p).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &p, nil
}

func (r *FinanceRepository) UpdatePayable(p *entity.Payable) error {
	return r.db.Save(p).Error
}

func (r *FinanceRepository) ListPayables(status string, page, size int) ([]entity.Payable, int64, error) {
	query := r.db.Model(&entity.Payable{}).Where("deleted_at IS NULL")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var total int64
	query.Count(&total)
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 20
	}
	var payables []entity.Payable
	err := query.Order("due_date ASC NULLS LAST, created_at DESC").
		Offset((page - 1) * size).Limit(size).Find(&payables).Error
	return payables, total, err
}

// --- Journal entries ---

// CreateEntry writes the header and lines in one transaction.
func (r *FinanceRepository) CreateEntry(e *entity.JournalEntry) error {
	return r.db.Create(e).Error
}

func (r *FinanceRepository) GetEntryByID(id string) (*entity.JournalEntry, error) {
	var e entity.JournalEntry
	err := r.db.Preload("Lines").Preload("Lines.Account").
		Where("id = ? AND deleted_at IS NULL", id).First(&e).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &e, nil
}

func (r *FinanceRepository) UpdateEntry(e *entity.JournalEntry) error {
	return r.db.Save(e).Error
}

func (r *FinanceRepository) ListEntries(status string, page, size int) ([]entity.JournalEntry, int64, error) {
	query := r.db.Model(&entity.JournalEntry{}).Where("deleted_at IS NULL")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var total int64
	query.Count(&total)
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 20
	}
	var entries []entity.JournalEntry
	err := query.Preload("Lines").Order("entry_date DESC").
		Offset((page - 1) * size).Limit(size).Find(&entries).Error
	return entries, total, err
}
