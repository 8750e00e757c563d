package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account types for the chart of accounts.
const (
	AccountAsset     = "ASSET"
	AccountLiability = "LIABILITY"
	AccountEquity    = "EQUITY"
	AccountRevenue   = "REVENUE"
	AccountExpense   = "EXPENSE"
)

// Payable statuses.
const (
	PayablePending = "PENDING"
	PayablePartial = "PARTIAL"
	PayablePaid    = "PAID"
	PayableOverdue = "OVERDUE"
)

// JournalEntry statuses.
const (
	JournalDraft  = "DRAFT"
	JournalPosted = "POSTED"
)

// Account is one node of the chart of accounts.
type Account struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Code      string     `json:"code" gorm:"size:20;not null;uniqueIndex"`
	Name      string     `json:"name" gorm:"size:200;not null"`
	Type      string     `json:"type" gorm:"size:20;not null"`
	ParentID  *string    `json:"parent_id" gorm:"type:uuid;index"`
	Active    bool       `json:"active" gorm:"not null;default:true"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at" gorm:"index"`

	Parent *Account `json:"parent,omitempty" gorm:"foreignKey:ParentID"`
}

func (Account) TableName() string {
	return "accounts"
}

// Budget allocates an amount to an account for a period (YYYY-MM).
type Budget struct {
	ID        string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	AccountID string          `json:"account_id" gorm:"type:uuid;not null;index"`
	Period    string          `json:"period" gorm:"size:7;not null;index"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:decimal(14,2);not null"`
	Notes     string          `json:"notes" gorm:"type:text"`
	CreatedBy string          `json:"created_by" gorm:"size:64"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	Account *Account `json:"account,omitempty" gorm:"foreignKey:AccountID"`
}

func (Budget) TableName() string {
	return "budgets"
}

// Payable is an amount owed to a supplier or other counterparty.
type Payable struct {
	ID               string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	RecordCode       string          `json:"record_code" gorm:"size:50;not null;uniqueIndex"`
	CounterpartyName string          `json:"counterparty_name" gorm:"size:200;not null"`
	Amount           decimal.Decimal `json:"amount" gorm:"type:decimal(14,2);not null"`
	PaidAmount       decimal.Decimal `json:"paid_amount" gorm:"type:decimal(14,2);default:0"`
	DueDate          *time.Time      `json:"due_date"`
	PaidDate         *time.Time      `json:"paid_date"`
	Status           string          `json:"status" gorm:"size:20;not null;default:PENDING"`
	Notes            string          `json:"notes" gorm:"type:text"`
	CreatedBy        string          `json:"created_by" gorm:"size:64"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	DeletedAt        *time.Time      `json:"deleted_at" gorm:"index"`
}

func (Payable) TableName() string {
	return "payables"
}

// JournalEntry is a double-entry journal header. Posting requires the
// debit and credit totals of its lines to balance.
type JournalEntry struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	EntryCode   string     `json:"entry_code" gorm:"size:50;not null;uniqueIndex"`
	EntryDate   time.Time  `json:"entry_date" gorm:"not null"`
	Description string     `json:"description" gorm:"size:500"`
	Status      string     `json:"status" gorm:"size:20;not null;default:DRAFT"`
	PostedBy    string     `json:"posted_by" gorm:"size:64"`
	PostedAt    *time.Time `json:"posted_at"`
	CreatedBy   string     `json:"created_by" gorm:"size:64"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at" gorm:"index"`

	Lines []JournalLine `json:"lines,omitempty" gorm:"foreignKey:EntryID"`
}

func (JournalEntry) TableName() string {
	return "journal_entries"
}

// JournalLine is one leg of a journal entry.
type JournalLine struct {
	ID        string          `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	EntryID   string          `json:"entry_id" gorm:"type:uuid;not null;index"`
	AccountID string          `json:"account_id" gorm:"type:uuid;not null;index"`
	Debit     decimal.Decimal `json:"debit" gorm:"type:decimal(14,2);not null;default:0"`
	Credit    decimal.Decimal `json:"credit" gorm:"type:decimal(14,2);not null;default:0"`
	Memo      string          `json:"memo" gorm:"size:500"`
	CreatedAt time.Time       `json:"created_at"`

	Account *Account `json:"account,omitempty" gorm:"foreignKey:AccountID"`
}

func (JournalLine) TableName() string {
	return "journal_lines"
}
