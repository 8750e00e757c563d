package entity

import (
	"time"
)

// PaperRequest statuses.
const (
	PaperRequestPending  = "PENDING"
	PaperRequestApproved = "APPROVED"
	PaperRequestRejected = "REJECTED"
	PaperRequestIssued   = "ISSUED"
)

// PaperStock is one physical roll/batch of paper or film.
// Length 0 means length is not tracked for this roll.
type PaperStock struct {
	ID              string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	QrCode          string     `json:"qr_code" gorm:"size:100;not null;uniqueIndex"`
	Name            string     `json:"name" gorm:"size:200"`
	PaperType       string     `json:"paper_type" gorm:"size:100;not null;index"`
	Gsm             float64    `json:"gsm" gorm:"type:decimal(10,2);not null"`
	Width           float64    `json:"width" gorm:"type:decimal(10,2);not null"`
	Length          float64    `json:"length" gorm:"type:decimal(10,2);default:0"`
	RemainingLength float64    `json:"remaining_length" gorm:"type:decimal(10,2);default:0"`
	Approved        bool       `json:"approved" gorm:"not null;default:false"`
	Supplier        string     `json:"supplier" gorm:"size:200"`
	Notes           string     `json:"notes" gorm:"type:text"`
	CreatedBy       string     `json:"created_by" gorm:"size:64"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	DeletedAt       *time.Time `json:"deleted_at" gorm:"index"`
}

func (PaperStock) TableName() string {
	return "paper_stocks"
}

// PaperRequest is a production request for paper, confirmed by scanning a
// roll and matching its specification within tolerance.
type PaperRequest struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	RequestCode  string     `json:"request_code" gorm:"size:50;not null;uniqueIndex"`
	OrderID      *string    `json:"order_id" gorm:"type:uuid;index"`
	PaperType    string     `json:"paper_type" gorm:"size:100;not null"`
	Gsm          float64    `json:"gsm" gorm:"type:decimal(10,2);not null"`
	Width        float64    `json:"width" gorm:"type:decimal(10,2);not null"`
	Length       float64    `json:"length" gorm:"type:decimal(10,2);not null"`
	Status       string     `json:"status" gorm:"size:20;not null;default:PENDING"`
	PaperStockID *string    `json:"paper_stock_id" gorm:"type:uuid"`
	RequestedBy  string     `json:"requested_by" gorm:"size:64;not null"`
	ApprovedBy   string     `json:"approved_by" gorm:"size:64"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at" gorm:"index"`

	Order      *Order      `json:"order,omitempty" gorm:"foreignKey:OrderID"`
	PaperStock *PaperStock `json:"paper_stock,omitempty" gorm:"foreignKey:PaperStockID"`
}

func (PaperRequest) TableName() string {
	return "paper_requests"
}
