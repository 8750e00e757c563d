package entity

import (
	"time"
)

// Fabric transaction types.
const (
	FabricTxInbound  = "INBOUND"
	FabricTxOutbound = "OUTBOUND"
	FabricTxAdjust   = "ADJUST"
)

// FabricStock is one fabric batch in the warehouse.
type FabricStock struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string     `json:"name" gorm:"size:200;not null;index"`
	BatchNo     string     `json:"batch_no" gorm:"size:50;index"`
	Width       float64    `json:"width" gorm:"type:decimal(10,2);default:0"`
	Length      float64    `json:"length" gorm:"type:decimal(12,2);not null;default:0"`
	Unit        string     `json:"unit" gorm:"size:20;not null;default:meter"`
	CustomerID  *string    `json:"customer_id" gorm:"type:uuid;index"`
	SafetyStock float64    `json:"safety_stock" gorm:"type:decimal(12,2);default:0"`
	Notes       string     `json:"notes" gorm:"type:text"`
	CreatedBy   string     `json:"created_by" gorm:"size:64"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at" gorm:"index"`

	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
}

func (FabricStock) TableName() string {
	return "fabric_stocks"
}

// FabricTransaction records fabric movement. Positive length is inbound,
// negative is outbound.
type FabricTransaction struct {
	ID            string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	FabricStockID string    `json:"fabric_stock_id" gorm:"type:uuid;not null;index"`
	Type          string    `json:"type" gorm:"size:20;not null"`
	Length        float64   `json:"length" gorm:"type:decimal(12,2);not null"`
	ReferenceType string    `json:"reference_type" gorm:"size:50"`
	ReferenceID   string    `json:"reference_id" gorm:"size:64"`
	Notes         string    `json:"notes" gorm:"type:text"`
	CreatedBy     string    `json:"created_by" gorm:"size:64;not null"`
	CreatedAt     time.Time `json:"created_at"`
}

func (FabricTransaction) TableName() string {
	return "fabric_transactions"
}
