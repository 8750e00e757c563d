package entity

import (
	"time"
)

// Customer is an order counterparty. The in-house SMARTONE record is a
// regular customer row whose name contains "SMARTONE"; the order
// normalizer resolves fabric origin against it.
type Customer struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CustomerCode string     `json:"customer_code" gorm:"size:50;not null;uniqueIndex"`
	Name         string     `json:"name" gorm:"size:200;not null;index"`
	Phone        string     `json:"phone" gorm:"size:20"`
	Email        string     `json:"email" gorm:"size:100"`
	Address      string     `json:"address" gorm:"size:500"`
	Notes        string     `json:"notes" gorm:"type:text"`
	CreatedBy    string     `json:"created_by" gorm:"size:64"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at" gorm:"index"`
}

func (Customer) TableName() string {
	return "customers"
}
