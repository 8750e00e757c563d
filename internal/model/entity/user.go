package entity

import (
	"time"
)

// User roles.
const (
	RoleAdmin      = "admin"
	RoleMarketing  = "marketing"
	RoleDesigner   = "designer"
	RoleProduction = "production"
	RoleFinance    = "finance"
)

type User struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name         string     `json:"name" gorm:"size:100;not null"`
	Email        string     `json:"email" gorm:"size:100;not null;uniqueIndex"`
	PasswordHash string     `json:"-" gorm:"size:100;not null"`
	Role         string     `json:"role" gorm:"size:30;not null;default:marketing"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at" gorm:"index"`
}

func (User) TableName() string {
	return "users"
}
