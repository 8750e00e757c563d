package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Repositories bundles all repositories for wiring.
type Repositories struct {
	Order    *OrderRepository
	Customer *CustomerRepository
	User     *UserRepository
	Paper    *PaperRepository
	Fabric   *FabricRepository
	Finance  *FinanceRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Order:    NewOrderRepository(db),
		Customer: NewCustomerRepository(db),
		User:     NewUserRepository(db),
		Paper:    NewPaperRepository(db),
		Fabric:   NewFabricRepository(db),
		Finance:  NewFinanceRepository(db),
	}
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
