package service

import (
	"fmt"
	"time"

	"github.com/fajarprasetia/smartone-erp-sub002/internal/model/entity"
	"github.com/fajarprasetia/smartone-erp-sub002/internal/repository"
	"github.com/google/uuid"
)

type CustomerService struct {
	repo *repository.CustomerRepository
}

func NewCustomerService(repo *repository.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
}

func (s *CustomerService) Create(req CreateCustomerRequest, actor string) (*entity.Customer, error) {
	now := time.Now()
	customer := &entity.Customer{
		ID:           uuid.New().String(),
		CustomerCode: fmt.Sprintf("CUST-%s%04d", now.Format("20060102"), now.UnixNano()%10000),
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
		Notes:        req.Notes,
		CreatedBy:    actor,
	}
	if err := s.repo.Create(customer); err != nil {
		return nil, translateStoreError(err)
	}
	return customer, nil
}

func (s *CustomerService) Get(id string) (*entity.Customer, error) {
	return s.repo.GetByID(id)
}

type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

func (s *CustomerService) Update(id string, req UpdateCustomerRequest) (*entity.Customer, error) {
	customer, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		if *req.Name == "" {
			return nil, NewValidationError("name", "name must not be empty")
		}
		customer.Name = *req.Name
	}
	if req.Phone != nil {
		customer.Phone = *req.Phone
	}
	if req.Email != nil {
		customer.Email = *req.Email
	}
	if req.Address != nil {
		customer.Address = *req.Address
	}
	if req.Notes != nil {
		customer.Notes = *req.Notes
	}
	if err := s.repo.Update(customer); err != nil {
		return nil, translateStoreError(err)
	}
	return customer, nil
}

func (s *CustomerService) Delete(id string) error {
	return s.repo.Delete(id)
}

func (s *CustomerService) List(params repository.CustomerListParams) ([]entity.Customer, int64, error) {
	return s.repo.List(params)
}
