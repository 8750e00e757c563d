package repository

import (
	"github.com/fajarprasetia/smartone-erp-sub002/internal/model/entity"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(c *entity.Customer) error {
	return r.db.Create(c).Error
}

func (r *CustomerRepository) GetByID(id string) (*entity.Customer, error) {
	var c entity.Customer
	err := r.db.Where("id = ? AND deleted_at IS NULL", id).First(&c).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &c, nil
}

// FindByNameContains returns the first customer whose name contains the
// fragment, case-insensitive. Used to resolve the SMARTONE house record.
func (r *CustomerRepository) FindByNameContains(fragment string) (*entity.Customer, error) {
	var c entity.Customer
	err := r.db.Where("name ILIKE ? AND deleted_at IS NULL", "%"+fragment+"%").
		Order("created_at ASC").First(&c).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &c, nil
}

func (r *CustomerRepository) Update(c *entity.Customer) error {
	return r.db.Save(c).Error
}

func (r *CustomerRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&entity.Customer{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type CustomerListParams struct {
	Keyword string
	Page    int
	Size    int
}

func (r *CustomerRepository) List(params CustomerListParams) ([]entity.Customer, int64, error) {
	query := r.db.Model(&entity.Customer{}).Where("deleted_at IS NULL")
	if params.Keyword != "" {
		kw := "%" + params.Keyword + "%"
		query = query.Where("name ILIKE ? OR customer_code ILIKE ? OR phone ILIKE ?", kw, kw, kw)
	}
	var total int64
	query.Count(&total)
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Size <= 0 {
		params.Size = 20
	}
	var customers []entity.Customer
	err := query.Order("created_at DESC").
		Offset((params.Page - 1) * params.Size).Limit(params.Size).Find(&customers).Error
	return customers, total, err
}
