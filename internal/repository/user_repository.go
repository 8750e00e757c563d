package repository

import (
	"github.com/fajarprasetia/smartone-erp-sub002/internal/model/entity"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(u *entity.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	var u entity.User
	err := r.db.Where("id = ? AND deleted_at IS NULL", id).First(&u).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	var u entity.User
	err := r.db.Where("email = ? AND deleted_at IS NULL", email).First(&u).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &u, nil
}

func (r *UserRepository) List(page, size int) ([]entity.User, int64, error) {
	query := r.db.Model(&entity.User{}).Where("deleted_at IS NULL")
	var total int64
	query.Count(&total)
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 20
	}
	var users []entity.User
	err := query.Order("name ASC").Offset((page - 1) * size).Limit(size).Find(&users).Error
	return users, total, err
}
