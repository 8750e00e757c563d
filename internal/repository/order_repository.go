package repository

import (
	"github.com/fajarprasetia/smartone-erp-sub002/internal/model/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// GetByID loads an order with its customer, fabric-origin and designer
// relations.
func (r *OrderRepository) GetByID(id string) (*entity.Order, error) {
	var order entity.Order
	err := r.db.Preload("Customer").Preload("AsalBahan").Preload("Designer").
		Where("id = ? AND deleted_at IS NULL", id).First(&order).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &order, nil
}

func (r *OrderRepository) Create(order *entity.Order) error {
	return r.db.Create(order).Error
}

// UpdateColumns applies a normalized column map to one order, guarded by
// the expected version. Returns ErrNotFound when the row is gone and
// false when the version is stale.
func (r *OrderRepository) UpdateColumns(tx *gorm.DB, id string, expectedVersion int, columns map[string]interface{}) (bool, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	res := db.Model(&entity.Order{}).
		Where("id = ? AND version = ? AND deleted_at IS NULL", id, expectedVersion).
		Updates(columns)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		// row missing or version moved underneath us
		var count int64
		if err := db.Model(&entity.Order{}).
			Where("id = ? AND deleted_at IS NULL", id).Count(&count).Error; err != nil {
			return false, err
		}
		if count == 0 {
			return false, ErrNotFound
		}
		return false, nil
	}
	return true, nil
}

// Delete hard-deletes an order.
func (r *OrderRepository) Delete(id string) error {
	res := r.db.Unscoped().Where("id = ?", id).Delete(&entity.Order{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type OrderListParams struct {
	Status     string
	CustomerID string
	Keyword    string
	Page       int
	Size       int
}

func (r *OrderRepository) List(params OrderListParams) ([]entity.Order, int64, error) {
	query := r.db.Model(&entity.Order{}).Where("deleted_at IS NULL")
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.CustomerID != "" {
		query = query.Where("customer_id = ?", params.CustomerID)
	}
	if params.Keyword != "" {
		kw := "%" + params.Keyword + "%"
		query = query.Where("no_spk ILIKE ? OR nama_produk ILIKE ?", kw, kw)
	}
	var total int64
	query.Count(&total)
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Size <= 0 {
		params.Size = 20
	}
	var orders []entity.Order
	err := query.Preload("Customer").Order("created_at DESC").
		Offset((params.Page - 1) * params.Size).Limit(params.Size).Find(&orders).Error
	return orders, total, err
}

// ListAll returns every live order for the XLSX export.
func (r *OrderRepository) ListAll() ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.Preload("Customer").Where("deleted_at IS NULL").
		Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) CreateProductionLog(log *entity.ProductionLog) error {
	return r.db.Create(log).Error
}

func (r *OrderRepository) ListProductionLogs(orderID string) ([]entity.ProductionLog, error) {
	var logs []entity.ProductionLog
	err := r.db.Where("order_id = ?", orderID).Order("created_at ASC").Find(&logs).Error
	return logs, err
}

// DB exposes the underlying handle for transactions.
func (r *OrderRepository) DB() *gorm.DB {
	return r.db
}
