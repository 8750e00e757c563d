package repository

import (
	"github.com/fajarprasetia/smartone-erp-sub002/internal/model/entity"
	"gorm.io/gorm"
)

type FabricRepository struct {
	db *gorm.DB
}

func NewFabricRepository(db *gorm.DB) *FabricRepository {
	return &FabricRepository{db: db}
}

func (r *FabricRepository) CreateStock(s *entity.FabricStock) error {
	return r.db.Create(s).Error
}

func (r *FabricRepository) GetStockByID(id string) (*entity.FabricStock, error) {
	var s entity.FabricStock
	err := r.db.Preload("Customer").Where("id = ? AND deleted_at IS NULL", id).First(&s).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &s, nil
}

func (r *FabricRepository) UpdateStock(s *entity.FabricStock) error {
	return r.db.Save(s).Error
}

func (r *FabricRepository) CreateTransaction(tx *entity.FabricTransaction) error {
	return r.db.Create(tx).Error
}

type FabricStockListParams struct {
	CustomerID string
	Keyword    string
	LowStock   bool
	Page       int
	Size       int
}

func (r *FabricRepository) ListStocks(params FabricStockListParams) ([]entity.FabricStock, int64, error) {
	query := r.db.Model(&entity.FabricStock{}).Where("deleted_at IS NULL")
	if params.CustomerID != "" {
		query = query.Where("customer_id = ?", params.CustomerID)
	}
	if params.Keyword != "" {
		kw := "%" + params.Keyword + "%"
		query = query.Where("name ILIKE ? OR batch_no ILIKE ?", kw, kw)
	}
	if params.LowStock {
		query = query.Where("length < safety_stock AND safety_stock > 0")
	}
	var total int64
	query.Count(&total)
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Size <= 0 {
		params.Size = 20
	}
	var stocks []entity.FabricStock
	err := query.Preload("Customer").Order("updated_at DESC").
		Offset((params.Page - 1) * params.Size).Limit(params.Size).Find(&stocks).Error
	return stocks, total, err
}

func (r *FabricRepository) ListTransactions(stockID string, page, size int) ([]entity.FabricTransaction, int64, error) {
	query := r.db.Model(&entity.FabricTransaction{})
	if stockID != "" {
		query = query.Where("fabric_stock_id = ?", stockID)
	}
	var total int64
	query.Count(&total)
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 20
	}
	var txs []entity.FabricTransaction
	err := query.Order("created_at DESC").Offset((page - 1) * size).Limit(size).Find(&txs).Error
	return txs, total, err
}
