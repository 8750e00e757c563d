package repository

import (
	"github.com/fajarprasetia/smartone-erp-sub002/internal/model/entity"
	"gorm.io/gorm"
)

type PaperRepository struct {
	db *gorm.DB
}

func NewPaperRepository(db *gorm.DB) *PaperRepository {
	return &PaperRepository{db: db}
}

func (r *PaperRepository) CreateStock(s *entity.PaperStock) error {
	return r.db.Create(s).Error
}

func (r *PaperRepository) GetStockByID(id string) (*entity.PaperStock, error) {
	var s entity.PaperStock
	err := r.db.Where("id = ? AND deleted_at IS NULL", id).First(&s).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &s, nil
}

// GetStockByQrCode looks up a roll by its scanned code, exact match.
func (r *PaperRepository) GetStockByQrCode(code string) (*entity.PaperStock, error) {
	var s entity.PaperStock
	err := r.db.Where("qr_code = ? AND deleted_at IS NULL", code).First(&s).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &s, nil
}

func (r *PaperRepository) UpdateStock(s *entity.PaperStock) error {
	return r.db.Save(s).Error
}

type PaperStockListParams struct {
	PaperType string
	Approved  *bool
	Keyword   string
	Page      int
	Size      int
}

func (r *PaperRepository) ListStocks(params PaperStockListParams) ([]entity.PaperStock, int64, error) {
	query := r.db.Model(&entity.PaperStock{}).Where("deleted_at IS NULL")
	if params.PaperType != "" {
		query = query.Where("paper_type = ?", params.PaperType)
	}
	if params.Approved != nil {
		query = query.Where("approved = ?", *params.Approved)
	}
	if params.Keyword != "" {
		kw := "%" + params.Keyword + "%"
		query = query.Where("qr_code ILIKE ? OR name ILIKE ? OR paper_type ILIKE ?", kw, kw, kw)
	}
	var total int64
	query.Count(&total)
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Size <= 0 {
		params.Size = 20
	}
	var stocks []entity.PaperStock
	err := query.Order("created_at DESC").
		Offset((params.Page - 1) * params.Size).Limit(params.Size).Find(&stocks).Error
	return stocks, total, err
}

func (r *PaperRepository) CreateRequest(req *entity.PaperRequest) error {
	return r.db.Create(req).Error
}

func (r *PaperRepository) GetRequestByID(id string) (*entity.PaperRequest, error) {
	var req entity.PaperRequest
	err := r.db.Preload("PaperStock").Preload("Order").
		Where("id = ? AND deleted_at IS NULL", id).First(&req).Error
	if err != nil {
		return nil, translateNotFound(err)
	}
	return &req, nil
}

func (r *PaperRepository) UpdateRequest(req *entity.PaperRequest) error {
	return r.db.Save(req).Error
}

type PaperRequestListParams struct {
	Status  string
	OrderID string
	Page    int
	Size    int
}

func (r *PaperRepository) ListRequests(params PaperRequestListParams) ([]entity.PaperRequest, int64, error) {
	query := r.db.Model(&entity.PaperRequest{}).Where("deleted_at IS NULL")
	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.OrderID != "" {
		query = query.Where("order_id = ?", params.OrderID)
	}
	var total int64
	query.Count(&total)
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.Size <= 0 {
		params.Size = 20
	}
	var reqs []entity.PaperRequest
	err := query.Preload("PaperStock").Order("created_at DESC").
		Offset((params.Page - 1) * params.Size).Limit(params.Size).Find(&reqs).Error
	return reqs, total, err
}
