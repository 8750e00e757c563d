package service

import (
	"fmt"

	"github.com/fajarprasetia/smartone-erp-sub002/internal/model/entity"
	"github.com/fajarprasetia/smartone-erp-sub002/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type FabricService struct {
	repo   *repository.FabricRepository
	db     *gorm.DB
	logger *zap.Logger
}

func NewFabricService(repo *repository.FabricRepository, db *gorm.DB, logger *zap.Logger) *FabricService {
	return &FabricService{repo: repo, db: db, logger: logger}
}

type InboundFabricRequest struct {
	Name        string  `json:"name" binding:"required"`
	BatchNo     string  `json:"batch_no"`
	Width       float64 `json:"width"`
	Length      float64 `json:"length" binding:"required,gt=0"`
	Unit        string  `json:"unit"`
	CustomerID  string  `json:"customer_id"`
	SafetyStock float64 `json:"safety_stock"`
	Notes       string  `json:"notes"`
}

// InboundStock creates the batch and its inbound movement together.
func (s *FabricService) InboundStock(req InboundFabricRequest, actor string) (*entity.FabricStock, error) {
	stock := &entity.FabricStock{
		ID:          uuid.New().String(),
		Name:        req.Name,
		BatchNo:     req.BatchNo,
		Width:       req.Width,
		Length:      req.Length,
		Unit:        req.Unit,
		SafetyStock: req.SafetyStock,
		Notes:       req.Notes,
		CreatedBy:   actor,
	}
	if stock.Unit == "" {
		stock.Unit = "meter"
	}
	if req.CustomerID != "" {
		stock.CustomerID = &req.CustomerID
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(stock).Error; err != nil {
			return translateStoreError(err)
		}
		return tx.Create(&entity.FabricTransaction{
			ID:            uuid.New().String(),
			FabricStockID: stock.ID,
			Type:          entity.FabricTxInbound,
			Length:        req.Length,
			Notes:         req.Notes,
			CreatedBy:     actor,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return stock, nil
}

type FabricMovementRequest struct {
	Length        float64 `json:"length" binding:"required,gt=0"`
	ReferenceType string  `json:"reference_type"`
	ReferenceID   string  `json:"reference_id"`
	Notes         string  `json:"notes"`
}

// OutboundStock issues fabric against a batch. Issuing more than the
// batch holds is rejected.
func (s *FabricService) OutboundStock(stockID string, req FabricMovementRequest, actor string) (*entity.FabricStock, error) {
	stock, err := s.repo.GetStockByID(stockID)
	if err != nil {
		return nil, err
	}
	if req.Length > stock.Length {
		return nil, NewValidationError("length",
			fmt.Sprintf("insufficient stock: requested %.2f, available %.2f", req.Length, stock.Length))
	}

	stock.Length -= req.Length
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(stock).Error; err != nil {
			return err
		}
		return tx.Create(&entity.FabricTransaction{
			ID:            uuid.New().String(),
			FabricStockID: stock.ID,
			Type:          entity.FabricTxOutbound,
			Length:        -req.Length,
			ReferenceType: req.ReferenceType,
			ReferenceID:   req.ReferenceID,
			Notes:         req.Notes,
			CreatedBy:     actor,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	if stock.SafetyStock > 0 && stock.Length < stock.SafetyStock {
		s.logger.Warn("fabric batch below safety stock",
			zap.String("stock_id", stock.ID),
			zap.String("name", stock.Name),
			zap.Float64("length", stock.Length),
			zap.Float64("safety_stock", stock.SafetyStock),
		)
	}
	return stock, nil
}

type FabricAdjustRequest struct {
	Length float64 `json:"length" binding:"required,gte=0"`
	Notes  string  `json:"notes" binding:"required"`
}

// AdjustStock sets the measured length after a stock take.
func (s *FabricService) AdjustStock(stockID string, req FabricAdjustRequest, actor string) (*entity.FabricStock, error) {
	stock, err := s.repo.GetStockByID(stockID)
	if err != nil {
		return nil, err
	}

	delta := req.Length - stock.Length
	stock.Length = req.Length
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(stock).Error; err != nil {
			return err
		}
		return tx.Create(&entity.FabricTransaction{
			ID:            uuid.New().String(),
			FabricStockID: stock.ID,
			Type:          entity.FabricTxAdjust,
			Length:        delta,
			Notes:         req.Notes,
			CreatedBy:     actor,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return stock, nil
}

func (s *FabricService) GetStock(id string) (*entity.FabricStock, error) {
	return s.repo.GetStockByID(id)
}

func (s *FabricService) ListStocks(params repository.FabricStockListParams) ([]entity.FabricStock, int64, error) {
	return s.repo.ListStocks(params)
}

func (s *FabricService) ListTransactions(stockID string, page, size int) ([]entity.FabricTransaction, int64, error) {
	return s.repo.ListTransactions(stockID, page, size)
}
