package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fajarprasetia/smartone-erp-sub002/internal/events"
	"github.com/fajarprasetia/smartone-erp-sub002/internal/model/entity"
	"github.com/fajarprasetia/smartone-erp-sub002/internal/repository"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// smartoneCacheKey caches the resolved id of the SMARTONE house customer
// record so fabric-origin resolution does not hit the customer table on
// every update.
const (
	smartoneCacheKey = "smartone:customer_id"
	smartoneCacheTTL = time.Hour
)

type OrderService struct {
	repo         *repository.OrderRepository
	customerRepo *repository.CustomerRepository
	userRepo     *repository.UserRepository
	db           *gorm.DB
	rdb          *redis.Client
	publisher    *events.Publisher
	logger       *zap.Logger
}

func NewOrderService(
	repo *repository.OrderRepository,
	customerRepo *repository.CustomerRepository,
	userRepo *repository.UserRepository,
	db *gorm.DB,
	rdb *redis.Client,
	publisher *events.Publisher,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		repo:         repo,
		customerRepo: customerRepo,
		userRepo:     userRepo,
		db:           db,
		rdb:          rdb,
		publisher:    publisher,
		logger:       logger,
	}
}

type CreateOrderRequest struct {
	CustomerID     string `json:"customer_id" binding:"required"`
	Marketing      string `json:"marketing"`
	JenisProduk    string `json:"jenis_produk"`
	KategoriProduk string `json:"kategori_produk"`
	NamaProduk     string `json:"nama_produk"`
	TargetSelesai  string `json:"estimasi_selesai"`
	Qty            string `json:"qty"`
	Keterangan     string `json:"keterangan"`
}

func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest, actor string) (*OrderResponse, error) {
	if _, err := s.customerRepo.GetByID(req.CustomerID); err != nil {
		if err == repository.ErrNotFound {
			return nil, NewValidationError("customer_id", "customer not found")
		}
		return nil, fmt.Errorf("check customer: %w", err)
	}

	now := time.Now()
	order := &entity.Order{
		ID:             uuid.New().String(),
		SpkNumber:      fmt.Sprintf("SPK-%s%04d", now.Format("20060102"), now.UnixNano()%10000),
		CustomerID:     req.CustomerID,
		Marketing:      req.Marketing,
		JenisProduk:    req.JenisProduk,
		KategoriProduk: req.KategoriProduk,
		NamaProduk:     req.NamaProduk,
		TargetSelesai:  req.TargetSelesai,
		Qty:            req.Qty,
		Status:         entity.OrderStatusPending,
		CreatedBy:      actor,
	}
	if req.Keterangan != "" {
		order.Keterangan = &req.Keterangan
	}

	if err := s.repo.Create(order); err != nil {
		return nil, translateStoreError(err)
	}

	s.publisher.Publish(ctx, events.OrderEvent{
		Type:      events.OrderCreated,
		OrderID:   order.ID,
		SpkNumber: order.SpkNumber,
		Actor:     actor,
	})

	return s.Get(ctx, order.ID)
}

// Get loads one order with its relations and resolves the polymorphic
// marketing field against the user table, falling back to a plain
// display name when no user matches.
func (s *OrderService) Get(ctx context.Context, id string) (*OrderResponse, error) {
	order, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return s.buildResponse(ctx, order), nil
}

func (s *OrderService) List(params repository.OrderListParams) ([]entity.Order, int64, error) {
	return s.repo.List(params)
}

// Update runs the raw payload through the field normalizer and applies
// the result as a single guarded UPDATE. The version check rejects
// writes against a record that moved since the client read it.
func (s *OrderService) Update(ctx context.Context, id string, input map[string]interface{}, actor string) (*OrderResponse, error) {
	order, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	norm := NormalizeOrderUpdate(input, order)
	for _, w := range norm.Warnings {
		s.logger.Warn("order update normalization", zap.String("order_id", id), zap.String("warning", w))
	}

	// The customer reference, when changed, must exist before anything
	// is written.
	targetCustomerID := order.CustomerID
	if v, ok := norm.Columns["customer_id"].(string); ok && v != "" {
		if _, err := s.customerRepo.GetByID(v); err != nil {
			if err == repository.ErrNotFound {
				return nil, NewValidationError("customer_id", "customer not found")
			}
			return nil, fmt.Errorf("check customer: %w", err)
		}
		targetCustomerID = v
	}

	switch norm.Origin.Kind {
	case OriginIntentClear:
		norm.Columns["asal_bahan_id"] = nil
	case OriginIntentCustomer:
		norm.Columns["asal_bahan_id"] = targetCustomerID
	case OriginIntentSmartone:
		smartoneID, err := s.resolveSmartoneID(ctx)
		if err != nil {
			if err == repository.ErrNotFound {
				// Soft failure: the house record is missing, skip the
				// relation rather than failing the whole update.
				s.logger.Warn("SMARTONE customer record not found, skipping fabric origin relation",
					zap.String("order_id", id))
			} else {
				return nil, fmt.Errorf("resolve SMARTONE customer: %w", err)
			}
		} else {
			norm.Columns["asal_bahan_id"] = smartoneID
		}
	}

	expectedVersion := order.Version
	if v, ok := input["version"].(float64); ok {
		expectedVersion = int(v)
	}
	norm.Columns["version"] = expectedVersion + 1

	err = s.db.Transaction(func(tx *gorm.DB) error {
		updated, err := s.repo.UpdateColumns(tx, id, expectedVersion, norm.Columns)
		if err != nil {
			return translateStoreError(err)
		}
		if !updated {
			return ErrConflict
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(ctx, events.OrderEvent{
		Type:      events.OrderUpdated,
		OrderID:   id,
		SpkNumber: order.SpkNumber,
		Actor:     actor,
	})

	return s.Get(ctx, id)
}

func (s *OrderService) Delete(ctx context.Context, id string, actor string) error {
	order, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.publisher.Publish(ctx, events.OrderEvent{
		Type:      events.OrderDeleted,
		OrderID:   id,
		SpkNumber: order.SpkNumber,
		Actor:     actor,
	})
	return nil
}

// AdvanceStage moves an order to the next production stage and appends a
// log row inside one transaction.
func (s *OrderService) AdvanceStage(ctx context.Context, orderID, stage, notes, actor string) error {
	validStages := map[string]bool{
		entity.ProduksiPrint:   true,
		entity.ProduksiPress:   true,
		entity.ProduksiCutting: true,
		entity.ProduksiDTF:     true,
		entity.ProduksiSewing:  true,
		entity.ProduksiDone:    true,
	}
	if !validStages[stage] {
		return NewValidationError("stage", "unknown production stage: "+stage)
	}

	order, err := s.repo.GetByID(orderID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		updated, err := s.repo.UpdateColumns(tx, orderID, order.Version, map[string]interface{}{
			"status_produksi": stage,
			"status":          entity.OrderStatusProduction,
			"version":         order.Version + 1,
		})
		if err != nil {
			return translateStoreError(err)
		}
		if !updated {
			return ErrConflict
		}
		return tx.Create(&entity.ProductionLog{
			ID:        uuid.New().String(),
			OrderID:   orderID,
			Stage:     stage,
			Notes:     notes,
			CreatedBy: actor,
		}).Error
	})
	if err != nil {
		return err
	}

	s.publisher.Publish(ctx, events.OrderEvent{
		Type:      events.OrderStageAdvanced,
		OrderID:   orderID,
		SpkNumber: order.SpkNumber,
		Stage:     stage,
		Actor:     actor,
	})
	return nil
}

func (s *OrderService) ListProductionLogs(orderID string) ([]entity.ProductionLog, error) {
	if _, err := s.repo.GetByID(orderID); err != nil {
		return nil, err
	}
	return s.repo.ListProductionLogs(orderID)
}

// resolveSmartoneID returns the id of the customer record whose name
// contains "SMARTONE", via a short-lived cache.
func (s *OrderService) resolveSmartoneID(ctx context.Context) (string, error) {
	if s.rdb != nil {
		if id, err := s.rdb.Get(ctx, smartoneCacheKey).Result(); err == nil && id != "" {
			return id, nil
		}
	}

	customer, err := s.customerRepo.FindByNameContains("SMARTONE")
	if err != nil {
		return "", err
	}

	if s.rdb != nil {
		if err := s.rdb.Set(ctx, smartoneCacheKey, customer.ID, smartoneCacheTTL).Err(); err != nil {
			s.logger.Warn("cache SMARTONE customer id", zap.Error(err))
		}
	}
	return customer.ID, nil
}
