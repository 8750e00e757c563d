package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fajarprasetia/smartone-erp-sub002/internal/model/entity"
	"github.com/fajarprasetia/smartone-erp-sub002/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaperService struct {
	repo   *repository.PaperRepository
	logger *zap.Logger
}

func NewPaperService(repo *repository.PaperRepository, logger *zap.Logger) *PaperService {
	return &PaperService{repo: repo, logger: logger}
}

// ValidateBarcodeRequest is the scan-validation body. Numeric fields
// arrive as strings from the scanner UI; unparseable values coerce to
// zero with a warning rather than failing the scan.
type ValidateBarcodeRequest struct {
	BarcodeID string `json:"barcode_id" binding:"required"`
	PaperType string `json:"paper_type" binding:"required"`
	Gsm       string `json:"gsm" binding:"required"`
	Width     string `json:"width" binding:"required"`
	Length    string `json:"length" binding:"required"`
}

// ValidateBarcode looks up the scanned roll and matches it against the
// requested specification. An unknown code is NotFound, not an invalid
// verdict.
func (s *PaperService) ValidateBarcode(req ValidateBarcodeRequest) (*MatchResult, error) {
	stock, err := s.repo.GetStockByQrCode(req.BarcodeID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, fmt.Errorf("barcode not found in inventory: %w", repository.ErrNotFound)
		}
		return nil, fmt.Errorf("lookup paper stock: %w", err)
	}

	gsm := s.parseNumber(req.Gsm, "gsm")
	width := s.parseNumber(req.Width, "width")
	length := s.parseNumber(req.Length, "length")

	result := MatchPaperSpec(stock, req.PaperType, gsm, width, length)
	return &result, nil
}

func (s *PaperService) parseNumber(raw, field string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		s.logger.Warn("unparseable numeric field on barcode validation, defaulting to 0",
			zap.String("field", field),
			zap.String("value", raw),
		)
		return 0
	}
	return v
}

type InboundPaperRequest struct {
	QrCode    string  `json:"qr_code" binding:"required"`
	Name      string  `json:"name"`
	PaperType string  `json:"paper_type" binding:"required"`
	Gsm       float64 `json:"gsm" binding:"required,gt=0"`
	Width     float64 `json:"width" binding:"required,gt=0"`
	Length    float64 `json:"length"`
	Supplier  string  `json:"supplier"`
	Notes     string  `json:"notes"`
}

func (s *PaperService) InboundStock(req InboundPaperRequest, actor string) (*entity.PaperStock, error) {
	stock := &entity.PaperStock{
		ID:              uuid.New().String(),
		QrCode:          req.QrCode,
		Name:            req.Name,
		PaperType:       req.PaperType,
		Gsm:             req.Gsm,
		Width:           req.Width,
		Length:          req.Length,
		RemainingLength: req.Length,
		Approved:        false,
		Supplier:        req.Supplier,
		Notes:           req.Notes,
		CreatedBy:       actor,
	}
	if err := s.repo.CreateStock(stock); err != nil {
		return nil, translateStoreError(err)
	}
	return stock, nil
}

func (s *PaperService) ApproveStock(id string) (*entity.PaperStock, error) {
	stock, err := s.repo.GetStockByID(id)
	if err != nil {
		return nil, err
	}
	stock.Approved = true
	if err := s.repo.UpdateStock(stock); err != nil {
		return nil, err
	}
	return stock, nil
}

func (s *PaperService) ListStocks(params repository.PaperStockListParams) ([]entity.PaperStock, int64, error) {
	return s.repo.ListStocks(params)
}

type CreatePaperRequestInput struct {
	OrderID   string  `json:"order_id"`
	PaperType string  `json:"paper_type" binding:"required"`
	Gsm       float64 `json:"gsm" binding:"required,gt=0"`
	Width     float64 `json:"width" binding:"required,gt=0"`
	Length    float64 `json:"length" binding:"required,gt=0"`
}

func (s *PaperService) CreateRequest(input CreatePaperRequestInput, actor string) (*entity.PaperRequest, error) {
	now := time.Now()
	req := &entity.PaperRequest{
		ID:          uuid.New().String(),
		RequestCode: fmt.Sprintf("PR-%s%04d", now.Format("20060102"), now.UnixNano()%10000),
		PaperType:   input.PaperType,
		Gsm:         input.Gsm,
		Width:       input.Width,
		Length:      input.Length,
		Status:      entity.PaperRequestPending,
		RequestedBy: actor,
	}
	if input.OrderID != "" {
		req.OrderID = &input.OrderID
	}
	if err := s.repo.CreateRequest(req); err != nil {
		return nil, translateStoreError(err)
	}
	return req, nil
}

// ApproveRequest confirms a pending request against a scanned roll. The
// roll must satisfy the requested specification; the itemized mismatch
// list is returned to the caller when it does not.
func (s *PaperService) ApproveRequest(id, barcodeID, actor string) (*MatchResult, error) {
	req, err := s.repo.GetRequestByID(id)
	if err != nil {
		return nil, err
	}
	if req.Status != entity.PaperRequestPending {
		return nil, NewValidationError("status", "request is not pending: "+req.Status)
	}

	stock, err := s.repo.GetStockByQrCode(barcodeID)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, fmt.Errorf("barcode not found in inventory: %w", repository.ErrNotFound)
		}
		return nil, fmt.Errorf("lookup paper stock: %w", err)
	}

	result := MatchPaperSpec(stock, req.PaperType, req.Gsm, req.Width, req.Length)
	if !result.Valid {
		return &result, nil
	}

	req.Status = entity.PaperRequestApproved
	req.PaperStockID = &stock.ID
	req.ApprovedBy = actor
	if err := s.repo.UpdateRequest(req); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *PaperService) ListRequests(params repository.PaperRequestListParams) ([]entity.PaperRequest, int64, error) {
	return s.repo.ListRequests(params)
}
