package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fajarprasetia/smartone-erp-sub002/internal/events"
	"github.com/fajarprasetia/smartone-erp-sub002/internal/model/entity"
	"github.com/fajarprasetia/smartone-erp-sub002/internal/repository"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DesignService covers the design-workflow subset of an order: file
// width, color matching, quantity, notes, status and capture files.
type DesignService struct {
	repo        *repository.OrderRepository
	db          *gorm.DB
	minioClient *minio.Client
	bucketName  string
	publisher   *events.Publisher
	logger      *zap.Logger
}

func NewDesignService(
	repo *repository.OrderRepository,
	db *gorm.DB,
	minioClient *minio.Client,
	bucketName string,
	publisher *events.Publisher,
	logger *zap.Logger,
) *DesignService {
	return &DesignService{
		repo:        repo,
		db:          db,
		minioClient: minioClient,
		bucketName:  bucketName,
		publisher:   publisher,
		logger:      logger,
	}
}

// DesignUpdateRequest is the narrow design PATCH body. Pointer fields
// distinguish "not sent" from "clear".
type DesignUpdateRequest struct {
	LebarFile     *string `json:"lebar_file"`
	MatchingWarna *bool   `json:"matching_warna"`
	Qty           *string `json:"qty"`
	Keterangan    *string `json:"keterangan"`
	Status        *string `json:"status"`
	Capture       *string `json:"capture"`
	CaptureName   *string `json:"capture_name"`
	Path          *string `json:"path"`
}

// Update applies the design subset and always stamps the acting user as
// the order's designer.
func (s *DesignService) Update(ctx context.Context, orderID string, req DesignUpdateRequest, designerID string) error {
	order, err := s.repo.GetByID(orderID)
	if err != nil {
		return err
	}

	columns := map[string]interface{}{
		"designer_id": designerID,
		"version":     order.Version + 1,
	}
	if req.LebarFile != nil {
		columns["lebar_file"] = *req.LebarFile
	}
	if req.MatchingWarna != nil {
		// stored as legacy display strings, not booleans
		if *req.MatchingWarna {
			columns["matching_warna"] = entity.MatchingAda
		} else {
			columns["matching_warna"] = entity.MatchingTidakAda
		}
	}
	if req.Qty != nil {
		columns["qty"] = *req.Qty
	}
	if req.Keterangan != nil {
		columns["keterangan"] = *req.Keterangan
	}
	if req.Status != nil {
		columns["status"] = *req.Status
	}
	if req.Capture != nil {
		columns["capture"] = *req.Capture
	}
	if req.CaptureName != nil {
		columns["capture_name"] = *req.CaptureName
	}
	if req.Path != nil {
		columns["path"] = *req.Path
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		updated, err := s.repo.UpdateColumns(tx, orderID, order.Version, columns)
		if err != nil {
			return translateStoreError(err)
		}
		if !updated {
			return ErrConflict
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.publisher.Publish(ctx, events.OrderEvent{
		Type:      events.OrderDesignUpdated,
		OrderID:   orderID,
		SpkNumber: order.SpkNumber,
		Actor:     designerID,
	})
	return nil
}

// CaptureUploadResult reports a capture upload. Warning is set when the
// file landed in object storage but the order row could not be stamped;
// the upload is not rolled back in that case.
type CaptureUploadResult struct {
	ObjectPath string `json:"object_path"`
	Warning    string `json:"warning,omitempty"`
}

// UploadCapture stores a design capture in object storage and records
// its path on the order. A failed row update after a successful upload
// is reported as a partial success, not an error.
func (s *DesignService) UploadCapture(ctx context.Context, orderID, filename string, size int64, reader io.Reader, actor string) (*CaptureUploadResult, error) {
	order, err := s.repo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if s.minioClient == nil {
		return nil, fmt.Errorf("object storage not configured")
	}

	objectPath := fmt.Sprintf("captures/%s/%s%s", orderID, uuid.New().String(), filepath.Ext(filename))
	_, err = s.minioClient.PutObject(ctx, s.bucketName, objectPath, reader, size, minio.PutObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("upload capture: %w", err)
	}

	result := &CaptureUploadResult{ObjectPath: objectPath}

	columns := map[string]interface{}{
		"capture":      objectPath,
		"capture_name": filename,
		"designer_id":  actor,
		"version":      order.Version + 1,
	}
	updated, err := s.repo.UpdateColumns(nil, orderID, order.Version, columns)
	if err != nil || !updated {
		// orphaned object tolerated, surfaced as a warning
		s.logger.Warn("capture uploaded but order row not updated",
			zap.String("order_id", orderID),
			zap.String("object_path", objectPath),
			zap.Error(err),
		)
		result.Warning = "file uploaded but order record was not updated"
		return result, nil
	}

	s.publisher.Publish(ctx, events.OrderEvent{
		Type:      events.OrderDesignUpdated,
		OrderID:   orderID,
		SpkNumber: order.SpkNumber,
		Actor:     actor,
	})
	return result, nil
}
