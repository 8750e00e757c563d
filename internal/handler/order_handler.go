package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fajarprasetia/smartone-erp-sub002/internal/repository"
	"github.com/fajarprasetia/smartone-erp-sub002/internal/service"
	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	svc       *service.OrderService
	designSvc *service.DesignService
	reportSvc *service.ReportService
}

func NewOrderHandler(svc *service.OrderService, designSvc *service.DesignService, reportSvc *service.ReportService) *OrderHandler {
	return &OrderHandler{svc: svc, designSvc: designSvc, reportSvc: reportSvc}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req service.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	order, err := h.svc.Create(c.Request.Context(), req, GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	Created(c, order)
}

func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, order)
}

func (h *OrderHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	orders, total, err := h.svc.List(repository.OrderListParams{
		Status:     c.Query("status"),
		CustomerID: c.Query("customer_id"),
		Keyword:    c.Query("keyword"),
		Page:       page,
		Size:       pageSize,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, ListResponse{Items: orders, Pagination: NewPagination(page, pageSize, total)})
}

// Update accepts the raw legacy payload, alias forms included, and runs
// it through the field normalizer.
func (h *OrderHandler) Update(c *gin.Context) {
	var input map[string]interface{}
	if err := c.ShouldBindJSON(&input); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	order, err := h.svc.Update(c.Request.Context(), c.Param("id"), input, GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, order)
}

// UpdateDesign is the designer PATCH: a typed subset of the order that
// always stamps the acting user as designer.
func (h *OrderHandler) UpdateDesign(c *gin.Context) {
	var req service.DesignUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if err := h.designSvc.Update(c.Request.Context(), c.Param("id"), req, GetUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	order, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, order)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), GetUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	Success(c, nil)
}

type advanceStageRequest struct {
	Stage string `json:"stage" binding:"required"`
	Notes string `json:"notes"`
}

func (h *OrderHandler) AdvanceStage(c *gin.Context) {
	var req advanceStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if err := h.svc.AdvanceStage(c.Request.Context(), c.Param("id"), req.Stage, req.Notes, GetUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	order, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, order)
}

func (h *OrderHandler) ListProductionLogs(c *gin.Context) {
	logs, err := h.svc.ListProductionLogs(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, gin.H{"logs": logs})
}

// UploadCapture receives a multipart design capture and stores it in
// object storage. A 200 with a warning means the file landed but the
// order row did not take the reference.
func (h *OrderHandler) UploadCapture(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		BadRequest(c, "file is required")
		return
	}
	defer file.Close()

	result, err := h.designSvc.UploadCapture(
		c.Request.Context(), c.Param("id"), header.Filename, header.Size, file, GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, result)
}

func (h *OrderHandler) Export(c *gin.Context) {
	data, err := h.reportSvc.ExportOrdersXLSX()
	if err != nil {
		respondError(c, err)
		return
	}
	filename := fmt.Sprintf("orders-%s.xlsx", time.Now().Format("20060102-150405"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
