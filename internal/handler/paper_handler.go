package handler

import (
	"github.com/fajarprasetia/smartone-erp-sub002/internal/repository"
	"github.com/fajarprasetia/smartone-erp-sub002/internal/service"
	"github.com/gin-gonic/gin"
)

type PaperHandler struct {
	svc *service.PaperService
}

func NewPaperHandler(svc *service.PaperService) *PaperHandler {
	return &PaperHandler{svc: svc}
}

// ValidateBarcode matches a scanned roll against the requested paper
// specification. An invalid verdict is still a 200; the verdict body
// carries the itemized mismatches.
func (h *PaperHandler) ValidateBarcode(c *gin.Context) {
	var req service.ValidateBarcodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	result, err := h.svc.ValidateBarcode(req)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, result)
}

func (h *PaperHandler) InboundStock(c *gin.Context) {
	var req service.InboundPaperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	stock, err := h.svc.InboundStock(req, GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	Created(c, stock)
}

func (h *PaperHandler) ApproveStock(c *gin.Context) {
	stock, err := h.svc.ApproveStock(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, stock)
}

func (h *PaperHandler) ListStocks(c *gin.Context) {
	page, pageSize := GetPagination(c)
	params := repository.PaperStockListParams{
		PaperType: c.Query("paper_type"),
		Keyword:   c.Query("keyword"),
		Page:      page,
		Size:      pageSize,
	}
	if v := c.Query("approved"); v == "true" || v == "false" {
		approved := v == "true"
		params.Approved = &approved
	}
	stocks, total, err := h.svc.ListStocks(params)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, ListResponse{Items: stocks, Pagination: NewPagination(page, pageSize, total)})
}

func (h *PaperHandler) CreateRequest(c *gin.Context) {
	var req service.CreatePaperRequestInput
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	request, err := h.svc.CreateRequest(req, GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	Created(c, request)
}

type approvePaperRequest struct {
	BarcodeID string `json:"barcode_id" binding:"required"`
}

func (h *PaperHandler) ApproveRequest(c *gin.Context) {
	var req approvePaperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	result, err := h.svc.ApproveRequest(c.Param("id"), req.BarcodeID, GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, result)
}

func (h *PaperHandler) ListRequests(c *gin.Context) {
	page, pageSize := GetPagination(c)
	reqs, total, err := h.svc.ListRequests(repository.PaperRequestListParams{
		Status:  c.Query("status"),
		OrderID: c.Query("order_id"),
		Page:    page,
		Size:    pageSize,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, ListResponse{Items: reqs, Pagination: NewPagination(page, pageSize, total)})
}
