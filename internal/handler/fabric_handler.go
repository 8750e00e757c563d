package handler

import (
	"github.com/fajarprasetia/smartone-erp-sub002/internal/repository"
	"github.com/fajarprasetia/smartone-erp-sub002/internal/service"
	"github.com/gin-gonic/gin"
)

type FabricHandler struct {
	svc *service.FabricService
}

func NewFabricHandler(svc *service.FabricService) *FabricHandler {
	return &FabricHandler{svc: svc}
}

func (h *FabricHandler) Inbound(c *gin.Context) {
	var req service.InboundFabricRequest
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

func (h *FabricHandler) Outbound(c *gin.Context) {
	var req service.FabricMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	stock, err := h.svc.OutboundStock(c.Param("id"), req, GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, stock)
}

func (h *FabricHandler) Adjust(c *gin.Context) {
	var req service.FabricAdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	stock, err := h.svc.AdjustStock(c.Param("id"), req, GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, stock)
}

func (h *FabricHandler) Get(c *gin.Context) {
	stock, err := h.svc.GetStock(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, stock)
}

func (h *FabricHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	stocks, total, err := h.svc.ListStocks(repository.FabricStockListParams{
		CustomerID: c.Query("customer_id"),
		Keyword:    c.Query("keyword"),
		LowStock:   c.Query("low_stock") == "true",
		Page:       page,
		Size:       pageSize,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, ListResponse{Items: stocks, Pagination: NewPagination(page, pageSize, total)})
}

func (h *FabricHandler) ListTransactions(c *gin.Context) {
	page, pageSize := GetPagination(c)
	txs, total, err := h.svc.ListTransactions(c.Param("id"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, ListResponse{Items: txs, Pagination: NewPagination(page, pageSize, total)})
}
