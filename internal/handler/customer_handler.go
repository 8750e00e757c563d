package handler

import (
	"github.com/fajarprasetia/smartone-erp-sub002/internal/repository"
	"github.com/fajarprasetia/smartone-erp-sub002/internal/service"
	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	svc *service.CustomerService
}

func NewCustomerHandler(svc *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req service.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	customer, err := h.svc.Create(req, GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	Created(c, customer)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	customer, err := h.svc.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, customer)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	var req service.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	customer, err := h.svc.Update(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, customer)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	Success(c, nil)
}

func (h *CustomerHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	customers, total, err := h.svc.List(repository.CustomerListParams{
		Keyword: c.Query("keyword"),
		Page:    page,
		Size:    pageSize,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, ListResponse{Items: customers, Pagination: NewPagination(page, pageSize, total)})
}
