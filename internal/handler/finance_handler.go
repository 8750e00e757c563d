package handler

import (
	"github.com/fajarprasetia/smartone-erp-sub002/internal/service"
	"github.com/gin-gonic/gin"
)

type FinanceHandler struct {
	svc *service.FinanceService
}

func NewFinanceHandler(svc *service.FinanceService) *FinanceHandler {
	return &FinanceHandler{svc: svc}
}

func (h *FinanceHandler) CreateAccount(c *gin.Context) {
	var req service.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	account, err := h.svc.CreateAccount(req)
	if err != nil {
		respondError(c, err)
		return
	}
	Created(c, account)
}

func (h *FinanceHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.svc.ListAccounts(c.Query("type"))
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, gin.H{"accounts": accounts})
}

func (h *FinanceHandler) CreateBudget(c *gin.Context) {
	var req service.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	budget, err := h.svc.CreateBudget(req, GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	Created(c, budget)
}

func (h *FinanceHandler) ListBudgets(c *gin.Context) {
	budgets, err := h.svc.ListBudgets(c.Query("period"))
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, gin.H{"budgets": budgets})
}

func (h *FinanceHandler) CreatePayable(c *gin.Context) {
	var req service.CreatePayableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	payable, err := h.svc.CreatePayable(req, GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	Created(c, payable)
}

func (h *FinanceHandler) PayPayable(c *gin.Context) {
	var req service.PayPayableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	payable, err := h.svc.PayPayable(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, payable)
}

func (h *FinanceHandler) ListPayables(c *gin.Context) {
	page, pageSize := GetPagination(c)
	payables, total, err := h.svc.ListPayables(c.Query("status"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, ListResponse{Items: payables, Pagination: NewPagination(page, pageSize, total)})
}

func (h *FinanceHandler) CreateJournalEntry(c *gin.Context) {
	var req service.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	entry, err := h.svc.CreateJournalEntry(req, GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	Created(c, entry)
}

func (h *FinanceHandler) PostJournalEntry(c *gin.Context) {
	entry, err := h.svc.PostJournalEntry(c.Param("id"), GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, entry)
}

func (h *FinanceHandler) GetJournalEntry(c *gin.Context) {
	entry, err := h.svc.GetJournalEntry(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, entry)
}

func (h *FinanceHandler) ListJournalEntries(c *gin.Context) {
	page, pageSize := GetPagination(c)
	entries, total, err := h.svc.ListJournalEntries(c.Query("status"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, ListResponse{Items: entries, Pagination: NewPagination(page, pageSize, total)})
}
