package handler

import (
	"github.com/fajarprasetia/smartone-erp-sub002/internal/service"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	resp, err := h.svc.Login(req)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, resp)
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	resp, err := h.svc.Refresh(req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, resp)
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.svc.GetCurrentUser(GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, user)
}

func (h *AuthHandler) CreateUser(c *gin.Context) {
	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	user, err := h.svc.CreateUser(req)
	if err != nil {
		respondError(c, err)
		return
	}
	Created(c, user)
}

func (h *AuthHandler) ListUsers(c *gin.Context) {
	page, pageSize := GetPagination(c)
	users, total, err := h.svc.ListUsers(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	Success(c, ListResponse{Items: users, Pagination: NewPagination(page, pageSize, total)})
}
