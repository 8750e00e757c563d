package handler

import (
	"errors"
	"strconv"

	"github.com/fajarprasetia/smartone-erp-sub002/internal/repository"
	"github.com/fajarprasetia/smartone-erp-sub002/internal/service"
	"github.com/gin-gonic/gin"
)

// Handlers bundles all handlers for route registration.
type Handlers struct {
	Auth     *AuthHandler
	Order    *OrderHandler
	Paper    *PaperHandler
	Fabric   *FabricHandler
	Finance  *FinanceHandler
	Customer *CustomerHandler
}

func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Auth:     NewAuthHandler(svc.Auth),
		Order:    NewOrderHandler(svc.Order, svc.Design, svc.Report),
		Paper:    NewPaperHandler(svc.Paper),
		Fabric:   NewFabricHandler(svc.Fabric),
		Finance:  NewFinanceHandler(svc.Finance),
		Customer: NewCustomerHandler(svc.Customer),
	}
}

// Response is the uniform API envelope.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

type ListResponse struct {
	Items      interface{} `json:"items"`
	Pagination *Pagination `json:"pagination"`
}

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
}

func NewPagination(page, size int, total int64) *Pagination {
	pages := total / int64(size)
	if total%int64(size) != 0 {
		pages++
	}
	return &Pagination{Page: page, PageSize: size, Total: total, TotalPages: pages}
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{Code: 0, Message: "success", Data: data})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(201, Response{Code: 0, Message: "success", Data: data})
}

func Error(c *gin.Context, code int, message string) {
	statusCode := code / 100
	if statusCode < 100 || statusCode > 599 {
		statusCode = 500
	}
	c.JSON(statusCode, Response{Code: code, Message: message})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, 40000, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, 40100, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 40400, message)
}

func Conflict(c *gin.Context, message string) {
	Error(c, 40900, message)
}

func InternalError(c *gin.Context, message string) {
	Error(c, 50000, message)
}

// respondError maps the service error taxonomy onto HTTP. Unrecognized
// errors become a generic 500 without leaking internals.
func respondError(c *gin.Context, err error) {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		c.JSON(400, Response{
			Code:    40001,
			Message: ve.Message,
			Details: gin.H{"field": ve.Field},
		})
		return
	}
	var ce *service.ConstraintError
	if errors.As(err, &ce) {
		c.JSON(400, Response{
			Code:    40002,
			Message: err.Error(),
			Details: gin.H{"constraint": ce.Constraint},
		})
		return
	}
	if errors.Is(err, repository.ErrNotFound) {
		NotFound(c, err.Error())
		return
	}
	if errors.Is(err, service.ErrConflict) {
		Conflict(c, err.Error())
		return
	}
	InternalError(c, "internal server error")
}

// GetUserID returns the authenticated user id from the request context.
func GetUserID(c *gin.Context) string {
	userID, _ := c.Get("user_id")
	if id, ok := userID.(string); ok {
		return id
	}
	return ""
}

// GetPagination reads page/page_size query params with sane bounds.
func GetPagination(c *gin.Context) (page, pageSize int) {
	page = 1
	pageSize = 20

	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}
	if ps := c.Query("page_size"); ps != "" {
		if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
			pageSize = v
		}
	}
	return page, pageSize
}
