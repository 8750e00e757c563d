package handler

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/fajarprasetia/smartone-erp-sub002/internal/repository"
	"github.com/fajarprasetia/smartone-erp-sub002/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRespondError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation error is 400", service.NewValidationError("qty", "qty required"), 400},
		{"not found is 404", repository.ErrNotFound, 404},
		{"version conflict is 409", service.ErrConflict, 409},
		{"unknown error is 500", errors.New("pg connection reset"), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			respondError(c, tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRespondError_InternalErrorHidesDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondError(c, errors.New("dial tcp 10.0.0.5:5432: connect refused"))

	assert.Equal(t, 500, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 20, 45)
	assert.Equal(t, int64(3), p.TotalPages)
	assert.Equal(t, int64(45), p.Total)

	p = NewPagination(1, 20, 40)
	assert.Equal(t, int64(2), p.TotalPages)
}
