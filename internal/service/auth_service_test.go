package service

import (
	"testing"
	"time"

	"github.com/fajarprasetia/smartone-erp-sub002/internal/config"
	"github.com/fajarprasetia/smartone-erp-sub002/internal/middleware"
	"github.com/fajarprasetia/smartone-erp-sub002/internal/model/entity"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSignToken_Roundtrip(t *testing.T) {
	svc := &AuthService{
		jwtCfg: config.JWTConfig{
			Secret:            "test-secret",
			AccessTokenExpire: 2 * time.Hour,
			Issuer:            "smartone-erp",
		},
		logger: zap.NewNop(),
	}
	user := &entity.User{
		ID:    "user-1",
		Name:  "Dewi",
		Email: "dewi@example.com",
		Role:  entity.RoleDesigner,
	}

	signed, err := svc.signToken(user, svc.jwtCfg.AccessTokenExpire)
	require.NoError(t, err)

	token, err := jwt.ParseWithClaims(signed, &middleware.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(*middleware.JWTClaims)
	require.True(t, ok)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, entity.RoleDesigner, claims.Role)
	assert.Equal(t, "smartone-erp", claims.Issuer)
}

func TestSignToken_WrongSecretRejected(t *testing.T) {
	svc := &AuthService{
		jwtCfg: config.JWTConfig{Secret: "right", AccessTokenExpire: time.Hour},
		logger: zap.NewNop(),
	}
	signed, err := svc.signToken(&entity.User{ID: "u1"}, time.Hour)
	require.NoError(t, err)

	_, err = jwt.ParseWithClaims(signed, &middleware.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte("wrong"), nil
	})
	assert.Error(t, err)
}
