package service

import (
	"fmt"
	"time"

	"github.com/fajarprasetia/smartone-erp-sub002/internal/config"
	"github.com/fajarprasetia/smartone-erp-sub002/internal/middleware"
	"github.com/fajarprasetia/smartone-erp-sub002/internal/model/entity"
	"github.com/fajarprasetia/smartone-erp-sub002/internal/repository"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo *repository.UserRepository
	jwtCfg   config.JWTConfig
	logger   *zap.Logger
}

func NewAuthService(userRepo *repository.UserRepository, jwtCfg config.JWTConfig, logger *zap.Logger) *AuthService {
	return &AuthService{userRepo: userRepo, jwtCfg: jwtCfg, logger: logger}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int64        `json:"expires_in"`
	User         *entity.User `json:"user"`
}

// errInvalidCredentials covers both unknown email and wrong password so
// the response does not reveal which one failed.
var errInvalidCredentials = NewValidationError("", "invalid email or password")

func (s *AuthService) Login(req LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, errInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("failed login attempt", zap.String("email", req.Email))
		return nil, errInvalidCredentials
	}

	accessToken, err := s.signToken(user, s.jwtCfg.AccessTokenExpire)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}
	refreshToken, err := s.signToken(user, s.jwtCfg.RefreshTokenExpire)
	if err != nil {
		return nil, fmt.Errorf("sign refresh token: %w", err)
	}

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtCfg.AccessTokenExpire.Seconds()),
		User:         user,
	}, nil
}

// Refresh reissues an access token from a still-valid refresh token.
func (s *AuthService) Refresh(refreshToken string) (*LoginResponse, error) {
	token, err := jwt.ParseWithClaims(refreshToken, &middleware.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.jwtCfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, NewValidationError("refresh_token", "invalid or expired refresh token")
	}
	claims, ok := token.Claims.(*middleware.JWTClaims)
	if !ok {
		return nil, NewValidationError("refresh_token", "invalid token claims")
	}

	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.signToken(user, s.jwtCfg.AccessTokenExpire)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}
	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwtCfg.AccessTokenExpire.Seconds()),
		User:         user,
	}, nil
}

func (s *AuthService) GetCurrentUser(userID string) (*entity.User, error) {
	return s.userRepo.GetByID(userID)
}

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
}

func (s *AuthService) CreateUser(req CreateUserRequest) (*entity.User, error) {
	validRoles := map[string]bool{
		entity.RoleAdmin:      true,
		entity.RoleMarketing:  true,
		entity.RoleDesigner:   true,
		entity.RoleProduction: true,
		entity.RoleFinance:    true,
	}
	if !validRoles[req.Role] {
		return nil, NewValidationError("role", "unknown role: "+req.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, translateStoreError(err)
	}
	return user, nil
}

func (s *AuthService) ListUsers(page, size int) ([]entity.User, int64, error) {
	return s.userRepo.List(page, size)
}

func (s *AuthService) signToken(user *entity.User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := middleware.JWTClaims{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.jwtCfg.Issuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtCfg.Secret))
}
