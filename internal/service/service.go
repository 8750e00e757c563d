package service

import (
	"github.com/fajarprasetia/smartone-erp-sub002/internal/config"
	"github.com/fajarprasetia/smartone-erp-sub002/internal/events"
	"github.com/fajarprasetia/smartone-erp-sub002/internal/repository"
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Services bundles all services for wiring.
type Services struct {
	Auth     *AuthService
	Order    *OrderService
	Design   *DesignService
	Paper    *PaperService
	Fabric   *FabricService
	Finance  *FinanceService
	Customer *CustomerService
	Report   *ReportService
}

type Deps struct {
	DB          *gorm.DB
	Redis       *redis.Client
	MinIO       *minio.Client
	MinIOBucket string
	Publisher   *events.Publisher
	JWT         config.JWTConfig
	Logger      *zap.Logger
}

func NewServices(repos *repository.Repositories, deps Deps) *Services {
	return &Services{
		Auth:     NewAuthService(repos.User, deps.JWT, deps.Logger),
		Order:    NewOrderService(repos.Order, repos.Customer, repos.User, deps.DB, deps.Redis, deps.Publisher, deps.Logger),
		Design:   NewDesignService(repos.Order, deps.DB, deps.MinIO, deps.MinIOBucket, deps.Publisher, deps.Logger),
		Paper:    NewPaperService(repos.Paper, deps.Logger),
		Fabric:   NewFabricService(repos.Fabric, deps.DB, deps.Logger),
		Finance:  NewFinanceService(repos.Finance, deps.DB, deps.Logger),
		Customer: NewCustomerService(repos.Customer),
		Report:   NewReportService(repos.Order),
	}
}
