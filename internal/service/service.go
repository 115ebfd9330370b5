package service

import (
	"go.uber.org/zap"

	"rotahub/config"
	"rotahub/internal/repository"
	"rotahub/pkg/jwt"
	"rotahub/pkg/redis"
)

// Service is the aggregate entry point for all business services.
type Service struct {
	Auth       AuthService
	Employee   EmployeeService
	Rota       RotaService
	Attendance AttendanceService
	Exception  ExceptionService
	Report     ReportService
	Export     ExportService
}

// NewService wires the service aggregate. cache may be nil when Redis is
// not configured.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	cache *redis.Client,
	logger *zap.Logger,
) *Service {
	reports := NewReportService(repo, logger)
	return &Service{
		Auth:       NewAuthService(repo, jwtMgr, cache, logger),
		Employee:   NewEmployeeService(repo, logger),
		Rota:       NewRotaService(repo, &cfg.Rota, logger),
		Attendance: NewAttendanceService(repo, logger),
		Exception:  NewExceptionService(repo, &cfg.Rota, logger),
		Report:     reports,
		Export:     NewExportService(repo, reports, logger),
	}
}
