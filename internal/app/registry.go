package app

import (
	"database/sql"

	"go-checkin/internal/attendance"
	"go-checkin/internal/auth"
	"go-checkin/internal/config"
	"go-checkin/internal/geofence"
	"go-checkin/internal/messaging/kafka"
	"go-checkin/internal/rbac"
	"go-checkin/internal/rbac/infra"
	"go-checkin/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer, rbac.DefaultPolicy())
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(authRepo, cfg.JWTSecret, cfg.JWTTTL)
	reportService := report.NewService(
		attendanceRepo,
		report.NewXLSXSink(),
		cfg.Location,
		report.WithCache(rdb, cfg.ReportCacheTTL),
	)
	attendanceService := attendance.NewService(
		db,
		attendanceRepo,
		punchPolicy(cfg),
		attendance.WithOutbox(outboxRepo),
		attendance.WithLocker(attendance.NewRedisLocker(rdb, 0)),
		attendance.WithCacheInvalidator(reportService),
	)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, cfg.IsProduction())
	attendanceHandler := attendance.NewHandlerWithRedis(attendanceService, rdb)
	reportHandler := report.NewHandler(reportService, cfg.Location)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Routes Registration ---
	auth.RegisterRoutes(router, authHandler, authService)
	attendance.RegisterRoutes(router, attendanceHandler, authService, rbacService, rdb)
	report.RegisterRoutes(router, reportHandler, authService, rbacService)
	rbac.RegisterRoutes(router, rbacHandler, authService)

	return nil
}

func punchPolicy(cfg config.Config) attendance.Policy {
	return attendance.Policy{
		Office: geofence.Fence{
			Center: geofence.Point{
				Latitude:  cfg.Office.Latitude,
				Longitude: cfg.Office.Longitude,
			},
			RadiusMeters: cfg.Office.RadiusMeters,
		},
		Cooldown:         cfg.Cooldown(),
		MaxPunchesPerDay: cfg.MaxPunchesPerDay,
		Location:         cfg.Location,
	}
}
