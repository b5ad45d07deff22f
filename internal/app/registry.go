package app

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"go-timesheet/internal/auth"
	"go-timesheet/internal/authz"
	"go-timesheet/internal/authz/infra"
	"go-timesheet/internal/messaging/kafka"
	"go-timesheet/internal/middleware"
	"go-timesheet/internal/notification"
	"go-timesheet/internal/overtime"
	"go-timesheet/internal/summary"
	"go-timesheet/internal/tenant"
	"go-timesheet/internal/timesheet"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	authzRepo := authz.NewRepository(gormDB)
	notificationRepo := notification.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	tenantRepo := tenant.NewRepository(gormDB)
	timesheetRepo := timesheet.NewRepository(gormDB)

	// --- Authorization Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "authz", "infra", "model.conf"))
	if err != nil {
		return err
	}
	authzService := authz.NewService(authzRepo, enforcer)

	// --- Payroll Summary Client ---
	summaryClient := summary.NewHTTPClient(os.Getenv("PAYROLL_SERVICE_URL"), 10*time.Second)
	cachedSummaries := summary.NewCachedClient(summaryClient, rdb, 5*time.Minute)

	// --- Services ---
	authService := auth.NewService(authRepo)
	notificationService := notification.NewService(notificationRepo)
	tenantService := tenant.NewService(tenantRepo)
	timesheetService := timesheet.NewService(db, timesheetRepo, tenantRepo, authzService)
	overtimeService := overtime.NewService(db, timesheetRepo, tenantRepo, authzService, cachedSummaries, outboxRepo, rdb)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	notificationHandler := notification.NewHandler(notificationService)
	overtimeHandler := overtime.NewHandler(overtimeService)
	tenantHandler := tenant.NewHandler(tenantService)
	timesheetHandler := timesheet.NewHandlerWithRedis(timesheetService, rdb)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		notification.RegisterRoutes(api, notificationHandler)
		overtime.RegisterRoutes(api, overtimeHandler)
		tenant.RegisterRoutes(api, tenantHandler)
		timesheet.RegisterRoutes(api, timesheetHandler, rdb)
	}

	return nil
}
