package router

import (
	"github.com/yashkabra143/TimeTrakr/internal/config"
	"github.com/yashkabra143/TimeTrakr/internal/handler"
	"github.com/yashkabra143/TimeTrakr/internal/middleware"
	"github.com/yashkabra143/TimeTrakr/internal/repository"
	"github.com/yashkabra143/TimeTrakr/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires the JSON API.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	store := repository.NewStore(db)
	svc := service.NewLedger(store)

	api := r.Group("/api")

	authHandler := handler.NewAuthHandler(cfg.Auth, cfg.JWT)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(
		middleware.AuthMiddleware(cfg.JWT.Secret),
		middleware.AuditMiddleware(store.Audit),
	)

	protected.GET("/me", handler.Me)

	projectHandler := handler.NewProjectHandler(store)
	protected.GET("/projects", projectHandler.List)
	protected.POST("/projects", projectHandler.Create)
	protected.PUT("/projects/:id", projectHandler.Update)
	protected.DELETE("/projects/:id", projectHandler.Delete)

	settingsHandler := handler.NewSettingsHandler(store)
	protected.GET("/settings/deductions", settingsHandler.GetDeductions)
	protected.PUT("/settings/deductions", settingsHandler.UpdateDeductions)
	protected.GET("/settings/currency", settingsHandler.GetCurrency)
	protected.PUT("/settings/currency", settingsHandler.UpdateCurrency)

	entryHandler := handler.NewEntryHandler(svc, store)
	protected.POST("/entries", entryHandler.Create)
	protected.GET("/entries", entryHandler.List)
	protected.GET("/entries/:id", entryHandler.Get)
	protected.DELETE("/entries/:id", entryHandler.Delete)

	withdrawalHandler := handler.NewWithdrawalHandler(svc, store)
	protected.POST("/withdrawals", withdrawalHandler.Create)
	protected.GET("/withdrawals", withdrawalHandler.List)
	protected.PATCH("/withdrawals/:id/status", withdrawalHandler.SetStatus)
	protected.DELETE("/withdrawals/:id", withdrawalHandler.Delete)

	dashboardHandler := handler.NewDashboardHandler(svc)
	protected.GET("/dashboard/summary", dashboardHandler.Summary)
	protected.GET("/dashboard/weekly", dashboardHandler.Weekly)

	exportHandler := handler.NewExportHandler(store)
	protected.GET("/export/csv", exportHandler.CSV)
	protected.GET("/export/xlsx", exportHandler.XLSX)

	backupHandler := handler.NewBackupHandler(store, cfg.Backup.Dir)
	protected.POST("/backups", backupHandler.Create)
	protected.GET("/backups", backupHandler.List)
	protected.GET("/backups/:id/download", backupHandler.Download)
	protected.DELETE("/backups/:id", backupHandler.Delete)

	logHandler := handler.NewLogHandler(store)
	protected.GET("/logs", logHandler.List)

	return r
}
