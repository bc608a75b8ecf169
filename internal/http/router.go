package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"visionguard-service/internal/http/middleware"
	"visionguard-service/internal/storage"
)

func NewRouter(handler *Handler, authMiddleware gin.HandlerFunc, files *storage.Local, environment string) *gin.Engine {
	if environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.Static(files.PublicDir(), files.Root())

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/login", handler.login)

	profile := authGroup.Group("")
	profile.Use(authMiddleware)
	profile.GET("/profile", handler.getProfile)
	profile.PUT("/profile", handler.updateProfile)
	profile.PUT("/change-password", handler.changePassword)

	protected := api.Group("")
	protected.Use(authMiddleware)

	reports := protected.Group("/reports")
	reports.Use(middleware.RequireReports())
	reports.POST("/violations-by-worker", handler.getViolationsByWorker)
	reports.POST("/violations-by-type", handler.getViolationsByType)
	reports.GET("/monthly-summary", handler.getMonthlySummary)
	reports.POST("/export-excel", handler.exportExcel)
	reports.POST("/export-pdf", handler.exportPDF)

	violations := protected.Group("/violations")
	violations.GET("", handler.listViolations)
	violations.GET("/:id", handler.getViolation)
	violations.PATCH("/:id/status", handler.reviewViolation)

	workers := protected.Group("/workers")
	workers.GET("", handler.listWorkers)
	workers.GET("/:id", handler.getWorker)

	workersAdmin := workers.Group("")
	workersAdmin.Use(middleware.RequireRegistry())
	workersAdmin.POST("", handler.createWorker)
	workersAdmin.PUT("/:id", handler.updateWorker)
	workersAdmin.DELETE("/:id", handler.deleteWorker)

	cameras := protected.Group("/cameras")
	cameras.GET("", handler.listCameras)
	cameras.GET("/zones", handler.listZones)
	cameras.GET("/:id", handler.getCamera)

	camerasAdmin := cameras.Group("")
	camerasAdmin.Use(middleware.RequireRegistry())
	camerasAdmin.POST("", handler.createCamera)
	camerasAdmin.PUT("/:id", handler.updateCamera)
	camerasAdmin.DELETE("/:id", handler.deleteCamera)

	users := protected.Group("/users")
	users.Use(middleware.RequireRegistry())
	users.GET("", handler.listUsers)
	users.GET("/:id", handler.getUser)
	users.POST("", handler.createUser)
	users.PUT("/:id", handler.updateUser)
	users.DELETE("/:id", handler.deleteUser)
	users.POST("/:id/reset-password", handler.resetUserPassword)

	return r
}
