package app

import (
	"net/http"

	"github.com/PILLP-HO/pillp-lms/internal/employee"
	"github.com/PILLP-HO/pillp-lms/internal/hr"
	"github.com/PILLP-HO/pillp-lms/internal/hrmanager"
	"github.com/PILLP-HO/pillp-lms/internal/manager"
	"github.com/PILLP-HO/pillp-lms/internal/middleware"
	"github.com/PILLP-HO/pillp-lms/internal/partner"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// BuildRouter registers every role's route group under /api/v1.
func BuildRouter(a *App, logger *zap.Logger) *gin.Engine {
	if a.Config.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RateLimitByIP(rate.Limit(a.Config.RateLimitRPS), a.Config.RateLimitBurst))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	var submitGuards []gin.HandlerFunc
	if a.Redis != nil {
		submitGuards = append(submitGuards, middleware.SubmitLock(a.Redis))
	}

	api := r.Group("/api/v1")

	employee.RegisterRoutes(api, employee.NewHandler(a.Directory, a.Leaves, logger), submitGuards...)
	manager.RegisterRoutes(api, manager.NewHandler(a.Directory, a.Leaves, logger), submitGuards...)
	hr.RegisterRoutes(api, hr.NewHandler(a.Directory, a.Leaves, logger), submitGuards...)
	hrmanager.RegisterRoutes(api, hrmanager.NewHandler(a.Directory, a.Leaves, logger), submitGuards...)
	partner.RegisterRoutes(api, partner.NewHandler(a.Directory, a.Leaves, logger))

	return r
}
