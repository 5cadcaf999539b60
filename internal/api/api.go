package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/aaraainfra/weekly-mis/internal/api/handlers"
	"github.com/aaraainfra/weekly-mis/internal/api/middleware"
	"github.com/aaraainfra/weekly-mis/internal/auth"
	"github.com/aaraainfra/weekly-mis/internal/narrative"
	"github.com/aaraainfra/weekly-mis/internal/service"
	"github.com/aaraainfra/weekly-mis/internal/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Services struct {
	Reports   *service.ReportService
	Generator narrative.Generator
	Archive   storage.ReportArchive
	Tokens    *auth.TokenManager
}

func NewRouter(services *Services, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api/v1")

	authHandler := handlers.NewAuthHandler(services.Tokens)
	apiGroup.POST("/auth/login", authHandler.Login)

	reportHandler := handlers.NewReportHandler(services.Reports)
	narrativeHandler := handlers.NewNarrativeHandler(services.Reports, services.Generator, services.Archive)

	// Everything below requires a verified session. Roles are enforced here
	// rather than trusted from the client.
	authed := apiGroup.Group("")
	authed.Use(middleware.Authenticate(services.Tokens))
	{
		authed.GET("/views", authHandler.Views)
		authed.GET("/report", reportHandler.GetReport)
		authed.GET("/status", reportHandler.Status)

		procurement := authed.Group("")
		procurement.Use(middleware.RequireRole(auth.RoleProcurement))
		{
			procurement.PUT("/report", reportHandler.SaveReport)
			procurement.POST("/report/narrative", narrativeHandler.Generate)
		}

		finance := authed.Group("")
		finance.Use(middleware.RequireRole(auth.RoleFinance, auth.RoleProcurement))
		{
			finance.PUT("/report/finance", reportHandler.SaveFinance)
		}
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
