package api

import (
	"net/http"

	"mc-creative-backend/internal/delivery/http/middleware"
	"mc-creative-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	ContactUC     domain.ContactUsecase
	PlanUC        domain.PlanUsecase
	DiagnosticsUC domain.DiagnosticsUsecase
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	root := r.Group("")

	root.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "MC Creative Director AI backend running"})
	})

	NewDiagnosticsHandler(root, deps.DiagnosticsUC)

	// Public API routes (no auth on this service)
	apiGroup := r.Group("/api")
	NewPlanHandler(apiGroup, deps.PlanUC)
	NewContactHandler(apiGroup, deps.ContactUC)

	return r
}
