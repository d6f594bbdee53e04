package handlers

import (
	"aqualog/internal/logger"
	"aqualog/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	// WebSocket evaluation stream (HTTP upgrade) — same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdMiddleware)
	{
		h.registerTankRoutes(api)
		h.registerCalcRoutes(api)
	}
}

func (h *Handler) registerTankRoutes(api *gin.RouterGroup) {
	tanks := api.Group("/tanks")
	{
		tanks.POST("", h.createTank)
		tanks.GET("", h.listTanks)
		tanks.GET("/:id", h.getTank)
		tanks.PUT("/:id/volume", h.updateVolume)

		tanks.GET("/:id/ranges", h.getRanges)
		tanks.PUT("/:id/ranges", h.putRange)
		tanks.DELETE("/:id/ranges/:parameter", h.deleteRange)

		tanks.PUT("/:id/schedule", h.putSchedule)
		tanks.DELETE("/:id/schedule", h.deleteSchedule)

		tanks.POST("/:id/readings", h.postReading)
		tanks.GET("/:id/readings", h.listReadings)

		tanks.GET("/:id/evaluation", h.getEvaluation)
		tanks.GET("/:id/cycle", h.getCycle)
		tanks.POST("/:id/dosing", h.postDosing)
	}
}

func (h *Handler) registerCalcRoutes(api *gin.RouterGroup) {
	calc := api.Group("/calc")
	{
		calc.GET("/water-change", h.getWaterChange)
		calc.GET("/volume", h.getTankVolume)
	}
}
