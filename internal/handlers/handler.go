package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"smartfurnace/internal/logger"
	"smartfurnace/internal/metrics"
	"smartfurnace/internal/service"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	metrics  *metrics.Metrics
}

// NewHandler constructs a new HTTP handler with dependencies. log and m may
// be nil.
func NewHandler(services *service.Service, log *logger.Logger, m *metrics.Metrics) *Handler {
	return &Handler{services: services, log: log, metrics: m}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)
	if h.metrics != nil {
		router.GET("/metrics", gin.WrapH(h.metrics.Handler()))
	}

	h.registerAPIRoutes(router)

	// WebSocket stream (HTTP upgrade) on the same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")
	{
		h.registerScheduleRoutes(api)
		h.registerCycleRoutes(api)
		h.registerLogRoutes(api)
	}
}

func (h *Handler) registerScheduleRoutes(api *gin.RouterGroup) {
	schedules := api.Group("/schedules")
	{
		schedules.GET("", h.listSchedules)
		schedules.GET("/:name", h.getSchedule)
		// Body example: {"steps":[{"kind":"Ramp","start_temp_c":20,"end_temp_c":600,"duration":"02:00"}]}
		schedules.PUT("/:name", h.saveSchedule)
		schedules.DELETE("/:name", h.deleteSchedule)
		schedules.GET("/:name/curve", h.getCurve)
		schedules.GET("/:name/evaluate", h.evaluateSchedule)
		schedules.GET("/:name/commands", h.getCommands)
	}
}

func (h *Handler) registerCycleRoutes(api *gin.RouterGroup) {
	api.POST("/cycle/start", h.startCycle)
	api.GET("/cycle", h.getCycle)
	api.GET("/selection", h.getSelection)
	api.PUT("/selection", h.putSelection)
	api.GET("/reading", h.getReading)
}

func (h *Handler) registerLogRoutes(api *gin.RouterGroup) {
	logs := api.Group("/logs")
	{
		logs.GET("", h.getLogs)
		logs.GET("/", h.getLogs)
	}
}
