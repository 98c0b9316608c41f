package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"venuebook/internal/handler/api"
	"venuebook/internal/handler/middleware"
	"venuebook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Availability *api.AvailabilityHandler
	Booking      *api.BookingHandler
	Slot         *api.SlotHandler
	Event        *api.EventHandler
	Export       *api.ExportHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.RateLimitMiddleware(cfg.RateLimit))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		manager := authMiddleware.RequireManager()

		destinations := apiGroup.Group("/destinations")
		{
			addRoutes(destinations, []route{
				{Method: http.MethodGet, Path: "/:id/availability", Handler: handlers.Availability.GetSlotAvailability},
				{Method: http.MethodGet, Path: "/:id/slots", Handler: handlers.Slot.ListDestinationSlots},
				{Method: http.MethodGet, Path: "/:id/events", Handler: handlers.Event.ListUpcomingEvents},
				{Method: http.MethodPost, Path: "/:id/slots", Handler: handlers.Slot.CreateSlot, Mw: []gin.HandlerFunc{manager}},
				{Method: http.MethodPost, Path: "/:id/events", Handler: handlers.Event.CreateEvent, Mw: []gin.HandlerFunc{manager}},
				{Method: http.MethodGet, Path: "/:id/bookings", Handler: handlers.Export.ListDestinationBookings, Mw: []gin.HandlerFunc{manager}},
				{Method: http.MethodGet, Path: "/:id/bookings/export", Handler: handlers.Export.ExportDestinationBookings, Mw: []gin.HandlerFunc{manager}},
			})
		}

		slots := apiGroup.Group("/slots")
		{
			addRoutes(slots, []route{
				{Method: http.MethodPut, Path: "/:id", Handler: handlers.Slot.UpdateSlot, Mw: []gin.HandlerFunc{manager}},
			})
		}

		events := apiGroup.Group("/events")
		{
			addRoutes(events, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: handlers.Event.GetEvent},
				{Method: http.MethodGet, Path: "/:id/availability", Handler: handlers.Availability.GetEventAvailability},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: handlers.Booking.CreateBooking},
				{Method: http.MethodGet, Path: "", Handler: handlers.Booking.GetUserBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: handlers.Booking.GetBooking},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
