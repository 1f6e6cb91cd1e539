package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"lab-reservation/internal/domain/user"
	"lab-reservation/internal/handler/api"
	"lab-reservation/internal/handler/middleware"
	"lab-reservation/internal/infra/metrics"
	"lab-reservation/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine              *gin.Engine
	Config              config.Config
	Metrics             *metrics.Metrics
	AuthMiddleware      *middleware.AuthMiddleware
	AuthHandler         *api.AuthHandler
	BookingHandler      *api.BookingHandler
	ApprovalHandler     *api.ApprovalHandler
	DeviceHandler       *api.DeviceHandler
	AvailabilityHandler *api.AvailabilityHandler
	FinanceHandler      *api.FinanceHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Metrics)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	if cfg.Metrics.Enabled {
		engine.Use(middleware.Metrics(m))
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine, authMw := p.Engine, p.AuthMiddleware

	engine.GET("/health", healthCheck)

	if p.Config.Metrics.Enabled {
		engine.GET(p.Config.Metrics.Path, gin.WrapH(promhttp.HandlerFor(p.Metrics.Registry(), promhttp.HandlerOpts{})))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	adminOnly := []gin.HandlerFunc{authMw.RequireAnyRole(user.RoleAdmin)}
	approvers := []gin.HandlerFunc{authMw.RequireAnyRole(user.RoleTeacher, user.RoleAdmin, user.RoleManager)}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: p.AuthHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: p.AuthHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMw.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: p.AuthHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: p.AuthHandler.Me},
			})
		}

		devices := apiGroup.Group("/devices")
		{
			addRoutes(devices, []route{
				{Method: http.MethodGet, Path: "", Handler: p.DeviceHandler.List},
				{Method: http.MethodGet, Path: "/:code", Handler: p.DeviceHandler.Get},
			})

			authRequired := devices.Group("")
			authRequired.Use(authMw.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/:code/availability", Handler: p.AvailabilityHandler.Get},
				{Method: http.MethodPut, Path: "/:code/status", Handler: p.DeviceHandler.ChangeStatus, Mw: adminOnly},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMw.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: p.BookingHandler.Create},
				{Method: http.MethodGet, Path: "", Handler: p.BookingHandler.ListMine},
				{Method: http.MethodGet, Path: "/:code", Handler: p.BookingHandler.Get},
				{Method: http.MethodPost, Path: "/:code/cancel", Handler: p.BookingHandler.Cancel},
				{Method: http.MethodPost, Path: "/:code/return", Handler: p.BookingHandler.RecordReturn, Mw: adminOnly},
			})
		}

		approvals := apiGroup.Group("/approvals")
		approvals.Use(authMw.RequireAuth())
		{
			addRoutes(approvals, []route{
				{Method: http.MethodGet, Path: "/pending", Handler: p.ApprovalHandler.ListPending, Mw: approvers},
				{Method: http.MethodPost, Path: "/batch", Handler: p.ApprovalHandler.BatchDecide, Mw: approvers},
				{Method: http.MethodPost, Path: "/:code", Handler: p.ApprovalHandler.Decide, Mw: approvers},
			})
		}

		finance := apiGroup.Group("/finance")
		finance.Use(middleware.RequireFinanceToken(p.Config.Finance.CallbackToken))
		{
			addRoutes(finance, []route{
				{Method: http.MethodPost, Path: "/callback", Handler: p.FinanceHandler.Callback},
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
