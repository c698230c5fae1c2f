package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"clinic-booking/internal/handler/api"
	reqdto "clinic-booking/internal/handler/dto/request"
	"clinic-booking/internal/handler/middleware"
	"clinic-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine         *gin.Engine
	Config         config.Config
	Logger         *middleware.Logger
	AuthMiddleware *middleware.AuthMiddleware
	Auth           *api.AuthHandler
	Availability   *api.AvailabilityHandler
	Visits         *api.VisitHandler
	Patients       *api.PatientHandler
	Admin          *api.AdminHandler
}

func NewRouter(p RouterParams) {
	reqdto.RegisterValidators()
	setupMiddleware(p.Engine, p.Config, p.Logger)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.Metrics())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := p.AuthMiddleware.RequireAuth()

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: p.Auth.Register},
				{Method: http.MethodGet, Path: "/confirm/:token", Handler: p.Auth.Confirm},
				{Method: http.MethodPost, Path: "/login", Handler: p.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: p.Auth.Logout, Mw: []gin.HandlerFunc{requireAuth}},
				{Method: http.MethodGet, Path: "/me", Handler: p.Auth.Me, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		availability := apiGroup.Group("/availability")
		{
			addRoutes(availability, []route{
				{Method: http.MethodGet, Path: "", Handler: p.Availability.Day},
				{Method: http.MethodGet, Path: "/week", Handler: p.Availability.Week},
			})
		}

		visits := apiGroup.Group("/visits")
		visits.Use(requireAuth)
		{
			addRoutes(visits, []route{
				{Method: http.MethodPost, Path: "", Handler: p.Visits.Book},
				{Method: http.MethodGet, Path: "", Handler: p.Visits.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: p.Visits.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: p.Visits.Cancel},
			})
		}

		patients := apiGroup.Group("/patients")
		patients.Use(requireAuth)
		{
			addRoutes(patients, []route{
				{Method: http.MethodPatch, Path: "/:id", Handler: p.Patients.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: p.Patients.Delete},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(requireAuth, p.AuthMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/blocks", Handler: p.Admin.Block},
				{Method: http.MethodPost, Path: "/walk-ins", Handler: p.Admin.WalkIn},
				{Method: http.MethodGet, Path: "/visits", Handler: p.Admin.ListVisits},
				{Method: http.MethodGet, Path: "/patients", Handler: p.Admin.ListPatients},
				{Method: http.MethodGet, Path: "/patients/:id", Handler: p.Admin.GetPatient},
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

// chainHandlers runs hs in order and stops at the first abort. Middleware
// used here must not rely on c.Next to reach the handler.
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
