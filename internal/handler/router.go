package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"aaai-platform/internal/handler/api"
	"aaai-platform/internal/handler/middleware"
	"aaai-platform/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, catalogHandler *api.CatalogHandler, paymentHandler *api.PaymentHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, catalogHandler, paymentHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, catalogHandler *api.CatalogHandler, paymentHandler *api.PaymentHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		courses := apiGroup.Group("/courses")
		{
			addRoutes(courses, []route{
				{Method: http.MethodGet, Path: "", Handler: catalogHandler.ListCourses},
				{Method: http.MethodGet, Path: "/:id", Handler: catalogHandler.GetCourse},
				{Method: http.MethodPost, Path: "", Handler: catalogHandler.CreateCourse},
			})
		}

		projects := apiGroup.Group("/projects")
		{
			addRoutes(projects, []route{
				{Method: http.MethodGet, Path: "", Handler: catalogHandler.ListProjects},
				{Method: http.MethodGet, Path: "/:id", Handler: catalogHandler.GetProject},
				{Method: http.MethodPost, Path: "", Handler: catalogHandler.CreateProject},
			})
		}

		labs := apiGroup.Group("/labs")
		{
			addRoutes(labs, []route{
				{Method: http.MethodGet, Path: "", Handler: catalogHandler.ListCodeLabs},
				{Method: http.MethodGet, Path: "/:id", Handler: catalogHandler.GetCodeLab},
				{Method: http.MethodPost, Path: "", Handler: catalogHandler.CreateCodeLab},
			})
		}

		docs := apiGroup.Group("/docs")
		{
			addRoutes(docs, []route{
				{Method: http.MethodGet, Path: "", Handler: catalogHandler.ListDocumentation},
				{Method: http.MethodGet, Path: "/:id", Handler: catalogHandler.GetDocumentation},
				{Method: http.MethodPost, Path: "", Handler: catalogHandler.CreateDocumentation},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/users/:userId/progress", Handler: catalogHandler.GetUserProgress},
			{Method: http.MethodPost, Path: "/users/:userId/progress", Handler: catalogHandler.RecordUserProgress},
			{Method: http.MethodGet, Path: "/stats", Handler: catalogHandler.Stats},
			{Method: http.MethodGet, Path: "/stripe/publishable-key", Handler: paymentHandler.PublishableKey},
			{Method: http.MethodGet, Path: "/stripe/products", Handler: paymentHandler.ListProducts},
			{Method: http.MethodPost, Path: "/checkout", Handler: paymentHandler.Checkout},
		})
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
