package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pro-stock-editor/internal/handler/api"
	"pro-stock-editor/internal/handler/middleware"
	"pro-stock-editor/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, stockEditionHandler *api.StockEditionHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, stockEditionHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h *api.StockEditionHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/offers/:offerId/stock-edition", Handler: h.Open},
		})

		sessions := apiGroup.Group("/stock-edition/:sessionId")
		addRoutes(sessions, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Get},
			{Method: http.MethodDelete, Path: "", Handler: h.Close},
			{Method: http.MethodPut, Path: "/filters", Handler: h.ChangeFilters},
			{Method: http.MethodDelete, Path: "/filters", Handler: h.ResetFilters},
			{Method: http.MethodPost, Path: "/sort", Handler: h.ToggleSort},
			{Method: http.MethodPost, Path: "/pages", Handler: h.NavigatePage},
			{Method: http.MethodPost, Path: "/dialog", Handler: h.ResolveDialog},
			{Method: http.MethodPost, Path: "/rows", Handler: h.AddRow},
			{Method: http.MethodPatch, Path: "/rows", Handler: h.EditRows},
			{Method: http.MethodDelete, Path: "/rows/:index", Handler: h.DeleteRow},
			{Method: http.MethodPost, Path: "/submit", Handler: h.Submit},
			{Method: http.MethodPost, Path: "/recurrences", Handler: h.SubmitRecurrence},
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
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
