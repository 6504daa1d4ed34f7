// Package api wires the HTTP handlers and middleware into a gin router.
package api

import (
	"net/http"
	"os"
	"strings"

	"davisbacon/internal/analysis"
	"davisbacon/internal/api/handlers"
	"davisbacon/internal/api/middleware"
	"davisbacon/internal/config"
	"davisbacon/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Deps are the collaborators the router needs.
type Deps struct {
	Config   *config.Config
	Analyzer *analysis.Analyzer
	Base     model.ParameterSet
	Logger   *zap.Logger
	Limiter  *middleware.RateLimiter // nil disables rate limiting

	// StaticDir, when it exists, is served as a single-page app.
	StaticDir string
}

func NewRouter(d Deps) *gin.Engine {
	log := d.Logger
	if log == nil {
		log = zap.NewNop()
	}

	router := gin.New()
	router.Use(middleware.Logger(log))
	router.Use(middleware.ErrorHandler(log))
	router.Use(middleware.CORS(d.Config.Server.AllowedOrigins))

	calc := handlers.NewCalculatorHandler(d.Analyzer, d.Base, log)
	catalog := handlers.NewCatalogHandler(d.Config, d.Analyzer.Catalog())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	v1.Use(middleware.RateLimit(d.Limiter))
	{
		v1.GET("/parameters", catalog.ListParameters)
		v1.GET("/scenarios", catalog.ListScenarios)
		v1.GET("/scenarios/:name", catalog.GetScenario)
		v1.GET("/sources", catalog.ListSources)

		v1.POST("/calculate", calc.Calculate)
		v1.POST("/sensitivity", calc.Sensitivity)
		v1.POST("/sweep", calc.Sweep)
		v1.POST("/compare", calc.Compare)
		v1.POST("/compare/export", calc.ExportComparison)
	}

	serveStatic(router, d.StaticDir, log)
	return router
}

func serveStatic(router *gin.Engine, dir string, log *zap.Logger) {
	if dir == "" {
		return
	}
	if _, err := os.Stat(dir); err != nil {
		log.Info("static directory not found, skipping static file serving", zap.String("dir", dir))
		return
	}

	router.Static("/assets", dir+"/assets")
	router.StaticFile("/favicon.ico", dir+"/favicon.ico")

	// index.html for every non-API route (SPA routing)
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.File(dir + "/index.html")
	})
	log.Info("serving static files", zap.String("dir", dir))
}
