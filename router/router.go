package router

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/config"
	_ "github.com/manish-reddy7/Manish-Reddy-Portfolio/docs"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/handlers"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/logger"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/middleware"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// LegacyContactPath is where the portfolio site has always posted the form.
const LegacyContactPath = "/functions/v1/send-contact-email"

// Dependencies struct holds all dependencies required for setting up routes.
type Dependencies struct {
	Config         *config.Config
	ContactHandler *handlers.ContactHandler
	HealthHandler  *handlers.HealthHandler
	// RateLimiter guards the contact routes. Nil when rate limiting is off.
	RateLimiter gin.HandlerFunc
	// Gatherer backs /metrics. Defaults to the global prometheus registry.
	Gatherer prometheus.Gatherer
}

// SetupRouter configures and returns the main Gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.New()

	if err := r.SetTrustedProxies(deps.Config.Server.TrustedProxies); err != nil {
		logger.GetLogger().Warnw("Invalid trusted proxies, trusting none", "error", err)
		_ = r.SetTrustedProxies(nil)
	}

	r.Use(gin.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.SecurityHeadersMiddleware(deps.Config))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))

	r.GET("/health", deps.HealthHandler.DetailedHealth)
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
	r.GET("/health/readiness", deps.HealthHandler.ReadinessCheck)

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	contact := []gin.HandlerFunc{deps.ContactHandler.SubmitContact}
	if deps.RateLimiter != nil {
		contact = append([]gin.HandlerFunc{deps.RateLimiter}, contact...)
	}

	v1 := r.Group("/v1")
	{
		v1.POST("/contact", contact...)
	}
	r.POST(LegacyContactPath, contact...)

	if dir := deps.Config.Server.StaticDir; dir != "" {
		r.NoRoute(staticSite(dir))
	}

	return r
}

// staticSite serves files from dir and falls back to index.html so the
// single-page site can route client side.
func staticSite(dir string) gin.HandlerFunc {
	index := filepath.Join(dir, "index.html")
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Not found"})
			return
		}

		// Clean against a rooted path so ".." cannot escape dir.
		path := filepath.Join(dir, filepath.FromSlash(filepath.Clean("/"+c.Request.URL.Path)))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			c.File(path)
			return
		}
		c.File(index)
	}
}
