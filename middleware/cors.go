package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/config"
)

// Headers the portfolio site and the Supabase JS client send with a contact
// submission.
var contactAllowHeaders = []string{"authorization", "x-client-info", "apikey", "content-type"}

var contactAllowMethods = []string{http.MethodPost, http.MethodGet, http.MethodOptions}

const corsMaxAge = 12 * time.Hour

// CORSMiddleware creates a middleware for handling CORS with the given configuration.
// Preflight requests are answered with 200 and an empty body.
func CORSMiddleware(cfg *config.ServerConfig) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:              contactAllowMethods,
		AllowHeaders:              contactAllowHeaders,
		ExposeHeaders:             []string{"Content-Length", "X-Request-ID"},
		MaxAge:                    corsMaxAge,
		OptionsResponseStatusCode: http.StatusOK,
	}

	if len(cfg.AllowedOrigins) == 0 || containsOrigin(cfg.AllowedOrigins, "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowWildcard = true
	}

	handler := cors.New(corsConfig)

	return func(c *gin.Context) {
		// gin-contrib/cors skips requests without an Origin. Callers such as
		// curl or a server-side relay still get the permissive headers.
		if c.GetHeader("Origin") == "" {
			c.Header("Access-Control-Allow-Origin", "*")
			c.Header("Access-Control-Allow-Methods", strings.Join(contactAllowMethods, ", "))
			c.Header("Access-Control-Allow-Headers", strings.Join(contactAllowHeaders, ", "))
			c.Header("Access-Control-Max-Age", strconv.Itoa(int(corsMaxAge.Seconds())))

			if c.Request.Method == http.MethodOptions {
				c.AbortWithStatus(http.StatusOK)
				return
			}
			c.Next()
			return
		}

		// gin-contrib/cors only sends the header allow-list on preflight.
		c.Header("Access-Control-Allow-Headers", strings.Join(contactAllowHeaders, ", "))
		handler(c)
	}
}

// containsOrigin checks if a string is present in the allowed origins slice
func containsOrigin(s []string, str string) bool {
	for _, v := range s {
		if v == str {
			return true
		}
	}
	return false
}
