package middleware

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type CacheConfig struct {
	MaxAge         int
	Private        bool
	NoStore        bool
	MustRevalidate bool
	Vary           []string
}

func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		MaxAge:         60,
		Private:        true,
		MustRevalidate: true,
		Vary:           []string{"Accept"},
	}
}

// Cache sets cache-control headers; mutating requests are always no-store.
func Cache(config CacheConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != "GET" {
			c.Header("Cache-Control", "no-store")
			c.Next()
			return
		}

		directives := make([]string, 0, 4)
		if config.Private {
			directives = append(directives, "private")
		} else {
			directives = append(directives, "public")
		}
		if config.NoStore {
			directives = append(directives, "no-store")
		}
		if config.MaxAge > 0 {
			directives = append(directives, "max-age="+strconv.Itoa(config.MaxAge))
		}
		if config.MustRevalidate {
			directives = append(directives, "must-revalidate")
		}

		c.Header("Cache-Control", strings.Join(directives, ", "))
		if len(config.Vary) > 0 {
			c.Header("Vary", strings.Join(config.Vary, ", "))
		}

		c.Next()
	}
}
