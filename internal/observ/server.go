// Package observ exposes the optional debug listener: health and Prometheus
// metrics only, no business endpoints.
package observ

import (
	"github.com/Sharaj17/thottam-IQ/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	// Prometheus endpoint (scraped by Prometheus)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

// Start serves the debug listener in the background. A blank addr disables it.
func Start(addr string) {
	if addr == "" {
		return
	}
	l := logging.New("observ")
	l.Info("debug listener starting", "addr", addr)
	go func() {
		if err := NewRouter().Run(addr); err != nil {
			l.Error("debug listener stopped", "error", err)
		}
	}()
}
