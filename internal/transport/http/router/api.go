package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"phonebook/internal/core/config"
	"phonebook/internal/core/server"
	mdw "phonebook/internal/transport/http/middleware"
)

func NewAPIEngine(l *zap.Logger, lim config.Limits, reg *Registry) *gin.Engine {
	r := server.NewRouter(l)

	// 中间件
	r.Use(mdw.RequestID())
	if lim.RPS > 0 {
		if lim.PerIP {
			r.Use(mdw.RateLimitPerIP(rate.Limit(lim.RPS), lim.Burst))
		} else {
			r.Use(mdw.RateLimit(rate.Limit(lim.RPS), lim.Burst))
		}
	}
	r.Use(
		mdw.ConcurrencyLimit(lim.MaxConcurrent),
		mdw.MaxBodyBytes(lim.MaxBodyBytes),
		mdw.Timeout(time.Duration(lim.TimeoutSec)*time.Second),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	// 健康检查 + 指标
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 前缀
	api := r.Group("/api/v1")
	if reg != nil {
		reg.MountAllAPI(api)
	}
	return r
}
