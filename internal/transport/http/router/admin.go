package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"phonebook/internal/core/config"
	"phonebook/internal/core/server"
	mdw "phonebook/internal/transport/http/middleware"
)

// NewAdminEngine 管理端引擎，和用户端共用同一个进程内的通讯录
func NewAdminEngine(l *zap.Logger, lim config.Limits, reg *Registry) *gin.Engine {
	r := server.NewRouter(l)

	r.Use(
		mdw.RequestID(),
		mdw.ConcurrencyLimit(lim.MaxConcurrent),
		mdw.MaxBodyBytes(lim.MaxBodyBytes),
		mdw.Timeout(time.Duration(lim.TimeoutSec)*time.Second),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	// 健康检查
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })

	// 管理端 v1
	admin := r.Group("/admin/v1")
	if reg != nil {
		reg.MountAllAdmin(admin)
	}
	return r
}
