package middleware

import (

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"

	resp "phonebook/internal/transport/http/response"
)

// ConcurrencyLimit 限制同时处理的请求数；max <= 0 不限制
func ConcurrencyLimit(max int64) gin.HandlerFunc {
	if max <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	sem := semaphore.NewWeighted(max)
	return func(c *gin.Context) {
		if !sem.TryAcquire(1) {
			resp.Abort(c, resp.Error(resp.CodeTooManyRequests, "server busy"))
			return
		}
		defer sem.Release(1)
		c.Next()
	}
}
