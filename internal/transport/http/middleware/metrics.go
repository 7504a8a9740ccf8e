package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	resp "phonebook/internal/transport/http/response"
)

var (
	httpReqTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "phonebook",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route template and envelope code",
		},
		[]string{"path", "method", "code"},
	)
	httpLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "phonebook",
			Name:      "http_request_duration_seconds",
			Help:      "Latency of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path", "method"},
	)
)

func init() { prometheus.MustRegister(httpReqTotal, httpLatency) }

// Metrics HTTP 状态恒为 200，按信封业务码统计；未写信封的（404、/metrics 等）记 HTTP 状态
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpReqTotal.WithLabelValues(path, c.Request.Method, bizCode(c)).Inc()
		httpLatency.WithLabelValues(path, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}

func bizCode(c *gin.Context) string {
	if v, ok := c.Get(resp.KeyCode); ok {
		if code, ok := v.(int); ok {
			return strconv.Itoa(code)
		}
	}
	return "http_" + strconv.Itoa(c.Writer.Status())
}
