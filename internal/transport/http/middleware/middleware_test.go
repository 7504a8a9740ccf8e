package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	resp "phonebook/internal/transport/http/response"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	return r
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	r := newEngine(RequestID())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(KeyRequestID)) })

	t.Run("generated when absent", func(t *testing.T) {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/x", nil))
		rid := w.Header().Get(KeyRequestID)
		assert.NotEmpty(t, rid)
		assert.Equal(t, rid, w.Body.String())
	})

	t.Run("passed through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(KeyRequestID, "abc")
		w := serve(r, req)
		assert.Equal(t, "abc", w.Header().Get(KeyRequestID))
	})

	t.Run("oversized replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(KeyRequestID, strings.Repeat("a", 200))
		w := serve(r, req)
		assert.Len(t, w.Header().Get(KeyRequestID), 36)
	})
}

func TestRateLimitPerIP(t *testing.T) {
	r := newEngine(RateLimitPerIP(0.001, 1))
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	from := func(ip string) string {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.RemoteAddr = ip + ":1234"
		return serve(r, req).Body.String()
	}
	assert.Equal(t, "ok", from("10.0.0.1"))
	assert.Contains(t, from("10.0.0.1"), `"code":429`)
	assert.Equal(t, "ok", from("10.0.0.2"))
}

func TestConcurrencyLimit(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	r := newEngine(ConcurrencyLimit(1))
	r.GET("/slow", func(c *gin.Context) {
		close(entered)
		<-release
		c.String(http.StatusOK, "done")
	})
	r.GET("/fast", func(c *gin.Context) { c.String(http.StatusOK, "fast") })

	done := make(chan string)
	go func() { done <- serve(r, httptest.NewRequest(http.MethodGet, "/slow", nil)).Body.String() }()
	<-entered

	w := serve(r, httptest.NewRequest(http.MethodGet, "/fast", nil))
	assert.Contains(t, w.Body.String(), "server busy")

	close(release)
	assert.Equal(t, "done", <-done)
	assert.Equal(t, "fast", serve(r, httptest.NewRequest(http.MethodGet, "/fast", nil)).Body.String())
}

func TestTimeout(t *testing.T) {
	r := newEngine(Timeout(20 * time.Millisecond))
	r.GET("/slow", func(c *gin.Context) { <-c.Request.Context().Done() })
	r.GET("/fast", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	assert.Contains(t, serve(r, httptest.NewRequest(http.MethodGet, "/slow", nil)).Body.String(), `"code":504`)
	assert.Equal(t, "ok", serve(r, httptest.NewRequest(http.MethodGet, "/fast", nil)).Body.String())
}

func TestMaxBodyBytes(t *testing.T) {
	r := newEngine(MaxBodyBytes(4))
	r.POST("/x", func(c *gin.Context) {
		_, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.String(http.StatusOK, "too large")
			return
		}
		c.String(http.StatusOK, "ok")
	})

	assert.Equal(t, "ok", serve(r, httptest.NewRequest(http.MethodPost, "/x", strings.NewReader("abc"))).Body.String())
	assert.Equal(t, "too large", serve(r, httptest.NewRequest(http.MethodPost, "/x", strings.NewReader("abcdef"))).Body.String())
}

func TestAccessLogMasksContactFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := newEngine(RequestID(), AccessLog(zap.New(core)))
	r.GET("/contacts", func(c *gin.Context) { c.String(http.StatusOK, "hello") })

	serve(r, httptest.NewRequest(http.MethodGet, "/contacts?q=jane&order=name", nil))

	entries := logs.FilterMessage("HTTP").All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "/contacts", ctx["path"])
	assert.EqualValues(t, 5, ctx["size"])
	assert.Equal(t, "http_200", ctx["code"])
	assert.NotEmpty(t, ctx["rid"])

	q, ok := ctx["query"].(map[string][]string)
	require.True(t, ok)
	assert.Equal(t, []string{"****"}, q["q"])
	assert.Equal(t, []string{"name"}, q["order"])
}

func TestBizCodeFromEnvelope(t *testing.T) {
	r := newEngine(ConcurrencyLimit(0))
	var got string
	r.Use(func(c *gin.Context) {
		c.Next()
		got = bizCode(c)
	})
	r.GET("/missing", func(c *gin.Context) { resp.JSON(c, resp.Error(resp.CodeNotFound, "")) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "404", got)
}
