package mw

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.RemoteAddr = "192.0.2.1:4000"
	r.ServeHTTP(w, req)
	return w
}

func TestResponseCache(t *testing.T) {
	calls := 0
	r := gin.New()
	r.Use(ResponseCache(cache.New(time.Minute, time.Minute), time.Minute))
	r.GET("/api/members", func(c *gin.Context) {
		calls++
		c.JSON(http.StatusOK, gin.H{"calls": calls})
	})
	r.GET("/api/broken", func(c *gin.Context) {
		calls++
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream"})
	})

	first := get(r, "/api/members")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get(CacheHeader))

	second := get(r, "/api/members")
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get(CacheHeader))
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", second.Header().Get("Content-Type"))
	assert.Equal(t, 1, calls)

	get(r, "/api/members?fresh=1")
	assert.Equal(t, 2, calls, "query string is part of the key")

	get(r, "/api/broken")
	get(r, "/api/broken")
	assert.Equal(t, 4, calls, "errors are not cached")
}

func TestRateLimit(t *testing.T) {
	r := gin.New()
	r.Use(RateLimit(rate.Limit(0.001), 2))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	assert.Equal(t, http.StatusNoContent, get(r, "/").Code)
	assert.Equal(t, http.StatusNoContent, get(r, "/").Code)
	w := get(r, "/")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"too many requests"}`, w.Body.String())
}

func TestClientLimiters_PerAddress(t *testing.T) {
	l := NewClientLimiters(rate.Limit(0.001), 1)
	assert.Same(t, l.For("a"), l.For("a"))
	assert.NotSame(t, l.For("a"), l.For("b"))
	assert.True(t, l.For("b").Allow())
	assert.False(t, l.For("b").Allow())
}
