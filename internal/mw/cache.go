// Package mw holds the gin middleware shared by the JSON API.
package mw

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
)

// CacheHeader reports whether a response came from the response cache.
const CacheHeader = "X-Cache"

type snapshot struct {
	status int
	header http.Header
	body   []byte
}

type recordingWriter struct {
	gin.ResponseWriter
	buf *bytes.Buffer
}

func (w recordingWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w recordingWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// ResponseCache replays successful GET responses keyed by request URI for ttl.
// Other methods and non-2xx responses pass through untouched.
func ResponseCache(responses *cache.Cache, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := c.Request.URL.RequestURI()
		if v, ok := responses.Get(key); ok {
			snap := v.(snapshot)
			h := c.Writer.Header()
			for k, vals := range snap.header {
				h[k] = vals
			}
			h.Set(CacheHeader, "HIT")
			c.Writer.WriteHeader(snap.status)
			_, _ = c.Writer.Write(snap.body)
			c.Abort()
			return
		}

		c.Writer.Header().Set(CacheHeader, "MISS")
		rw := recordingWriter{ResponseWriter: c.Writer, buf: &bytes.Buffer{}}
		c.Writer = rw
		c.Next()

		status := rw.Status()
		if status < 200 || status >= 300 {
			return
		}
		header := rw.Header().Clone()
		header.Del(CacheHeader)
		responses.Set(key, snapshot{status: status, header: header, body: rw.buf.Bytes()}, ttl)
	}
}
