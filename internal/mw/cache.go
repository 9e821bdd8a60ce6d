package mw

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
)

type cachedResponse struct {
	status      int
	contentType string
	body        []byte
}

type captureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Cache serves repeated GETs of the same URI from an in-memory store for the
// given duration. Only successful responses are cached.
func Cache(store *cache.Cache, duration time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := c.Request.RequestURI
		if hit, found := store.Get(key); found {
			cached := hit.(cachedResponse)
			c.Data(cached.status, cached.contentType, cached.body)
			c.Abort()
			return
		}

		writer := &captureWriter{body: bytes.NewBuffer(nil), ResponseWriter: c.Writer}
		c.Writer = writer
		c.Next()

		if writer.Status() >= 200 && writer.Status() < 300 {
			store.Set(key, cachedResponse{
				status:      writer.Status(),
				contentType: writer.Header().Get("Content-Type"),
				body:        writer.body.Bytes(),
			}, duration)
		}
	}
}
