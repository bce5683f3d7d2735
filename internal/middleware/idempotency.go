package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	idempotencyHeader = "Idempotency-Key"
	replayedHeader    = "Idempotent-Replayed"
	idempotencyTTL    = 24 * time.Hour
)

// ResponseCache is the subset of the Redis client the middleware needs.
type ResponseCache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

var _ ResponseCache = (*redis.Client)(nil)

// storedResponse is what a replay sends back.
type storedResponse struct {
	Status      int             `json:"status"`
	ContentType string          `json:"content_type,omitempty"`
	Body        json.RawMessage `json:"body"`
}

// recorder tees the response body while it is written.
type recorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (r *recorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *recorder) WriteString(s string) (int, error) {
	r.body.WriteString(s)
	return r.ResponseWriter.WriteString(s)
}

// IdempotencyMiddleware replays the stored response when a mutating request
// repeats an Idempotency-Key on the same route. Server errors are not stored,
// so a retry after a 5xx runs again. If the cache is unreachable the request
// is served normally.
func IdempotencyMiddleware(cache ResponseCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(idempotencyHeader)
		if key == "" || !isMutating(c.Request.Method) {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey := idempotencyKey(c.Request, key)

		stored, err := lookup(ctx, cache, cacheKey)
		switch {
		case err == nil:
			replay(c, stored)
			return
		case !errors.Is(err, redis.Nil):
			c.Next()
			return
		}

		rec := &recorder{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Next()

		status := rec.Status()
		if status >= http.StatusInternalServerError {
			return
		}
		_ = save(ctx, cache, cacheKey, storedResponse{
			Status:      status,
			ContentType: rec.Header().Get("Content-Type"),
			Body:        rec.body.Bytes(),
		})
	}
}

func isMutating(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return false
}

// idempotencyKey scopes a client key to the method and path it was sent on.
func idempotencyKey(r *http.Request, key string) string {
	return "idempotency:" + r.Method + ":" + r.URL.Path + ":" + key
}

func replay(c *gin.Context, stored storedResponse) {
	contentType := stored.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	c.Header(replayedHeader, "true")
	c.Data(stored.Status, contentType, stored.Body)
	c.Abort()
}

func lookup(ctx context.Context, cache ResponseCache, key string) (storedResponse, error) {
	var stored storedResponse
	data, err := cache.Get(ctx, key).Bytes()
	if err != nil {
		return stored, err
	}
	if err := json.Unmarshal(data, &stored); err != nil {
		return stored, err
	}
	return stored, nil
}

func save(ctx context.Context, cache ResponseCache, key string, stored storedResponse) error {
	data, err := json.Marshal(stored)
	if err != nil {
		return err
	}
	return cache.Set(ctx, key, data, idempotencyTTL).Err()
}
