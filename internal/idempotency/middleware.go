package idempotency

import (
	"bytes"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/PhoneTycoon_Go/internal/concurrency"
	"github.com/osse101/PhoneTycoon_Go/internal/logger"
)

// recorder tees the response body while passing it through
type recorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (r *recorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *recorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

// Middleware replays POST responses for repeated (caller, key) pairs.
// callerID identifies the acting user; requests without a key pass through.
func Middleware(cache *Cache, locks *concurrency.LockManager, callerID func(*http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := strings.TrimSpace(r.Header.Get(HeaderIdempotencyKey))
			if r.Method != http.MethodPost || key == "" {
				next.ServeHTTP(w, r)
				return
			}
			log := logger.FromContext(r.Context())
			if len(key) > MaxKeyLength {
				log.Warn(LogMsgKeyTooLong, "length", len(key))
				next.ServeHTTP(w, r)
				return
			}

			cacheKey := callerID(r) + "|" + r.URL.Path + "|" + key
			unlock := locks.Lock(cacheKey)
			defer unlock()

			if resp, ok := cache.Get(cacheKey); ok {
				log.Info(LogMsgReplayed, "path", r.URL.Path)
				if resp.ContentType != "" {
					w.Header().Set("Content-Type", resp.ContentType)
				}
				w.Header().Set(HeaderReplayed, "true")
				w.WriteHeader(resp.Status)
				_, _ = w.Write(resp.Body)
				return
			}

			rec := &recorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)

			status := rec.status
			if status == 0 {
				status = http.StatusOK
			}
			if !cachable(status) {
				log.Debug(LogMsgNotCachable, "status", status)
				return
			}
			cache.Set(cacheKey, Response{
				Status:      status,
				ContentType: w.Header().Get("Content-Type"),
				Body:        bytes.Clone(rec.body.Bytes()),
				StoredAt:    time.Now(),
			})
		})
	}
}
