package idempotency

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PhoneTycoon_Go/internal/concurrency"
)

func userFromHeader(r *http.Request) string { return r.Header.Get("X-User-ID") }

func countingHandler(calls *atomic.Int32, status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprintf(w, `{"call":%d}`, n)
	})
}

func do(h http.Handler, method, user, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/api/v1/market/buy", strings.NewReader(`{}`))
	req.Header.Set("X-User-ID", user)
	if key != "" {
		req.Header.Set(HeaderIdempotencyKey, key)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func newMiddleware() func(http.Handler) http.Handler {
	return Middleware(NewCache(100, time.Minute), concurrency.NewLockManager(), userFromHeader)
}

func TestMiddleware_ReplaysSameKey(t *testing.T) {
	var calls atomic.Int32
	h := newMiddleware()(countingHandler(&calls, http.StatusOK))

	first := do(h, http.MethodPost, "u1", "k1")
	second := do(h, http.MethodPost, "u1", "k1")

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, `{"call":1}`, second.Body.String())
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "true", second.Header().Get(HeaderReplayed))
	assert.Equal(t, "application/json", second.Header().Get("Content-Type"))
}

func TestMiddleware_ScopedByUserAndKey(t *testing.T) {
	var calls atomic.Int32
	h := newMiddleware()(countingHandler(&calls, http.StatusOK))

	do(h, http.MethodPost, "u1", "k1")
	do(h, http.MethodPost, "u2", "k1")
	do(h, http.MethodPost, "u1", "k2")
	do(h, http.MethodPost, "u1", "")
	do(h, http.MethodPost, "u1", "")

	assert.Equal(t, int32(5), calls.Load())
}

func TestMiddleware_IgnoresNonPost(t *testing.T) {
	var calls atomic.Int32
	h := newMiddleware()(countingHandler(&calls, http.StatusOK))

	do(h, http.MethodGet, "u1", "k1")
	do(h, http.MethodGet, "u1", "k1")

	assert.Equal(t, int32(2), calls.Load())
}

func TestMiddleware_ClientErrorsReplayedServerErrorsNot(t *testing.T) {
	var clientCalls, serverCalls atomic.Int32
	mw := newMiddleware()
	clientErr := mw(countingHandler(&clientCalls, http.StatusBadRequest))
	serverErr := mw(countingHandler(&serverCalls, http.StatusInternalServerError))

	do(clientErr, http.MethodPost, "u1", "a")
	rec := do(clientErr, http.MethodPost, "u1", "a")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, int32(1), clientCalls.Load())

	do(serverErr, http.MethodPost, "u1", "b")
	do(serverErr, http.MethodPost, "u1", "b")
	assert.Equal(t, int32(2), serverCalls.Load())
}

func TestMiddleware_ConcurrentRetriesRunOnce(t *testing.T) {
	var calls atomic.Int32
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		time.Sleep(10 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	})
	h := newMiddleware()(slow)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec := do(h, http.MethodPost, "u1", "same")
			assert.Equal(t, http.StatusOK, rec.Code)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
}

func TestMiddleware_OversizedKeyPassesThrough(t *testing.T) {
	var calls atomic.Int32
	h := newMiddleware()(countingHandler(&calls, http.StatusOK))
	key := strings.Repeat("k", MaxKeyLength+1)

	do(h, http.MethodPost, "u1", key)
	do(h, http.MethodPost, "u1", key)

	assert.Equal(t, int32(2), calls.Load())
}

func TestCache_Expires(t *testing.T) {
	c := NewCache(10, 20*time.Millisecond)
	c.Set("k", Response{Status: http.StatusOK})

	_, ok := c.Get("k")
	require.True(t, ok)

	assert.Eventually(t, func() bool {
		_, ok := c.Get("k")
		return !ok
	}, time.Second, 5*time.Millisecond)
}
