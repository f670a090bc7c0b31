package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

const testUserID = "tg-10001"

// newRequest builds a request acting as userID. body may be nil, a string
// (sent verbatim) or any value encoded as JSON.
func newRequest(t *testing.T, method, path string, body interface{}, userID string) *http.Request {
	t.Helper()

	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewBuffer(raw)
	}

	req := httptest.NewRequest(method, path, r)
	if userID != "" {
		req.Header.Set(HeaderUserID, userID)
	}
	return req
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// logLevels maps each captured message to the level it was written at.
func logLevels(t *testing.T, buf *bytes.Buffer) map[string][]string {
	t.Helper()
	out := make(map[string][]string)
	dec := json.NewDecoder(buf)
	for dec.More() {
		var rec struct {
			Level string `json:"level"`
			Msg   string `json:"msg"`
		}
		require.NoError(t, dec.Decode(&rec))
		out[rec.Level] = append(out[rec.Level], rec.Msg)
	}
	return out
}
