package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/atoengine/portal/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// AdminUser returns a session user with the admin capability.
func AdminUser() *auth.SessionUser {
	return &auth.SessionUser{
		ID:    "000000000000000000000001",
		Name:  "Test Admin",
		Email: "admin@example.com",
		Role:  "admin",
	}
}

// OperatorUser returns a session user without the admin capability.
func OperatorUser() *auth.SessionUser {
	return &auth.SessionUser{
		ID:    "000000000000000000000002",
		Name:  "Test Operator",
		Email: "operator@example.com",
		Role:  "operator",
	}
}

// NewJSONRequest builds a test request with a JSON-encoded body.
func NewJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		rd = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, target, rd)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// WithUser injects a session user into the request context, as
// auth.LoadSessionUser would for a signed-in caller.
func WithUser(r *http.Request, u *auth.SessionUser) *http.Request {
	return auth.WithTestUser(r, u)
}

// WithChiURLParam injects a chi URL parameter so handlers can be called
// without mounting the full router.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// DecodeJSON unmarshals a recorded response body into out.
func DecodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response body %q: %v", rec.Body.String(), err)
	}
}
