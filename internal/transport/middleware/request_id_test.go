package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shiftdesk/shiftdesk-backend/pkg/ctxutil"
)

func TestRequestID_GeneratesWhenAbsent(t *testing.T) {
	var seen string

	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ctxutil.RequestIDFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if seen == "" {
		t.Fatal("expected request id in context")
	}
	if _, err := uuid.Parse(seen); err != nil {
		t.Errorf("generated request id is not a uuid: %s", seen)
	}
	if got := rec.Header().Get("X-Request-Id"); got != seen {
		t.Errorf("response header %q should match context id %q", got, seen)
	}
}

func TestRequestID_PropagatesHeader(t *testing.T) {
	var seen string

	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ctxutil.RequestIDFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "incoming-id")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if seen != "incoming-id" {
		t.Errorf("expected incoming-id, got %s", seen)
	}
	if got := rec.Header().Get("X-Request-Id"); got != "incoming-id" {
		t.Errorf("expected incoming-id echoed in response, got %s", got)
	}
}
