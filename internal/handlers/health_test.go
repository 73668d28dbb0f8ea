package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name   string
		store  Pinger
		status int
		body   string
	}{
		{"healthy", pingFunc(func(context.Context) error { return nil }), http.StatusOK, `{"status":"ok"}`},
		{"store down", pingFunc(func(context.Context) error { return errors.New("closed") }), http.StatusServiceUnavailable, `{"status":"unavailable"}`},
		{"no store", nil, http.StatusServiceUnavailable, `{"status":"unavailable"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := httptest.NewRecorder()
			HealthHandler(tt.store).ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			require.Equal(t, tt.status, res.Code)
			require.JSONEq(t, tt.body, res.Body.String())
		})
	}
}
