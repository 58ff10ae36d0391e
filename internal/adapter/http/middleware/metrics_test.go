package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsMiddlewareRecordsRequest(t *testing.T) {
	testCases := []struct {
		name       string
		method     string
		path       string
		wantPath   string
		statusCode int
	}{
		{
			name:       "normalizes account path",
			method:     http.MethodGet,
			path:       "/api/v1/accounts/1/balance",
			wantPath:   "/api/v1/accounts/:id/balance",
			statusCode: http.StatusOK,
		},
		{
			name:       "normalizes transfer path",
			method:     http.MethodGet,
			path:       "/api/v1/transfers/ABC123",
			wantPath:   "/api/v1/transfers/:id",
			statusCode: http.StatusNotFound,
		},
		{
			name:       "keeps non-matching path as-is",
			method:     http.MethodGet,
			path:       "/health",
			wantPath:   "/health",
			statusCode: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			httpRequestsTotal.Reset()
			httpRequestDuration.Reset()

			handlerCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				w.WriteHeader(tc.statusCode)
			})

			req := httptest.NewRequest(tc.method, tc.path, nil)
			rr := httptest.NewRecorder()

			Metrics(next).ServeHTTP(rr, req)

			if !handlerCalled {
				t.Fatal("expected wrapped handler to run")
			}

			counter := httpRequestsTotal.WithLabelValues(tc.method, tc.wantPath, strconv.Itoa(tc.statusCode))
			if got := testutil.ToFloat64(counter); got != 1 {
				t.Fatalf("expected 1 recorded request for %s, got %v", tc.wantPath, got)
			}
		})
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/api/v1/accounts/1", "/api/v1/accounts/:id"},
		{"/api/v1/accounts/1/transactions", "/api/v1/accounts/:id/transactions"},
		{"/api/v1/accounts/", "/api/v1/accounts/"},
		{"/api/v1/transfers/t1", "/api/v1/transfers/:id"},
		{"/api/v1/auth/login", "/api/v1/auth/login"},
	}

	for _, tt := range tests {
		if got := normalizePath(tt.in); got != tt.want {
			t.Errorf("normalizePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
