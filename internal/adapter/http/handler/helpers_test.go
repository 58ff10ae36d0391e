package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iho/minibank/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrSessionNotFound, http.StatusUnauthorized},
		{domain.ErrUsernameTaken, http.StatusConflict},
		{domain.ErrAccountNotFound, http.StatusNotFound},
		{domain.ErrTransactionNotFound, http.StatusNotFound},
		{domain.ErrInsufficientFunds, http.StatusBadRequest},
		{domain.ErrInvalidAmount, http.StatusBadRequest},
		{domain.ErrInvalidTransactionParties, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := mapDomainError(tt.err); got != tt.want {
			t.Errorf("mapDomainError(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestBearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := bearerToken(req); got != "" {
		t.Errorf("expected empty token, got %q", got)
	}

	req.Header.Set("Authorization", "Bearer tok-1")
	if got := bearerToken(req); got != "tok-1" {
		t.Errorf("expected tok-1, got %q", got)
	}

	req.Header.Set("Authorization", "Basic dXNlcg==")
	if got := bearerToken(req); got != "" {
		t.Errorf("expected empty token for non-bearer scheme, got %q", got)
	}
}

func TestParseIntQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?limit=25&bad=x", nil)

	if got := parseIntQuery(req, "limit", 20); got != 25 {
		t.Errorf("limit = %d, want 25", got)
	}
	if got := parseIntQuery(req, "missing", 20); got != 20 {
		t.Errorf("missing = %d, want default 20", got)
	}
	if got := parseIntQuery(req, "bad", 20); got != 20 {
		t.Errorf("bad = %d, want default 20", got)
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:4242"
	if got := clientIP(req); got != "10.0.0.1" {
		t.Errorf("clientIP = %q, want 10.0.0.1", got)
	}

	req.RemoteAddr = "10.0.0.2"
	if got := clientIP(req); got != "10.0.0.2" {
		t.Errorf("clientIP = %q, want 10.0.0.2", got)
	}
}
