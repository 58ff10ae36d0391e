package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iho/minibank/internal/adapter/http/dto"
	"github.com/iho/minibank/internal/domain"
	"github.com/iho/minibank/internal/infrastructure/metrics"
	"github.com/iho/minibank/internal/usecase"
)

// AuthService is the auth surface the handler depends on.
type AuthService interface {
	Login(ctx context.Context, input usecase.LoginInput) (*domain.Account, *domain.Session, error)
	Register(ctx context.Context, input usecase.RegisterInput) (*domain.Account, *domain.Session, error)
	Logout(ctx context.Context, token, ipAddress string) error
	CurrentAccount(ctx context.Context, token string) (*domain.Account, error)
}

// AuthHandler handles login, signup, logout and session lookup.
type AuthHandler struct {
	auth    AuthService
	metrics *metrics.Metrics
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth AuthService, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{auth: auth, metrics: m}
}

// Login authenticates a username/password pair and opens a session.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, session, err := h.auth.Login(r.Context(), req.ToUseCaseInput(clientIP(r)))
	if err != nil {
		if h.metrics != nil {
			h.metrics.AuthAttempts.WithLabelValues("failure").Inc()
			h.metrics.SecurityEvents.WithLabelValues(string(domain.ActivityLoginFailed), string(domain.SeverityMedium)).Inc()
		}
		writeError(w, mapDomainError(err), "login failed", err.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.AuthAttempts.WithLabelValues("success").Inc()
		h.metrics.ActiveSessions.Inc()
		h.metrics.SecurityEvents.WithLabelValues(string(domain.ActivityLogin), string(domain.SeverityLow)).Inc()
	}

	writeJSON(w, http.StatusOK, dto.SessionFromDomain(session, account))
}

// Signup registers a new account and opens a session.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, session, err := h.auth.Register(r.Context(), req.ToUseCaseInput(clientIP(r)))
	if err != nil {
		writeError(w, mapDomainError(err), "signup failed", err.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.AccountsRegistered.Inc()
		h.metrics.ActiveSessions.Inc()
		h.metrics.SecurityEvents.WithLabelValues(string(domain.ActivitySignup), string(domain.SeverityLow)).Inc()
	}

	writeJSON(w, http.StatusCreated, dto.SessionFromDomain(session, account))
}

// Logout ends the current session. Requests without a valid token are
// acknowledged all the same.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token != "" {
		if err := h.auth.Logout(r.Context(), token, clientIP(r)); err != nil {
			writeError(w, http.StatusInternalServerError, "logout failed", err.Error())
			return
		}

		if h.metrics != nil {
			h.metrics.ActiveSessions.Dec()
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Me returns the account of the current session.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		writeError(w, http.StatusUnauthorized, "missing bearer token", "")
		return
	}

	account, err := h.auth.CurrentAccount(r.Context(), token)
	if err != nil {
		writeError(w, mapDomainError(err), "session lookup failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}
