package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/minibank/internal/adapter/http/dto"
	"github.com/iho/minibank/internal/domain"
	"github.com/iho/minibank/internal/usecase"
)

type authServiceStub struct {
	loginFn    func(ctx context.Context, input usecase.LoginInput) (*domain.Account, *domain.Session, error)
	registerFn func(ctx context.Context, input usecase.RegisterInput) (*domain.Account, *domain.Session, error)
	logoutFn   func(ctx context.Context, token, ipAddress string) error
	currentFn  func(ctx context.Context, token string) (*domain.Account, error)
}

func (s *authServiceStub) Login(ctx context.Context, input usecase.LoginInput) (*domain.Account, *domain.Session, error) {
	return s.loginFn(ctx, input)
}

func (s *authServiceStub) Register(ctx context.Context, input usecase.RegisterInput) (*domain.Account, *domain.Session, error) {
	return s.registerFn(ctx, input)
}

func (s *authServiceStub) Logout(ctx context.Context, token, ipAddress string) error {
	return s.logoutFn(ctx, token, ipAddress)
}

func (s *authServiceStub) CurrentAccount(ctx context.Context, token string) (*domain.Account, error) {
	return s.currentFn(ctx, token)
}

func demoAccount() *domain.Account {
	return &domain.Account{
		ID:       "1",
		Username: "jaya",
		Email:    "jaya@example.com",
		Balance:  decimal.RequireFromString("5000.00"),
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	var captured usecase.LoginInput
	handler := NewAuthHandler(&authServiceStub{
		loginFn: func(ctx context.Context, input usecase.LoginInput) (*domain.Account, *domain.Session, error) {
			captured = input
			return demoAccount(), &domain.Session{Token: "tok-1", AccountID: "1"}, nil
		},
	}, nil)

	body, _ := json.Marshal(dto.LoginRequest{Username: "jaya", Password: "ntr"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if captured.Username != "jaya" || captured.Password != "ntr" {
		t.Fatalf("expected input to match request, got %+v", captured)
	}

	var resp dto.SessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Token != "tok-1" {
		t.Errorf("expected token tok-1, got %s", resp.Token)
	}
	if resp.Account == nil || resp.Account.Username != "jaya" {
		t.Errorf("expected embedded account, got %+v", resp.Account)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	handler := NewAuthHandler(&authServiceStub{
		loginFn: func(ctx context.Context, input usecase.LoginInput) (*domain.Account, *domain.Session, error) {
			return nil, nil, domain.ErrInvalidCredentials
		},
	}, nil)

	body, _ := json.Marshal(dto.LoginRequest{Username: "jaya", Password: "wrong"})
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_BadBody(t *testing.T) {
	handler := NewAuthHandler(&authServiceStub{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Signup(t *testing.T) {
	handler := NewAuthHandler(&authServiceStub{
		registerFn: func(ctx context.Context, input usecase.RegisterInput) (*domain.Account, *domain.Session, error) {
			if input.Username == "jaya" {
				return nil, nil, domain.ErrUsernameTaken
			}
			acc := demoAccount()
			acc.ID = "4"
			acc.Username = input.Username
			return acc, &domain.Session{Token: "tok-2", AccountID: "4"}, nil
		},
	}, nil)

	body, _ := json.Marshal(dto.SignupRequest{Username: "newuser", Password: "pw"})
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Signup(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	body, _ = json.Marshal(dto.SignupRequest{Username: "jaya", Password: "pw"})
	req = httptest.NewRequest(http.MethodPost, "/auth/signup", bytes.NewReader(body))
	rec = httptest.NewRecorder()

	handler.Signup(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for taken username, got %d", rec.Code)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	var gotToken string
	handler := NewAuthHandler(&authServiceStub{
		logoutFn: func(ctx context.Context, token, ipAddress string) error {
			gotToken = token
			return nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	rec := httptest.NewRecorder()

	handler.Logout(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotToken != "tok-1" {
		t.Errorf("expected token tok-1, got %q", gotToken)
	}

	// Without a token the request is still acknowledged.
	req = httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec = httptest.NewRecorder()

	handler.Logout(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 without token, got %d", rec.Code)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	handler := NewAuthHandler(&authServiceStub{
		currentFn: func(ctx context.Context, token string) (*domain.Account, error) {
			if token != "tok-1" {
				return nil, domain.ErrSessionNotFound
			}
			return demoAccount(), nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer tok-1")
	rec := httptest.NewRecorder()

	handler.Me(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.AccountResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Username != "jaya" {
		t.Errorf("expected jaya, got %s", resp.Username)
	}

	req = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec = httptest.NewRecorder()

	handler.Me(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer stale")
	rec = httptest.NewRecorder()

	handler.Me(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown session, got %d", rec.Code)
	}
}
