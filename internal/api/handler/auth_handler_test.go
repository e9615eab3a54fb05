package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/restshop/commerce-api/internal/api/middleware"
	"github.com/restshop/commerce-api/internal/core/domain"
)

type stubAuthService struct {
	signUpFn func(ctx context.Context, name, email, password string) (string, *domain.User, error)
	loginFn  func(ctx context.Context, email, password string) (string, *domain.User, error)
	deleteFn func(ctx context.Context, targetID, authUserID string) (*domain.User, error)
}

func (s *stubAuthService) SignUp(ctx context.Context, name, email, password string) (string, *domain.User, error) {
	return s.signUpFn(ctx, name, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) DeleteAccount(ctx context.Context, targetID, authUserID string) (*domain.User, error) {
	return s.deleteFn(ctx, targetID, authUserID)
}

func newAuthTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_SignUp_Success(t *testing.T) {
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, name, email, password string) (string, *domain.User, error) {
			if name != "Ann Lee" || email != "ann@x.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s %s", name, email, password)
			}
			return "token123", &domain.User{ID: "user_1", Name: name, Email: email}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/signUp",
		`{"name":"Ann Lee","email":"ann@x.com","password":"secret"}`)

	if err := h.SignUp(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["authToken"] != "token123" {
		t.Fatalf("expected authToken, got %v", resp)
	}
	if _, leaked := resp["password"]; leaked {
		t.Fatalf("response must not carry password data")
	}
}

func TestAuthHandler_SignUp_EmailConflict(t *testing.T) {
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, name, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrUserExists
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/signUp",
		`{"name":"Ann Lee","email":"ann@x.com","password":"secret"}`)

	_ = h.SignUp(c)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAuthHandler_SignUp_Validation(t *testing.T) {
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, name, email, password string) (string, *domain.User, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	h := NewAuthHandler(stub)

	cases := []struct {
		name string
		body string
	}{
		{"short name", `{"name":"An","email":"ann@x.com","password":"secret"}`},
		{"bad email", `{"name":"Ann Lee","email":"not-an-email","password":"secret"}`},
		{"short password", `{"name":"Ann Lee","email":"ann@x.com","password":"pw"}`},
		{"missing fields", `{}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newAuthTestContext(t, http.MethodPost, "/auth/signUp", tc.body)
			_ = h.SignUp(c)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "token456", &domain.User{ID: "user_1", Email: email}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/login",
		`{"email":"ann@x.com","password":"secret"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["authToken"] != "token456" {
		t.Fatalf("expected authToken, got %v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	// Unknown email and wrong password surface identically.
	for _, body := range []string{
		`{"email":"ghost@x.com","password":"whatever"}`,
		`{"email":"ann@x.com","password":"wrong"}`,
	} {
		c, rec := newAuthTestContext(t, http.MethodPost, "/auth/login", body)
		_ = h.Login(c)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(rec.Body.Bytes(), &resp)
		if resp["error"] != "invalid credentials" {
			t.Fatalf("expected uniform error message, got %v", resp["error"])
		}
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			t.Fatalf("should not be called")
			return "", nil, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthTestContext(t, http.MethodPost, "/auth/login", "{")
	_ = h.Login(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_DeleteUser_Owner(t *testing.T) {
	stub := &stubAuthService{
		deleteFn: func(ctx context.Context, targetID, authUserID string) (*domain.User, error) {
			if targetID != "user_1" || authUserID != "user_1" {
				t.Fatalf("unexpected args: %s %s", targetID, authUserID)
			}
			return &domain.User{ID: "user_1", Name: "Ann Lee", Email: "ann@x.com"}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthTestContext(t, http.MethodDelete, "/auth/deleteUser/user_1", "")
	c.SetParamNames("id")
	c.SetParamValues("user_1")
	c.Set(middleware.ContextUserID, "user_1")

	if err := h.DeleteUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["email"] != "ann@x.com" {
		t.Fatalf("expected removed record in response, got %v", resp)
	}
}

func TestAuthHandler_DeleteUser_Forbidden(t *testing.T) {
	stub := &stubAuthService{
		deleteFn: func(ctx context.Context, targetID, authUserID string) (*domain.User, error) {
			return nil, domain.ErrForbidden
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthTestContext(t, http.MethodDelete, "/auth/deleteUser/user_1", "")
	c.SetParamNames("id")
	c.SetParamValues("user_1")
	c.Set(middleware.ContextUserID, "user_2")

	_ = h.DeleteUser(c)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestAuthHandler_DeleteUser_NotFound(t *testing.T) {
	stub := &stubAuthService{
		deleteFn: func(ctx context.Context, targetID, authUserID string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthTestContext(t, http.MethodDelete, "/auth/deleteUser/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	c.Set(middleware.ContextUserID, "user_1")

	_ = h.DeleteUser(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAuthHandler_DeleteUser_NoIdentity(t *testing.T) {
	stub := &stubAuthService{
		deleteFn: func(ctx context.Context, targetID, authUserID string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/auth/deleteUser/user_1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("user_1")

	if err := h.DeleteUser(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
