package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"store-ratings/pkg/token"
	"store-ratings/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate_ValidToken(t *testing.T) {
	tokens := token.NewManager("secret", time.Hour)
	userID := uuid.New()
	signed, _, err := tokens.Issue(userID, "admin")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	called := false
	handler := Authenticate(tokens, zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true

		gotID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok || gotID != userID {
			t.Fatalf("user id not attached to context")
		}
		role, ok := utils.GetRoleFromContext(r.Context())
		if !ok || role != "admin" {
			t.Fatalf("role not attached to context")
		}

		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if !called {
		t.Fatalf("handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthenticate_MissingToken(t *testing.T) {
	tokens := token.NewManager("secret", time.Hour)

	called := false
	handler := Authenticate(tokens, zap.NewNop())(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/api/user/stores", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if called {
		t.Fatalf("handler must not run without a token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticate_BadScheme(t *testing.T) {
	tokens := token.NewManager("secret", time.Hour)

	called := false
	handler := Authenticate(tokens, zap.NewNop())(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/api/user/stores", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if called || rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without handler call, got %d (called=%v)", rec.Code, called)
	}
}

func TestAuthenticate_WrongKey(t *testing.T) {
	tokens := token.NewManager("secret", time.Hour)
	forged, _, err := token.NewManager("other-secret", time.Hour).Issue(uuid.New(), "admin")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	called := false
	handler := Authenticate(tokens, zap.NewNop())(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if called || rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without handler call, got %d (called=%v)", rec.Code, called)
	}
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	tokens := token.NewManager("secret", time.Hour)

	claims := token.Claims{
		Role: "user",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	called := false
	handler := Authenticate(tokens, zap.NewNop())(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/api/user/stores", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if called || rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without handler call, got %d (called=%v)", rec.Code, called)
	}
}

func TestRequireRole_Allowed(t *testing.T) {
	called := false
	handler := RequireRole(zap.NewNop(), "admin")(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	req = req.WithContext(utils.SetUserContext(req.Context(), uuid.New(), "admin"))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected handler to run, got %d (called=%v)", rec.Code, called)
	}
}

func TestRequireRole_WrongRole(t *testing.T) {
	called := false
	handler := RequireRole(zap.NewNop(), "admin")(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	req = req.WithContext(utils.SetUserContext(req.Context(), uuid.New(), "user"))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if called {
		t.Fatalf("handler must not run for wrong role")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireRole_NoIdentity(t *testing.T) {
	called := false
	handler := RequireRole(zap.NewNop(), "admin")(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if called || rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without handler call, got %d (called=%v)", rec.Code, called)
	}
}

// The composed chain: authentication strictly before authorization, handler
// only on the fully authorized path.
func TestChain_AuthenticateThenRequireRole(t *testing.T) {
	tokens := token.NewManager("secret", time.Hour)
	logger := zap.NewNop()

	chain := func(next http.Handler) http.Handler {
		return Authenticate(tokens, logger)(RequireRole(logger, "admin")(next))
	}

	cases := []struct {
		name       string
		role       string
		withToken  bool
		wantStatus int
		wantCalled bool
	}{
		{name: "admin token passes", role: "admin", withToken: true, wantStatus: http.StatusOK, wantCalled: true},
		{name: "user token forbidden", role: "user", withToken: true, wantStatus: http.StatusForbidden},
		{name: "store owner forbidden", role: "store_owner", withToken: true, wantStatus: http.StatusForbidden},
		{name: "no token unauthorized", wantStatus: http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			handler := chain(okHandler(&called))

			req := httptest.NewRequest(http.MethodPost, "/api/admin/store", nil)
			if tc.withToken {
				signed, _, err := tokens.Issue(uuid.New(), tc.role)
				if err != nil {
					t.Fatalf("issue token: %v", err)
				}
				req.Header.Set("Authorization", "Bearer "+signed)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, rec.Code)
			}
			if called != tc.wantCalled {
				t.Fatalf("handler called = %v, want %v", called, tc.wantCalled)
			}
		})
	}
}
