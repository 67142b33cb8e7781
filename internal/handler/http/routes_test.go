package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/communication-ltd/portal/internal/service"
	"github.com/communication-ltd/portal/internal/store"
	"github.com/communication-ltd/portal/models"
)

// newTestRouter wires a full chi router around mocked services so that
// dispatch, middleware ordering, and method handling can be exercised
// end to end.
func newTestRouter() http.Handler {
	auth := &mockAuthService{
		registerFunc: func(_ context.Context, _, _, _ string) (models.PolicyResult, error) {
			return models.PolicyResult{Valid: true, Message: "User registered successfully"}, nil
		},
	}
	sessions := &mockSessionService{
		resolveFunc: func(_ context.Context, token string) (models.User, error) {
			if token == "valid-token" {
				return models.User{UserID: 7, Username: "alice"}, nil
			}
			return models.User{}, store.ErrSessionNotFound
		},
	}
	customers := &mockCustomerService{
		listRecentFunc: func(_ context.Context) ([]models.Customer, error) {
			return nil, nil
		},
	}

	h := newAPITestHandler(&service.Services{
		AuthService:     auth,
		SessionService:  sessions,
		CustomerService: customers,
	})
	return h.Init()
}

func TestRoutes_Dispatch(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		cookie     *http.Cookie
		wantStatus int
	}{
		{
			name:       "public route is reachable without a session",
			method:     http.MethodPost,
			target:     "/api/auth/register",
			body:       `{"username":"alice","email":"alice@comm-ltd.test","password":"Sup3rSecret!pwd"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "protected route rejects missing session",
			method:     http.MethodGet,
			target:     "/api/customers",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "protected route rejects stale session",
			method:     http.MethodGet,
			target:     "/api/customers",
			cookie:     &http.Cookie{Name: sessionCookieName, Value: "stale-token"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "protected route accepts live session",
			method:     http.MethodGet,
			target:     "/api/customers",
			cookie:     &http.Cookie{Name: sessionCookieName, Value: "valid-token"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown path",
			method:     http.MethodGet,
			target:     "/api/nope",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unregistered method looks like an unknown path",
			method:     http.MethodGet,
			target:     "/api/auth/register",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestRoutes_TraceIDOnEveryResponse(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}
