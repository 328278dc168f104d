package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"lodge/config"
	"lodge/infras/jwt"
	jwtMocks "lodge/infras/jwt/mocks"
	"lodge/infras/otel"
	"lodge/permissions"
	"lodge/shared/constant"
	"lodge/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	adminToken      = "admin-token"
	superadminToken = "superadmin-token"
	apiKey          = "internal-key"
)

func echoRole(w http.ResponseWriter, r *http.Request) {
	role, _ := r.Context().Value(constant.ContextKeyUserRole).(string)

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(role))
}

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	ctrl := gomock.NewController(t)
	jwtService := jwtMocks.NewMockJWT(ctrl)

	jwtService.EXPECT().ValidateToken(gomock.Any(), adminToken, jwt.AccessToken).
		Return(&jwt.Claims{UserID: "admin-1", Email: "admin@lodge.test", Role: constant.RoleAdmin}, nil).AnyTimes()
	jwtService.EXPECT().ValidateToken(gomock.Any(), superadminToken, jwt.AccessToken).
		Return(&jwt.Claims{UserID: "root-1", Email: "root@lodge.test", Role: constant.RoleSuperAdmin}, nil).AnyTimes()
	jwtService.EXPECT().ValidateToken(gomock.Any(), gomock.Any(), jwt.AccessToken).
		Return(nil, jwt.ErrExpiredToken).AnyTimes()

	cfg := &config.Config{}
	cfg.App.APIKey = apiKey

	perms := permissions.Get()
	require.NotNil(t, perms)

	authRole := middleware.NewAuthRoleMiddleware(jwtService, otel.NewNoop(), perms, cfg)

	router := chi.NewRouter()
	router.Route("/v1", func(r chi.Router) {
		r.Use(authRole.APIKey)
		r.Use(authRole.Auth)
		r.Use(authRole.RBAC)

		r.Route("/rooms", func(r chi.Router) {
			r.Get("/", echoRole)
			r.Post("/", echoRole)
		})
		r.Route("/auth", func(r chi.Router) {
			r.Post("/admins", echoRole)
		})
	})

	return router
}

func TestAuthRole(t *testing.T) {
	router := newRouter(t)

	tests := []struct {
		name     string
		method   string
		path     string
		token    string
		apiKey   string
		wantCode int
		wantBody string
	}{
		{name: "public list anonymous", method: http.MethodGet, path: "/v1/rooms/", wantCode: http.StatusOK},
		{name: "public list without trailing slash", method: http.MethodGet, path: "/v1/rooms", wantCode: http.StatusOK},
		{name: "public list carries admin role", method: http.MethodGet, path: "/v1/rooms/", token: adminToken, wantCode: http.StatusOK, wantBody: constant.RoleAdmin},
		{name: "public list ignores bad token", method: http.MethodGet, path: "/v1/rooms/", token: "stale", wantCode: http.StatusOK},
		{name: "create requires token", method: http.MethodPost, path: "/v1/rooms/", wantCode: http.StatusUnauthorized},
		{name: "create rejects expired token", method: http.MethodPost, path: "/v1/rooms/", token: "stale", wantCode: http.StatusUnauthorized},
		{name: "create allowed for admin", method: http.MethodPost, path: "/v1/rooms/", token: adminToken, wantCode: http.StatusOK, wantBody: constant.RoleAdmin},
		{name: "admin creation forbidden for admin", method: http.MethodPost, path: "/v1/auth/admins", token: adminToken, wantCode: http.StatusForbidden},
		{name: "admin creation allowed for superadmin", method: http.MethodPost, path: "/v1/auth/admins", token: superadminToken, wantCode: http.StatusOK, wantBody: constant.RoleSuperAdmin},
		{name: "valid api key skips auth", method: http.MethodPost, path: "/v1/rooms/", apiKey: apiKey, wantCode: http.StatusOK},
		{name: "wrong api key", method: http.MethodPost, path: "/v1/rooms/", apiKey: "nope", wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+tt.token)
			}

			if tt.apiKey != "" {
				req.Header.Set(constant.RequestHeaderAPIKey, tt.apiKey)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode == http.StatusOK {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
