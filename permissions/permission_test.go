package permissions_test

import (
	"net/http"
	"testing"

	"lodge/permissions"
	"lodge/shared/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)
	assert.False(t, data.Skip)
	assert.NotEmpty(t, data.Endpoints)

	for _, endpoint := range data.Endpoints {
		assert.True(t, endpoint.Skip || len(endpoint.Permissions) > 0, "%s %s has no rule", endpoint.Method, endpoint.Path)
	}
}

func TestFindPermissions(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		name   string
		path   string
		method string
		skip   bool
		roles  []string
	}{
		{name: "public room list", path: "/v1/rooms/", method: http.MethodGet, skip: true},
		{name: "public room list without slash", path: "/v1/rooms", method: http.MethodGet, skip: true},
		{name: "room create", path: "/v1/rooms/", method: http.MethodPost, roles: []string{constant.RoleAdmin, constant.RoleSuperAdmin}},
		{name: "guest booking", path: "/v1/bookings/", method: http.MethodPost, skip: true},
		{name: "booking list", path: "/v1/bookings", method: http.MethodGet, roles: []string{constant.RoleAdmin, constant.RoleSuperAdmin}},
		{name: "webhook", path: "/v1/payments/webhook", method: http.MethodPost, skip: true},
		{name: "admin creation", path: "/v1/auth/admins", method: http.MethodPost, roles: []string{constant.RoleSuperAdmin}},
		{name: "unknown", path: "/v1/unknown", method: http.MethodGet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.skip, got.Skip)
			assert.Equal(t, tt.roles, got.Permissions)
		})
	}
}
