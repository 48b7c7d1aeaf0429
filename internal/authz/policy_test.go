package authz_test

import (
	"net/http"
	"testing"

	"github.com/brightdesk-dev/brightdesk/internal/authz"
	"github.com/stretchr/testify/assert"
)

func TestDefaultPolicy(t *testing.T) {
	policy := authz.New(authz.DefaultRules())

	tests := []struct {
		name          string
		method        string
		path          string
		role          string
		authenticated bool
		want          authz.Decision
	}{
		{"login is public", http.MethodPost, "/api/auth/login", "", false, authz.Allow},
		{"register is public", http.MethodPost, "/api/users/register", "", false, authz.Allow},
		{"health is public", http.MethodGet, "/api/health", "", false, authz.Allow},
		{"project list is public", http.MethodGet, "/api/projects", "", false, authz.Allow},
		{"project delete is public", http.MethodDelete, "/api/projects/42", "", false, authz.Allow},
		{"project restore is public", http.MethodPost, "/api/projects/restore/42", "", false, authz.Allow},
		{"client mutation is public", http.MethodPut, "/api/clients/7", "", false, authz.Allow},
		{"invoice read is public", http.MethodGet, "/api/invoices/3", "", false, authz.Allow},
		{"admin without token", http.MethodPut, "/api/admin/approve/1", "", false, authz.DenyUnauthenticated},
		{"admin with USER role", http.MethodPut, "/api/admin/approve/1", "USER", true, authz.DenyForbidden},
		{"admin with MANAGER role", http.MethodPut, "/api/admin/assign-role/1", "MANAGER", true, authz.DenyForbidden},
		{"admin with ADMIN role", http.MethodPut, "/api/admin/approve/1", "ADMIN", true, authz.Allow},
		{"admin role match is case-insensitive", http.MethodPut, "/api/admin/approve/1", "admin", true, authz.Allow},
		{"unknown route without token", http.MethodGet, "/api/auth/me", "", false, authz.DenyUnauthenticated},
		{"unknown route with token", http.MethodGet, "/api/auth/me", "USER", true, authz.Allow},
		{"login pattern does not cover other auth routes", http.MethodGet, "/api/auth/login", "", false, authz.DenyUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := policy.Decide(tt.method, tt.path, tt.role, tt.authenticated)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPatternMatching(t *testing.T) {
	policy := authz.New([]authz.Rule{
		{Pattern: "/api/projects/**", Access: authz.AccessPublic},
	})

	assert.True(t, policy.IsPublic(http.MethodGet, "/api/projects"))
	assert.True(t, policy.IsPublic(http.MethodGet, "/api/projects/1/anything"))
	assert.False(t, policy.IsPublic(http.MethodGet, "/api/projectsextra"))
}

func TestFirstMatchWins(t *testing.T) {
	policy := authz.New([]authz.Rule{
		{Pattern: "/api/admin/reports", Access: authz.AccessPublic},
		{Pattern: "/api/admin/**", Access: authz.AccessRole, Role: "ADMIN"},
	})

	assert.Equal(t, authz.Allow, policy.Decide(http.MethodGet, "/api/admin/reports", "", false))
	assert.Equal(t, authz.DenyUnauthenticated, policy.Decide(http.MethodGet, "/api/admin/users", "", false))
}
