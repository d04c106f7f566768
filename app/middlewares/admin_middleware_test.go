package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/devanshpatil/zipcatalog/app/helpers"
	"github.com/devanshpatil/zipcatalog/app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminGuardedHandler() http.Handler {
	return AdminAuthMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestAdminGuardRedirectsAnonymousWithNext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/admin/products/new", nil)
	rec := httptest.NewRecorder()

	adminGuardedHandler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	location, err := rec.Result().Location()
	require.NoError(t, err)
	assert.Equal(t, "/admin/login", location.Path)
	assert.Equal(t, "/admin/products/new", location.Query().Get("next"))
}

func TestAdminGuardRejectsNonAdminRole(t *testing.T) {
	staff := &models.User{ID: "u1", Email: "staff@example.com", Role: models.RoleStaff}
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req = req.WithContext(context.WithValue(req.Context(), helpers.ContextKeyUser, staff))
	rec := httptest.NewRecorder()

	adminGuardedHandler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	location, err := rec.Result().Location()
	require.NoError(t, err)
	assert.Equal(t, "/", location.Path)
}

func TestAdminGuardAllowsAdmin(t *testing.T) {
	admin := &models.User{ID: "u2", Email: "admin@example.com", Role: models.RoleAdmin}
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req = req.WithContext(context.WithValue(req.Context(), helpers.ContextKeyUser, admin))
	rec := httptest.NewRecorder()

	adminGuardedHandler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSafeNextPath(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty falls back to dashboard", "", "/admin"},
		{"admin path kept", "/admin/products/new", "/admin/products/new"},
		{"admin path with query kept", "/admin/categories?status=success", "/admin/categories?status=success"},
		{"non-admin local path rejected", "/contact-us", "/admin"},
		{"absolute url rejected", "https://evil.example/admin", "/admin"},
		{"protocol-relative url rejected", "//evil.example/admin", "/admin"},
		{"garbage rejected", "://///", "/admin"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SafeNextPath(tc.in))
		})
	}
}

func TestMethodOverrideRewritesPost(t *testing.T) {
	var seenMethod string
	handler := MethodOverrideMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenMethod = r.Method
	}))

	form := "_method=DELETE&gorilla.csrf.Token=abc"
	req := httptest.NewRequest(http.MethodPost, "/admin/categories/c1", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.MethodDelete, seenMethod)
}

func TestMethodOverrideIgnoresGet(t *testing.T) {
	var seenMethod string
	handler := MethodOverrideMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenMethod = r.Method
	}))

	req := httptest.NewRequest(http.MethodGet, "/admin/categories?_method=DELETE", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.MethodGet, seenMethod)
}
