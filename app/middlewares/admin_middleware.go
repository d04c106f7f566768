package middlewares

import (
	"log"
	"net/http"
	"net/url"

	"github.com/devanshpatil/zipcatalog/app/helpers"
	"github.com/devanshpatil/zipcatalog/app/models"
)

// AdminAuthMiddleware guards the back office. Anonymous requests are sent to
// the login page with the originally requested path in ?next so the login
// handler can return them there afterwards.
func AdminAuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := r.Context().Value(helpers.ContextKeyUser).(*models.User)
			if !ok || user == nil {
				log.Printf("AdminAuthMiddleware: anonymous request to %s, redirecting to login", r.URL.Path)
				http.Redirect(w, r, "/admin/login?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusFound)
				return
			}

			if user.Role != models.RoleAdmin {
				log.Printf("AdminAuthMiddleware: user %s (%s) attempted to access admin panel without admin role", user.ID, user.Email)
				http.Redirect(w, r, "/?status=error&message="+url.QueryEscape("You do not have permission to access that page."), http.StatusFound)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// SafeNextPath validates a post-login redirect target. Only local admin
// paths are accepted; anything else falls back to the dashboard.
func SafeNextPath(next string) string {
	if next == "" {
		return "/admin"
	}
	u, err := url.Parse(next)
	if err != nil || u.IsAbs() || u.Host != "" {
		return "/admin"
	}
	if len(u.Path) < 6 || u.Path[:6] != "/admin" {
		return "/admin"
	}
	return u.RequestURI()
}
