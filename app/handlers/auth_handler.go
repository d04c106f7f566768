package handlers

import (
	"log"
	"net/http"
	"net/url"

	"github.com/devanshpatil/zipcatalog/app/helpers"
	"github.com/devanshpatil/zipcatalog/app/middlewares"
	"github.com/devanshpatil/zipcatalog/app/repositories"
	"github.com/devanshpatil/zipcatalog/app/utils/sessions"
	"github.com/unrolled/render"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	render       *render.Render
	userRepo     repositories.UserRepositoryImpl
	sessionStore sessions.SessionStore
}

func NewAuthHandler(r *render.Render, userRepo repositories.UserRepositoryImpl, sessionStore sessions.SessionStore) *AuthHandler {
	return &AuthHandler{
		render:       r,
		userRepo:     userRepo,
		sessionStore: sessionStore,
	}
}

func (h *AuthHandler) LoginGetHandler(w http.ResponseWriter, r *http.Request) {
	if userID, ok := r.Context().Value(helpers.ContextKeyUserID).(string); ok && userID != "" {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title": "Admin Login",
		"Next":  r.URL.Query().Get("next"),
	})
	_ = h.render.HTML(w, http.StatusOK, "auth/login", data)
}

func (h *AuthHandler) LoginPostHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		log.Printf("LoginPostHandler: error parsing form: %v", err)
		http.Redirect(w, r, "/admin/login?status=error&message="+url.QueryEscape("Something went wrong, please try again."), http.StatusSeeOther)
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")
	next := r.FormValue("next")

	loginErrURL := "/admin/login?status=error&message=" + url.QueryEscape("Invalid email or password.")
	if next != "" {
		loginErrURL += "&next=" + url.QueryEscape(next)
	}

	user, err := h.userRepo.FindByEmail(r.Context(), email)
	if err != nil {
		log.Printf("LoginPostHandler: error getting user by email '%s': %v", email, err)
		http.Redirect(w, r, "/admin/login?status=error&message="+url.QueryEscape("Server error."), http.StatusSeeOther)
		return
	}
	if user == nil {
		log.Printf("LoginPostHandler: user not found for email: %s", email)
		http.Redirect(w, r, loginErrURL, http.StatusSeeOther)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.Printf("LoginPostHandler: password mismatch for email: %s", email)
		http.Redirect(w, r, loginErrURL, http.StatusSeeOther)
		return
	}

	if err := h.sessionStore.SetUserID(w, r, user.ID); err != nil {
		log.Printf("LoginPostHandler: error setting user session: %v", err)
		http.Redirect(w, r, "/admin/login?status=error&message="+url.QueryEscape("Could not create login session."), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, middlewares.SafeNextPath(next), http.StatusSeeOther)
}

func (h *AuthHandler) LogoutPostHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionStore.ClearSession(w, r); err != nil {
		log.Printf("LogoutPostHandler: error clearing session: %v", err)
	}
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}
