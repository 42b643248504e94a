package handlers

import (
	"errors"
	"net/http"

	"github.com/rohits-web03/roboshow/internal/render"
	"github.com/rohits-web03/roboshow/internal/repositories"
	"go.uber.org/zap"
)

// Error codes the Google callback hands back to the auth pages.
const (
	errCodeUserNotFound = "user_not_found"
	errCodeUserExists   = "user_already_exists"
	errCodeGoogle       = "google_failed"
	errCodeUnverified   = "email_unverified"
)

var authErrorMessages = map[string]string{
	errCodeUserNotFound: "No account uses that Google address yet. Please sign up first.",
	errCodeUserExists:   repositories.ErrEmailTaken.Error(),
	errCodeGoogle:       "Google sign-in failed. Please try again.",
	errCodeUnverified:   "Your Google email address is not verified.",
}

func (h *Handler) authView(r *http.Request, title string) render.AuthView {
	return render.AuthView{
		Chrome:        h.chrome(r, title, ""),
		Return:        safeReturn(r.FormValue("return")),
		Error:         authErrorMessages[r.URL.Query().Get("error")],
		GoogleEnabled: h.OAuth != nil,
	}
}

// GET /login
func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusOK, render.LoginPage(h.authView(r, "Login")))
}

// POST /login
func (h *Handler) SubmitLogin(w http.ResponseWriter, r *http.Request) {
	view := h.authView(r, "Login")
	view.Email = r.PostFormValue("email")

	_, err := h.accounts(r).Login(r.Context(), view.Email, r.PostFormValue("password"))
	switch {
	case errors.Is(err, repositories.ErrInvalidCredentials):
		view.Error = err.Error()
		h.renderPage(w, r, http.StatusUnauthorized, render.LoginPage(view))
		return
	case err != nil:
		h.pageError(w, r, "failed to log in", err)
		return
	}
	http.Redirect(w, r, view.Return, http.StatusSeeOther)
}

// GET /signup
func (h *Handler) SignupPage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusOK, render.SignupPage(h.authView(r, "Sign Up")))
}

// POST /signup shows only the first rule the input breaks.
func (h *Handler) SubmitSignup(w http.ResponseWriter, r *http.Request) {
	view := h.authView(r, "Sign Up")
	view.Name = r.PostFormValue("name")
	view.Email = r.PostFormValue("email")

	_, err := h.accounts(r).Register(r.Context(), view.Name, view.Email, r.PostFormValue("password"))
	var verr *repositories.ValidationError
	switch {
	case errors.As(err, &verr):
		view.Error = verr.First()
	case errors.Is(err, repositories.ErrEmailTaken):
		view.Error = err.Error()
	case err != nil:
		h.pageError(w, r, "failed to register", err)
		return
	default:
		http.Redirect(w, r, view.Return, http.StatusSeeOther)
		return
	}
	h.renderPage(w, r, http.StatusBadRequest, render.SignupPage(view))
}

// POST /logout
func (h *Handler) SubmitLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.accounts(r).Logout(r.Context()); err != nil {
		h.Log.Error("failed to log out", zap.Error(err))
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
