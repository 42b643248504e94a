package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/rohits-web03/roboshow/internal/api/middleware"
	"github.com/rohits-web03/roboshow/internal/config"
	"github.com/rohits-web03/roboshow/internal/models"
	"github.com/rohits-web03/roboshow/internal/render"
	"github.com/rohits-web03/roboshow/internal/repositories"
	"github.com/rohits-web03/roboshow/internal/utils"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// Handler serves both the HTML pages and the JSON API.
type Handler struct {
	Config   *config.Config
	Log      *zap.Logger
	Projects *repositories.ProjectRepository
	Accounts *repositories.AccountRepository
	Images   repositories.ImageStore // nil without a bucket
	OAuth    *oauth2.Config          // nil without Google credentials
}

// accounts is the account repository bound to the caller's profile.
func (h *Handler) accounts(r *http.Request) *repositories.AccountRepository {
	return h.Accounts.ForProfile(middleware.ProfileID(r.Context()))
}

// session returns the signed-in visitor or nil.
func (h *Handler) session(r *http.Request) *models.Session {
	session, err := h.accounts(r).CurrentUser(r.Context())
	if err != nil {
		if !errors.Is(err, repositories.ErrNoSession) {
			h.Log.Warn("failed to read session", zap.Error(err))
		}
		return nil
	}
	return session
}

func (h *Handler) chrome(r *http.Request, title, active string) render.Chrome {
	return render.Chrome{Title: title, Active: active, User: h.session(r)}
}

func (h *Handler) isProd() bool {
	return h.Config != nil && h.Config.IsProduction()
}

func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	templ.Handler(c, templ.WithStatus(status)).ServeHTTP(w, r)
}

// pageError logs err and shows the generic error page.
func (h *Handler) pageError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.Log.Error(msg, zap.Error(err), zap.String("path", r.URL.Path))
	h.renderPage(w, r, http.StatusInternalServerError, render.ErrorPage(h.chrome(r, "", "")))
}

// apiError logs err and answers with a generic 500 payload.
func (h *Handler) apiError(w http.ResponseWriter, msg string, err error) {
	h.Log.Error(msg, zap.Error(err))
	utils.ErrorResponse(w, http.StatusInternalServerError, "Something went wrong")
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func invalidInput(w http.ResponseWriter) {
	utils.ErrorResponse(w, http.StatusBadRequest, "Invalid input")
}

// safeReturn keeps redirects on this site.
func safeReturn(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}
	return target
}
