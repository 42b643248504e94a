package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/rohits-web03/roboshow/internal/api/services"
	"github.com/rohits-web03/roboshow/internal/repositories"
	"github.com/rohits-web03/roboshow/internal/utils"
	"go.uber.org/zap"
)

const (
	stateCookie = "oauth_state"
	flowLogin   = "login"
	flowSignup  = "signup"
)

type signUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterUser godoc
// @Summary Create an account
// @Description Registers a user and signs them in on this client profile
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body signUpRequest true "New account"
// @Success 201 {object} utils.Payload{data=models.PublicUser}
// @Failure 400 {object} utils.Payload
// @Failure 409 {object} utils.Payload
// @Router /api/v1/auth/sign-up [post]
func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var input signUpRequest
	if err := decodeJSON(r, &input); err != nil {
		invalidInput(w)
		return
	}

	user, err := h.accounts(r).Register(r.Context(), input.Name, input.Email, input.Password)
	var verr *repositories.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.ErrorResponse(w, http.StatusBadRequest, verr.First())
		return
	case errors.Is(err, repositories.ErrEmailTaken):
		utils.ErrorResponse(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		h.apiError(w, "failed to register", err)
		return
	}

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "User registered successfully",
		Data:    user.Public(),
	})
}

// LoginUser godoc
// @Summary Log in
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Credentials"
// @Success 200 {object} utils.Payload{data=models.Session}
// @Failure 401 {object} utils.Payload
// @Router /api/v1/auth/login [post]
func (h *Handler) LoginUser(w http.ResponseWriter, r *http.Request) {
	var input loginRequest
	if err := decodeJSON(r, &input); err != nil {
		invalidInput(w)
		return
	}

	session, err := h.accounts(r).Login(r.Context(), input.Email, input.Password)
	if errors.Is(err, repositories.ErrInvalidCredentials) {
		utils.ErrorResponse(w, http.StatusUnauthorized, err.Error())
		return
	}
	if err != nil {
		h.apiError(w, "failed to log in", err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Login successful",
		Data:    session,
	})
}

// Logout godoc
// @Summary Log out
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.Payload
// @Router /api/v1/auth/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.accounts(r).Logout(r.Context()); err != nil {
		h.Log.Error("failed to log out", zap.Error(err))
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Logged out successfully",
	})
}

// CurrentUser godoc
// @Summary Current session
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.Payload{data=models.Session}
// @Failure 401 {object} utils.Payload
// @Router /api/v1/auth/me [get]
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	session := h.session(r)
	if session == nil {
		utils.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Session retrieved successfully",
		Data:    session,
	})
}

func (h *Handler) googleDisabled(w http.ResponseWriter) bool {
	if h.OAuth != nil {
		return false
	}
	utils.ErrorResponse(w, http.StatusServiceUnavailable, "Google sign-in is not configured")
	return true
}

// HandleGoogleLogin godoc
// @Summary Start Google sign-in
// @Tags Auth
// @Param mode query string false "login or signup" default(login)
// @Param return query string false "Local path to open afterwards"
// @Success 307
// @Failure 503 {object} utils.Payload
// @Router /api/v1/auth/google/login [get]
func (h *Handler) HandleGoogleLogin(w http.ResponseWriter, r *http.Request) {
	if h.googleDisabled(w) {
		return
	}
	flow := r.URL.Query().Get("mode")
	if flow != flowSignup {
		flow = flowLogin
	}

	st, state, err := encodeState(flow, safeReturn(r.URL.Query().Get("return")))
	if err != nil {
		h.apiError(w, "failed to generate OAuth state", err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    st.Nonce,
		Path:     "/api/v1/auth/google",
		MaxAge:   600,
		Secure:   h.isProd(),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, h.OAuth.AuthCodeURL(state), http.StatusTemporaryRedirect)
}

// HandleGoogleCallback godoc
// @Summary Finish Google sign-in
// @Tags Auth
// @Param state query string true "OAuth state"
// @Param code query string true "Authorization code"
// @Success 303
// @Failure 400 {object} utils.Payload
// @Router /api/v1/auth/google/callback [get]
func (h *Handler) HandleGoogleCallback(w http.ResponseWriter, r *http.Request) {
	if h.googleDisabled(w) {
		return
	}
	st, err := decodeState(r.FormValue("state"))
	cookie, cookieErr := r.Cookie(stateCookie)
	if err != nil || cookieErr != nil || cookie.Value != st.Nonce {
		utils.ErrorResponse(w, http.StatusBadRequest, "Invalid OAuth state")
		return
	}
	http.SetCookie(w, &http.Cookie{Name: stateCookie, Path: "/api/v1/auth/google", MaxAge: -1})

	failPage := "/login"
	if st.Flow == flowSignup {
		failPage = "/signup"
	}
	fail := func(code string) {
		http.Redirect(w, r, failPage+"?error="+url.QueryEscape(code), http.StatusSeeOther)
	}

	user, err := services.FetchGoogleUser(r.Context(), h.OAuth, r.FormValue("code"))
	if errors.Is(err, services.ErrGoogleUnverified) {
		h.Log.Warn("google email not verified")
		fail(errCodeUnverified)
		return
	}
	if err != nil {
		h.Log.Warn("google sign-in failed", zap.Error(err))
		fail(errCodeGoogle)
		return
	}

	_, err = h.accounts(r).LoginExternal(r.Context(), user.Email, user.Name, st.Flow == flowSignup)
	switch {
	case errors.Is(err, repositories.ErrEmailTaken):
		fail(errCodeUserExists)
		return
	case errors.Is(err, repositories.ErrUserNotFound):
		fail(errCodeUserNotFound)
		return
	case err != nil:
		h.apiError(w, "failed to sign in with google", err)
		return
	}

	http.Redirect(w, r, safeReturn(st.Return), http.StatusSeeOther)
}
