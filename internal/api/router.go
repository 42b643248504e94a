package api

import (
	"fmt"
	"net/http"

	_ "github.com/rohits-web03/roboshow/docs"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	"github.com/rohits-web03/roboshow/internal/api/handlers"
	"github.com/rohits-web03/roboshow/internal/api/middleware"
	"github.com/rs/cors"
)

func SetupRouter(h *handlers.Handler) http.Handler {
	mainMux := http.NewServeMux()
	c := cors.New(h.Config.CorsConfig())

	// ---------- PUBLIC ROUTES ----------
	mainMux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	mainMux.HandleFunc("/docs/", httpSwagger.WrapHandler)

	// ---------- PAGES ----------
	mainMux.HandleFunc("GET /{$}", h.Home)
	mainMux.HandleFunc("GET /projects/{id}", h.ProjectDetail)
	mainMux.HandleFunc("POST /projects/{id}/feedback", h.SubmitFeedback)
	mainMux.HandleFunc("GET /upload", h.UploadForm)
	mainMux.HandleFunc("POST /upload", h.SubmitUpload)
	mainMux.HandleFunc("GET /login", h.LoginPage)
	mainMux.HandleFunc("POST /login", h.SubmitLogin)
	mainMux.HandleFunc("GET /signup", h.SignupPage)
	mainMux.HandleFunc("POST /signup", h.SubmitSignup)
	mainMux.HandleFunc("POST /logout", h.SubmitLogout)
	mainMux.Handle("GET /my-projects",
		middleware.RequireAuth(h.Accounts, "/login")(http.HandlerFunc(h.MyProjects)),
	)
	mainMux.HandleFunc("/", h.NotFound)

	// ---------- JSON API ----------
	authMux := http.NewServeMux()
	authMux.HandleFunc("POST /sign-up", h.RegisterUser)
	authMux.HandleFunc("POST /login", h.LoginUser)
	authMux.HandleFunc("POST /logout", h.Logout)
	authMux.HandleFunc("GET /me", h.CurrentUser)
	authMux.HandleFunc("GET /google/login", h.HandleGoogleLogin)
	authMux.HandleFunc("GET /google/callback", h.HandleGoogleCallback)

	projectMux := http.NewServeMux()
	projectMux.HandleFunc("GET /{$}", h.ListProjects)
	projectMux.HandleFunc("POST /{$}", h.CreateProject)
	projectMux.HandleFunc("GET /top", h.TopProjects)
	projectMux.HandleFunc("GET /{id}", h.GetProject)
	projectMux.HandleFunc("PATCH /{id}", h.UpdateProject)
	projectMux.HandleFunc("DELETE /{id}", h.DeleteProject)
	projectMux.HandleFunc("POST /{id}/feedback", h.AddFeedback)

	imageMux := http.NewServeMux()
	imageMux.HandleFunc("POST /presign", h.PresignUpload)

	apiMux := http.NewServeMux()
	apiMux.Handle("/auth/", http.StripPrefix("/auth", authMux))
	apiMux.Handle("/projects", http.StripPrefix("/projects", withRoot(projectMux)))
	apiMux.Handle("/projects/", http.StripPrefix("/projects", projectMux))
	apiMux.Handle("/images/", http.StripPrefix("/images", imageMux))

	limiter := rate.NewLimiter(rate.Limit(h.Config.RateLimitRPS), h.Config.RateLimitBurst)
	mainMux.Handle("/api/v1/",
		http.StripPrefix(
			"/api/v1",
			middleware.RateLimit(limiter)(apiMux),
		),
	)

	h.Log.Info("router initialized")
	handler := middleware.Profile(h.Config.JWTSecret, h.Config.IsProduction())(mainMux)
	handler = c.Handler(handler)
	handler = middleware.Logger(h.Log)(handler)
	return handler
}

// withRoot maps the empty path left by StripPrefix onto "/".
func withRoot(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" {
			r.URL.Path = "/"
		}
		next.ServeHTTP(w, r)
	})
}
