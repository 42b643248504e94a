package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rohits-web03/roboshow/internal/models"
	"github.com/rohits-web03/roboshow/internal/rating"
	"github.com/rohits-web03/roboshow/internal/render"
	"github.com/rohits-web03/roboshow/internal/repositories"
	"go.uber.org/zap"
)

const topRatedOnHome = 3

// GET /
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	seeded, err := h.Projects.SeedIfEmpty(ctx)
	if err != nil {
		h.pageError(w, r, "failed to seed projects", err)
		return
	}
	if seeded {
		h.Log.Info("seeded sample projects")
	}

	top, err := h.Projects.TopRated(ctx, topRatedOnHome)
	if err != nil {
		h.pageError(w, r, "failed to load top rated projects", err)
		return
	}
	all, err := h.Projects.List(ctx)
	if err != nil {
		h.pageError(w, r, "failed to load projects", err)
		return
	}

	h.renderPage(w, r, http.StatusOK, render.HomePage(render.HomeView{
		Chrome:   h.chrome(r, "Home", "home"),
		TopRated: top,
		Projects: all,
		Uploaded: r.URL.Query().Get("uploaded"),
	}))
}

// NotFound answers every path no other route claims.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusNotFound, render.NotFoundPage(h.chrome(r, "", ""), "Page not found"))
}

func (h *Handler) loadProject(w http.ResponseWriter, r *http.Request) (*models.Project, bool) {
	project, err := h.Projects.Get(r.Context(), r.PathValue("id"))
	if errors.Is(err, repositories.ErrProjectNotFound) {
		h.renderPage(w, r, http.StatusNotFound, render.NotFoundPage(h.chrome(r, "", ""), "Project not found"))
		return nil, false
	}
	if err != nil {
		h.pageError(w, r, "failed to load project", err)
		return nil, false
	}
	return project, true
}

// GET /projects/{id}
func (h *Handler) ProjectDetail(w http.ResponseWriter, r *http.Request) {
	project, ok := h.loadProject(w, r)
	if !ok {
		return
	}
	h.renderPage(w, r, http.StatusOK, render.DetailPage(render.DetailView{
		Chrome:  h.chrome(r, project.Title, ""),
		Project: *project,
		Widget:  rating.NewWidget(project.AvgRating, rating.WithSize(rating.Large)),
		Thanks:  r.URL.Query().Get("thanks") == "1",
	}))
}

// POST /projects/{id}/feedback
func (h *Handler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	project, ok := h.loadProject(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}

	widget := rating.NewWidget(project.AvgRating, rating.WithSize(rating.Large))
	selected := 0
	cancel := widget.Subscribe(func(v int) { selected = v })
	defer cancel()
	if v, err := strconv.Atoi(r.PostForm.Get("rating")); err == nil {
		_ = widget.Click(v) // out of range leaves nothing selected
	}

	form := render.FeedbackForm{
		Name:    r.PostForm.Get("name"),
		Comment: r.PostForm.Get("comment"),
	}

	var problem string
	if selected == 0 {
		problem = msgSelectRating
	} else {
		problem = validateComment(form.Comment)
	}
	if problem != "" {
		h.renderPage(w, r, http.StatusBadRequest, render.DetailPage(render.DetailView{
			Chrome:  h.chrome(r, project.Title, ""),
			Project: *project,
			Widget:  widget,
			Form:    form,
			Errors:  []string{problem},
		}))
		return
	}

	_, err := h.Projects.AddFeedback(r.Context(), project.ID, models.FeedbackInput{
		Name:    form.Name,
		Rating:  selected,
		Comment: strings.TrimSpace(form.Comment),
	})
	if err != nil {
		h.pageError(w, r, "failed to add feedback", err)
		return
	}
	h.Log.Debug("feedback added", zap.String("project", project.ID), zap.Int("rating", selected))
	http.Redirect(w, r, string(render.ProjectURL(project.ID))+"?thanks=1", http.StatusSeeOther)
}

// GET /my-projects, behind RequireAuth.
func (h *Handler) MyProjects(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	chrome := h.chrome(r, "My Projects", "")
	if chrome.User == nil {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	var projects []models.Project
	user, err := h.Accounts.UserByID(ctx, chrome.User.UserID)
	switch {
	case errors.Is(err, repositories.ErrUserNotFound):
	case err != nil:
		h.pageError(w, r, "failed to load user", err)
		return
	default:
		projects, err = h.Projects.ByIDs(ctx, user.Projects)
		if err != nil {
			h.pageError(w, r, "failed to load projects", err)
			return
		}
	}

	h.renderPage(w, r, http.StatusOK, render.MyProjectsPage(render.MyProjectsView{
		Chrome:   chrome,
		Projects: projects,
	}))
}
