package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/rohits-web03/roboshow/internal/models"
	"github.com/rohits-web03/roboshow/internal/repositories"
	"github.com/rohits-web03/roboshow/internal/utils"
	"go.uber.org/zap"
)

const defaultTopLimit = 3

// projectPatchRequest is the editable subset of a project. Rating
// aggregates only change through feedback.
type projectPatchRequest struct {
	Title        *string  `json:"title,omitempty"`
	Team         *string  `json:"team,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Category     *string  `json:"category,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Image        *string  `json:"image,omitempty"`
}

func (p projectPatchRequest) toPatch() models.ProjectPatch {
	return models.ProjectPatch{
		Title:        p.Title,
		Team:         p.Team,
		Description:  p.Description,
		Category:     p.Category,
		Technologies: p.Technologies,
		Image:        p.Image,
	}
}

func projectNotFound(w http.ResponseWriter) {
	utils.ErrorResponse(w, http.StatusNotFound, "Project not found")
}

// ListProjects godoc
// @Summary List projects
// @Description Returns every project in upload order
// @Tags Projects
// @Produce json
// @Success 200 {object} utils.Payload{data=[]models.Project}
// @Failure 500 {object} utils.Payload
// @Router /api/v1/projects [get]
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Projects.List(r.Context())
	if err != nil {
		h.apiError(w, "failed to list projects", err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Projects retrieved successfully",
		Data:    projects,
	})
}

// TopProjects godoc
// @Summary Top rated projects
// @Description Rated projects ordered by average rating, best first
// @Tags Projects
// @Produce json
// @Param limit query int false "Maximum number of projects" default(3)
// @Success 200 {object} utils.Payload{data=[]models.Project}
// @Failure 400 {object} utils.Payload
// @Router /api/v1/projects/top [get]
func (h *Handler) TopProjects(w http.ResponseWriter, r *http.Request) {
	limit := defaultTopLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			utils.ErrorResponse(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	projects, err := h.Projects.TopRated(r.Context(), limit)
	if err != nil {
		h.apiError(w, "failed to load top rated projects", err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Top rated projects retrieved successfully",
		Data:    projects,
	})
}

// GetProject godoc
// @Summary Get a project
// @Tags Projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} utils.Payload{data=models.Project}
// @Failure 404 {object} utils.Payload
// @Router /api/v1/projects/{id} [get]
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.Projects.Get(r.Context(), r.PathValue("id"))
	if errors.Is(err, repositories.ErrProjectNotFound) {
		projectNotFound(w)
		return
	}
	if err != nil {
		h.apiError(w, "failed to load project", err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Project retrieved successfully",
		Data:    project,
	})
}

// resolveImage turns an uploaded bucket key into its public URL. Anything
// that is not a bucket key is kept as given.
func (h *Handler) resolveImage(ctx context.Context, image string) (string, error) {
	if h.Images == nil || !strings.HasPrefix(image, "projects/") {
		return image, nil
	}
	ok, err := h.Images.Exists(ctx, image)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errImageMissing
	}
	return h.Images.PublicURL(image), nil
}

var errImageMissing = errors.New("Image has not been uploaded")

// CreateProject godoc
// @Summary Upload a project
// @Description Validates the project and stores it. Signed-in callers get the project linked to their account.
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body models.ProjectInput true "Project"
// @Success 201 {object} utils.Payload{data=models.Project}
// @Failure 400 {object} utils.Payload{data=[]string} "Validation errors"
// @Router /api/v1/projects [post]
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var input models.ProjectInput
	if err := decodeJSON(r, &input); err != nil {
		invalidInput(w)
		return
	}
	input = normalizeProject(input)

	if problems := validateProject(input); len(problems) > 0 {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Please fix the following errors",
			Data:    problems,
		})
		return
	}

	image, err := h.resolveImage(r.Context(), input.Image)
	if errors.Is(err, errImageMissing) {
		utils.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		h.apiError(w, "failed to check image", err)
		return
	}
	input.Image = image

	project, err := h.Projects.Create(r.Context(), input)
	if err != nil {
		h.apiError(w, "failed to create project", err)
		return
	}
	if session := h.session(r); session != nil {
		if err := h.Accounts.LinkProject(r.Context(), session.UserID, project.ID); err != nil {
			h.Log.Error("failed to link project", zap.Error(err), zap.String("project", project.ID))
		}
	}

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "Project uploaded successfully",
		Data:    project,
	})
}

// UpdateProject godoc
// @Summary Edit a project
// @Description Shallow merge: omitted fields keep their value
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param project body projectPatchRequest true "Fields to change"
// @Success 200 {object} utils.Payload{data=models.Project}
// @Failure 400 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/v1/projects/{id} [patch]
func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	var input projectPatchRequest
	if err := decodeJSON(r, &input); err != nil {
		invalidInput(w)
		return
	}

	project, err := h.Projects.Update(r.Context(), r.PathValue("id"), input.toPatch())
	if errors.Is(err, repositories.ErrProjectNotFound) {
		projectNotFound(w)
		return
	}
	if err != nil {
		h.apiError(w, "failed to update project", err)
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Project updated successfully",
		Data:    project,
	})
}

// DeleteProject godoc
// @Summary Delete a project
// @Tags Projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/v1/projects/{id} [delete]
func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	removed, err := h.Projects.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		h.apiError(w, "failed to delete project", err)
		return
	}
	if !removed {
		projectNotFound(w)
		return
	}
	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Project deleted successfully",
	})
}

// AddFeedback godoc
// @Summary Rate a project
// @Description Adds a 1-5 star rating with a comment of at least 10 characters
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param feedback body models.FeedbackInput true "Feedback"
// @Success 201 {object} utils.Payload{data=models.Project}
// @Failure 400 {object} utils.Payload
// @Failure 404 {object} utils.Payload
// @Router /api/v1/projects/{id}/feedback [post]
func (h *Handler) AddFeedback(w http.ResponseWriter, r *http.Request) {
	var input models.FeedbackInput
	if err := decodeJSON(r, &input); err != nil {
		invalidInput(w)
		return
	}

	widget, err := commitRating(input.Rating)
	if err != nil {
		utils.ErrorResponse(w, http.StatusBadRequest, msgRatingRange)
		return
	}
	if problem := validateComment(input.Comment); problem != "" {
		utils.ErrorResponse(w, http.StatusBadRequest, problem)
		return
	}
	input.Rating = widget.Selected()
	input.Comment = strings.TrimSpace(input.Comment)

	project, err := h.Projects.AddFeedback(r.Context(), r.PathValue("id"), input)
	if errors.Is(err, repositories.ErrProjectNotFound) {
		projectNotFound(w)
		return
	}
	if err != nil {
		h.apiError(w, "failed to add feedback", err)
		return
	}
	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "Thank you for your feedback!",
		Data:    project,
	})
}
