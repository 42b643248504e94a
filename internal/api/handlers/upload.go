package handlers

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/rohits-web03/roboshow/internal/models"
	"github.com/rohits-web03/roboshow/internal/render"
	"go.uber.org/zap"
)

const (
	actionAddTag    = "add-tag"
	actionRemoveTag = "remove-tag"
	actionReset     = "reset"
)

// GET /upload
func (h *Handler) UploadForm(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusOK, render.UploadPage(render.UploadView{
		Chrome: h.chrome(r, "Upload Project", "upload"),
	}))
}

func uploadFormFrom(r *http.Request) render.UploadForm {
	return render.UploadForm{
		Title:        r.PostForm.Get("title"),
		Team:         r.PostForm.Get("team"),
		Description:  r.PostForm.Get("description"),
		Category:     r.PostForm.Get("category"),
		Technologies: cleanTags(r.PostForm["technologies"]),
		TagDraft:     r.PostForm.Get("tag"),
	}
}

// POST /upload. The action field says which button was pressed:
// add-tag, remove-tag:<index>, reset or submit.
func (h *Handler) SubmitUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	view := render.UploadView{
		Chrome: h.chrome(r, "Upload Project", "upload"),
		Form:   uploadFormFrom(r),
	}

	action, arg, _ := strings.Cut(r.PostForm.Get("action"), ":")
	switch action {
	case actionAddTag:
		if tag := strings.TrimSpace(view.Form.TagDraft); tag != "" {
			view.Form.Technologies = append(view.Form.Technologies, tag)
		}
		view.Form.TagDraft = ""
		h.renderPage(w, r, http.StatusOK, render.UploadPage(view))

	case actionRemoveTag:
		if i, err := strconv.Atoi(arg); err == nil && i >= 0 && i < len(view.Form.Technologies) {
			view.Form.Technologies = slices.Delete(view.Form.Technologies, i, i+1)
		}
		h.renderPage(w, r, http.StatusOK, render.UploadPage(view))

	case actionReset:
		if r.PostForm.Get("confirm") == "yes" {
			http.Redirect(w, r, "/upload", http.StatusSeeOther)
			return
		}
		view.ConfirmReset = true
		h.renderPage(w, r, http.StatusOK, render.UploadPage(view))

	default: // submit
		h.createFromForm(w, r, view)
	}
}

func (h *Handler) createFromForm(w http.ResponseWriter, r *http.Request, view render.UploadView) {
	in := normalizeProject(models.ProjectInput{
		Title:        view.Form.Title,
		Team:         view.Form.Team,
		Description:  view.Form.Description,
		Category:     view.Form.Category,
		Technologies: view.Form.Technologies,
	})
	if problems := validateProject(in); len(problems) > 0 {
		view.Errors = problems
		h.renderPage(w, r, http.StatusBadRequest, render.UploadPage(view))
		return
	}

	project, err := h.Projects.Create(r.Context(), in)
	if err != nil {
		h.pageError(w, r, "failed to create project", err)
		return
	}
	if view.User != nil {
		if err := h.Accounts.LinkProject(r.Context(), view.User.UserID, project.ID); err != nil {
			h.Log.Error("failed to link project", zap.Error(err), zap.String("project", project.ID))
		}
	}
	h.Log.Info("project uploaded", zap.String("project", project.ID))
	http.Redirect(w, r, "/?uploaded="+project.ID, http.StatusSeeOther)
}
