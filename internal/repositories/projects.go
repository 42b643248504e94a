package repositories

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rohits-web03/roboshow/internal/models"
	"github.com/rohits-web03/roboshow/internal/rating"
)

const (
	projectIDPrefix = "RB-"
	projectIDBase   = 1000 // used when no id can be parsed, so the first is RB-1001
)

// ProjectRepository owns the projects collection. Every mutation rewrites
// the whole document.
type ProjectRepository struct {
	store Store
	now   func() time.Time

	mu sync.Mutex // serialises read-modify-write cycles
}

type ProjectOption func(*ProjectRepository)

// WithClock overrides the clock used for creation and feedback dates.
func WithClock(now func() time.Time) ProjectOption {
	return func(r *ProjectRepository) { r.now = now }
}

func NewProjectRepository(store Store, opts ...ProjectOption) *ProjectRepository {
	r := &ProjectRepository{store: store, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *ProjectRepository) today() string {
	return r.now().Format(models.DateLayout)
}

// List returns every project in insertion order.
func (r *ProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	return loadCollection[models.Project](ctx, r.store, ProjectsKey)
}

func (r *ProjectRepository) Get(ctx context.Context, id string) (*models.Project, error) {
	projects, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], nil
		}
	}
	return nil, ErrProjectNotFound
}

// ByIDs returns the projects whose id is in ids, in collection order.
func (r *ProjectRepository) ByIDs(ctx context.Context, ids []string) ([]models.Project, error) {
	projects, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Project, 0, len(ids))
	for _, p := range projects {
		if slices.Contains(ids, p.ID) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Create appends a new project with a fresh id and empty feedback.
func (r *ProjectRepository) Create(ctx context.Context, in models.ProjectInput) (*models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	projects, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	image := in.Image
	if strings.TrimSpace(image) == "" {
		image = models.PlaceholderImage
	}

	project := models.Project{
		ID:           nextProjectID(projects),
		Title:        in.Title,
		Team:         in.Team,
		Description:  in.Description,
		Category:     in.Category,
		Technologies: cloneTags(in.Technologies),
		AvgRating:    0,
		TotalRatings: 0,
		Image:        image,
		CreatedAt:    r.today(),
		Feedback:     []models.Feedback{},
	}

	projects = append(projects, project)
	if err := saveCollection(ctx, r.store, ProjectsKey, projects); err != nil {
		return nil, err
	}
	return &project, nil
}

// Update shallow-merges patch into the project with id.
func (r *ProjectRepository) Update(ctx context.Context, id string, patch models.ProjectPatch) (*models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.update(ctx, id, patch)
}

func (r *ProjectRepository) update(ctx context.Context, id string, patch models.ProjectPatch) (*models.Project, error) {
	projects, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	idx := slices.IndexFunc(projects, func(p models.Project) bool { return p.ID == id })
	if idx == -1 {
		return nil, ErrProjectNotFound
	}

	patch.Apply(&projects[idx])
	if err := saveCollection(ctx, r.store, ProjectsKey, projects); err != nil {
		return nil, err
	}
	updated := projects[idx]
	return &updated, nil
}

// Delete removes the project with id and reports whether one was removed.
func (r *ProjectRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	projects, err := r.List(ctx)
	if err != nil {
		return false, err
	}
	filtered := slices.DeleteFunc(slices.Clone(projects), func(p models.Project) bool { return p.ID == id })
	if err := saveCollection(ctx, r.store, ProjectsKey, filtered); err != nil {
		return false, err
	}
	return len(filtered) < len(projects), nil
}

// AddFeedback appends feedback to a project and recomputes its aggregate
// rating. The rating value is trusted; callers validate it.
func (r *ProjectRepository) AddFeedback(ctx context.Context, projectID string, in models.FeedbackInput) (*models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	project, err := r.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = "Anonymous"
	}
	feedback := append(slices.Clone(project.Feedback), models.Feedback{
		Name:    name,
		Rating:  in.Rating,
		Comment: in.Comment,
		Date:    r.today(),
	})

	ratings := make([]int, len(feedback))
	for i, f := range feedback {
		ratings[i] = f.Rating
	}
	avg := rating.Average(ratings)
	total := len(feedback)

	return r.update(ctx, projectID, models.ProjectPatch{
		Feedback:     feedback,
		AvgRating:    &avg,
		TotalRatings: &total,
	})
}

// TopRated returns up to limit rated projects, best first. Ties keep
// collection order.
func (r *ProjectRepository) TopRated(ctx context.Context, limit int) ([]models.Project, error) {
	if limit <= 0 {
		return []models.Project{}, nil
	}
	projects, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	rated := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if p.TotalRatings > 0 {
			rated = append(rated, p)
		}
	}
	sort.SliceStable(rated, func(i, j int) bool {
		return rated[i].AvgRating > rated[j].AvgRating
	})
	if len(rated) > limit {
		rated = rated[:limit]
	}
	return rated, nil
}

// SeedIfEmpty writes the sample projects when the collection is empty and
// reports whether it did.
func (r *ProjectRepository) SeedIfEmpty(ctx context.Context) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	projects, err := r.List(ctx)
	if err != nil {
		return false, err
	}
	if len(projects) > 0 {
		return false, nil
	}
	samples, err := SampleProjects()
	if err != nil {
		return false, err
	}
	if err := saveCollection(ctx, r.store, ProjectsKey, samples); err != nil {
		return false, err
	}
	return true, nil
}

// cloneTags copies tags and never returns nil, so documents always carry
// a technologies array.
func cloneTags(tags []string) []string {
	return append(make([]string, 0, len(tags)), tags...)
}

func nextProjectID(projects []models.Project) string {
	highest, found := projectIDBase, false
	for _, p := range projects {
		suffix, ok := strings.CutPrefix(p.ID, projectIDPrefix)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(suffix)
		if err != nil {
			continue
		}
		if !found || n > highest {
			highest, found = n, true
		}
	}
	return fmt.Sprintf("%s%d", projectIDPrefix, highest+1)
}
