package render

import (
	"strconv"

	"github.com/a-h/templ"
	"github.com/rohits-web03/roboshow/internal/models"
	"github.com/rohits-web03/roboshow/internal/rating"
)

const descriptionPreview = 100

// Stars draws a widget. Interactive widgets become a radio group named
// "rating" so the committed value travels with the form.
func Stars(w *rating.Widget) templ.Component {
	return component(func(hw *htmlWriter) {
		filled := w.Filled()
		hw.rawf(`<div class="%s" data-state="%s">`, w.Size().Class(), w.State())
		for i := 1; i <= rating.MaxStars; i++ {
			class := "star"
			if i <= filled {
				class += " filled"
			}
			if !w.Interactive() {
				hw.rawf(`<span class="%s">★</span>`, class)
				continue
			}
			checked := ""
			if i == w.Selected() {
				checked = " checked"
			}
			hw.rawf(`<label class="%s"><input type="radio" name="rating" value="%d"%s>★</label>`, class, i, checked)
		}
		hw.raw(`</div>`)
	})
}

// StaticStars draws r as a display-only row of stars.
func StaticStars(r float64) templ.Component {
	return Stars(rating.Static(r))
}

func ratingSummary(p models.Project) string {
	if p.AvgRating > 0 {
		return FormatRating(p.AvgRating) + " (" + strconv.Itoa(p.TotalRatings) + ")"
	}
	return "No ratings yet"
}

func cardImage(hw *htmlWriter, p models.Project) {
	hw.rawf(`<img src="%s" alt="%s" class="card-image">`, esc(p.Image), esc(p.Title))
}

// ProjectCard is the gallery card of a project.
func ProjectCard(p models.Project) templ.Component {
	return component(func(hw *htmlWriter) {
		hw.raw(`<div class="card">`)
		cardImage(hw, p)
		hw.raw(`<div class="card-body">`)
		hw.rawf(`<h3 class="card-title">%s</h3>`, esc(p.Title))
		hw.rawf(`<p class="card-subtitle">👥 %s</p>`, esc(p.Team))
		hw.rawf(`<p class="card-description">%s</p>`, esc(Truncate(p.Description, descriptionPreview)))
		hw.raw(`<div class="card-footer"><div class="rating">`)
		hw.component(StaticStars(p.AvgRating))
		hw.rawf(`<span class="rating-value">%s</span>`, esc(ratingSummary(p)))
		hw.raw(`</div>`)
		hw.rawf(`<a href="%s" class="btn btn-primary btn-sm">View Details</a>`, esc(string(ProjectURL(p.ID))))
		hw.raw(`</div></div></div>`)
	})
}

// TopRatedCard is the compact card of the top-rated strip. rank starts at 1.
func TopRatedCard(p models.Project, rank int) templ.Component {
	return component(func(hw *htmlWriter) {
		hw.rawf(`<div class="card top-rated-card" data-rank="%d">`, rank)
		cardImage(hw, p)
		hw.raw(`<div class="card-body">`)
		hw.rawf(`<h3 class="card-title">%s</h3>`, esc(p.Title))
		hw.rawf(`<p class="card-subtitle">👥 %s</p>`, esc(p.Team))
		hw.raw(`<div class="card-footer"><div class="rating">`)
		hw.component(StaticStars(p.AvgRating))
		hw.rawf(`<span class="rating-value">%s</span>`, FormatRating(p.AvgRating))
		hw.raw(`</div>`)
		hw.rawf(`<a href="%s" class="btn btn-primary btn-sm">View</a>`, esc(string(ProjectURL(p.ID))))
		hw.raw(`</div></div></div>`)
	})
}

// FeedbackItem renders one review.
func FeedbackItem(f models.Feedback) templ.Component {
	return component(func(hw *htmlWriter) {
		hw.raw(`<div class="feedback-item"><div class="feedback-header"><div class="feedback-author">`)
		hw.rawf(`<div class="feedback-avatar">%s</div>`, esc(Initials(f.Name)))
		hw.rawf(`<div class="feedback-author-info"><h4>%s</h4><p class="feedback-date">%s</p></div>`,
			esc(f.Name), esc(FormatDate(f.Date)))
		hw.raw(`</div><div class="feedback-rating">`)
		hw.component(StaticStars(float64(f.Rating)))
		hw.raw(`</div></div>`)
		hw.rawf(`<p class="feedback-comment">%s</p>`, esc(f.Comment))
		hw.raw(`</div>`)
	})
}

// FeedbackList renders reviews newest first.
func FeedbackList(feedback []models.Feedback) templ.Component {
	return component(func(hw *htmlWriter) {
		hw.raw(`<div id="feedback-list">`)
		if len(feedback) == 0 {
			hw.raw(`<div class="no-feedback">No feedback yet. Be the first to share your thoughts!</div>`)
		}
		for i := len(feedback) - 1; i >= 0; i-- {
			hw.component(FeedbackItem(feedback[i]))
		}
		hw.raw(`</div>`)
	})
}

// TechTags renders technologies as tags.
func TechTags(technologies []string) templ.Component {
	return component(func(hw *htmlWriter) {
		for _, tech := range technologies {
			hw.rawf(`<span class="tag">%s</span>`, esc(tech))
		}
	})
}

// EmptyState is shown instead of the gallery when there are no projects.
func EmptyState(message string) templ.Component {
	if message == "" {
		message = "No projects found"
	}
	return component(func(hw *htmlWriter) {
		hw.raw(`<div class="empty-state"><div class="empty-state-icon">🤖</div>`)
		hw.rawf(`<h3>%s</h3>`, esc(message))
		hw.raw(`<p>Be the first to upload a robotics project!</p>`)
		hw.raw(`<a href="/upload" class="btn btn-primary">Upload Project</a></div>`)
	})
}

// AlertKind selects the alert styling.
type AlertKind string

const (
	AlertError   AlertKind = "error"
	AlertSuccess AlertKind = "success"
	AlertInfo    AlertKind = "info"
)

// Alert shows a heading and one line per message. Nothing is rendered when
// both are empty.
func Alert(kind AlertKind, heading string, messages ...string) templ.Component {
	return component(func(hw *htmlWriter) {
		if heading == "" && len(messages) == 0 {
			return
		}
		hw.rawf(`<div class="alert alert-%s" role="alert">`, esc(string(kind)))
		if heading != "" {
			hw.rawf(`<p class="alert-heading">%s</p>`, esc(heading))
		}
		if len(messages) > 0 {
			hw.raw(`<ul class="alert-list">`)
			for _, m := range messages {
				hw.rawf(`<li>%s</li>`, esc(m))
			}
			hw.raw(`</ul>`)
		}
		hw.raw(`</div>`)
	})
}
