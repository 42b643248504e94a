package render

import (
	"net/url"
	"strconv"

	"github.com/a-h/templ"
	"github.com/rohits-web03/roboshow/internal/models"
	"github.com/rohits-web03/roboshow/internal/rating"
)

type HomeView struct {
	Chrome
	TopRated []models.Project
	Projects []models.Project
	Uploaded string // id of a project that was just created
}

func HomePage(v HomeView) templ.Component {
	return Layout(v.Chrome, component(func(hw *htmlWriter) {
		if v.Uploaded != "" {
			hw.component(Alert(AlertSuccess, "🎉 Project uploaded successfully!", "Project ID: "+v.Uploaded))
		}
		hw.raw(`<section class="hero"><h1>Showcase Your Robotics Projects</h1>`)
		hw.raw(`<p>Share what your team built, collect ratings and learn from the community.</p>`)
		hw.raw(`<a href="/upload" class="btn btn-primary">+ Add Project</a></section>`)

		hw.raw(`<section class="section"><h2>Top Rated Projects</h2><div id="top-rated-grid" class="grid">`)
		if len(v.TopRated) == 0 {
			hw.raw(`<p class="text-center text-muted">No rated projects yet. Be the first to upload and get ratings!</p>`)
		}
		for i, p := range v.TopRated {
			hw.component(TopRatedCard(p, i+1))
		}
		hw.raw(`</div></section>`)

		hw.raw(`<section class="section"><h2>Project Gallery</h2><div id="gallery-grid" class="grid">`)
		if len(v.Projects) == 0 {
			hw.component(EmptyState(""))
		}
		for _, p := range v.Projects {
			hw.component(ProjectCard(p))
		}
		hw.raw(`</div></section>`)

		hw.raw(`<section class="section"><h2>What Teams Say</h2><div id="testimonials-grid" class="grid">`)
		for _, t := range Testimonials {
			hw.component(TestimonialCard(t))
		}
		hw.raw(`</div></section>`)

		hw.raw(`<section class="section"><h2>Frequently Asked Questions</h2><div id="faq-container">`)
		for i, f := range FAQs {
			hw.component(FAQItem(f, i))
		}
		hw.raw(`</div></section>`)
	}))
}

type FeedbackForm struct {
	Name    string
	Comment string
}

type DetailView struct {
	Chrome
	Project models.Project
	Widget  *rating.Widget
	Form    FeedbackForm
	Errors  []string
	Thanks  bool
}

func DetailPage(v DetailView) templ.Component {
	p := v.Project
	return Layout(v.Chrome, component(func(hw *htmlWriter) {
		hw.rawf(`<section class="project-hero"><img id="project-hero-img" src="%s" alt="%s"></section>`, esc(p.Image), esc(p.Title))
		hw.raw(`<section class="project-details">`)
		hw.rawf(`<h1 id="project-title">%s</h1>`, esc(p.Title))
		hw.rawf(`<p>👥 <span id="project-team">%s</span></p>`, esc(p.Team))
		hw.rawf(`<p><span id="project-category" class="badge">%s</span> <span id="project-date">%s</span></p>`,
			esc(p.Category), esc(FormatDate(p.CreatedAt)))
		hw.rawf(`<p id="project-description">%s</p>`, esc(p.Description))
		hw.raw(`<div id="tech-list">`)
		hw.component(TechTags(p.Technologies))
		hw.raw(`</div></section>`)

		hw.raw(`<section id="rating-container" class="rating-section">`)
		if p.AvgRating > 0 {
			hw.rawf(`<div id="avg-rating">%s</div>`, FormatRating(p.AvgRating))
			hw.rawf(`<div class="rating-label">%s</div>`, esc(rating.Label(p.AvgRating)))
		} else {
			hw.raw(`<div id="avg-rating">No ratings yet</div>`)
		}
		if p.TotalRatings > 0 {
			hw.rawf(`<p id="rating-info">Based on %s</p>`, plural(p.TotalRatings, "rating"))
		} else {
			hw.raw(`<p id="rating-info">Be the first to rate this project!</p>`)
		}
		hw.raw(`</section>`)

		hw.raw(`<section class="feedback-section"><h2>Leave Feedback</h2>`)
		if v.Thanks {
			hw.component(Alert(AlertSuccess, "✅ Thank you for your feedback!"))
		}
		if len(v.Errors) > 0 {
			hw.component(Alert(AlertError, "", v.Errors...))
		}
		hw.rawf(`<form id="feedback-form" method="post" action="%s/feedback">`, esc(string(ProjectURL(p.ID))))
		hw.raw(`<div id="rating-stars">`)
		widget := v.Widget
		if widget == nil {
			widget = rating.NewWidget(p.AvgRating, rating.WithSize(rating.Large))
		}
		hw.component(Stars(widget))
		hw.raw(`</div>`)
		hw.rawf(`<label for="feedback-name">Your Name</label><input id="feedback-name" name="name" type="text" value="%s" placeholder="Anonymous">`, esc(v.Form.Name))
		hw.rawf(`<label for="feedback-comment">Comment</label><textarea id="feedback-comment" name="comment" rows="4">%s</textarea>`, esc(v.Form.Comment))
		hw.raw(`<button type="submit" class="btn btn-primary">Submit Feedback</button></form></section>`)

		hw.raw(`<section class="feedback-list-section"><h2>Feedback</h2>`)
		hw.component(FeedbackList(p.Feedback))
		hw.raw(`</section>`)
	}))
}

type UploadForm struct {
	Title        string
	Team         string
	Description  string
	Category     string
	Technologies []string
	TagDraft     string // text in the technology input not yet added as a tag
}

type UploadView struct {
	Chrome
	Form         UploadForm
	Errors       []string
	ConfirmReset bool
}

// UploadPage is the upload form. Buttons post an "action" so tag editing
// and reset round-trip through the server.
func UploadPage(v UploadView) templ.Component {
	f := v.Form
	return Layout(v.Chrome, component(func(hw *htmlWriter) {
		hw.raw(`<section class="upload-section"><h1>Upload Your Project</h1>`)
		if len(v.Errors) > 0 {
			hw.component(Alert(AlertError, "Please fix the following errors:", v.Errors...))
		}
		if v.ConfirmReset {
			hw.raw(`<div class="alert alert-info" role="alert">`)
			hw.raw(`<p>Are you sure you want to reset the form? All entered data will be lost.</p>`)
			hw.raw(`<form method="post" action="/upload"><input type="hidden" name="action" value="reset"><input type="hidden" name="confirm" value="yes">`)
			hw.raw(`<button type="submit" class="btn btn-outline btn-sm">Yes, reset</button></form></div>`)
		}

		hw.raw(`<form id="upload-form" method="post" action="/upload">`)
		hw.rawf(`<label for="project-title">Project Title</label><input id="project-title" name="title" type="text" value="%s">`, esc(f.Title))
		hw.rawf(`<label for="team-name">Team Name</label><input id="team-name" name="team" type="text" value="%s">`, esc(f.Team))
		hw.rawf(`<label for="description">Description</label><textarea id="description" name="description" rows="5">%s</textarea>`, esc(f.Description))

		hw.raw(`<label for="category">Category</label><select id="category" name="category"><option value="">Select a category</option>`)
		for _, c := range Categories {
			selected := ""
			if c == f.Category {
				selected = " selected"
			}
			hw.rawf(`<option value="%s"%s>%s</option>`, esc(c), selected, esc(c))
		}
		hw.raw(`</select>`)

		hw.rawf(`<label for="technologies">Technologies</label><input id="technologies" name="tag" type="text" value="%s" placeholder="Type and press Enter">`, esc(f.TagDraft))
		hw.raw(`<button type="submit" name="action" value="add-tag" class="btn btn-sm btn-outline">+ Add</button>`)
		hw.raw(`<div id="tech-tags">`)
		for i, tech := range f.Technologies {
			hw.rawf(`<span class="tag">%s<input type="hidden" name="technologies" value="%s">`, esc(tech), esc(tech))
			hw.rawf(`<button type="submit" name="action" value="remove-tag:%s" class="tag-remove" aria-label="Remove %s">×</button></span>`,
				strconv.Itoa(i), esc(tech))
		}
		hw.raw(`</div>`)

		hw.raw(`<div class="form-actions">`)
		hw.raw(`<button type="submit" name="action" value="submit" class="btn btn-primary">Submit Project</button>`)
		hw.raw(`<button type="submit" name="action" value="reset" id="reset-btn" class="btn btn-outline">Reset</button>`)
		hw.raw(`</div></form></section>`)
	}))
}

type AuthView struct {
	Chrome
	Name          string
	Email         string
	Return        string
	Error         string
	GoogleEnabled bool
}

func authForm(hw *htmlWriter, v AuthView, action string) {
	if v.Error != "" {
		hw.component(Alert(AlertError, v.Error))
	}
	hw.rawf(`<form method="post" action="%s" class="auth-form">`, action)
	hw.rawf(`<input type="hidden" name="return" value="%s">`, esc(v.Return))
	if action == "/signup" {
		hw.rawf(`<label for="name">Name</label><input id="name" name="name" type="text" value="%s">`, esc(v.Name))
	}
	hw.rawf(`<label for="email">Email</label><input id="email" name="email" type="email" value="%s">`, esc(v.Email))
	hw.raw(`<label for="password">Password</label><input id="password" name="password" type="password">`)
}

func googleButton(hw *htmlWriter, v AuthView, mode string) {
	if !v.GoogleEnabled {
		return
	}
	href := "/api/v1/auth/google/login?mode=" + mode
	if v.Return != "" {
		href += "&return=" + url.QueryEscape(v.Return)
	}
	hw.rawf(`<a href="%s" class="btn btn-outline">Continue with Google</a>`, esc(href))
}

func LoginPage(v AuthView) templ.Component {
	return Layout(v.Chrome, component(func(hw *htmlWriter) {
		hw.raw(`<section class="auth-section"><h1>Login</h1>`)
		authForm(hw, v, "/login")
		hw.raw(`<button type="submit" class="btn btn-primary">Login</button></form>`)
		googleButton(hw, v, "login")
		hw.raw(`<p>Don't have an account? <a href="/signup">Sign Up</a></p></section>`)
	}))
}

func SignupPage(v AuthView) templ.Component {
	return Layout(v.Chrome, component(func(hw *htmlWriter) {
		hw.raw(`<section class="auth-section"><h1>Create Account</h1>`)
		authForm(hw, v, "/signup")
		hw.raw(`<button type="submit" class="btn btn-primary">Sign Up</button></form>`)
		googleButton(hw, v, "signup")
		hw.raw(`<p>Already have an account? <a href="/login">Login</a></p></section>`)
	}))
}

type MyProjectsView struct {
	Chrome
	Projects []models.Project
}

func MyProjectsPage(v MyProjectsView) templ.Component {
	return Layout(v.Chrome, component(func(hw *htmlWriter) {
		hw.raw(`<section class="section"><h1>My Projects</h1><div id="my-projects-grid" class="grid">`)
		if len(v.Projects) == 0 {
			hw.component(EmptyState("You haven't uploaded any projects yet"))
		}
		for _, p := range v.Projects {
			hw.component(ProjectCard(p))
		}
		hw.raw(`</div></section>`)
	}))
}

// NotFoundPage is served with a 404 status by the page handlers.
func NotFoundPage(c Chrome, message string) templ.Component {
	if c.Title == "" {
		c.Title = message
	}
	return Layout(c, component(func(hw *htmlWriter) {
		hw.raw(`<section class="not-found">`)
		hw.rawf(`<h1>%s</h1>`, esc(message))
		hw.raw(`<a href="/" class="btn btn-primary">Back to Home</a></section>`)
	}))
}

// ErrorPage is the generic 500 page.
func ErrorPage(c Chrome) templ.Component {
	c.Title = "Something went wrong"
	return Layout(c, component(func(hw *htmlWriter) {
		hw.raw(`<section class="not-found"><h1>Something went wrong</h1>`)
		hw.raw(`<p>Please try again.</p><a href="/" class="btn btn-primary">Back to Home</a></section>`)
	}))
}
