package render

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/rohits-web03/roboshow/internal/models"
	"github.com/rohits-web03/roboshow/internal/rating"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, c.Render(context.Background(), &b))
	return b.String()
}

func testProject() models.Project {
	return models.Project{
		ID:           "RB-1001",
		Title:        "Line <Follower>",
		Team:         "Circuit Breakers",
		Description:  strings.Repeat("a", 120),
		Category:     "Line Follower",
		Technologies: []string{"Arduino", "PID"},
		AvgRating:    4.5,
		TotalRatings: 2,
		Image:        models.PlaceholderImage,
		CreatedAt:    "2024-01-15",
		Feedback: []models.Feedback{
			{Name: "Priya Sharma", Rating: 5, Comment: "first", Date: "2024-01-16"},
			{Name: "Rahul", Rating: 4, Comment: "second", Date: "2024-01-17"},
		},
	}
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 100))
	assert.Equal(t, "ab...", Truncate("abc", 2))
	assert.Equal(t, "January 15, 2024", FormatDate("2024-01-15"))
	assert.Equal(t, "yesterday", FormatDate("yesterday"))
	assert.Equal(t, "PS", Initials("Priya  Sharma"))
	assert.Equal(t, "", Initials(""))
	assert.Equal(t, "4.5", FormatRating(4.5))
	assert.Equal(t, "4", FormatRating(4))
	assert.Equal(t, "1 rating", plural(1, "rating"))
	assert.Equal(t, "3 ratings", plural(3, "rating"))
	assert.Equal(t, "Home | RoboShow", PageTitle("Home"))
	assert.Equal(t, "RoboShow", PageTitle(""))
}

func TestStaticStars(t *testing.T) {
	got := renderString(t, StaticStars(3.5))
	assert.Equal(t, 4, strings.Count(got, `class="star filled"`))
	assert.Equal(t, 1, strings.Count(got, `class="star"`))
	assert.Contains(t, got, `class="rating-stars"`)
	assert.NotContains(t, got, "<input")
}

func TestInteractiveStarsCarryCommittedValue(t *testing.T) {
	w := rating.NewWidget(0, rating.WithSize(rating.Large))
	require.NoError(t, w.Click(2))

	got := renderString(t, Stars(w))
	assert.Contains(t, got, `class="rating-stars-large" data-state="committed"`)
	assert.Contains(t, got, `<input type="radio" name="rating" value="2" checked>`)
	assert.Equal(t, 5, strings.Count(got, `type="radio"`))
	assert.Equal(t, 2, strings.Count(got, `class="star filled"`))
}

func TestProjectCard(t *testing.T) {
	got := renderString(t, ProjectCard(testProject()))
	assert.Contains(t, got, "Line &lt;Follower&gt;")
	assert.Contains(t, got, strings.Repeat("a", 100)+"...")
	assert.NotContains(t, got, strings.Repeat("a", 101))
	assert.Contains(t, got, `<span class="rating-value">4.5 (2)</span>`)
	assert.Contains(t, got, `href="/projects/RB-1001"`)

	unrated := testProject()
	unrated.AvgRating, unrated.TotalRatings = 0, 0
	assert.Contains(t, renderString(t, ProjectCard(unrated)), "No ratings yet")
}

func TestTopRatedCard(t *testing.T) {
	got := renderString(t, TopRatedCard(testProject(), 2))
	assert.Contains(t, got, `data-rank="2"`)
	assert.Contains(t, got, `<span class="rating-value">4.5</span>`)
	assert.Contains(t, got, ">View</a>")
}

func TestFeedbackListNewestFirst(t *testing.T) {
	got := renderString(t, FeedbackList(testProject().Feedback))
	assert.Less(t, strings.Index(got, "Rahul"), strings.Index(got, "Priya Sharma"))
	assert.Contains(t, got, `<div class="feedback-avatar">PS</div>`)
	assert.Contains(t, got, "January 16, 2024")

	empty := renderString(t, FeedbackList(nil))
	assert.Contains(t, empty, "No feedback yet. Be the first to share your thoughts!")
}

func TestAlert(t *testing.T) {
	assert.Empty(t, renderString(t, Alert(AlertError, "")))

	got := renderString(t, Alert(AlertError, "Please fix the following errors:", "• one", "• <two>"))
	assert.Contains(t, got, `class="alert alert-error"`)
	assert.Contains(t, got, "<li>• one</li>")
	assert.Contains(t, got, "<li>• &lt;two&gt;</li>")
}

func TestNav(t *testing.T) {
	anon := renderString(t, Nav(Chrome{Active: "home"}))
	assert.Contains(t, anon, `href="/login"`)
	assert.Contains(t, anon, `href="/signup"`)
	assert.Contains(t, anon, `<a href="/" class="active">Home</a>`)
	assert.NotContains(t, anon, "My Projects")

	signedIn := renderString(t, Nav(Chrome{User: &models.Session{Name: "Ada", IsLoggedIn: true}}))
	assert.Contains(t, signedIn, ">Ada</span>")
	assert.Contains(t, signedIn, `href="/my-projects">My Projects</a>`)
	assert.Contains(t, signedIn, `action="/logout"`)
	assert.NotContains(t, signedIn, `href="/login"`)
}

func TestHomePage(t *testing.T) {
	got := renderString(t, HomePage(HomeView{
		Chrome:   Chrome{Title: "Home", Active: "home"},
		TopRated: []models.Project{testProject()},
		Projects: []models.Project{testProject()},
		Uploaded: "RB-1007",
	}))
	assert.Contains(t, got, "<title>Home | RoboShow</title>")
	assert.Contains(t, got, "Project ID: RB-1007")
	assert.Contains(t, got, `data-rank="1"`)
	assert.Equal(t, len(Testimonials), strings.Count(got, `class="testimonial-card"`))
	assert.Equal(t, len(FAQs), strings.Count(got, `class="faq-item"`))

	empty := renderString(t, HomePage(HomeView{}))
	assert.Contains(t, empty, "No rated projects yet.")
	assert.Contains(t, empty, `class="empty-state"`)
}

func TestDetailPage(t *testing.T) {
	got := renderString(t, DetailPage(DetailView{
		Project: testProject(),
		Errors:  []string{"Please select a rating (click on the stars above)"},
		Form:    FeedbackForm{Comment: "draft <text>"},
	}))
	assert.Contains(t, got, `<div id="avg-rating">4.5</div>`)
	assert.Contains(t, got, "Excellent")
	assert.Contains(t, got, "Based on 2 ratings")
	assert.Contains(t, got, `action="/projects/RB-1001/feedback"`)
	assert.Contains(t, got, "rating-stars-large")
	assert.Contains(t, got, "Please select a rating (click on the stars above)")
	assert.Contains(t, got, "draft &lt;text&gt;</textarea>")
	assert.Contains(t, got, `<span class="tag">Arduino</span>`)

	unrated := testProject()
	unrated.AvgRating, unrated.TotalRatings, unrated.Feedback = 0, 0, nil
	got = renderString(t, DetailPage(DetailView{Project: unrated, Thanks: true}))
	assert.Contains(t, got, "Be the first to rate this project!")
	assert.Contains(t, got, `<div id="avg-rating">No ratings yet</div>`)
	assert.Contains(t, got, "Thank you for your feedback!")
}

func TestUploadPage(t *testing.T) {
	got := renderString(t, UploadPage(UploadView{
		Form: UploadForm{
			Title:        "Bot",
			Category:     "Custom",
			Technologies: []string{"ROS", "C++ ×"},
		},
		Errors:       []string{"• Team name must be at least 2 characters long", "• Description must be at least 20 characters long"},
		ConfirmReset: true,
	}))
	assert.Contains(t, got, "Please fix the following errors:")
	assert.Equal(t, 2, strings.Count(got, "<li>• "))
	assert.Contains(t, got, `<option value="Custom" selected>`)
	assert.Contains(t, got, `name="technologies" value="C++ ×"`)
	assert.Contains(t, got, `value="remove-tag:1"`)
	assert.Contains(t, got, "Are you sure you want to reset the form?")
	assert.Contains(t, got, `name="confirm" value="yes"`)
}

func TestAuthPages(t *testing.T) {
	login := renderString(t, LoginPage(AuthView{Return: "/my-projects?x=1", Error: "Invalid email or password"}))
	assert.Contains(t, login, `name="return" value="/my-projects?x=1"`)
	assert.Contains(t, login, "Invalid email or password")
	assert.NotContains(t, login, `name="name"`)
	assert.NotContains(t, login, "Continue with Google")

	signup := renderString(t, SignupPage(AuthView{Name: "Ada", GoogleEnabled: true}))
	assert.Contains(t, signup, `name="name" type="text" value="Ada"`)
	assert.Contains(t, signup, `href="/api/v1/auth/google/login?mode=signup"`)

	google := renderString(t, LoginPage(AuthView{Return: "/my-projects", GoogleEnabled: true}))
	assert.Contains(t, google, `href="/api/v1/auth/google/login?mode=login&amp;return=%2Fmy-projects"`)
}

func TestMyProjectsAndNotFound(t *testing.T) {
	empty := renderString(t, MyProjectsPage(MyProjectsView{}))
	assert.Contains(t, empty, "You haven&#39;t uploaded any projects yet")

	got := renderString(t, NotFoundPage(Chrome{}, "Project not found"))
	assert.Contains(t, got, "<h1>Project not found</h1>")
	assert.Contains(t, got, "<title>Project not found | RoboShow</title>")
}
