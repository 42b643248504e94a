package models

// PlaceholderImage is used when a project is uploaded without an image.
const PlaceholderImage = "assets/placeholder.png"

// DateLayout is the calendar-date format used for every stored date.
const DateLayout = "2006-01-02"

type Project struct {
	ID           string     `json:"id" yaml:"id"`
	Title        string     `json:"title" yaml:"title"`
	Team         string     `json:"team" yaml:"team"`
	Description  string     `json:"description" yaml:"description"`
	Category     string     `json:"category" yaml:"category"`
	Technologies []string   `json:"technologies" yaml:"technologies"`
	AvgRating    float64    `json:"avgRating" yaml:"avgRating"`
	TotalRatings int        `json:"totalRatings" yaml:"totalRatings"`
	Image        string     `json:"image" yaml:"image"`
	CreatedAt    string     `json:"createdAt" yaml:"createdAt"` // YYYY-MM-DD
	Feedback     []Feedback `json:"feedback" yaml:"feedback"`   // oldest first
}

// Feedback is owned by its project and has no identity of its own.
type Feedback struct {
	Name    string `json:"name" yaml:"name"`
	Rating  int    `json:"rating" yaml:"rating"`
	Comment string `json:"comment" yaml:"comment"`
	Date    string `json:"date" yaml:"date"`
}

// ProjectInput carries the caller-supplied fields of a new project.
type ProjectInput struct {
	Title        string   `json:"title"`
	Team         string   `json:"team"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Technologies []string `json:"technologies"`
	Image        string   `json:"image"`
}

// ProjectPatch is a shallow merge: nil fields keep their current value.
type ProjectPatch struct {
	Title        *string    `json:"title,omitempty"`
	Team         *string    `json:"team,omitempty"`
	Description  *string    `json:"description,omitempty"`
	Category     *string    `json:"category,omitempty"`
	Technologies []string   `json:"technologies,omitempty"`
	Image        *string    `json:"image,omitempty"`
	AvgRating    *float64   `json:"avgRating,omitempty"`
	TotalRatings *int       `json:"totalRatings,omitempty"`
	Feedback     []Feedback `json:"feedback,omitempty"`
}

// FeedbackInput is what a visitor submits from the detail page.
type FeedbackInput struct {
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Apply merges the set fields of the patch into p.
func (patch ProjectPatch) Apply(p *Project) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Team != nil {
		p.Team = *patch.Team
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Technologies != nil {
		p.Technologies = append(make([]string, 0, len(patch.Technologies)), patch.Technologies...)
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.AvgRating != nil {
		p.AvgRating = *patch.AvgRating
	}
	if patch.TotalRatings != nil {
		p.TotalRatings = *patch.TotalRatings
	}
	if patch.Feedback != nil {
		p.Feedback = append(make([]Feedback, 0, len(patch.Feedback)), patch.Feedback...)
	}
}
