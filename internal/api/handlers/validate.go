package handlers

import (
	"strings"
	"unicode/utf8"

	"github.com/rohits-web03/roboshow/internal/models"
	"github.com/rohits-web03/roboshow/internal/rating"
)

const (
	msgSelectRating  = "Please select a rating (click on the stars above)"
	msgRatingRange   = "Rating must be between 1 and 5"
	msgCommentLength = "Please provide a comment with at least 10 characters"
	minCommentLength = 10
)

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// normalizeProject trims every text field and drops blank technologies.
func normalizeProject(in models.ProjectInput) models.ProjectInput {
	in.Title = strings.TrimSpace(in.Title)
	in.Team = strings.TrimSpace(in.Team)
	in.Description = strings.TrimSpace(in.Description)
	in.Category = strings.TrimSpace(in.Category)
	in.Image = strings.TrimSpace(in.Image)
	in.Technologies = cleanTags(in.Technologies)
	return in
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// validateProject lists every rule the upload breaks, in form order.
func validateProject(in models.ProjectInput) []string {
	var problems []string
	if runeLen(in.Title) < 3 {
		problems = append(problems, "• Project title must be at least 3 characters long")
	}
	if runeLen(in.Team) < 2 {
		problems = append(problems, "• Team name must be at least 2 characters long")
	}
	if runeLen(in.Description) < 20 {
		problems = append(problems, "• Description must be at least 20 characters long")
	}
	if in.Category == "" {
		problems = append(problems, "• Please select a project category")
	}
	if len(in.Technologies) == 0 {
		problems = append(problems, "• Please add at least one technology")
	}
	return problems
}

// validateComment checks the trimmed feedback comment.
func validateComment(comment string) string {
	if runeLen(strings.TrimSpace(comment)) < minCommentLength {
		return msgCommentLength
	}
	return ""
}

// commitRating replays a submitted value through a fresh widget, which
// rejects anything outside 1..5.
func commitRating(value int) (*rating.Widget, error) {
	w := rating.NewWidget(0, rating.WithSize(rating.Large))
	if err := w.Click(value); err != nil {
		return w, err
	}
	return w, nil
}
