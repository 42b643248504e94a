// Package rating holds the star-rating aggregation helpers and the
// interactive star widget used by the detail page.
package rating

import "math"

// MaxStars is the number of stars in every widget.
const MaxStars = 5

// Round1 rounds x to one fraction digit, halves away from zero.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// Average returns the mean of ratings rounded to one decimal, or 0 when
// there are none.
func Average(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	total := 0
	for _, r := range ratings {
		total += r
	}
	return Round1(float64(total) / float64(len(ratings)))
}

// Stars converts a decimal rating to a whole number of filled stars.
func Stars(r float64) int {
	n := int(math.Floor(r + 0.5))
	if n < 0 {
		return 0
	}
	if n > MaxStars {
		return MaxStars
	}
	return n
}

// Label describes an average rating in words.
func Label(avg float64) string {
	switch {
	case avg >= 4.5:
		return "Excellent"
	case avg >= 4.0:
		return "Very Good"
	case avg >= 3.0:
		return "Good"
	case avg >= 2.0:
		return "Fair"
	default:
		return "Needs Improvement"
	}
}
