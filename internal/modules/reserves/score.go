package reserves

import (
	"math"

	"github.com/aristath/warden/internal/domain"
)

// Rating is the qualitative band of an adequacy score.
type Rating string

const (
	RatingPoor      Rating = "Poor"
	RatingFair      Rating = "Fair"
	RatingGood      Rating = "Good"
	RatingStrong    Rating = "Strong"
	RatingExcellent Rating = "Excellent"
)

// Score is a 0-100 adequacy score with its rating band.
type Score struct {
	Score  float64 `json:"score"`
	Rating Rating  `json:"rating"`
}

// AdequacyScore scores reserve coverage against its target on a 0-100
// scale, capped at 100. Bands: score of 25 or below is Poor, up to 50 Fair
// (a score of exactly 50 is Fair), up to 75 Good, below 100 Strong, and 100
// (i.e. coverage at or beyond target) Excellent.
func AdequacyScore(monthsCoverage, targetMonths float64) (*Score, error) {
	if targetMonths <= 0 {
		return nil, domain.Invalidf("target months must be positive, got %v", targetMonths)
	}
	if monthsCoverage < 0 {
		return nil, domain.Invalidf("months coverage must be non-negative, got %v", monthsCoverage)
	}

	score := math.Min(100.0, monthsCoverage/targetMonths*100)

	var rating Rating
	switch {
	case score <= 25:
		rating = RatingPoor
	case score <= 50:
		rating = RatingFair
	case score <= 75:
		rating = RatingGood
	case score < 100:
		rating = RatingStrong
	default:
		rating = RatingExcellent
	}

	return &Score{Score: score, Rating: rating}, nil
}
