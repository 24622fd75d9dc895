package services

import (
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/toolvault/toolvault-backend/internal/types"
)

// SimilarityInput is the normalized projection of a content entity the
// scorer compares. It is derived, never persisted.
type SimilarityInput struct {
	CategoryID  *uuid.UUID
	PricingType string
	Rating      float64
	Text        string
}

// Component weights. They sum to 1.0, so the final score is bounded
// without clamping.
const (
	categoryWeight = 0.4
	pricingWeight  = 0.2
	ratingWeight   = 0.1
	textWeight     = 0.3

	ratingProximity = 1.0
	minTokenLength  = 3
)

func ToolSimilarityInput(tool *types.Tool) SimilarityInput {
	return SimilarityInput{
		CategoryID:  tool.CategoryID,
		PricingType: tool.PricingType,
		Rating:      tool.Rating,
		Text:        strings.ToLower(tool.Name + " " + tool.Tagline + " " + tool.Description),
	}
}

// SimilarityScore computes a 0..1 comparability score between two
// entities as a weighted sum of category match, pricing-tier match,
// rating proximity, and token overlap. Rounded to 2 decimal places.
func SimilarityScore(a, b SimilarityInput) float64 {
	score := 0.0

	if a.CategoryID != nil && b.CategoryID != nil && *a.CategoryID == *b.CategoryID {
		score += categoryWeight
	}
	if a.PricingType == b.PricingType {
		score += pricingWeight
	}
	if math.Abs(a.Rating-b.Rating) <= ratingProximity {
		score += ratingWeight
	}
	score += textOverlap(a.Text, b.Text)

	return math.Round(score*100) / 100
}

// textOverlap is the shared-token component: |common| / max(|A|, |B|)
// scaled into the text weight, capped at the weight itself.
func textOverlap(textA, textB string) float64 {
	tokensA := tokenSet(textA)
	tokensB := tokenSet(textB)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	common := 0
	for token := range tokensA {
		if _, ok := tokensB[token]; ok {
			common++
		}
	}

	larger := len(tokensA)
	if len(tokensB) > larger {
		larger = len(tokensB)
	}

	overlap := float64(common) / float64(larger) * textWeight
	if overlap > textWeight {
		overlap = textWeight
	}
	return overlap
}

func tokenSet(text string) map[string]struct{} {
	tokens := map[string]struct{}{}
	for _, field := range strings.Fields(strings.ToLower(text)) {
		if len(field) > minTokenLength {
			tokens[field] = struct{}{}
		}
	}
	return tokens
}
