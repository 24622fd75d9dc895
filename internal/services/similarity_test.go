package services

import (
	"math"
	"testing"

	"github.com/google/uuid"
)

func TestSimilarityScore_WorkedExample(t *testing.T) {
	category := uuid.New()
	a := SimilarityInput{
		CategoryID:  &category,
		PricingType: "freemium",
		Rating:      4.0,
		Text:        "design vector graphics editor layers export cloud collaboration",
	}
	b := SimilarityInput{
		CategoryID:  &category,
		PricingType: "freemium",
		Rating:      4.5,
		Text:        "design illustration suite brushes painting canvas export textures",
	}

	// 0.4 category + 0.2 pricing + 0.1 rating + 2/8*0.3 text = 0.775 -> 0.78
	got := SimilarityScore(a, b)
	if got != 0.78 {
		t.Fatalf("SimilarityScore=%v, want 0.78", got)
	}
}

func TestSimilarityScore_Bounds(t *testing.T) {
	catA := uuid.New()
	catB := uuid.New()
	cases := []struct {
		name string
		a    SimilarityInput
		b    SimilarityInput
	}{
		{
			name: "identical",
			a:    SimilarityInput{CategoryID: &catA, PricingType: "paid", Rating: 3, Text: "apple banana cherry grape"},
			b:    SimilarityInput{CategoryID: &catA, PricingType: "paid", Rating: 3, Text: "apple banana cherry grape"},
		},
		{
			name: "disjoint",
			a:    SimilarityInput{CategoryID: &catA, PricingType: "free", Rating: 0, Text: "alpha bravo"},
			b:    SimilarityInput{CategoryID: &catB, PricingType: "paid", Rating: 5, Text: "delta gamma"},
		},
		{
			name: "empty",
			a:    SimilarityInput{},
			b:    SimilarityInput{PricingType: "paid", Rating: 4},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SimilarityScore(tc.a, tc.b)
			if got < 0 || got > 1 {
				t.Fatalf("SimilarityScore=%v outside [0,1]", got)
			}
		})
	}
}

func TestSimilarityScore_Symmetric(t *testing.T) {
	category := uuid.New()
	a := SimilarityInput{CategoryID: &category, PricingType: "free", Rating: 4.2, Text: "fast proxy server self hosted"}
	b := SimilarityInput{CategoryID: &category, PricingType: "paid", Rating: 3.5, Text: "managed proxy gateway cloud native"}

	if ab, ba := SimilarityScore(a, b), SimilarityScore(b, a); ab != ba {
		t.Fatalf("score not symmetric: %v vs %v", ab, ba)
	}
}

func TestSimilarityScore_IdenticalInputsMaxOut(t *testing.T) {
	category := uuid.New()
	in := SimilarityInput{
		CategoryID:  &category,
		PricingType: "freemium",
		Rating:      4.0,
		Text:        "notes knowledge management linking",
	}
	if got := SimilarityScore(in, in); got != 1.0 {
		t.Fatalf("SimilarityScore(x,x)=%v, want 1.0", got)
	}
}

func TestSimilarityScore_NilCategoryContributesNothing(t *testing.T) {
	a := SimilarityInput{PricingType: "free", Rating: 1}
	b := SimilarityInput{PricingType: "free", Rating: 1.5}

	// Pricing 0.2 + rating 0.1 only; both categories nil never match.
	if got := SimilarityScore(a, b); got != 0.3 {
		t.Fatalf("SimilarityScore=%v, want 0.3", got)
	}
}

func TestSimilarityScore_RatingProximityCutoff(t *testing.T) {
	a := SimilarityInput{PricingType: "free", Rating: 2}
	b := SimilarityInput{PricingType: "paid", Rating: 3.01}

	if got := SimilarityScore(a, b); got != 0 {
		t.Fatalf("SimilarityScore=%v, want 0 (rating diff > 1, nothing else matches)", got)
	}
}

func TestTokenSet_DropsShortTokens(t *testing.T) {
	tokens := tokenSet("An AI app for the web dev team dashboard")
	for tok := range tokens {
		if len(tok) <= minTokenLength {
			t.Fatalf("token %q should have been dropped", tok)
		}
	}
	if _, ok := tokens["dashboard"]; !ok {
		t.Fatalf("expected token dashboard in %v", tokens)
	}
}

func TestTextOverlap_EmptySideShortCircuits(t *testing.T) {
	if got := textOverlap("", "alpha beta gamma delta"); got != 0 {
		t.Fatalf("textOverlap=%v, want 0 for empty side", got)
	}
	if got := textOverlap("a an it to", "alpha beta"); got != 0 {
		t.Fatalf("textOverlap=%v, want 0 when one set has only short tokens", got)
	}
}

func TestTextOverlap_NeverExceedsWeight(t *testing.T) {
	got := textOverlap("alpha bravo charlie", "alpha bravo charlie")
	if got > textWeight+1e-9 {
		t.Fatalf("textOverlap=%v exceeds weight %v", got, textWeight)
	}
	if math.Abs(got-textWeight) > 1e-9 {
		t.Fatalf("textOverlap=%v, want full weight for identical sets", got)
	}
}
