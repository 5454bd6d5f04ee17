package services

import (
	"testing"

	"styleapi/models"

	"github.com/stretchr/testify/assert"
)

func TestParseSimilarityScore(t *testing.T) {
	cases := []struct {
		text  string
		score int
		ok    bool
	}{
		{"85", 85, true},
		{"Similarity: 72%", 72, true},
		{"100%", 100, true},
		{"about 150 percent", 100, true},
		{"0", 0, true},
		{"99999999999999999999999", 100, true},
		{"no idea", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		score, ok := ParseSimilarityScore(tc.text)
		assert.Equal(t, tc.ok, ok, tc.text)
		assert.Equal(t, tc.score, score, tc.text)
	}
}

func TestSortSimilarities(t *testing.T) {
	scores := []models.SimilarityScore{
		{Index: 0, Similarity: 40, Filename: "a.png"},
		{Index: 1, Similarity: 90, Filename: "b.png"},
		{Index: 2, Similarity: 40, Filename: "c.png"},
		{Index: 3, Similarity: 75, Filename: "d.png"},
	}
	SortSimilarities(scores)

	var order []int
	for _, s := range scores {
		order = append(order, s.Index)
	}
	assert.Equal(t, []int{1, 3, 0, 2}, order)
}

func TestOccasionStylingResult(t *testing.T) {
	q := OccasionQuery{Occasion: "date", Gender: "female", Style: "classic", Budget: "mid"}
	resp := OccasionStylingResult("wear something red", q, SyntheticSuggestions{})

	assert.Equal(t, "wear something red", resp.AIStylingAdvice)
	assert.Equal(t, "date", resp.Occasion)
	assert.Len(t, resp.Outfits, SuggestionCount)
	assert.Equal(t, SuggestionCount, resp.StyleAnalysis.TotalOutfits)
	assert.Equal(t, "classic", resp.StyleAnalysis.UserStyle)
	assert.Equal(t, occasionTips["date"], resp.GeneralTips)
}

func TestTryOnResult(t *testing.T) {
	result := Extraction{Text: "fits well", Image: []byte{1, 2, 3}, ImageMimeType: "image/jpeg"}
	resp := TryOnResult(result, models.ClothingBoth, SyntheticSuggestions{})

	assert.Equal(t, "data:image/jpeg;base64,AQID", resp.ResultImage)
	assert.Equal(t, "fits well", resp.Analysis)
	assert.Equal(t, "both", resp.ClothingType)
	assert.Equal(t, "both", resp.OutfitType)
	assert.Equal(t, "Virtual try-on completed: complete outfit applied", resp.Message)
	assert.True(t, TryOnConfidenceRange.Contains(resp.ConfidenceScore))
}

func TestFallbacksKeepShape(t *testing.T) {
	p := SyntheticSuggestions{}

	search := FallbackImageSearch("image_matching", p)
	assert.True(t, search.Fallback)
	assert.Len(t, search.Matches, SearchResultCount)
	assert.NotEmpty(t, search.AIAnalysis)

	pairing := FallbackSmartPairing(PairingQuery{ItemType: "top", FindType: "bottom", Style: "casual", Gender: "unisex"}, p)
	assert.Len(t, pairing.Suggestions, SuggestionCount)
	assert.False(t, pairing.StyleAnalysis.AIPowered)
	assert.NotEmpty(t, pairing.StyleAnalysis.Note)

	occasion := FallbackOccasionStyling(OccasionQuery{Occasion: "wedding", Style: "classic"}, p)
	assert.Len(t, occasion.Outfits, SuggestionCount)
	assert.NotEmpty(t, occasion.AIStylingAdvice)

	profile := FallbackStyleProfile(p)
	assert.NotEmpty(t, profile.DetailedAnalysis)
	assert.NotEmpty(t, profile.StylePersonality)

	wishlist := FallbackWishlistPairing("Linen Shirt", p)
	assert.Equal(t, "Linen Shirt", wishlist.SelectedItem)
	assert.Len(t, wishlist.Suggestions, SuggestionCount)
}
