package services

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"styleapi/languageutil"
	"styleapi/models"
)

var firstInteger = regexp.MustCompile(`\d+`)

// ParseSimilarityScore reads the first integer in the model's answer and
// clamps it to 0..100. ok is false when the text has no digits.
func ParseSimilarityScore(text string) (score int, ok bool) {
	match := firstInteger.FindString(text)
	if match == "" {
		return 0, false
	}
	value, err := strconv.Atoi(match)
	if err != nil {
		// longer than an int, certainly above 100
		return 100, true
	}
	if value > 100 {
		value = 100
	}
	return value, true
}

// SortSimilarities orders by score, highest first. Ties keep upload order.
func SortSimilarities(scores []models.SimilarityScore) {
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Similarity > scores[j].Similarity
	})
}

func ImageSearchResult(analysis, searchType string, p SuggestionProvider) models.ImageSearchResponse {
	return models.ImageSearchResponse{
		Matches:    p.SimilarItems(),
		AIAnalysis: analysis,
		SearchType: searchType,
	}
}

func SmartPairingResult(analysis string, suggestions []models.PairingSuggestion, q PairingQuery) models.SmartPairingResponse {
	return models.SmartPairingResponse{
		Suggestions:  suggestions,
		AIAnalysis:   analysis,
		PairingLogic: fmt.Sprintf("AI-generated %s pieces that complement your %s", q.FindType, q.ItemType),
		StyleAnalysis: models.PairingStyleAnalysis{
			ItemType:        q.ItemType,
			FindType:        q.FindType,
			StylePreference: q.Style,
			Gender:          q.Gender,
			AIPowered:       true,
		},
	}
}

// OccasionQuery is the occasion-styling input after defaults are applied.
type OccasionQuery struct {
	Occasion string
	Gender   string
	Style    string
	Budget   string
}

func OccasionStylingResult(advice string, q OccasionQuery, p SuggestionProvider) models.OccasionStylingResponse {
	outfits := p.OccasionOutfits(q.Occasion)
	return models.OccasionStylingResponse{
		Outfits:         outfits,
		AIStylingAdvice: advice,
		Occasion:        q.Occasion,
		StyleAnalysis: models.OccasionStyleAnalysis{
			Occasion:     q.Occasion,
			UserStyle:    q.Style,
			Gender:       q.Gender,
			Budget:       q.Budget,
			TotalOutfits: len(outfits),
		},
		GeneralTips: p.OccasionTips(q.Occasion),
	}
}

func StyleProfileResult(analysis string, p SuggestionProvider) models.StyleProfile {
	profile := p.StyleProfile()
	profile.DetailedAnalysis = analysis
	return profile
}

func WishlistPairingResult(analysis, selectedItem string, p SuggestionProvider) models.WishlistPairingResponse {
	return models.WishlistPairingResponse{
		Suggestions:  p.WishlistSuggestions(selectedItem),
		AIAnalysis:   analysis,
		SelectedItem: selectedItem,
	}
}

// TryOnResult requires an extraction with an image; the caller checks that.
func TryOnResult(result Extraction, clothingType models.ClothingType, p SuggestionProvider) models.TryOnResponse {
	details := p.TryOnDetails(clothingType)
	return models.TryOnResponse{
		ResultImage:     result.ImageDataURI(),
		Analysis:        result.Text,
		Message:         fmt.Sprintf("Virtual try-on completed: %s applied", languageutil.Lower(tryOnLabel(clothingType))),
		ClothingType:    clothingType.String(),
		OutfitType:      clothingType.String(),
		ConfidenceScore: details.ConfidenceScore,
		StylingTips:     details.StylingTips,
		Occasions:       details.Occasions,
	}
}

func tryOnLabel(clothingType models.ClothingType) string {
	if clothingType == models.ClothingBoth {
		return "complete outfit"
	}
	return clothingType.String()
}
