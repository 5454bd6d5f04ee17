package services

import (
	"fmt"

	"styleapi/models"
)

// The fallback builders return the same shape as a successful call and
// never fail.

func FallbackImageSearch(searchType string, p SuggestionProvider) models.ImageSearchResponse {
	resp := ImageSearchResult("Image analysis is temporarily unavailable. Showing similar styles based on popular items.", searchType, p)
	resp.Fallback = true
	return resp
}

func FallbackSmartPairing(q PairingQuery, p SuggestionProvider) models.SmartPairingResponse {
	return models.SmartPairingResponse{
		Suggestions:  p.FallbackPairings(q),
		AIAnalysis:   fmt.Sprintf("Fallback suggestions for %s pairing", q.ItemType),
		PairingLogic: fmt.Sprintf("Generated %s suggestions for your %s", q.FindType, q.ItemType),
		StyleAnalysis: models.PairingStyleAnalysis{
			ItemType:        q.ItemType,
			FindType:        q.FindType,
			StylePreference: q.Style,
			Gender:          q.Gender,
			Note:            "Using fallback suggestions due to API issue",
		},
	}
}

func FallbackOccasionStyling(q OccasionQuery, p SuggestionProvider) models.OccasionStylingResponse {
	advice := fmt.Sprintf("Here are curated %s outfit ideas for a %s occasion. Personalized AI advice is temporarily unavailable.", q.Style, q.Occasion)
	return OccasionStylingResult(advice, q, p)
}

func FallbackStyleProfile(p SuggestionProvider) models.StyleProfile {
	return StyleProfileResult("Detailed style analysis is temporarily unavailable. Your profile is based on versatile wardrobe essentials.", p)
}

func FallbackWishlistPairing(selectedItem string, p SuggestionProvider) models.WishlistPairingResponse {
	return WishlistPairingResult(fmt.Sprintf("Suggested pieces that pair well with %s.", selectedItem), selectedItem, p)
}
