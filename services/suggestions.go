package services

import (
	"fmt"
	"slices"

	"styleapi/languageutil"
	"styleapi/models"
)

// PairingQuery is the smart-pairing input after defaults are applied.
type PairingQuery struct {
	ItemType string
	FindType string
	Style    string
	Gender   string
}

type TryOnDetails struct {
	StylingTips     []string
	Occasions       []string
	ConfidenceScore int
}

// SuggestionProvider produces the catalog-like items that accompany the model
// output. Handlers only depend on this interface so a real recommender can
// replace the synthetic one.
type SuggestionProvider interface {
	SimilarItems() []models.SimilarItem
	SimilarityFallback() int
	PairingNames(q PairingQuery) []string
	PairingSuggestion(index int, name string, q PairingQuery, image string, generated bool) models.PairingSuggestion
	FallbackPairings(q PairingQuery) []models.PairingSuggestion
	OccasionOutfits(occasion string) []models.Outfit
	OccasionTips(occasion string) []string
	StyleProfile() models.StyleProfile
	WishlistSuggestions(selectedItem string) []models.WishlistSuggestion
	TryOnDetails(clothingType models.ClothingType) TryOnDetails
}

// SyntheticSuggestions serves hardcoded items with random scores.
type SyntheticSuggestions struct{}

func NewSyntheticSuggestions() *SyntheticSuggestions {
	return &SyntheticSuggestions{}
}

func placeholderImage(size, color, text string) string {
	return fmt.Sprintf("https://via.placeholder.com/%s/%s/white?text=%s", size, color, languageutil.Slug(text))
}

func randomPrice() string {
	return fmt.Sprintf("$%d", PriceRange.Draw())
}

// SimilarItems returns SearchResultCount items whose similarity decreases by
// SearchScoreStep from a random base.
func (SyntheticSuggestions) SimilarItems() []models.SimilarItem {
	base := SearchBaseRange.Draw()
	items := make([]models.SimilarItem, 0, SearchResultCount)
	for i := 0; i < SearchResultCount; i++ {
		items = append(items, models.SimilarItem{
			Name:       fmt.Sprintf("Similar Fashion Item %d", i+1),
			Image:      placeholderImage("200x250", "FF6B6B", fmt.Sprintf("Similar Item %d", i+1)),
			Similarity: base - i*SearchScoreStep,
			Price:      randomPrice(),
			Brand:      fmt.Sprintf("Brand %c", 'A'+i),
		})
	}
	return items
}

func (SyntheticSuggestions) SimilarityFallback() int {
	return SimilarityFallbackRange.Draw()
}

func (SyntheticSuggestions) PairingNames(q PairingQuery) []string {
	templates, ok := pairingNameTemplates[q.FindType]
	if !ok {
		templates = pairingNameTemplates["bottom"]
	}
	style := languageutil.Title(q.Style)
	names := make([]string, 0, len(templates))
	for _, tmpl := range templates {
		names = append(names, fmt.Sprintf(tmpl, style))
	}
	return names
}

// PairingSuggestion builds one suggestion. An empty image means generation
// did not produce one and the placeholder for index is used.
func (SyntheticSuggestions) PairingSuggestion(index int, name string, q PairingQuery, image string, generated bool) models.PairingSuggestion {
	suggestion := models.PairingSuggestion{
		Name:       name,
		Image:      image,
		StylingTip: fmt.Sprintf("Perfect for %s occasions", q.Style),
		Occasion:   languageutil.Title(q.Style),
		Generated:  generated && image != "",
	}
	if suggestion.Generated {
		suggestion.MatchReason = fmt.Sprintf("AI-generated perfect match for your %s", q.ItemType)
		suggestion.ColorHarmony = fmt.Sprintf("Complements your %s beautifully", q.ItemType)
		suggestion.ConfidenceScore = PairingGeneratedRange.Draw()
		return suggestion
	}
	suggestion.Image = placeholderImage("200x250", placeholderColors[index%len(placeholderColors)],
		fmt.Sprintf("%s %d", languageutil.Title(q.FindType), index+1))
	suggestion.MatchReason = fmt.Sprintf("Recommended pairing for %s style", q.Style)
	suggestion.ColorHarmony = fmt.Sprintf("Matches your %s style", q.ItemType)
	suggestion.ConfidenceScore = PairingPlaceholderRange.Draw()
	return suggestion
}

func (SyntheticSuggestions) FallbackPairings(q PairingQuery) []models.PairingSuggestion {
	findType := languageutil.Title(q.FindType)
	suggestions := make([]models.PairingSuggestion, 0, SuggestionCount)
	for i := 0; i < SuggestionCount; i++ {
		occasion := fallbackOccasions[i%len(fallbackOccasions)]
		suggestions = append(suggestions, models.PairingSuggestion{
			Name:            fmt.Sprintf("Suggested %s %d", findType, i+1),
			Image:           placeholderImage("160x200", placeholderColors[i%len(placeholderColors)], fmt.Sprintf("%s %d", findType, i+1)),
			MatchReason:     fmt.Sprintf("Recommended pairing for %s style", q.Style),
			StylingTip:      fmt.Sprintf("Perfect for %s occasions", languageutil.Lower(occasion)),
			Occasion:        occasion,
			ColorHarmony:    fmt.Sprintf("Matches your %s style", q.ItemType),
			ConfidenceScore: PairingPlaceholderRange.Draw(),
		})
	}
	return suggestions
}

// OccasionKey maps a free-form occasion to a known theme key. Unknown
// occasions use the casual themes.
func OccasionKey(occasion string) string {
	key := languageutil.Lower(occasion)
	if _, ok := outfitThemes[key]; ok {
		return key
	}
	return defaultOccasion
}

// OccasionOutfits cycles the occasion's themes up to SuggestionCount outfits.
// Repeated themes get an "(Alt)" suffix.
func (SyntheticSuggestions) OccasionOutfits(occasion string) []models.Outfit {
	themes := outfitThemes[OccasionKey(occasion)]
	outfits := make([]models.Outfit, 0, SuggestionCount)
	for i := 0; i < SuggestionCount; i++ {
		theme := themes[i%len(themes)]
		title := theme.Title
		switch round := i / len(themes); {
		case round == 1:
			title += " (Alt)"
		case round > 1:
			title += fmt.Sprintf(" (Alt %d)", round)
		}
		outfits = append(outfits, models.Outfit{
			Title:           title,
			Description:     theme.Description,
			Image:           theme.Image,
			Pieces:          slices.Clone(theme.Pieces),
			StylingTips:     slices.Clone(theme.Tips),
			ConfidenceBoost: theme.Confidence,
			OccasionScore:   OccasionScoreRange.Draw(),
			StyleMatch:      StyleMatchRange.Draw(),
			Versatility:     theme.Versatility,
		})
	}
	return outfits
}

func (SyntheticSuggestions) OccasionTips(occasion string) []string {
	return slices.Clone(occasionTips[OccasionKey(occasion)])
}

// StyleProfile leaves DetailedAnalysis for the caller.
func (SyntheticSuggestions) StyleProfile() models.StyleProfile {
	return models.StyleProfile{
		StylePersonality:  languageutil.RandomChoice(stylePersonalities),
		ConfidenceLevel:   PersonalityConfidenceRange.Draw(),
		RecommendedColors: slices.Clone(recommendedColors),
		KeyPieces:         slices.Clone(keyPieces),
		ShoppingTips:      slices.Clone(shoppingTips),
	}
}

func (SyntheticSuggestions) WishlistSuggestions(selectedItem string) []models.WishlistSuggestion {
	suggestions := make([]models.WishlistSuggestion, 0, SuggestionCount)
	for i := 0; i < SuggestionCount; i++ {
		suggestions = append(suggestions, models.WishlistSuggestion{
			Name:               fmt.Sprintf("Perfect Match %d", i+1),
			Image:              placeholderImage("160x200", "FF6B6B", fmt.Sprintf("Match %d", i+1)),
			MatchReason:        fmt.Sprintf("Complements %s perfectly", selectedItem),
			Price:              randomPrice(),
			CompatibilityScore: WishlistCompatibilityRange.Draw(),
		})
	}
	return suggestions
}

func (SyntheticSuggestions) TryOnDetails(clothingType models.ClothingType) TryOnDetails {
	tips, ok := tryOnStylingTips[clothingType]
	if !ok {
		tips = tryOnStylingTips[models.ClothingBoth]
	}
	occasions, ok := tryOnOccasions[clothingType]
	if !ok {
		occasions = tryOnOccasions[models.ClothingBoth]
	}
	return TryOnDetails{
		StylingTips:     slices.Clone(tips),
		Occasions:       slices.Clone(occasions),
		ConfidenceScore: TryOnConfidenceRange.Draw(),
	}
}
