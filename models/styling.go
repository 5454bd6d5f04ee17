package models

// Every numeric score below is synthesized decoration drawn from a fixed
// range, not the output of a matching model.

type SimilarItem struct {
	Name       string `json:"name"`
	Image      string `json:"image"`
	Similarity int    `json:"similarity"`
	Price      string `json:"price"`
	Brand      string `json:"brand"`
}

type ImageSearchResponse struct {
	Matches    []SimilarItem `json:"matches"`
	AIAnalysis string        `json:"ai_analysis"`
	SearchType string        `json:"search_type"`
	Fallback   bool          `json:"fallback"`
}

type SimilarityScore struct {
	Index      int    `json:"index"`
	Similarity int    `json:"similarity"`
	Filename   string `json:"filename"`
}

type VisualSimilarityResponse struct {
	Similarities      []SimilarityScore `json:"similarities"`
	ReferenceAnalysis string            `json:"reference_analysis"`
}

type PairingSuggestion struct {
	Name            string `json:"name"`
	Image           string `json:"image"`
	MatchReason     string `json:"match_reason"`
	StylingTip      string `json:"styling_tip"`
	Occasion        string `json:"occasion"`
	ColorHarmony    string `json:"color_harmony"`
	ConfidenceScore int    `json:"confidence_score"`
	Generated       bool   `json:"generated"`
}

type PairingStyleAnalysis struct {
	ItemType        string `json:"item_type"`
	FindType        string `json:"find_type"`
	StylePreference string `json:"style_preference"`
	Gender          string `json:"gender"`
	AIPowered       bool   `json:"ai_powered"`
	Note            string `json:"note,omitempty"`
}

type SmartPairingResponse struct {
	Suggestions   []PairingSuggestion  `json:"suggestions"`
	AIAnalysis    string               `json:"ai_analysis"`
	PairingLogic  string               `json:"pairing_logic"`
	StyleAnalysis PairingStyleAnalysis `json:"style_analysis"`
}

// OutfitTheme is the static description an Outfit is built from.
type OutfitTheme struct {
	Title       string
	Description string
	Image       string
	Pieces      []string
	Tips        []string
	Confidence  string
	Versatility string
}

type Outfit struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Image           string   `json:"image"`
	Pieces          []string `json:"pieces"`
	StylingTips     []string `json:"styling_tips"`
	ConfidenceBoost string   `json:"confidence_boost"`
	OccasionScore   int      `json:"occasion_score"`
	StyleMatch      int      `json:"style_match"`
	Versatility     string   `json:"versatility"`
}

type OccasionStyleAnalysis struct {
	Occasion     string `json:"occasion"`
	UserStyle    string `json:"user_style"`
	Gender       string `json:"gender"`
	Budget       string `json:"budget"`
	TotalOutfits int    `json:"total_outfits"`
}

type OccasionStylingResponse struct {
	Outfits         []Outfit              `json:"outfits"`
	AIStylingAdvice string                `json:"ai_styling_advice"`
	Occasion        string                `json:"occasion"`
	StyleAnalysis   OccasionStyleAnalysis `json:"style_analysis"`
	GeneralTips     []string              `json:"general_tips"`
}

type StyleProfile struct {
	StylePersonality  string   `json:"style_personality"`
	DetailedAnalysis  string   `json:"detailed_analysis"`
	ConfidenceLevel   int      `json:"confidence_level"`
	RecommendedColors []string `json:"recommended_colors"`
	KeyPieces         []string `json:"key_pieces"`
	ShoppingTips      []string `json:"shopping_tips"`
}

type WishlistSuggestion struct {
	Name               string `json:"name"`
	Image              string `json:"image"`
	MatchReason        string `json:"match_reason"`
	Price              string `json:"price"`
	CompatibilityScore int    `json:"compatibility_score"`
}

type WishlistPairingResponse struct {
	Suggestions  []WishlistSuggestion `json:"suggestions"`
	AIAnalysis   string               `json:"ai_analysis"`
	SelectedItem string               `json:"selected_item"`
}

type TryOnResponse struct {
	ResultImage     string   `json:"result_image"`
	Analysis        string   `json:"analysis"`
	Message         string   `json:"message"`
	ClothingType    string   `json:"clothing_type"`
	OutfitType      string   `json:"outfit_type"`
	ConfidenceScore int      `json:"confidence_score"`
	StylingTips     []string `json:"styling_tips"`
	Occasions       []string `json:"occasions"`
}

type StatusOut struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type ErrorOut struct {
	Detail string `json:"detail"`
	Code   string `json:"code,omitempty"`
}
