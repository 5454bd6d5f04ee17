package services

import (
	"styleapi/languageutil"
	"styleapi/models"
)

// ScoreRange is a closed range of synthesized scores.
type ScoreRange struct {
	Min int
	Max int
}

func (r ScoreRange) Draw() int {
	return languageutil.RandomInt(r.Min, r.Max)
}

func (r ScoreRange) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

var (
	SearchBaseRange            = ScoreRange{Min: 85, Max: 98}
	SearchItemRange            = ScoreRange{Min: 75, Max: 98}
	SimilarityFallbackRange    = ScoreRange{Min: 70, Max: 95}
	PairingGeneratedRange      = ScoreRange{Min: 85, Max: 98}
	PairingPlaceholderRange    = ScoreRange{Min: 75, Max: 90}
	OccasionScoreRange         = ScoreRange{Min: 90, Max: 100}
	StyleMatchRange            = ScoreRange{Min: 85, Max: 98}
	PersonalityConfidenceRange = ScoreRange{Min: 85, Max: 95}
	WishlistCompatibilityRange = ScoreRange{Min: 85, Max: 98}
	TryOnConfidenceRange       = ScoreRange{Min: 85, Max: 95}
	PriceRange                 = ScoreRange{Min: 25, Max: 150}
)

const (
	SuggestionCount   = 6
	SearchResultCount = 6
	SearchScoreStep   = 2
)

var placeholderColors = []string{"FF6B6B", "4ECDC4", "45B7D1", "96CEB4", "FFEAA7", "DDA0DD"}

var fallbackOccasions = []string{"Casual", "Work", "Date Night", "Weekend", "Formal", "Party"}

var pairingNameTemplates = map[string][]string{
	"top":    {"Classic %s Blouse", "Elegant %s Shirt", "Trendy %s Top", "Sophisticated %s Blouse", "Modern %s Tee", "Stylish %s Sweater"},
	"bottom": {"Perfect %s Pants", "Classic %s Trousers", "Trendy %s Jeans", "Elegant %s Skirt", "Modern %s Shorts", "Sophisticated %s Leggings"},
}

var stylePersonalities = []string{"Classic", "Trendy", "Bohemian", "Minimalist", "Edgy", "Romantic"}

var recommendedColors = []string{"Navy", "Cream", "Burgundy", "Camel", "Black"}

var keyPieces = []string{
	"Well-fitted blazer",
	"Quality white shirt",
	"Perfect pair of jeans",
	"Little black dress",
	"Comfortable heels",
}

var shoppingTips = []string{
	"Invest in quality basics",
	"Choose pieces that work together",
	"Don't follow every trend",
	"Focus on fit over everything else",
}

var tryOnStylingTips = map[models.ClothingType][]string{
	models.ClothingTop: {
		"Pair with neutral bottoms to let the top shine",
		"Consider the neckline when choosing accessories",
		"Tuck in for a more polished look",
	},
	models.ClothingBottom: {
		"Choose tops that complement the cut and style",
		"Consider proportions when styling",
		"Add a belt to define your waist",
	},
	models.ClothingBoth: {
		"The outfit is complete - add accessories to personalize",
		"Consider layering for different occasions",
		"Choose shoes that complement the overall aesthetic",
	},
}

var tryOnOccasions = map[models.ClothingType][]string{
	models.ClothingTop:    {"Casual outings", "Work meetings", "Lunch dates"},
	models.ClothingBottom: {"Weekend activities", "Shopping trips", "Casual dinners"},
	models.ClothingBoth:   {"Complete look for any occasion", "Date nights", "Social events"},
}

const defaultOccasion = "casual"

var outfitThemes = map[string][]models.OutfitTheme{
	"wedding": {
		{
			Title:       "Elegant Guest",
			Description: "Sophisticated and respectful wedding guest attire",
			Image:       "https://via.placeholder.com/200x300/FF6B6B/white?text=Elegant+Guest",
			Pieces:      []string{"Midi dress", "Block heels", "Clutch bag", "Statement earrings"},
			Tips:        []string{"Avoid white/cream", "Opt for jewel tones", "Choose comfortable shoes"},
			Confidence:  "You'll look elegant without upstaging the bride",
			Versatility: "Perfect for other formal events too",
		},
		{
			Title:       "Modern Classic",
			Description: "Contemporary take on classic wedding guest style",
			Image:       "https://via.placeholder.com/200x300/4ECDC4/white?text=Modern+Classic",
			Pieces:      []string{"Wrap dress", "Nude heels", "Delicate jewelry", "Light cardigan"},
			Tips:        []string{"Layer for temperature changes", "Choose breathable fabrics"},
			Confidence:  "Timeless style that photographs beautifully",
			Versatility: "Works for business events and dinners",
		},
	},
	"business": {
		{
			Title:       "Power Professional",
			Description: "Confident and authoritative business attire",
			Image:       "https://via.placeholder.com/200x300/45B7D1/white?text=Power+Pro",
			Pieces:      []string{"Blazer", "Tailored trousers", "Button-down shirt", "Leather shoes"},
			Tips:        []string{"Ensure perfect fit", "Choose quality fabrics", "Keep accessories minimal"},
			Confidence:  "Command respect while feeling comfortable",
			Versatility: "Mix and match pieces for multiple looks",
		},
		{
			Title:       "Smart Casual",
			Description: "Professional yet approachable business casual",
			Image:       "https://via.placeholder.com/200x300/96CEB4/white?text=Smart+Casual",
			Pieces:      []string{"Knit sweater", "Dark jeans", "Loafers", "Structured bag"},
			Tips:        []string{"Focus on fit and quality", "Add one polished element"},
			Confidence:  "Professional without being intimidating",
			Versatility: "Perfect for client meetings and office days",
		},
	},
	"date": {
		{
			Title:       "Romantic Chic",
			Description: "Romantic and feminine date night outfit",
			Image:       "https://via.placeholder.com/200x300/FFEAA7/333?text=Romantic+Chic",
			Pieces:      []string{"Silk blouse", "High-waisted skirt", "Ankle boots", "Delicate jewelry"},
			Tips:        []string{"Choose comfortable shoes", "Add personal touches", "Consider the venue"},
			Confidence:  "Feel feminine and comfortable being yourself",
			Versatility: "Great for dinners and cultural events",
		},
		{
			Title:       "Effortless Cool",
			Description: "Relaxed yet put-together date outfit",
			Image:       "https://via.placeholder.com/200x300/DDA0DD/white?text=Effortless+Cool",
			Pieces:      []string{"Denim jacket", "Midi dress", "White sneakers", "Crossbody bag"},
			Tips:        []string{"Layer for weather", "Choose pieces you feel confident in"},
			Confidence:  "Look effortlessly stylish and approachable",
			Versatility: "Perfect for casual dates and weekend outings",
		},
	},
	"party": {
		{
			Title:       "Statement Maker",
			Description: "Bold and eye-catching party look",
			Image:       "https://via.placeholder.com/200x300/FF1493/white?text=Statement+Look",
			Pieces:      []string{"Sequin top", "Black trousers", "Statement heels", "Bold accessories"},
			Tips:        []string{"Balance bold pieces with basics", "Comfort is key for dancing"},
			Confidence:  "Stand out while feeling completely yourself",
			Versatility: "Mix pieces for other special occasions",
		},
		{
			Title:       "Chic Minimalist",
			Description: "Understated elegance for sophisticated parties",
			Image:       "https://via.placeholder.com/200x300/000080/white?text=Chic+Minimal",
			Pieces:      []string{"Little black dress", "Statement accessories", "Classic heels", "Elegant clutch"},
			Tips:        []string{"Focus on quality and fit", "Let accessories do the talking"},
			Confidence:  "Classic elegance never goes out of style",
			Versatility: "Your go-to for any upscale event",
		},
	},
	"casual": {
		{
			Title:       "Weekend Comfort",
			Description: "Comfortable yet stylish casual wear",
			Image:       "https://via.placeholder.com/200x300/87CEEB/white?text=Weekend+Comfort",
			Pieces:      []string{"Cozy sweater", "Leggings", "Comfortable sneakers", "Tote bag"},
			Tips:        []string{"Prioritize comfort", "Add one elevated piece", "Layer for temperature"},
			Confidence:  "Feel relaxed and put-together",
			Versatility: "Perfect for errands, coffee dates, and relaxing",
		},
		{
			Title:       "Athleisure Chic",
			Description: "Sporty-chic casual outfit",
			Image:       "https://via.placeholder.com/200x300/32CD32/white?text=Athleisure+Chic",
			Pieces:      []string{"Athletic top", "High-waisted leggings", "Clean sneakers", "Baseball cap"},
			Tips:        []string{"Choose quality athletic wear", "Keep it clean and fitted"},
			Confidence:  "Look active and healthy",
			Versatility: "Great for workouts and casual outings",
		},
	},
}

var occasionTips = map[string][]string{
	"wedding": {
		"Avoid white, ivory, or cream colors",
		"Consider the venue and time of day",
		"Bring a wrap or jacket for temperature changes",
		"Choose comfortable shoes for dancing",
	},
	"business": {
		"Ensure your outfit is well-fitted",
		"Stick to neutral and professional colors",
		"Keep accessories minimal and polished",
		"Invest in quality pieces that last",
	},
	"date": {
		"Choose something you feel confident in",
		"Consider the planned activities",
		"Don't overdress or underdress for the venue",
		"Add a personal touch that shows your style",
	},
	"party": {
		"Have fun with colors and textures",
		"Ensure you can move comfortably",
		"Consider the party's dress code",
		"Bring a small bag for essentials",
	},
	"casual": {
		"Comfort should be your priority",
		"One elevated piece can upgrade any casual look",
		"Layer for changing weather",
		"Choose versatile pieces you can mix and match",
	},
}
