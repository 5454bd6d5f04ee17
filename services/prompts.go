package services

import (
	"encoding/json"
	"fmt"
	"strings"
)

// NoPersonMarker is returned by the try-on model when the person image has
// nobody in it.
const NoPersonMarker = "NO_PERSON"

const imageSearchPrompt = `Analyze this clothing item image and describe:
1. Type of clothing (shirt, pants, dress, etc.)
2. Color and pattern
3. Style (casual, formal, sporty, etc.)
4. Material appearance
5. Key design features

Based on this analysis, I need to find similar items in a fashion database.`

const visualSimilarityPrompt = `Compare these two clothing items and rate their visual similarity from 0-100%.
Consider: color, style, pattern, type, and overall aesthetic.
Return only the similarity percentage as a number.`

func ImageSearchPrompt() string {
	return imageSearchPrompt
}

// VisualSimilarityPrompt expects the reference image first and the target second.
func VisualSimilarityPrompt() string {
	return visualSimilarityPrompt
}

func PairingAnalysisPrompt(itemType, findType, style, gender string) string {
	return fmt.Sprintf(`Analyze this %[1]s clothing item and suggest 6 perfect %[2]s pieces that would create stylish outfits.

User preferences:
- Style: %[3]s
- Gender: %[4]s
- Looking for: %[2]s to match their %[1]s

For this %[1]s, analyze:
1. Color scheme and undertones
2. Style (casual, formal, sporty, etc.)
3. Pattern and texture
4. Seasonal appropriateness
5. Fabric type appearance

Then suggest 6 %[2]s items that would:
- Complement the color palette
- Match the style aesthetic
- Create versatile outfit combinations
- Consider current fashion trends

For each suggestion, provide:
- Item name/description
- Why it matches well (color, style, occasion)
- Styling tip
- Occasion it's suitable for

Focus on practical, wearable combinations that enhance the original item.`, itemType, findType, style, gender)
}

// PairingImagePrompt sends the uploaded item along so the generated product
// photo can match its colors.
func PairingImagePrompt(itemName, itemType, findType, style, gender string) string {
	return fmt.Sprintf(`Generate a high-quality fashion photography image of a %[1]s that would perfectly match the uploaded %[2]s.

Style specifications:
- Style: %[4]s
- Gender: %[5]s
- Item type: %[3]s
- Professional fashion photography
- Clean white background
- High resolution and detailed
- %[6]s

The %[3]s should complement the color scheme and style of the uploaded %[2]s image.
Make it look like a professional product photo for an e-commerce website.`,
		strings.ToLower(itemName), itemType, findType, style, gender, itemName)
}

func OccasionStylingPrompt(occasion, gender, style, budget string) string {
	return fmt.Sprintf(`Create 6 complete outfit suggestions for a %[1]s occasion.

User preferences:
- Gender: %[2]s
- Style preference: %[3]s
- Budget range: %[4]s

For each outfit, consider:
1. Appropriateness for %[1]s
2. Current fashion trends
3. Versatility and practicality
4. Color coordination
5. Seasonal appropriateness
6. Comfort and confidence

Provide outfits that range from conservative to trendy options, giving the user variety.

For each outfit, include:
- Complete description (top, bottom, shoes, accessories)
- Why it works for this occasion
- Styling tips
- What makes it special
- Confidence level (why they'll feel great wearing it)

Consider the %[3]s aesthetic while ensuring appropriateness for %[1]s.`, occasion, gender, style, budget)
}

// StylePersonalityPrompt embeds the quiz answers as indented JSON.
func StylePersonalityPrompt(answers map[string]interface{}) string {
	if answers == nil {
		answers = map[string]interface{}{}
	}
	encoded, err := json.MarshalIndent(answers, "", "  ")
	if err != nil {
		encoded = []byte("{}")
	}
	return fmt.Sprintf(`Based on these style preferences, analyze the user's fashion personality:
%s

Provide:
1. Primary style personality (Classic, Trendy, Bohemian, Minimalist, Edgy, Romantic)
2. Secondary influences
3. Color palette recommendations
4. Key pieces they should invest in
5. Styling tips specific to their personality
6. Celebrities with similar style for inspiration`, encoded)
}

func WishlistPairingPrompt(selectedItem string, preferences map[string]interface{}) string {
	prefs := "none"
	if len(preferences) > 0 {
		if encoded, err := json.Marshal(preferences); err == nil {
			prefs = string(encoded)
		}
	}
	return fmt.Sprintf(`A user has selected "%[1]s" from their wishlist.
User preferences: %[2]s

Suggest 6 complementary pieces that would pair well with this item.
Consider:
1. Color coordination
2. Style compatibility
3. Occasion appropriateness
4. Seasonal factors
5. Current trends

For each suggestion, explain why it works well with "%[1]s".`, selectedItem, prefs)
}

// TryOnPrompt refers to the images in the order AssembleContents sends them:
// person, then top, then bottom.
func TryOnPrompt(clothingType string) string {
	var garments string
	switch clothingType {
	case "both":
		garments = "the top from the second image and the bottom from the third image"
	case "bottom":
		garments = "the bottom from the second image"
	default:
		garments = "the top from the second image"
	}
	return fmt.Sprintf(`Generate a photorealistic virtual try-on image of the person from the first image wearing %[1]s.
Keep the person's identity, face, body shape, pose and background exactly the same. Only replace the matching clothing.
Keep the garment's color, pattern, texture and logos faithful to the source image and fit it naturally to the body.
If no person is detected in the first image return "%[2]s" and no image.

After the image, write a short analysis of the %[3]s try-on:
- How well the outfit fits the person's style
- Color coordination
- Fit predictions
- Styling suggestions and what to pair it with
- Occasion recommendations`, garments, NoPersonMarker, clothingType)
}
