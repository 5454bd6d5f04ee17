package controllers

import (
	"net/http"

	"styleapi/models"
	"styleapi/services"

	"github.com/labstack/echo/v4"
)

type ImageSearchIn struct {
	SearchType string `form:"search_type" validate:"max=50"`
}

type SearchController struct {
	Pipeline    *services.Pipeline
	Suggestions services.SuggestionProvider
	TextModel   services.LLMModelName
}

func (controller *SearchController) SearchRoutes(g *echo.Group) {
	g.POST("/image-search", controller.ImageSearch)
	g.POST("/visual-similarity", controller.VisualSimilarity)
}

func (controller *SearchController) ImageSearch(c echo.Context) error {
	var req ImageSearchIn
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	img, err := readImage(c, "search_image", true)
	if err != nil {
		return err
	}
	searchType := services.FirstNonEmpty(req.SearchType, "image_matching")

	result, err := controller.Pipeline.GenerateText(c.Request().Context(), controller.TextModel, services.ImageSearchPrompt(), img)
	if err != nil {
		reportUpstream(c, "image-search", err)
		return c.JSON(http.StatusOK, services.FallbackImageSearch(searchType, controller.Suggestions))
	}
	return c.JSON(http.StatusOK, services.ImageSearchResult(result.Text, searchType, controller.Suggestions))
}

// VisualSimilarity scores each target against the reference, one model call
// per target. A failed or unparsable answer gets a fallback score.
func (controller *SearchController) VisualSimilarity(c echo.Context) error {
	reference, err := readImage(c, "reference_image", true)
	if err != nil {
		return err
	}
	targets, err := readImages(c, "target_images")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	estimated := 0
	scores := make([]models.SimilarityScore, 0, len(targets))
	for idx, target := range targets {
		var score int
		result, err := controller.Pipeline.GenerateText(ctx, controller.TextModel, services.VisualSimilarityPrompt(), reference, target)
		if err != nil {
			reportUpstream(c, "visual-similarity", err)
		}
		parsed, ok := services.ParseSimilarityScore(result.Text)
		if err == nil && ok {
			score = parsed
		} else {
			score = controller.Suggestions.SimilarityFallback()
			estimated++
		}
		scores = append(scores, models.SimilarityScore{
			Index:      idx,
			Similarity: score,
			Filename:   target.FileName,
		})
	}
	services.SortSimilarities(scores)

	analysis := "Visual similarity analysis completed"
	if estimated > 0 {
		analysis = "Visual similarity analysis completed with estimated scores for some items"
	}
	return c.JSON(http.StatusOK, models.VisualSimilarityResponse{
		Similarities:      scores,
		ReferenceAnalysis: analysis,
	})
}
