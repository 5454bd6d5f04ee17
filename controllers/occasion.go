package controllers

import (
	"net/http"

	"styleapi/services"

	"github.com/labstack/echo/v4"
)

type UserPreferencesIn struct {
	Gender string `json:"gender" validate:"max=50"`
	Style  string `json:"style" validate:"max=50"`
	Budget string `json:"budget" validate:"max=50"`
}

type OccasionStylingIn struct {
	Occasion        string            `json:"occasion" validate:"required,max=100"`
	UserPreferences UserPreferencesIn `json:"user_preferences"`
}

type StylePersonalityIn struct {
	QuizAnswers map[string]interface{} `json:"quiz_answers"`
}

type OccasionController struct {
	Pipeline    *services.Pipeline
	Suggestions services.SuggestionProvider
	TextModel   services.LLMModelName
}

func (controller *OccasionController) OccasionRoutes(g *echo.Group) {
	g.POST("/occasion-styling", controller.OccasionStyling)
	g.POST("/style-personality", controller.StylePersonality)
}

func (controller *OccasionController) OccasionStyling(c echo.Context) error {
	var req OccasionStylingIn
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	query := services.OccasionQuery{
		Occasion: req.Occasion,
		Gender:   services.FirstNonEmpty(req.UserPreferences.Gender, "unisex"),
		Style:    services.FirstNonEmpty(req.UserPreferences.Style, "classic"),
		Budget:   services.FirstNonEmpty(req.UserPreferences.Budget, "mid"),
	}

	result, err := controller.Pipeline.GenerateText(c.Request().Context(), controller.TextModel,
		services.OccasionStylingPrompt(query.Occasion, query.Gender, query.Style, query.Budget))
	if err != nil {
		reportUpstream(c, "occasion-styling", err)
		return c.JSON(http.StatusOK, services.FallbackOccasionStyling(query, controller.Suggestions))
	}
	return c.JSON(http.StatusOK, services.OccasionStylingResult(result.Text, query, controller.Suggestions))
}

func (controller *OccasionController) StylePersonality(c echo.Context) error {
	var req StylePersonalityIn
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	result, err := controller.Pipeline.GenerateText(c.Request().Context(), controller.TextModel,
		services.StylePersonalityPrompt(req.QuizAnswers))
	if err != nil {
		reportUpstream(c, "style-personality", err)
		return c.JSON(http.StatusOK, services.FallbackStyleProfile(controller.Suggestions))
	}
	return c.JSON(http.StatusOK, services.StyleProfileResult(result.Text, controller.Suggestions))
}
