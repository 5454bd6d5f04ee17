package controllers

import (
	"context"
	"net/http"
	"time"

	"styleapi/models"
	"styleapi/services"

	"github.com/labstack/echo/v4"
)

type SmartPairingIn struct {
	ItemType string `form:"item_type" validate:"required,garment"`
	FindType string `form:"find_type" validate:"required,garment"`
	Style    string `form:"style" validate:"max=50"`
	Gender   string `form:"gender" validate:"max=50"`
}

type WishlistPairingIn struct {
	SelectedItem    string                 `json:"selected_item" validate:"required,max=200"`
	UserPreferences map[string]interface{} `json:"user_preferences"`
}

type PairingController struct {
	Pipeline    *services.Pipeline
	Suggestions services.SuggestionProvider
	TextModel   services.LLMModelName
	ImageModel  services.LLMModelName
	// GenerateImages renders one product photo per suggestion.
	GenerateImages bool
	// Timeout bounds the whole request, analysis plus every image call.
	Timeout time.Duration
}

func (controller *PairingController) PairingRoutes(g *echo.Group) {
	g.POST("/smart-pairing", controller.SmartPairing)
	g.POST("/wishlist-pairing", controller.WishlistPairing)
}

func (controller *PairingController) SmartPairing(c echo.Context) error {
	var req SmartPairingIn
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	img, err := readImage(c, "item_image", true)
	if err != nil {
		return err
	}
	query := services.PairingQuery{
		ItemType: req.ItemType,
		FindType: req.FindType,
		Style:    services.FirstNonEmpty(req.Style, "casual"),
		Gender:   services.FirstNonEmpty(req.Gender, "unisex"),
	}

	ctx := c.Request().Context()
	if controller.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, controller.Timeout)
		defer cancel()
	}
	analysis, err := controller.Pipeline.GenerateText(ctx, controller.TextModel,
		services.PairingAnalysisPrompt(query.ItemType, query.FindType, query.Style, query.Gender), img)
	if err != nil {
		reportUpstream(c, "smart-pairing", err)
		return c.JSON(http.StatusOK, services.FallbackSmartPairing(query, controller.Suggestions))
	}

	names := controller.Suggestions.PairingNames(query)
	suggestions := make([]models.PairingSuggestion, 0, len(names))
	for i, name := range names {
		image := ""
		if controller.GenerateImages && ctx.Err() == nil {
			generated, err := controller.Pipeline.GenerateImage(ctx, controller.ImageModel, services.TextAndImage,
				services.PairingImagePrompt(name, query.ItemType, query.FindType, query.Style, query.Gender), img)
			if err != nil {
				c.Logger().Warnf("[smart-pairing] image generation failed for %q, using placeholder: %v", name, err)
			} else {
				image = generated.ImageDataURI()
			}
		}
		suggestions = append(suggestions, controller.Suggestions.PairingSuggestion(i, name, query, image, image != ""))
	}
	return c.JSON(http.StatusOK, services.SmartPairingResult(analysis.Text, suggestions, query))
}

func (controller *PairingController) WishlistPairing(c echo.Context) error {
	var req WishlistPairingIn
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	result, err := controller.Pipeline.GenerateText(c.Request().Context(), controller.TextModel,
		services.WishlistPairingPrompt(req.SelectedItem, req.UserPreferences))
	if err != nil {
		reportUpstream(c, "wishlist-pairing", err)
		return c.JSON(http.StatusOK, services.FallbackWishlistPairing(req.SelectedItem, controller.Suggestions))
	}
	return c.JSON(http.StatusOK, services.WishlistPairingResult(result.Text, req.SelectedItem, controller.Suggestions))
}
