package controllers

import (
	"net/http"
	"strings"

	"styleapi/models"
	"styleapi/services"

	"github.com/labstack/echo/v4"
)

const TryOnFailedCode = "tryon_generation_failed"

type TryOnIn struct {
	ClothingType string `form:"clothing_type" validate:"required,clothingtype"`
}

type TryOnController struct {
	Pipeline    *services.Pipeline
	Suggestions services.SuggestionProvider
	ImageModel  services.LLMModelName
}

func (controller *TryOnController) TryOnRoutes(g *echo.Group) {
	g.POST("/tryon-outfit", controller.TryOnOutfit)
}

// TryOnOutfit asks the image model to dress the person in the uploaded
// garments. It has no fallback: when no image comes back the client gets
// 502, never the unchanged person photo.
func (controller *TryOnController) TryOnOutfit(c echo.Context) error {
	var req TryOnIn
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form data")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	clothingType := models.ClothingType(req.ClothingType)

	person, err := readImage(c, "person_image", true)
	if err != nil {
		return err
	}
	top, err := readImage(c, "top_clothing", false)
	if err != nil {
		return err
	}
	bottom, err := readImage(c, "bottom_clothing", false)
	if err != nil {
		return err
	}
	if err := checkGarments(clothingType, top, bottom); err != nil {
		return err
	}

	images := []*services.UploadedImage{person}
	if clothingType.NeedsTop() {
		images = append(images, top)
	}
	if clothingType.NeedsBottom() {
		images = append(images, bottom)
	}

	result, err := controller.Pipeline.GenerateImage(c.Request().Context(), controller.ImageModel, services.TextAndImage,
		services.TryOnPrompt(clothingType.String()), images...)
	if err != nil {
		if !result.HasImage() && strings.Contains(result.Text, services.NoPersonMarker) {
			return services.NewValidationError("person_image", "no person detected in person_image")
		}
		reportUpstream(c, "tryon-outfit", err)
		return c.JSON(http.StatusBadGateway, models.ErrorOut{
			Detail: "virtual try-on generation failed, please try again",
			Code:   TryOnFailedCode,
		})
	}
	return c.JSON(http.StatusOK, services.TryOnResult(result, clothingType, controller.Suggestions))
}

func checkGarments(clothingType models.ClothingType, top, bottom *services.UploadedImage) error {
	switch {
	case clothingType == models.ClothingBoth && (top == nil || bottom == nil):
		return services.NewValidationError("clothing_type", "top_clothing and bottom_clothing are required when clothing_type=both")
	case clothingType == models.ClothingTop && top == nil:
		return services.NewValidationError("top_clothing", "top_clothing is required when clothing_type=top")
	case clothingType == models.ClothingBottom && bottom == nil:
		return services.NewValidationError("bottom_clothing", "bottom_clothing is required when clothing_type=bottom")
	}
	return nil
}
