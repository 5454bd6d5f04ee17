package controllers

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"styleapi/config"
	"styleapi/models"
	"styleapi/services"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, validationMessage(err))
	}
	return nil
}

func NewValidator() *CustomValidator {
	v := validator.New()
	// report json/form names instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
	v.RegisterValidation("garment", models.ValidateGarment)
	v.RegisterValidation("clothingtype", models.ValidateClothingType)
	return &CustomValidator{validator: v}
}

// validationMessage describes the first failing field.
func validationMessage(err error) string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return err.Error()
	}
	fe := fieldErrors[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("field '%s' is required", fe.Field())
	case "garment":
		return fmt.Sprintf("field '%s' must be one of: top, bottom", fe.Field())
	case "clothingtype":
		return fmt.Sprintf("field '%s' must be one of: top, bottom, both", fe.Field())
	case "max":
		return fmt.Sprintf("field '%s' must be at most %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("field '%s' is invalid", fe.Field())
	}
}

// HTTPErrorHandler writes every error as {"detail": ...}. Validation errors
// from the pipeline become 400; anything unexpected is a 500 whose cause is
// logged and reported, not returned.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	detail := "internal server error"
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok && code != http.StatusInternalServerError {
			detail = msg
		} else if code != http.StatusInternalServerError {
			detail = http.StatusText(code)
		}
	} else if pe, ok := services.AsPipelineError(err); ok && pe.Kind == services.KindValidation {
		code = http.StatusBadRequest
		detail = pe.Message
	}

	if code >= http.StatusInternalServerError {
		c.Logger().Errorf("unhandled error on %s %s: %+v", c.Request().Method, c.Path(), err)
		captureException(c, err)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(code)
	} else {
		writeErr = c.JSON(code, models.ErrorOut{Detail: detail})
	}
	if writeErr != nil {
		c.Logger().Error(writeErr)
	}
}

func captureException(c echo.Context, err error) {
	if hub := sentryecho.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
		return
	}
	sentry.CaptureException(err)
}

// SetupServer builds the API without the process-level middleware
// (rate limiting, access log, recover, sentry) that main adds.
func SetupServer(
	cfg *config.Config,
	llm services.LLMProcessor,
	suggestions services.SuggestionProvider,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = NewValidator()
	e.HTTPErrorHandler = HTTPErrorHandler

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORSAllowOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))
	e.Use(middleware.BodyLimit(cfg.MaxUploadSize))

	pipeline := services.NewPipeline(llm, cfg.ModelTimeout)
	textModel := services.LLMModelName(cfg.TextModel)
	imageModel := services.LLMModelName(cfg.ImageModel)

	healthController := HealthController{}
	healthController.HealthRoutes(e)

	api := e.Group("/api")

	searchController := SearchController{
		Pipeline:    pipeline,
		Suggestions: suggestions,
		TextModel:   textModel,
	}
	searchController.SearchRoutes(api)

	pairingController := PairingController{
		Pipeline:       pipeline,
		Suggestions:    suggestions,
		TextModel:      textModel,
		ImageModel:     imageModel,
		GenerateImages: cfg.PairingImageGeneration,
		Timeout:        cfg.PairingTimeout,
	}
	pairingController.PairingRoutes(api)

	occasionController := OccasionController{
		Pipeline:    pipeline,
		Suggestions: suggestions,
		TextModel:   textModel,
	}
	occasionController.OccasionRoutes(api)

	tryOnController := TryOnController{
		Pipeline:    pipeline,
		Suggestions: suggestions,
		ImageModel:  imageModel,
	}
	tryOnController.TryOnRoutes(api)

	return e
}
