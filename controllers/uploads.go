package controllers

import (
	"io"
	"mime/multipart"
	"net/http"

	"styleapi/services"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// readImage reads and validates one uploaded file. A missing optional file
// returns nil, nil.
func readImage(c echo.Context, field string, required bool) (*services.UploadedImage, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &httpErr):
			return nil, httpErr
		case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
			if !required {
				return nil, nil
			}
			return nil, services.NewValidationErrorf(field, "field '%s' is required", field)
		}
		return nil, services.NewValidationErrorf(field, "could not read file field %s", field)
	}
	return openImage(field, fileHeader)
}

// readImages reads every file uploaded under field, at least one.
func readImages(c echo.Context, field string) ([]*services.UploadedImage, error) {
	form, err := c.MultipartForm()
	if err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return nil, httpErr
		}
		return nil, services.NewValidationErrorf(field, "field '%s' is required", field)
	}
	headers := form.File[field]
	if len(headers) == 0 {
		return nil, services.NewValidationErrorf(field, "field '%s' is required", field)
	}
	images := make([]*services.UploadedImage, 0, len(headers))
	for _, fileHeader := range headers {
		img, err := openImage(field, fileHeader)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, nil
}

func openImage(field string, fileHeader *multipart.FileHeader) (*services.UploadedImage, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "open upload %s", field)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.Wrapf(err, "read upload %s", field)
	}
	return services.NewUploadedImage(field, fileHeader.Filename, fileHeader.Header.Get(echo.HeaderContentType), data)
}

// reportUpstream logs a failed model call and sends it to Sentry. The
// caller decides what the client gets.
func reportUpstream(c echo.Context, operation string, err error) {
	c.Logger().Errorf("[%s] model call failed: %+v", operation, err)
	captureException(c, err)
}

