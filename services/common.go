package services

import (
	"slices"
	"strings"
)

var allowedImageMimeTypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
	"image/heic",
	"image/heif",
}

// DefaultImageMimeType is assumed for generated images when the model omits one.
const DefaultImageMimeType = "image/png"

// NormalizeMimeType lowercases a Content-Type header value and strips parameters.
// "image/jpg" is a common client mistake and is mapped to image/jpeg.
func NormalizeMimeType(contentType string) string {
	mimeType := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}
	if mimeType == "image/jpg" {
		return "image/jpeg"
	}
	return mimeType
}

func IsAllowedImageMimeType(contentType string) bool {
	return slices.Contains(allowedImageMimeTypes, NormalizeMimeType(contentType))
}

// FirstNonEmpty returns the first argument that is not blank.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
