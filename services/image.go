package services

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/webp"
)

// UploadedImage is one validated image upload. It lives for a single request.
type UploadedImage struct {
	Field        string
	FileName     string
	DeclaredType string
	// MimeType is the sniffed type sent to the model.
	MimeType string
	Width    int
	Height   int
	Data     []byte
}

// NewUploadedImage validates an upload against the image allow-list and the
// actual file content. Every failure is a validation error naming field.
func NewUploadedImage(field, fileName, contentType string, data []byte) (*UploadedImage, error) {
	declared := NormalizeMimeType(contentType)
	if declared == "" {
		return nil, NewValidationErrorf(field, "missing content type for field %s", field)
	}
	if !IsAllowedImageMimeType(declared) {
		return nil, NewValidationErrorf(field, "unsupported file type for field %s: %s", field, declared)
	}
	if len(data) == 0 {
		return nil, NewValidationErrorf(field, "file for field %s is empty", field)
	}

	sniffed := NormalizeMimeType(mimetype.Detect(data).String())
	if !strings.HasPrefix(sniffed, "image/") {
		return nil, NewValidationErrorf(field, "file for field %s is not a valid image", field)
	}
	if !IsAllowedImageMimeType(sniffed) {
		return nil, NewValidationErrorf(field, "unsupported file type for field %s: %s", field, sniffed)
	}
	effective := sniffed

	img := &UploadedImage{
		Field:        field,
		FileName:     fileName,
		DeclaredType: declared,
		MimeType:     effective,
		Data:         data,
	}
	if err := img.decodeConfig(); err != nil {
		return nil, NewValidationErrorf(field, "file for field %s could not be decoded as %s", field, effective)
	}
	return img, nil
}

// decodeConfig reads the image header for the formats Go can decode.
// HEIC/HEIF have no pure-Go decoder, so only their sniffed container type is checked.
func (i *UploadedImage) decodeConfig() error {
	switch i.MimeType {
	case "image/jpeg", "image/png", "image/webp":
	default:
		return nil
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(i.Data))
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}
	i.Width, i.Height = cfg.Width, cfg.Height
	return nil
}

func (i *UploadedImage) Base64() string {
	return base64.StdEncoding.EncodeToString(i.Data)
}

func (i *UploadedImage) DataURI() string {
	return EncodeDataURI(i.MimeType, i.Data)
}

// Part returns the image as an inline binary content part.
func (i *UploadedImage) Part() ContentPart {
	return BinaryPart(i.MimeType, i.Data)
}

func EncodeDataURI(mimeType string, data []byte) string {
	if mimeType == "" {
		mimeType = DefaultImageMimeType
	}
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}
