package services

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	buf := &bytes.Buffer{}
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func TestNewUploadedImageAcceptsPNG(t *testing.T) {
	data := encodePNG(t, 6, 4)

	img, err := NewUploadedImage("person_image", "me.png", "image/png", data)
	require.NoError(t, err)
	assert.Equal(t, "person_image", img.Field)
	assert.Equal(t, "me.png", img.FileName)
	assert.Equal(t, "image/png", img.MimeType)
	assert.Equal(t, 6, img.Width)
	assert.Equal(t, 4, img.Height)
	assert.Equal(t, data, img.Data)
}

func TestNewUploadedImageNormalizesDeclaredType(t *testing.T) {
	img, err := NewUploadedImage("item_image", "a.png", "IMAGE/PNG; charset=binary", encodePNG(t, 2, 2))
	require.NoError(t, err)
	assert.Equal(t, "image/png", img.DeclaredType)
}

func TestNewUploadedImageUsesSniffedType(t *testing.T) {
	img, err := NewUploadedImage("item_image", "a.jpg", "image/jpg", encodePNG(t, 2, 2))
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", img.DeclaredType)
	assert.Equal(t, "image/png", img.MimeType)
}

func TestNewUploadedImageRejectsDisallowedType(t *testing.T) {
	_, err := NewUploadedImage("person_image", "notes.txt", "text/plain", []byte("hello"))
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	pe, ok := AsPipelineError(err)
	require.True(t, ok)
	assert.Equal(t, "person_image", pe.Field)
	assert.Equal(t, "unsupported file type for field person_image: text/plain", pe.Message)
}

func TestNewUploadedImageRejectsMislabelledFormats(t *testing.T) {
	gifData := &bytes.Buffer{}
	require.NoError(t, gif.Encode(gifData, image.NewPaletted(image.Rect(0, 0, 2, 2), color.Palette{color.Black, color.White}), nil))
	svgData := []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="2" height="2"></svg>`)

	cases := []struct {
		declared string
		data     []byte
		sniffed  string
	}{
		{"image/heic", gifData.Bytes(), "image/gif"},
		{"image/heif", svgData, "image/svg+xml"},
		{"image/png", gifData.Bytes(), "image/gif"},
	}
	for _, tc := range cases {
		_, err := NewUploadedImage("person_image", "x", tc.declared, tc.data)
		require.Error(t, err, tc.declared)
		assert.True(t, IsValidation(err))
		pe, ok := AsPipelineError(err)
		require.True(t, ok)
		assert.Equal(t, "unsupported file type for field person_image: "+tc.sniffed, pe.Message)
	}
}

func TestNewUploadedImageRejectsMissingType(t *testing.T) {
	_, err := NewUploadedImage("search_image", "x", "", encodePNG(t, 2, 2))
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "missing content type")
}

func TestNewUploadedImageRejectsEmptyFile(t *testing.T) {
	_, err := NewUploadedImage("search_image", "x.png", "image/png", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file for field search_image is empty")
}

func TestNewUploadedImageRejectsNonImageBytes(t *testing.T) {
	_, err := NewUploadedImage("search_image", "x.png", "image/png", []byte("definitely not an image"))
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "is not a valid image")
}

func TestNewUploadedImageRejectsCorruptPNG(t *testing.T) {
	corrupt := append([]byte("\x89PNG\r\n\x1a\n"), []byte(strings.Repeat("x", 64))...)

	_, err := NewUploadedImage("search_image", "x.png", "image/png", corrupt)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.Contains(t, err.Error(), "could not be decoded as image/png")
}

func TestUploadedImageEncodings(t *testing.T) {
	data := encodePNG(t, 2, 2)
	img, err := NewUploadedImage("item_image", "a.png", "image/png", data)
	require.NoError(t, err)

	decoded, err := base64.StdEncoding.DecodeString(img.Base64())
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
	assert.True(t, strings.HasPrefix(img.DataURI(), "data:image/png;base64,"))

	part := img.Part()
	assert.True(t, part.IsBinary())
	assert.Equal(t, "image/png", part.MimeType)
}

func TestEncodeDataURIDefaultsToPNG(t *testing.T) {
	assert.Equal(t, "data:image/png;base64,AQI=", EncodeDataURI("", []byte{1, 2}))
	assert.Equal(t, "data:image/webp;base64,AQI=", EncodeDataURI("image/webp", []byte{1, 2}))
}

func TestIsAllowedImageMimeType(t *testing.T) {
	for _, mimeType := range []string{"image/jpeg", "image/jpg", "image/png", "image/webp", "image/heic", "image/heif", "Image/PNG"} {
		assert.True(t, IsAllowedImageMimeType(mimeType), mimeType)
	}
	for _, mimeType := range []string{"", "text/plain", "image/gif", "application/pdf"} {
		assert.False(t, IsAllowedImageMimeType(mimeType), mimeType)
	}
}
