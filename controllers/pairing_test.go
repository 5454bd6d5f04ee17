package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"strings"
	"testing"
	"time"

	"styleapi/models"
	"styleapi/services"
	"styleapi/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smartPairingRequest(fields map[string]string) *http.Request {
	return test.NewMultipartRequest(http.MethodPost, "/api/smart-pairing", fields, test.PNGFile("item_image"))
}

func TestSmartPairingTopToBottomCasual(t *testing.T) {
	llm := &test.LLMProcessorMock{}
	e := newTestServer(llm)

	rec := serve(e, smartPairingRequest(map[string]string{"item_type": "top", "find_type": "bottom"}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.SmartPairingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Suggestions, 6)
	assert.Equal(t, "Perfect Casual Pants", resp.Suggestions[0].Name)
	assert.Equal(t, "Sophisticated Casual Leggings", resp.Suggestions[5].Name)
	for _, s := range resp.Suggestions {
		assert.NotEmpty(t, s.Name)
		assert.True(t, strings.HasPrefix(s.Image, "data:image/png;base64,"), s.Image)
		assert.True(t, s.Generated)
		assert.True(t, services.PairingGeneratedRange.Contains(s.ConfidenceScore))
	}
	assert.Equal(t, "mock analysis", resp.AIAnalysis)
	assert.Equal(t, models.PairingStyleAnalysis{
		ItemType:        "top",
		FindType:        "bottom",
		StylePreference: "casual",
		Gender:          "unisex",
		AIPowered:       true,
	}, resp.StyleAnalysis)

	requests := llm.Requests()
	require.Len(t, requests, 7)
	assert.Equal(t, services.TextOnly, requests[0].Modalities)
	for _, req := range requests[1:] {
		assert.Equal(t, services.Flash20ImageGeneration, req.Model)
		assert.True(t, slices.Contains(req.Modalities, services.ModalityImage))
		require.Len(t, req.Parts, 2)
	}
}

func TestSmartPairingPlaceholderWhenImageFails(t *testing.T) {
	llm := &test.LLMProcessorMock{
		Respond: func(req services.GenerationRequest) (*services.LLMResponse, error) {
			if slices.Contains(req.Modalities, services.ModalityImage) {
				return nil, errors.New("image model unavailable")
			}
			return test.TextResponse("pair with dark denim"), nil
		},
	}
	e := newTestServer(llm)

	rec := serve(e, smartPairingRequest(map[string]string{"item_type": "bottom", "find_type": "top", "style": "formal"}))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SmartPairingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Suggestions, 6)
	assert.Equal(t, "Classic Formal Blouse", resp.Suggestions[0].Name)
	for _, s := range resp.Suggestions {
		assert.False(t, s.Generated)
		assert.True(t, strings.HasPrefix(s.Image, "https://via.placeholder.com/"))
		assert.True(t, services.PairingPlaceholderRange.Contains(s.ConfidenceScore))
	}
	assert.Equal(t, "pair with dark denim", resp.AIAnalysis)
}

func TestSmartPairingWithoutImageGeneration(t *testing.T) {
	cfg := test.FakeConfig()
	cfg.PairingImageGeneration = false
	llm := &test.LLMProcessorMock{}
	e := newTestServerWithConfig(cfg, llm)

	rec := serve(e, smartPairingRequest(map[string]string{"item_type": "top", "find_type": "bottom"}))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SmartPairingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Suggestions, 6)
	assert.Len(t, llm.Requests(), 1)
}

func TestSmartPairingFallback(t *testing.T) {
	e := newTestServer(test.FailingLLM(errors.New("quota exceeded")))

	rec := serve(e, smartPairingRequest(map[string]string{"item_type": "top", "find_type": "bottom", "gender": "female"}))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SmartPairingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Suggestions, 6)
	assert.Equal(t, "Suggested Bottom 1", resp.Suggestions[0].Name)
	assert.Equal(t, "female", resp.StyleAnalysis.Gender)
	assert.NotEmpty(t, resp.StyleAnalysis.Note)
	for _, s := range resp.Suggestions {
		assert.True(t, services.PairingPlaceholderRange.Contains(s.ConfidenceScore))
	}
}

func TestSmartPairingValidation(t *testing.T) {
	e := newTestServer(&test.LLMProcessorMock{})

	rec := serve(e, smartPairingRequest(map[string]string{"find_type": "bottom"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "field 'item_type' is required", decodeError(t, rec).Detail)

	rec = serve(e, smartPairingRequest(map[string]string{"item_type": "top", "find_type": "shoes"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "field 'find_type' must be one of: top, bottom", decodeError(t, rec).Detail)

	rec = serve(e, test.NewMultipartRequest(http.MethodPost, "/api/smart-pairing", map[string]string{"item_type": "top", "find_type": "bottom"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "field 'item_image' is required", decodeError(t, rec).Detail)
}

func TestSmartPairingDisallowedItemType(t *testing.T) {
	llm := &test.LLMProcessorMock{}
	e := newTestServer(llm)
	file := test.FilePart{Field: "item_image", FileName: "item.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.4")}

	rec := serve(e, test.NewMultipartRequest(http.MethodPost, "/api/smart-pairing",
		map[string]string{"item_type": "top", "find_type": "bottom"}, file))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "unsupported file type for field item_image: application/pdf", decodeError(t, rec).Detail)
	assert.Empty(t, llm.Requests())
}

func TestSmartPairingStopsImagesAtRequestDeadline(t *testing.T) {
	cfg := test.FakeConfig()
	cfg.PairingTimeout = 100 * time.Millisecond
	llm := &test.LLMProcessorMock{
		Respond: func(req services.GenerationRequest) (*services.LLMResponse, error) {
			if slices.Contains(req.Modalities, services.ModalityImage) {
				time.Sleep(60 * time.Millisecond)
				return test.ImageResponse("", "image/png", test.GeneratedImage), nil
			}
			return test.TextResponse("pair with chinos"), nil
		},
	}
	e := newTestServerWithConfig(cfg, llm)

	rec := serve(e, smartPairingRequest(map[string]string{"item_type": "top", "find_type": "bottom"}))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.SmartPairingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Suggestions, 6)
	assert.Equal(t, "pair with chinos", resp.AIAnalysis)
	last := resp.Suggestions[5]
	assert.False(t, last.Generated)
	assert.True(t, strings.HasPrefix(last.Image, "https://via.placeholder.com/"))
	assert.Less(t, len(llm.Requests()), 7)
}

func TestWishlistPairingOk(t *testing.T) {
	llm := &test.LLMProcessorMock{}
	e := newTestServer(llm)

	rec := serve(e, test.NewJSONRequest(http.MethodPost, "/api/wishlist-pairing", map[string]interface{}{
		"selected_item":    "Red Silk Dress",
		"user_preferences": map[string]string{"style": "romantic"},
	}))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.WishlistPairingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Red Silk Dress", resp.SelectedItem)
	assert.Equal(t, "mock analysis", resp.AIAnalysis)
	require.Len(t, resp.Suggestions, 6)
	for _, s := range resp.Suggestions {
		assert.True(t, services.WishlistCompatibilityRange.Contains(s.CompatibilityScore))
	}

	requests := llm.Requests()
	require.Len(t, requests, 1)
	assert.Contains(t, requests[0].Parts[0].Text, `"Red Silk Dress"`)
	assert.Contains(t, requests[0].Parts[0].Text, "romantic")
}

func TestWishlistPairingRequiresItem(t *testing.T) {
	e := newTestServer(&test.LLMProcessorMock{})

	rec := serve(e, test.NewJSONRequest(http.MethodPost, "/api/wishlist-pairing", map[string]interface{}{}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "field 'selected_item' is required", decodeError(t, rec).Detail)
}

func TestWishlistPairingFallback(t *testing.T) {
	e := newTestServer(test.FailingLLM(errors.New("boom")))

	rec := serve(e, test.NewJSONRequest(http.MethodPost, "/api/wishlist-pairing", map[string]string{"selected_item": "Linen Shirt"}))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.WishlistPairingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Suggestions, 6)
	assert.Equal(t, "Linen Shirt", resp.SelectedItem)
}
