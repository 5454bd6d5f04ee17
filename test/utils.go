package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"log"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"slices"
	"strings"
	"sync"
	"time"

	"styleapi/config"
	"styleapi/services"
)

func JsonString(model interface{}) string {
	data, _ := json.Marshal(model)
	return string(data)
}

func NewJSONRequest(method string, target string, param interface{}) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(JsonString(param)))
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	return req
}

func NewJSONRequestRaw(method string, target string, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Accept", "application/json")
	return req
}

type FilePart struct {
	Field       string
	FileName    string
	ContentType string
	Data        []byte
}

func PNGFile(field string) FilePart {
	return FilePart{Field: field, FileName: field + ".png", ContentType: "image/png", Data: FakePNG(8, 8)}
}

func JPEGFile(field string) FilePart {
	return FilePart{Field: field, FileName: field + ".jpg", ContentType: "image/jpeg", Data: FakeJPEG(8, 8)}
}

// NewMultipartRequest builds a multipart/form-data request. Files keep their
// declared content type so allow-list checks can be exercised.
func NewMultipartRequest(method string, target string, fields map[string]string, files ...FilePart) *http.Request {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			log.Fatalf("write field %s: %v", name, err)
		}
	}
	for _, file := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, file.Field, file.FileName))
		if file.ContentType != "" {
			header.Set("Content-Type", file.ContentType)
		}
		part, err := writer.CreatePart(header)
		if err != nil {
			log.Fatalf("create part %s: %v", file.Field, err)
		}
		if _, err := part.Write(file.Data); err != nil {
			log.Fatalf("write part %s: %v", file.Field, err)
		}
	}
	if err := writer.Close(); err != nil {
		log.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Add("Accept", "application/json")
	return req
}

func fakeImage(width, height int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 30), G: uint8(y * 30), B: 120, A: 255})
		}
	}
	return img
}

func FakePNG(width, height int) []byte {
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, fakeImage(width, height)); err != nil {
		log.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func FakeJPEG(width, height int) []byte {
	buf := &bytes.Buffer{}
	if err := jpeg.Encode(buf, fakeImage(width, height), nil); err != nil {
		log.Fatalf("encode jpeg: %v", err)
	}
	return buf.Bytes()
}

func FakeConfig() *config.Config {
	return &config.Config{
		GoogleAPIKey:           "fake-key",
		TextModel:              string(services.Flash20),
		ImageModel:             string(services.Flash20ImageGeneration),
		ModelTimeout:           5 * time.Second,
		Port:                   8000,
		Environment:            "test",
		MaxUploadSize:          "20M",
		RateLimit:              10,
		CORSAllowOrigins:       []string{"http://localhost:3000"},
		PairingImageGeneration: true,
		PairingTimeout:         10 * time.Second,
	}
}

func TextResponse(text string) *services.LLMResponse {
	return &services.LLMResponse{
		Candidates: []services.LLMCandidate{{
			Parts: []services.ContentPart{services.TextPart(text)},
		}},
		InputTokenCount:  10,
		OutputTokenCount: 13,
		TotalTokenCount:  23,
	}
}

func ImageResponse(text string, mimeType string, data []byte) *services.LLMResponse {
	parts := []services.ContentPart{services.BinaryPart(mimeType, data)}
	if text != "" {
		parts = append(parts, services.TextPart(text))
	}
	return &services.LLMResponse{
		Candidates:       []services.LLMCandidate{{Parts: parts}},
		InputTokenCount:  10,
		OutputTokenCount: 1290,
		TotalTokenCount:  1300,
	}
}

// GeneratedImage is what LLMProcessorMock returns for image requests.
var GeneratedImage = []byte("\x89PNG\r\n\x1a\nfake-generated-image")

// LLMProcessorMock records every request. Without Respond it answers text
// requests with "mock analysis" and image requests with GeneratedImage.
type LLMProcessorMock struct {
	Respond func(req services.GenerationRequest) (*services.LLMResponse, error)

	mu       sync.Mutex
	requests []services.GenerationRequest
}

func (m *LLMProcessorMock) GenerateContent(ctx context.Context, req services.GenerationRequest) (*services.LLMResponse, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	respond := m.Respond
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if respond != nil {
		return respond(req)
	}
	if slices.Contains(req.Modalities, services.ModalityImage) {
		return ImageResponse("mock try-on analysis", "image/png", GeneratedImage), nil
	}
	return TextResponse("mock analysis"), nil
}

func (m *LLMProcessorMock) Requests() []services.GenerationRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.requests)
}

// FailingLLM fails every call with err.
func FailingLLM(err error) *LLMProcessorMock {
	return &LLMProcessorMock{
		Respond: func(services.GenerationRequest) (*services.LLMResponse, error) {
			return nil, err
		},
	}
}

func Contains(items []string, lookFor string) bool {
	return slices.Contains(items, lookFor)
}
