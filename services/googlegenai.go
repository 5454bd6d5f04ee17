package services

import (
	"context"
	"fmt"
	"log"

	"github.com/pkg/errors"
	"google.golang.org/genai"
)

// LLMModelName is a Gemini model identifier.
type LLMModelName string

const (
	Pro25                  LLMModelName = "gemini-2.5-pro"
	Flash20                LLMModelName = "gemini-2.0-flash"
	Flash20ImageGeneration LLMModelName = "gemini-2.0-flash-preview-image-generation"
)

func (m LLMModelName) String() string {
	if m == "" {
		return string(Flash20)
	}
	return string(m)
}

// Modality is an output kind requested from the model.
type Modality string

const (
	ModalityText  Modality = "TEXT"
	ModalityImage Modality = "IMAGE"
)

var (
	TextOnly     = []Modality{ModalityText}
	ImageOnly    = []Modality{ModalityImage}
	TextAndImage = []Modality{ModalityText, ModalityImage}
)

// ContentPart is either text or inline binary data, never both.
type ContentPart struct {
	Text     string
	MimeType string
	Data     []byte
}

func TextPart(text string) ContentPart {
	return ContentPart{Text: text}
}

func BinaryPart(mimeType string, data []byte) ContentPart {
	return ContentPart{MimeType: mimeType, Data: data}
}

func (p ContentPart) IsBinary() bool {
	return len(p.Data) > 0
}

type GenerationRequest struct {
	Model             LLMModelName
	Parts             []ContentPart
	Modalities        []Modality
	SystemInstruction string
}

type LLMCandidate struct {
	Parts        []ContentPart
	FinishReason string
}

type LLMResponse struct {
	Candidates         []LLMCandidate
	InputTokenCount    int32
	OutputTokenCount   int32
	ThoughtsTokenCount int32
	TotalTokenCount    int32
}

type LLMProcessor interface {
	GenerateContent(ctx context.Context, req GenerationRequest) (*LLMResponse, error)
}

func floatPointer(f float32) *float32 {
	return &f
}

// GoogleLLMProcessor talks to the Gemini API. One instance is created at
// startup and shared by all handlers.
type GoogleLLMProcessor struct {
	client *genai.Client
}

func NewGoogleLLMProcessor(ctx context.Context, apiKey string) (*GoogleLLMProcessor, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is empty")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GoogleLLMProcessor{client: client}, nil
}

func (p *GoogleLLMProcessor) GenerateContent(ctx context.Context, req GenerationRequest) (*LLMResponse, error) {
	if len(req.Parts) == 0 {
		return nil, errors.New("generation request has no content parts")
	}
	result, err := p.client.Models.GenerateContent(
		ctx,
		req.Model.String(),
		[]*genai.Content{genai.NewContentFromParts(ToGenAIParts(req.Parts), genai.RoleUser)},
		buildGenerateConfig(req),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "generate content with %s", req.Model)
	}
	return FromGenAIResponse(result)
}

func buildGenerateConfig(req GenerationRequest) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature: floatPointer(1),
	}
	modalities := req.Modalities
	if len(modalities) == 0 {
		modalities = TextOnly
	}
	for _, m := range modalities {
		cfg.ResponseModalities = append(cfg.ResponseModalities, string(m))
	}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemInstruction}},
		}
	}
	return cfg
}

// ToGenAIParts keeps the order of parts; binary parts go inline so the
// transport base64-encodes the original bytes.
func ToGenAIParts(parts []ContentPart) []*genai.Part {
	out := make([]*genai.Part, 0, len(parts))
	for _, part := range parts {
		if part.IsBinary() {
			out = append(out, genai.NewPartFromBytes(part.Data, part.MimeType))
			continue
		}
		out = append(out, genai.NewPartFromText(part.Text))
	}
	return out
}

// FromGenAIResponse converts a Gemini response. Blocked prompts and
// safety-blocked candidates are errors; an empty candidate list is not.
func FromGenAIResponse(result *genai.GenerateContentResponse) (*LLMResponse, error) {
	if result == nil {
		return nil, errors.New("empty response from model")
	}
	if result.PromptFeedback != nil && result.PromptFeedback.BlockReason != "" {
		return nil, errors.Errorf("content violation: %s %s", result.PromptFeedback.BlockReason, result.PromptFeedback.BlockReasonMessage)
	}

	response := &LLMResponse{}
	if result.UsageMetadata != nil {
		response.InputTokenCount = result.UsageMetadata.PromptTokenCount
		response.OutputTokenCount = result.UsageMetadata.CandidatesTokenCount
		response.ThoughtsTokenCount = result.UsageMetadata.ThoughtsTokenCount
		response.TotalTokenCount = result.UsageMetadata.TotalTokenCount
		log.Printf("[genai] tokens input=%d output=%d thoughts=%d total=%d",
			response.InputTokenCount, response.OutputTokenCount, response.ThoughtsTokenCount, response.TotalTokenCount)
	}

	for _, cand := range result.Candidates {
		if cand == nil {
			continue
		}
		for _, rating := range cand.SafetyRatings {
			if rating != nil && rating.Blocked {
				return nil, errors.Errorf("content blocked by safety setting: %s", rating.Category)
			}
		}
		candidate := LLMCandidate{FinishReason: string(cand.FinishReason)}
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				if part == nil || part.Thought {
					continue
				}
				if part.InlineData != nil && len(part.InlineData.Data) > 0 {
					candidate.Parts = append(candidate.Parts, BinaryPart(part.InlineData.MIMEType, part.InlineData.Data))
					continue
				}
				if part.Text != "" {
					candidate.Parts = append(candidate.Parts, TextPart(part.Text))
				}
			}
		}
		response.Candidates = append(response.Candidates, candidate)
	}
	return response, nil
}
