package services

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

const NoAnalysisText = "No analysis available."

// Extraction is what a handler uses from a model response: the first text
// part and the first inline image of the first candidate.
type Extraction struct {
	Text          string
	Image         []byte
	ImageMimeType string
}

func (e Extraction) HasImage() bool {
	return len(e.Image) > 0
}

func (e Extraction) ImageDataURI() string {
	if !e.HasImage() {
		return ""
	}
	return EncodeDataURI(e.ImageMimeType, e.Image)
}

// ExtractFirstCandidate scans the parts of the first candidate in order.
// A response with no candidates yields NoAnalysisText and no image.
func ExtractFirstCandidate(resp *LLMResponse) Extraction {
	result := Extraction{Text: NoAnalysisText}
	if resp == nil || len(resp.Candidates) == 0 {
		return result
	}
	foundText := false
	for _, part := range resp.Candidates[0].Parts {
		if part.IsBinary() {
			if result.Image == nil {
				result.Image = part.Data
				result.ImageMimeType = FirstNonEmpty(part.MimeType, DefaultImageMimeType)
			}
			continue
		}
		if !foundText && part.Text != "" {
			result.Text = part.Text
			foundText = true
		}
	}
	return result
}

// Pipeline runs model calls under a per-call timeout. It is safe for
// concurrent use as long as the LLMProcessor is.
type Pipeline struct {
	LLM     LLMProcessor
	Timeout time.Duration
}

func NewPipeline(llm LLMProcessor, timeout time.Duration) *Pipeline {
	return &Pipeline{LLM: llm, Timeout: timeout}
}

// Generate calls the model and extracts the first candidate. Every failure,
// including a timeout or a cancelled request, is an upstream error.
func (p *Pipeline) Generate(ctx context.Context, req GenerationRequest) (Extraction, error) {
	if p == nil || p.LLM == nil {
		return Extraction{}, NewUpstreamError("model client is not configured", nil)
	}
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	resp, err := p.LLM.GenerateContent(ctx, req)
	if err != nil {
		switch {
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			return Extraction{}, NewUpstreamError("model call timed out", err)
		case errors.Is(ctx.Err(), context.Canceled):
			return Extraction{}, NewUpstreamError("request cancelled", err)
		}
		return Extraction{}, NewUpstreamError("model call failed", err)
	}
	return ExtractFirstCandidate(resp), nil
}

// GenerateText is a TEXT-only call with an instruction and optional images.
func (p *Pipeline) GenerateText(ctx context.Context, model LLMModelName, instruction string, images ...*UploadedImage) (Extraction, error) {
	return p.Generate(ctx, GenerationRequest{
		Model:      model,
		Parts:      AssembleContents(instruction, images...),
		Modalities: TextOnly,
	})
}

// GenerateImage asks for an image and fails when none comes back.
func (p *Pipeline) GenerateImage(ctx context.Context, model LLMModelName, modalities []Modality, instruction string, images ...*UploadedImage) (Extraction, error) {
	result, err := p.Generate(ctx, GenerationRequest{
		Model:      model,
		Parts:      AssembleContents(instruction, images...),
		Modalities: modalities,
	})
	if err != nil {
		return result, err
	}
	if !result.HasImage() {
		return result, NewUpstreamError("model returned no image", nil)
	}
	return result, nil
}
