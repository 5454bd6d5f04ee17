package services

import "strings"

// AssembleContents builds the ordered parts of a model request: the
// instruction first, then each image in argument order with its own MIME type
// and unmodified bytes. Nil images are skipped.
func AssembleContents(instruction string, images ...*UploadedImage) []ContentPart {
	parts := make([]ContentPart, 0, len(images)+1)
	if text := strings.TrimSpace(instruction); text != "" {
		parts = append(parts, TextPart(text))
	}
	for _, img := range images {
		if img == nil {
			continue
		}
		parts = append(parts, img.Part())
	}
	return parts
}
