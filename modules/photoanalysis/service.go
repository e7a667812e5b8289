package photoanalysis

import (
	"context"
	"log"
	"net/http"

	"skin-coach-server/modules/common/respond"
	"skin-coach-server/modules/common/utils"
)

// Generator produces text from a prompt and an optional inline image.
type Generator interface {
	GenerateText(ctx context.Context, prompt string, image *utils.EncodedImage) (string, error)
}

type Service struct {
	generator Generator
}

func NewService(generator Generator) *Service {
	return &Service{
		generator: generator,
	}
}

// Analyze sends the photo and coach prompt to the model and passes the text
// back untouched - no fencing or JSON parsing on this endpoint.
func (s *Service) Analyze(ctx context.Context, req *PhotoAnalysisRequest) (*PhotoAnalysisResult, error) {
	image := utils.NormalizeEncodedImage(req.ImageBase64)
	prompt := BuildPrompt(req.Prompt, req.Lang)

	log.Printf("📸 [PhotoAnalysis] Analyzing photo (%s, %d chars, lang: %s)", image.MimeType, len(image.Base64), req.Lang)

	text, err := s.generator.GenerateText(ctx, prompt, &image)
	if err != nil {
		return nil, err
	}

	if text == "" {
		log.Println("❌ [PhotoAnalysis] Model returned empty text")
		return nil, respond.New(http.StatusBadGateway, "Empty response from AI model.")
	}

	return &PhotoAnalysisResult{
		OK:           true,
		AnalysisText: text,
	}, nil
}
