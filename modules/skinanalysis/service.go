package skinanalysis

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

// Analyze runs the full pipeline for one request: build the prompt pair,
// invoke the model once, and reconcile its output into a JSON object.
func (s *Service) Analyze(ctx context.Context, req *AnalysisRequest) (map[string]interface{}, error) {
	hasPhoto := req.PhotoData != ""
	system, user := BuildPrompts(req.Profile, req.Language, hasPhoto)

	var image *utils.EncodedImage
	if hasPhoto {
		normalized := utils.NormalizeEncodedImage(req.PhotoData)
		image = &normalized
	}

	log.Printf("🔬 [SkinAnalysis] Analyzing profile (language: %s, photo: %v)", req.Language, hasPhoto)

	text, err := s.generator.GenerateText(ctx, system+"\n\n"+user, image)
	if err != nil {
		return nil, err
	}

	if text == "" {
		log.Println("❌ [SkinAnalysis] Model returned empty text")
		return nil, respond.New(http.StatusBadGateway, "Empty response from AI model.")
	}

	return decodeAnalysis(text)
}
