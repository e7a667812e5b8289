package gemini

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"google.golang.org/genai"

	"skin-coach-server/modules/common/config"
	"skin-coach-server/modules/common/respond"
	"skin-coach-server/modules/common/utils"
)

// requestTimeout bounds a single model invocation. No retries are performed
// at this layer - a failed call surfaces immediately.
const requestTimeout = 60 * time.Second

var (
	clientMu sync.Mutex
	client   *genai.Client
)

// getClient lazily creates the shared Genai client on first use. The API key
// is checked here rather than at startup so that a missing key fails the
// request, not the deploy. Duplicate creation under a cold-start race is
// harmless: the handle is only published after full construction.
func getClient(ctx context.Context) (*genai.Client, error) {
	cfg := config.GetConfig()
	if cfg.GeminiAPIKey == "" {
		log.Println("❌ [Gemini] GEMINI_API_KEY not configured")
		return nil, respond.New(http.StatusInternalServerError, "AI service is not configured")
	}

	clientMu.Lock()
	defer clientMu.Unlock()

	if client != nil {
		return client, nil
	}

	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Genai client: %w", err)
	}

	log.Println("✅ [Gemini] Client initialized")
	client = c
	return client, nil
}

// TextGenerator invokes Gemini with a text prompt and an optional inline
// image, returning the model's trimmed text output.
type TextGenerator struct{}

// GenerateText - 프롬프트(+선택 이미지)로 Gemini 텍스트 생성
func (TextGenerator) GenerateText(ctx context.Context, prompt string, image *utils.EncodedImage) (string, error) {
	cfg := config.GetConfig()

	c, err := getClient(ctx)
	if err != nil {
		return "", err
	}

	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
	}

	if image != nil && image.Base64 != "" {
		imageData, err := base64.StdEncoding.DecodeString(image.Base64)
		if err != nil {
			// 잘못된 base64는 이미지 없이 계속 진행
			log.Printf("⚠️ [Gemini] Failed to decode inline image, continuing without it: %v", err)
		} else {
			log.Printf("📷 [Gemini] Adding inline image: %s, %d bytes", image.MimeType, len(imageData))
			parts = append(parts, genai.NewPartFromBytes(imageData, image.MimeType))
		}
	}

	content := &genai.Content{
		Parts: parts,
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	log.Printf("🤖 [Gemini] Calling model %s (prompt: %d chars, parts: %d)", cfg.GeminiModel, len(prompt), len(parts))
	result, err := c.Models.GenerateContent(
		ctx,
		cfg.GeminiModel,
		[]*genai.Content{content},
		nil,
	)
	if err != nil {
		return "", fmt.Errorf("Gemini API call failed: %w", err)
	}

	// 응답에서 텍스트 추출
	var sb strings.Builder
	for _, candidate := range result.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				sb.WriteString(part.Text)
			}
		}
	}

	text := strings.TrimSpace(sb.String())
	log.Printf("✅ [Gemini] Received %d chars from model", len(text))
	return text, nil
}
