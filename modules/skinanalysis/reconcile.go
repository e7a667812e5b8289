package skinanalysis

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"skin-coach-server/modules/common/respond"
)

// StripCodeFence removes a single markdown code-fence wrapper that the model
// may put around its JSON output. Idempotent for inputs with at most one
// leading and one trailing fence marker.
func StripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```json") {
		s = s[len("```json"):]
	} else if strings.HasPrefix(s, "```") {
		s = s[len("```"):]
	}

	if strings.HasSuffix(s, "```") {
		s = s[:len(s)-len("```")]
	}

	return strings.TrimSpace(s)
}

// decodeAnalysis parses the model's text output as JSON. The decoded object
// is relayed to the caller as-is: no validation against the AnalysisResult
// shape happens here.
func decodeAnalysis(raw string) (map[string]interface{}, error) {
	cleaned := StripCodeFence(raw)

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		// 원본 출력을 남겨 진단 가능하게 함
		log.Printf("❌ [SkinAnalysis] Unparsable model output: %s", raw)
		return nil, respond.New(http.StatusBadGateway, "Invalid AI response format.")
	}

	return result, nil
}
