package photoanalysis

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"skin-coach-server/modules/common/fallback"
	"skin-coach-server/modules/common/gemini"
	"skin-coach-server/modules/common/respond"
)

type Handler struct {
	service *Service
}

func NewHandler() *Handler {
	return &Handler{
		service: NewService(gemini.TextGenerator{}),
	}
}

// RegisterRoutes - 라우터에 Photo Analysis 엔드포인트 등록
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/analyzePhoto", h.Analyze).Methods("POST", "OPTIONS")
	log.Println("✅ Photo analysis route registered: /analyzePhoto")
}

// Analyze handles POST /analyzePhoto. The body is decoded leniently so that
// a non-string imageBase64 reports the same error as a missing one.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	// OPTIONS 요청 처리 (CORS preflight)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		respond.Error(w, respond.New(http.StatusUnsupportedMediaType, "Content-Type must be application/json"))
		return
	}

	var body map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Printf("❌ Failed to parse request: %v", err)
		respond.Error(w, respond.New(http.StatusBadRequest, "Invalid request format"))
		return
	}

	imageBase64, ok := body["imageBase64"].(string)
	if !ok || imageBase64 == "" {
		respond.Error(w, respond.New(http.StatusBadRequest, "Missing imageBase64 (string)."))
		return
	}

	if len(imageBase64) > maxImageBase64Length {
		respond.Error(w, respond.New(http.StatusRequestEntityTooLarge, "Image payload too large (max 8000000 characters)."))
		return
	}

	prompt, _ := body["prompt"].(string)

	req := &PhotoAnalysisRequest{
		ImageBase64: imageBase64,
		Prompt:      prompt,
		Lang:        fallback.SafeString(body["lang"], "en"),
	}

	result, err := h.service.Analyze(r.Context(), req)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, result)
}
