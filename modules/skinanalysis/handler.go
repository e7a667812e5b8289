package skinanalysis

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

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

// RegisterRoutes - 라우터에 Skin Analysis 엔드포인트 등록
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/skinAnalysis", h.Analyze).Methods("POST", "OPTIONS")
	log.Println("✅ Skin analysis route registered: /skinAnalysis")
}

// Analyze handles POST /skinAnalysis.
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

	var req AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Failed to parse request: %v", err)
		respond.Error(w, respond.New(http.StatusBadRequest, "Invalid request format"))
		return
	}

	if req.Profile == nil {
		respond.Error(w, respond.New(http.StatusBadRequest, "Missing profile data."))
		return
	}

	if req.Language == "" {
		req.Language = "en"
	}

	result, err := h.service.Analyze(r.Context(), &req)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, result)
}
