package main

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"skin-coach-server/modules/common/config"
	"skin-coach-server/modules/common/respond"
	"skin-coach-server/modules/photoanalysis"
	"skin-coach-server/modules/skinanalysis"
)

const serviceName = "skin-coach-server"

// corsMiddleware echoes the configured origin allow-list and answers
// preflight requests with 204 and no body.
func corsMiddleware(allowedOrigins []string) mux.MiddlewareFunc {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if allowed[origin] {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// requestIDMiddleware tags every request with a short id for log correlation.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()[:8]
		w.Header().Set("X-Request-ID", requestID)
		log.Printf("➡️  [%s] %s %s", requestID, r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

// recoverMiddleware maps panics onto the standard error envelope.
func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("❌ Panic while handling %s %s: %v", r.Method, r.URL.Path, rec)
				respond.JSON(w, http.StatusInternalServerError, map[string]interface{}{
					"ok":    false,
					"error": "Internal server error",
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// 헬스 체크 엔드포인트
func healthCheck(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]interface{}{
		"ok":      true,
		"service": serviceName,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

func main() {
	// 환경변수 로드
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	// 라우터 설정
	r := mux.NewRouter()

	r.Use(requestIDMiddleware)
	r.Use(corsMiddleware(cfg.AllowedOrigins))
	r.Use(recoverMiddleware)

	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond.Error(w, respond.New(http.StatusMethodNotAllowed, "Method not allowed"))
	})

	// 라우트 설정
	r.HandleFunc("/", healthCheck).Methods("GET")
	r.HandleFunc("/health", healthCheck).Methods("GET")

	skinanalysis.NewHandler().RegisterRoutes(r)
	photoanalysis.NewHandler().RegisterRoutes(r)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
		// AI 엔드포인트는 모델 호출에 최대 60초 소요
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("🚀 Skin Coach Server starting on port %s", cfg.Port)
	log.Printf("❤️  Health check: http://localhost:%s/health", cfg.Port)
	log.Printf("🔬 Skin analysis: http://localhost:%s/skinAnalysis", cfg.Port)
	log.Printf("📸 Photo analysis: http://localhost:%s/analyzePhoto", cfg.Port)

	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
