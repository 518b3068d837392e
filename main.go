package main

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"napkin-studio-server/modules/common/config"
	"napkin-studio-server/modules/common/redis"
	"napkin-studio-server/modules/common/storage"
	"napkin-studio-server/modules/download"
	"napkin-studio-server/modules/feed"
	"napkin-studio-server/modules/history"
	"napkin-studio-server/modules/napkin"
	"napkin-studio-server/modules/preview"
	"napkin-studio-server/modules/theme"
)

// 서버 메트릭
type ServerMetrics struct {
	TotalGenerations int       `json:"totalGenerations"`
	StartTime        time.Time `json:"startTime"`
	mutex            sync.RWMutex
}

var metrics = &ServerMetrics{
	StartTime: time.Now(),
}

// countGenerations - 생성 요청 카운트 미들웨어
func countGenerations(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics.mutex.Lock()
		metrics.TotalGenerations++
		metrics.mutex.Unlock()
		next(w, r)
	}
}

// CORS 헤더 추가
func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// 헬스 체크 엔드포인트
func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "napkin-studio",
	})
}

// 서버 메트릭 조회 엔드포인트
func getMetrics(hub *feed.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics.mutex.RLock()
		totalGenerations := metrics.TotalGenerations
		startTime := metrics.StartTime
		metrics.mutex.RUnlock()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"server": map[string]interface{}{
				"uptime":           time.Since(startTime).String(),
				"startTime":        startTime,
				"totalGenerations": totalGenerations,
				"feedClients":      hub.ClientCount(),
				"feedConnections":  hub.TotalConnections(),
			},
		})
	}
}

func main() {
	// 환경변수 로드
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	// Redis 연결 (대기열 + 최근 프롬프트 캐시)
	rdb := redis.Connect(cfg)
	if rdb == nil {
		log.Fatal("❌ Failed to connect to Redis")
	}
	log.Println("✅ Redis connected successfully")

	// 프롬프트 라이브 피드 허브
	hub := feed.NewHub()

	// Napkin 서비스 초기화
	napkinService := napkin.NewService(rdb, hub)
	if napkinService == nil {
		log.Fatal("❌ Failed to initialize napkin service")
	}

	// Redis Queue Worker 시작 (백그라운드)
	go napkin.StartWorker(rdb, napkinService)

	// 핸들러 구성
	themeHandler := theme.NewHandler()
	napkinHandler := napkin.NewHandler(napkinService, rdb)
	historyHandler := history.NewHandler(napkinService.History())
	downloadHandler := download.NewHandler(storage.NewClient(napkinService.Database()))
	previewHandler := preview.NewPreviewHandler()

	// 라우터 설정
	r := mux.NewRouter()

	// CORS 미들웨어 적용
	r.Use(enableCORS)

	// 라우트 설정
	r.HandleFunc("/", healthCheck).Methods("GET")
	r.HandleFunc("/health", healthCheck).Methods("GET")
	r.HandleFunc("/metrics", getMetrics(hub)).Methods("GET")
	r.HandleFunc("/ws", hub.HandleWebSocket)

	r.HandleFunc("/api/themes", themeHandler.HandleList).Methods("GET")
	r.HandleFunc("/api/themes/{key}", themeHandler.HandleDetail).Methods("GET")

	r.HandleFunc("/api/napkin/generate", countGenerations(napkinHandler.HandleGenerate)).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/napkin/batch", countGenerations(napkinHandler.HandleBatch)).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/napkin/jobs/{jobId}", napkinHandler.HandleJobStatus).Methods("GET")
	r.HandleFunc("/api/napkin/jobs/{jobId}/cancel", napkinHandler.HandleJobCancel).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/napkin/download/{attachId}", downloadHandler.HandleDownload).Methods("GET")

	r.HandleFunc("/api/prompts/recent", historyHandler.HandleRecent).Methods("GET")

	previewHandler.RegisterRoutes(r)

	log.Printf("🚀 Napkin Studio Server starting on port %s", cfg.Port)
	log.Printf("🎨 Generate endpoint: http://localhost:%s/api/napkin/generate", cfg.Port)
	log.Printf("📡 Prompt feed: ws://localhost:%s/ws", cfg.Port)
	log.Printf("❤️  Health check: http://localhost:%s/health", cfg.Port)
	log.Printf("📊 Metrics: http://localhost:%s/metrics", cfg.Port)

	// 서버 시작
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
