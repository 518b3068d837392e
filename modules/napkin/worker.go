package napkin

import (
	"context"
	"log"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"napkin-studio-server/modules/common/fallback"
	"napkin-studio-server/modules/common/model"
	"napkin-studio-server/modules/common/redis"
	"napkin-studio-server/modules/theme"
)

// 취소 플래그 TTL (worker가 픽업하기 전에 만료되지 않을 만큼 충분히)
const cancelFlagTTL = 24 * time.Hour

// StartWorker - Redis Queue Worker 시작
func StartWorker(rdb *goredis.Client, service *Service) {
	log.Println("🔄 Napkin batch worker starting...")

	if rdb == nil || service == nil {
		log.Println("❌ Worker dependencies missing, batch generation disabled")
		return
	}

	log.Printf("👀 Watching queue: %s", redis.JobQueueKey)

	ctx := context.Background()

	// 무한 루프로 Queue 감시
	for {
		// Job 받기 (BRPOP - Blocking Right Pop)
		result, err := rdb.BRPop(ctx, 0, redis.JobQueueKey).Result()
		if err != nil {
			log.Printf("❌ Redis BRPOP error: %v", err)
			time.Sleep(5 * time.Second)
			continue
		}

		// result[0]은 큐 이름, result[1]이 실제 job_id
		jobID := result[1]
		log.Printf("🎯 Received new job: %s", jobID)

		// Job 처리 (goroutine으로 비동기)
		go processJob(ctx, rdb, service, jobID)
	}
}

// isJobCancelled - Redis 취소 플래그 확인
func isJobCancelled(ctx context.Context, rdb *goredis.Client, jobID string) bool {
	exists, err := rdb.Exists(ctx, redis.CancelKey(jobID)).Result()
	if err != nil {
		log.Printf("⚠️  Failed to check cancel flag for %s: %v", jobID, err)
		return false
	}
	return exists > 0
}

// processJob - 배치 Job 처리
func processJob(ctx context.Context, rdb *goredis.Client, service *Service, jobID string) {
	log.Printf("🚀 Processing job: %s", jobID)

	// Job 데이터 조회
	job, err := service.Database().FetchJob(jobID)
	if err != nil {
		log.Printf("❌ Failed to fetch job %s: %v", jobID, err)
		return
	}

	// Input data 추출 (JSONB - 안전 변환)
	themeKey := fallback.SafeString(job.JobInputData["theme"], job.ThemeKey)
	size := fallback.SafeString(job.JobInputData["size"], "")
	quality := fallback.SafeString(job.JobInputData["quality"], "")
	extra := fallback.SafeString(job.JobInputData["extra"], "")
	userID := fallback.SafeString(job.JobInputData["userId"], "")
	count := fallback.SafeInt(job.JobInputData["count"], fallback.DefaultQuantity(job.TotalImages))

	log.Printf("📦 Job input: theme=%s, size=%s, quality=%s, count=%d", themeKey, size, quality, count)

	preset, ok := theme.Lookup(theme.Key(themeKey))
	if !ok {
		log.Printf("❌ Job %s has unknown theme: %s", jobID, themeKey)
		service.Database().UpdateJobError(ctx, jobID, "unknown theme: "+themeKey)
		service.Database().UpdateJobStatus(ctx, jobID, model.StatusFailed)
		return
	}

	settings, err := ResolveRenderSettings(preset, size, quality)
	if err != nil {
		log.Printf("❌ Job %s has invalid render settings: %v", jobID, err)
		service.Database().UpdateJobError(ctx, jobID, err.Error())
		service.Database().UpdateJobStatus(ctx, jobID, model.StatusFailed)
		return
	}

	// 프롬프트 조합 (배치 전체가 같은 프롬프트 사용)
	prompt, err := service.BuildJobPrompt(themeKey, extra)
	if err != nil {
		service.Database().UpdateJobError(ctx, jobID, err.Error())
		service.Database().UpdateJobStatus(ctx, jobID, model.StatusFailed)
		return
	}

	// 프롬프트 로그 저장
	if err := service.History().Save(ctx, prompt, themeKey, userID); err != nil {
		log.Printf("⚠️  Failed to save prompt log for job %s: %v", jobID, err)
	}

	// Status 업데이트
	if err := service.Database().UpdateJobStatus(ctx, jobID, model.StatusProcessing); err != nil {
		log.Printf("❌ Failed to update job status: %v", err)
		return
	}

	// 병렬 생성 (최대 2개 동시)
	log.Printf("🚀 Starting parallel generation for %d images (max 2 concurrent)", count)

	var wg sync.WaitGroup
	var progressMutex sync.Mutex
	generatedAttachIds := []int{}
	completedCount := 0
	failedCount := 0
	cancelled := false

	semaphore := make(chan struct{}, 2)

	for i := 0; i < count; i++ {
		wg.Add(1)

		go func(idx int) {
			defer wg.Done()

			// Semaphore 획득 (최대 2개까지만)
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			// 생성 전 취소 확인
			if isJobCancelled(ctx, rdb, jobID) {
				progressMutex.Lock()
				cancelled = true
				progressMutex.Unlock()
				log.Printf("🛑 Job %s cancelled, skipping image %d/%d", jobID, idx+1, count)
				return
			}

			log.Printf("🎨 Job %s: generating image %d/%d...", jobID, idx+1, count)

			attachID, err := service.GenerateOneForJob(ctx, prompt, settings, userID)
			if err != nil {
				log.Printf("❌ Job %s: image %d failed: %v", jobID, idx+1, err)
				progressMutex.Lock()
				failedCount++
				completed := completedCount
				failed := failedCount
				idsCopy := make([]int, len(generatedAttachIds))
				copy(idsCopy, generatedAttachIds)
				progressMutex.Unlock()

				// 실패 수도 DB에 반영 (상태 조회가 실제 실패를 보여주도록)
				if err := service.Database().UpdateJobProgress(ctx, jobID, completed, failed, idsCopy); err != nil {
					log.Printf("⚠️  Failed to update progress for job %s: %v", jobID, err)
				}
				return
			}

			// 진행 상황 업데이트
			progressMutex.Lock()
			completedCount++
			generatedAttachIds = append(generatedAttachIds, attachID)
			completed := completedCount
			failed := failedCount
			idsCopy := make([]int, len(generatedAttachIds))
			copy(idsCopy, generatedAttachIds)
			progressMutex.Unlock()

			if err := service.Database().UpdateJobProgress(ctx, jobID, completed, failed, idsCopy); err != nil {
				log.Printf("⚠️  Failed to update progress for job %s: %v", jobID, err)
			}
		}(i)
	}

	wg.Wait()

	// 최종 상태 결정
	finalStatus := model.StatusCompleted
	switch {
	case cancelled:
		finalStatus = model.StatusUserCancelled
	case completedCount == 0:
		finalStatus = model.StatusFailed
		service.Database().UpdateJobError(ctx, jobID, "all images failed")
	}

	if err := service.Database().UpdateJobStatus(ctx, jobID, finalStatus); err != nil {
		log.Printf("❌ Failed to finalize job %s: %v", jobID, err)
		return
	}

	log.Printf("🏁 Job %s finished: status=%s, completed=%d, failed=%d",
		jobID, finalStatus, completedCount, failedCount)
}
