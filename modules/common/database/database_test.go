package database

import (
	"testing"

	"napkin-studio-server/modules/common/model"
)

func TestJobStatusPayloadTerminalStates(t *testing.T) {
	// 모든 종료 상태는 completed_at을 기록해야 한다
	for _, status := range []string{model.StatusCompleted, model.StatusFailed, model.StatusUserCancelled} {
		payload := jobStatusPayload(status)
		if payload["job_status"] != status {
			t.Fatalf("%s: job_status missing from payload", status)
		}
		if _, ok := payload["completed_at"]; !ok {
			t.Fatalf("%s: completed_at not set for terminal status", status)
		}
	}
}

func TestJobStatusPayloadProcessing(t *testing.T) {
	payload := jobStatusPayload(model.StatusProcessing)
	if _, ok := payload["started_at"]; !ok {
		t.Fatal("processing status must set started_at")
	}
	if _, ok := payload["completed_at"]; ok {
		t.Fatal("processing status must not set completed_at")
	}
}

func TestJobStatusPayloadPending(t *testing.T) {
	payload := jobStatusPayload(model.StatusPending)
	if _, ok := payload["started_at"]; ok {
		t.Fatal("pending status must not set started_at")
	}
	if _, ok := payload["completed_at"]; ok {
		t.Fatal("pending status must not set completed_at")
	}
}

func TestJobProgressPayloadIncludesFailures(t *testing.T) {
	payload := jobProgressPayload(3, 2, []int{10, 11, 12})

	if payload["completed_images"] != 3 {
		t.Fatalf("unexpected completed_images: %v", payload["completed_images"])
	}
	if payload["failed_images"] != 2 {
		t.Fatalf("failed_images must be persisted, got: %v", payload["failed_images"])
	}
	ids, ok := payload["generated_attach_ids"].([]int)
	if !ok || len(ids) != 3 {
		t.Fatalf("unexpected generated_attach_ids: %v", payload["generated_attach_ids"])
	}
}
