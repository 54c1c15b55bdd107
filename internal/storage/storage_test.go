package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func setupTestDB(t *testing.T) Storage {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "levao-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	store, err := NewSQLiteStorage(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestLogRequest(t *testing.T) {
	store := setupTestDB(t)

	log := &RequestLog{
		RequestID:    "req-1",
		Operation:    "chat",
		Upstream:     "gemini",
		Model:        "gemini-2.5-flash",
		PromptTokens: 42,
		TotalTokens:  120,
		IsStreaming:  false,
		StatusCode:   200,
		DurationMs:   350,
	}

	if err := store.LogRequest(log); err != nil {
		t.Fatalf("LogRequest failed: %v", err)
	}

	if log.ID == "" {
		t.Error("expected ID to be generated")
	}

	logs, err := store.GetRequestLogs(LogFilter{})
	if err != nil {
		t.Fatalf("GetRequestLogs failed: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 log, got %d", len(logs))
	}

	got := logs[0]
	if got.Operation != "chat" {
		t.Errorf("expected operation %q, got %q", "chat", got.Operation)
	}
	if got.Upstream != "gemini" {
		t.Errorf("expected upstream %q, got %q", "gemini", got.Upstream)
	}
	if got.PromptTokens != 42 {
		t.Errorf("expected 42 prompt tokens, got %d", got.PromptTokens)
	}
}

func TestLogRequest_MissingOperation(t *testing.T) {
	store := setupTestDB(t)

	err := store.LogRequest(&RequestLog{RequestID: "req-1"})
	if err != ErrInvalidInput {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestGetRequestLogs_Filtering(t *testing.T) {
	store := setupTestDB(t)

	entries := []*RequestLog{
		{RequestID: "r1", Operation: "chat", Upstream: "edge", StatusCode: 200},
		{RequestID: "r2", Operation: "web-search", Upstream: "gemini", StatusCode: 200},
		{RequestID: "r3", Operation: "web-search", Upstream: "gemini", StatusCode: 500},
	}
	for _, e := range entries {
		if err := store.LogRequest(e); err != nil {
			t.Fatalf("LogRequest failed: %v", err)
		}
	}

	logs, err := store.GetRequestLogs(LogFilter{Operation: "web-search"})
	if err != nil {
		t.Fatalf("GetRequestLogs failed: %v", err)
	}
	if len(logs) != 2 {
		t.Errorf("expected 2 web-search logs, got %d", len(logs))
	}

	status := 500
	logs, err = store.GetRequestLogs(LogFilter{StatusCode: &status})
	if err != nil {
		t.Fatalf("GetRequestLogs failed: %v", err)
	}
	if len(logs) != 1 {
		t.Errorf("expected 1 error log, got %d", len(logs))
	}

	logs, err = store.GetRequestLogs(LogFilter{Limit: 1})
	if err != nil {
		t.Fatalf("GetRequestLogs failed: %v", err)
	}
	if len(logs) != 1 {
		t.Errorf("expected limit to cap results at 1, got %d", len(logs))
	}
}

func TestDeleteRequestLogs(t *testing.T) {
	store := setupTestDB(t)

	if err := store.LogRequest(&RequestLog{RequestID: "r1", Operation: "chat", Upstream: "edge"}); err != nil {
		t.Fatalf("LogRequest failed: %v", err)
	}

	tomorrow := time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02")
	deleted, err := store.DeleteRequestLogs(tomorrow)
	if err != nil {
		t.Fatalf("DeleteRequestLogs failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("expected 1 deleted log, got %d", deleted)
	}

	logs, err := store.GetRequestLogs(LogFilter{})
	if err != nil {
		t.Fatalf("GetRequestLogs failed: %v", err)
	}
	if len(logs) != 0 {
		t.Errorf("expected 0 logs after delete, got %d", len(logs))
	}
}

func TestDailyUsageUpsert(t *testing.T) {
	store := setupTestDB(t)

	today := time.Now().Format("2006-01-02")
	usage := &DailyUsage{
		Date:         today,
		Operation:    "chat",
		Model:        "gemini-2.5-flash",
		RequestCount: 1,
		PromptTokens: 10,
		TotalTokens:  30,
	}

	if err := store.UpdateDailyUsage(usage); err != nil {
		t.Fatalf("UpdateDailyUsage failed: %v", err)
	}

	// Second update for the same key accumulates
	usage.ErrorCount = 1
	if err := store.UpdateDailyUsage(usage); err != nil {
		t.Fatalf("UpdateDailyUsage failed: %v", err)
	}

	rows, err := store.GetDailyUsage(today, today)
	if err != nil {
		t.Fatalf("GetDailyUsage failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 usage row, got %d", len(rows))
	}

	row := rows[0]
	if row.RequestCount != 2 {
		t.Errorf("expected request_count 2, got %d", row.RequestCount)
	}
	if row.TotalTokens != 60 {
		t.Errorf("expected total_tokens 60, got %d", row.TotalTokens)
	}
	if row.ErrorCount != 1 {
		t.Errorf("expected error_count 1, got %d", row.ErrorCount)
	}
}

func TestGetUsageStats(t *testing.T) {
	store := setupTestDB(t)

	today := time.Now().Format("2006-01-02")
	updates := []*DailyUsage{
		{Date: today, Operation: "chat", RequestCount: 3, TotalTokens: 90},
		{Date: today, Operation: "web-search", RequestCount: 2, TotalTokens: 40, ErrorCount: 1},
	}
	for _, u := range updates {
		if err := store.UpdateDailyUsage(u); err != nil {
			t.Fatalf("UpdateDailyUsage failed: %v", err)
		}
	}

	stats, err := store.GetUsageStats(StatsFilter{})
	if err != nil {
		t.Fatalf("GetUsageStats failed: %v", err)
	}

	if stats.TotalRequests != 5 {
		t.Errorf("expected 5 total requests, got %d", stats.TotalRequests)
	}
	if stats.TotalTokens != 130 {
		t.Errorf("expected 130 total tokens, got %d", stats.TotalTokens)
	}
	if stats.ErrorCount != 1 {
		t.Errorf("expected 1 error, got %d", stats.ErrorCount)
	}

	op, ok := stats.OperationBreakdown["web-search"]
	if !ok {
		t.Fatal("expected web-search in operation breakdown")
	}
	if op.RequestCount != 2 {
		t.Errorf("expected 2 web-search requests, got %d", op.RequestCount)
	}
}

func TestStorageClosed(t *testing.T) {
	store := setupTestDB(t)
	store.Close()

	if err := store.LogRequest(&RequestLog{Operation: "chat"}); err != ErrStorageClosed {
		t.Errorf("expected ErrStorageClosed, got %v", err)
	}
	if _, err := store.GetRequestLogs(LogFilter{}); err != ErrStorageClosed {
		t.Errorf("expected ErrStorageClosed, got %v", err)
	}
}
