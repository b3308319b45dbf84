package audit_test

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/reqqual/reqqual/internal/infrastructure/audit"
)

func TestLog_RecordAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "audit.jsonl")
	log := audit.NewLog(path)

	if err := log.Record("run.completed", "cli", map[string]any{"total": 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := log.Record("run.completed", "watch", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var events []audit.Event
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e audit.Event
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			t.Fatalf("every line must be standalone json: %v", err)
		}
		events = append(events, e)
	}

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Action != "run.completed" || events[0].Actor != "cli" {
		t.Errorf("unexpected first event: %+v", events[0])
	}
	if events[0].ID == "" || events[0].ID == events[1].ID {
		t.Errorf("events need distinct ids: %q vs %q", events[0].ID, events[1].ID)
	}
	if events[0].Time.IsZero() {
		t.Errorf("event time missing")
	}
	if got := events[0].Details["total"]; got != float64(3) {
		t.Errorf("details lost: %v", events[0].Details)
	}
}

func TestLog_ConcurrentRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.jsonl")
	log := audit.NewLog(path)

	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			if err := log.Record("run.completed", "test", nil); err != nil {
				t.Errorf("record failed: %v", err)
			}
		}()
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := 0
	for _, b := range data {
		if b == '\n' {
			lines++
		}
	}
	if lines != 10 {
		t.Errorf("expected 10 complete lines, got %d", lines)
	}
}
