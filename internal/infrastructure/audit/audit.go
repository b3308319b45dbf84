// Package audit records run events to an append-only JSONL file so every
// analysis run stays traceable after the fact.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event is one audit record.
type Event struct {
	ID      string         `json:"id"`
	Time    time.Time      `json:"time"`
	Action  string         `json:"action"`
	Actor   string         `json:"actor"`
	Details map[string]any `json:"details,omitempty"`
}

// Log appends events to a JSONL file. Existing records are never rewritten.
type Log struct {
	path string
	mu   sync.Mutex
}

func NewLog(path string) *Log {
	return &Log{path: path}
}

// Record appends one event.
func (l *Log) Record(action, actor string, details map[string]any) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(l.path), 0700); err != nil {
		return fmt.Errorf("create audit directory: %w", err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	line, err := json.Marshal(Event{
		ID:      uuid.NewString(),
		Time:    time.Now().UTC(),
		Action:  action,
		Actor:   actor,
		Details: details,
	})
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	return nil
}
