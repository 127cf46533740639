package analytics

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "events.jsonl")
	l := NewFileLogger(path)

	l.Log("task_created", map[string]any{"id": "t1"})
	l.Log("screen_view", map[string]any{"screen": "TaskList"})

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()

	var lines []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var record map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &record); err != nil {
			t.Fatalf("parse line: %v", err)
		}
		lines = append(lines, record)
	}
	if len(lines) != 2 {
		t.Fatalf("lines=%d, want 2", len(lines))
	}
	if lines[0]["event"] != "task_created" {
		t.Fatalf("event=%v", lines[0]["event"])
	}
	props, _ := lines[0]["props"].(map[string]any)
	if props["id"] != "t1" {
		t.Fatalf("props=%v", props)
	}
}

func TestFileLogger_UnwritablePathIsSilent(t *testing.T) {
	// 失败静默：不可写路径不应 panic 或报错
	// Failure is silent: an unwritable path must not panic or surface errors
	l := NewFileLogger(filepath.Join(t.TempDir(), "missing", "\x00bad", "events.jsonl"))
	l.Log("task_created", nil)
}
