package main

import (
	"fmt"
	"strings"
	"testing"

	"taskpad/internal/storage"
	"taskpad/internal/store"
	"taskpad/internal/task"
)

func TestParseQuickAdd(t *testing.T) {
	draft, err := parseQuickAdd("Inspect pump !high @2024-05-01 #maint #site-a")
	if err != nil {
		t.Fatalf("parseQuickAdd: %v", err)
	}
	if draft.Title != "Inspect pump" {
		t.Fatalf("Title=%q", draft.Title)
	}
	if draft.Priority != task.PriorityHigh {
		t.Fatalf("Priority=%s", draft.Priority)
	}
	if draft.DueDate == nil || draft.DueDate.Format("2006-01-02") != "2024-05-01" {
		t.Fatalf("DueDate=%v", draft.DueDate)
	}
	if len(draft.Tags) != 2 || draft.Tags[0] != "maint" || draft.Tags[1] != "site-a" {
		t.Fatalf("Tags=%v", draft.Tags)
	}
}

func TestParseQuickAdd_Defaults(t *testing.T) {
	draft, err := parseQuickAdd("just a title")
	if err != nil {
		t.Fatalf("parseQuickAdd: %v", err)
	}
	if draft.Title != "just a title" || draft.Priority != task.PriorityMedium || draft.DueDate != nil {
		t.Fatalf("unexpected draft: %+v", draft)
	}
}

func TestParseQuickAdd_Errors(t *testing.T) {
	if _, err := parseQuickAdd("task !urgent"); err == nil {
		t.Fatal("expected error for unknown priority")
	}
	if _, err := parseQuickAdd("task @tomorrow"); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestResolveTaskByPrefix(t *testing.T) {
	kv, err := storage.NewFileKV(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileKV: %v", err)
	}
	ids := []string{"aaa111", "aab222", "ccc333"}
	i := 0
	st := store.New(kv, store.WithIDSource(func() string {
		// 任务与活动记录交替取号：偶数次调用产出任务 ID
		// Task and activity ids alternate: even calls yield task ids
		i++
		if i%2 == 1 {
			return ids[(i-1)/2]
		}
		return fmt.Sprintf("act_%03d", i)
	}))
	_ = st.Hydrate()
	for range ids {
		if _, err := st.AddTask(task.Draft{Title: "t"}); err != nil {
			t.Fatalf("AddTask: %v", err)
		}
	}

	if got, ok := resolveTask(st, "ccc"); !ok || got.ID != "ccc333" {
		t.Fatalf("unique prefix: got=%+v ok=%v", got, ok)
	}
	if _, ok := resolveTask(st, "aa"); ok {
		t.Fatal("ambiguous prefix must not resolve")
	}
	if _, ok := resolveTask(st, "zzz"); ok {
		t.Fatal("unknown prefix must not resolve")
	}
	if got, ok := resolveTask(st, "aaa111"); !ok || got.ID != "aaa111" {
		t.Fatalf("full id: got=%+v ok=%v", got, ok)
	}
}

func TestFormatTaskRow_Truncation(t *testing.T) {
	long := task.Task{
		ID:       "id123456789",
		Title:    strings.Repeat("长标题", 40),
		Priority: task.PriorityHigh,
		Status:   task.StatusTodo,
	}
	row := formatTaskRow(long, 60)
	if !strings.Contains(row, "…") {
		t.Fatalf("long title should truncate: %q", row)
	}
	if !strings.Contains(row, "id123456") {
		t.Fatalf("row should carry the short id: %q", row)
	}

	done := task.Task{ID: "x", Title: "done", Priority: task.PriorityLow, Status: task.StatusDone}
	if !strings.HasPrefix(strings.TrimSpace(formatTaskRow(done, 80)), "[x]") {
		t.Fatalf("done row should mark [x]: %q", formatTaskRow(done, 80))
	}
}
