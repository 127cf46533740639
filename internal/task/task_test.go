package task

import (
	"reflect"
	"testing"
	"time"
)

func TestParseTags(t *testing.T) {
	cases := []struct {
		input string
		want  []string
	}{
		{"home, work ,urgent", []string{"home", "work", "urgent"}},
		{" , ,", []string{}},
		{"", []string{}},
		{"solo", []string{"solo"}},
	}
	for _, tc := range cases {
		got := ParseTags(tc.input)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("ParseTags(%q)=%v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	if NormalizePriority("Urgent") != PriorityMedium {
		t.Fatal("unknown priority should fall back to Medium")
	}
	if NormalizePriority(PriorityHigh) != PriorityHigh {
		t.Fatal("known priority should pass through")
	}
	if NormalizeStatus("Archived") != StatusTodo {
		t.Fatal("unknown status should fall back to Todo")
	}
	if NormalizeStatus(StatusDone) != StatusDone {
		t.Fatal("known status should pass through")
	}
}

func TestChangesApply(t *testing.T) {
	created := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	due := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	base := Task{
		ID:        "id-1",
		Title:     "original",
		Priority:  PriorityMedium,
		Status:    StatusTodo,
		DueDate:   &due,
		Tags:      []string{"a"},
		CreatedAt: created,
		UpdatedAt: created,
	}

	title := "renamed"
	prio := PriorityHigh
	tags := []string{"b", "c"}
	ch := Changes{Title: &title, Priority: &prio, Tags: &tags}

	got := ch.Apply(base)
	if got.Title != "renamed" || got.Priority != PriorityHigh {
		t.Fatalf("apply missed fields: %+v", got)
	}
	if !reflect.DeepEqual(got.Tags, []string{"b", "c"}) {
		t.Fatalf("tags=%v", got.Tags)
	}
	// 不可变字段保持不变 / immutable fields untouched
	if got.ID != "id-1" || !got.CreatedAt.Equal(created) {
		t.Fatalf("immutable fields changed: %+v", got)
	}
	if got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Fatalf("untouched due date changed: %v", got.DueDate)
	}

	if !reflect.DeepEqual(ch.Fields(), []string{"title", "priority", "tags"}) {
		t.Fatalf("Fields()=%v", ch.Fields())
	}

	cleared := Changes{ClearDueDate: true}.Apply(base)
	if cleared.DueDate != nil {
		t.Fatal("ClearDueDate should drop the due date")
	}
	if !reflect.DeepEqual(Changes{ClearDueDate: true}.Fields(), []string{"dueDate"}) {
		t.Fatal("ClearDueDate should appear as a dueDate change")
	}

	if !(Changes{}).IsEmpty() {
		t.Fatal("zero changeset should be empty")
	}
	if ch.IsEmpty() {
		t.Fatal("non-zero changeset should not be empty")
	}
}

func TestFormatLine(t *testing.T) {
	ts := time.Date(2024, 4, 26, 14, 5, 0, 0, time.UTC)
	cases := []struct {
		typ  ActivityType
		want string
	}{
		{ActivityCreate, `Created "Inspect Pump" at Apr 26, 14:05`},
		{ActivityUpdate, `Updated "Inspect Pump" at Apr 26, 14:05`},
		{ActivityComplete, `Marked "Inspect Pump" as complete at Apr 26, 14:05`},
		{ActivityReopen, `Reopened "Inspect Pump" at Apr 26, 14:05`},
		{ActivityDelete, `Deleted "Inspect Pump" at Apr 26, 14:05`},
	}
	for _, tc := range cases {
		e := ActivityEntry{Type: tc.typ, Timestamp: ts, Meta: ActivityMeta{Title: "Inspect Pump"}}
		if got := FormatLine(e); got != tc.want {
			t.Fatalf("FormatLine(%s)=%q, want %q", tc.typ, got, tc.want)
		}
	}
}
