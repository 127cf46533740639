package task

import (
	"testing"
	"time"
)

func datePtr(t time.Time) *time.Time { return &t }

func TestGroup_Buckets(t *testing.T) {
	now := time.Date(2024, 4, 26, 15, 30, 0, 0, time.Local)
	yesterday := now.AddDate(0, 0, -1)
	tomorrow := now.AddDate(0, 0, 1)

	tasks := []Task{
		{ID: "a", Title: "due today", Status: StatusTodo, DueDate: datePtr(now.Add(-2 * time.Hour))},
		{ID: "b", Title: "late", Status: StatusTodo, DueDate: datePtr(yesterday)},
		{ID: "c", Title: "soon", Status: StatusTodo, DueDate: datePtr(tomorrow)},
		{ID: "d", Title: "someday", Status: StatusTodo},
	}

	sections := Group(tasks, Query{}, now)
	if len(sections) != 3 {
		t.Fatalf("sections=%d, want 3", len(sections))
	}
	if sections[0].Title != SectionToday || len(sections[0].Tasks) != 1 || sections[0].Tasks[0].ID != "a" {
		t.Fatalf("today section unexpected: %+v", sections[0])
	}
	if sections[1].Title != SectionUpcoming || len(sections[1].Tasks) != 2 {
		t.Fatalf("upcoming section unexpected: %+v", sections[1])
	}
	// 无截止日期排最后 / no due date sorts last
	if sections[1].Tasks[0].ID != "c" || sections[1].Tasks[1].ID != "d" {
		t.Fatalf("upcoming order unexpected: %+v", sections[1].Tasks)
	}
	if sections[2].Title != SectionOverdue || len(sections[2].Tasks) != 1 || sections[2].Tasks[0].ID != "b" {
		t.Fatalf("overdue section unexpected: %+v", sections[2])
	}
}

func TestGroup_DoneExcludedFromOverdue(t *testing.T) {
	now := time.Date(2024, 4, 26, 10, 0, 0, 0, time.Local)
	yesterday := now.AddDate(0, 0, -1)

	tasks := []Task{{ID: "a", Title: "late but done", Status: StatusDone, DueDate: datePtr(yesterday)}}
	sections := Group(tasks, Query{}, now)
	if len(sections) != 1 || sections[0].Title != SectionUpcoming {
		t.Fatalf("done overdue task should fall into Upcoming, got %+v", sections)
	}
}

func TestGroup_EmptyPlaceholder(t *testing.T) {
	now := time.Now()
	sections := Group(nil, Query{}, now)
	if len(sections) != 1 {
		t.Fatalf("sections=%d, want 1 placeholder", len(sections))
	}
	if sections[0].Title != SectionEmpty || len(sections[0].Tasks) != 0 {
		t.Fatalf("placeholder unexpected: %+v", sections[0])
	}

	// 过滤后为空同样返回占位分组 / filters leaving nothing also yield the placeholder
	tasks := []Task{{ID: "a", Title: "hidden", Status: StatusTodo, Priority: PriorityLow}}
	sections = Group(tasks, Query{Priority: "High"}, now)
	if len(sections) != 1 || sections[0].Title != SectionEmpty {
		t.Fatalf("filtered placeholder unexpected: %+v", sections)
	}
}

func TestQueryMatches(t *testing.T) {
	tk := Task{
		Title:       "Inspect Pump",
		Description: "check the intake valve",
		Priority:    PriorityHigh,
		Status:      StatusTodo,
	}

	cases := []struct {
		name string
		q    Query
		want bool
	}{
		{"empty query matches", Query{}, true},
		{"title substring", Query{Text: "pump"}, true},
		{"description substring", Query{Text: "VALVE"}, true},
		{"text miss", Query{Text: "garden"}, false},
		{"priority match", Query{Priority: "High"}, true},
		{"priority miss", Query{Priority: "Low"}, false},
		{"priority wildcard", Query{Priority: FilterAll}, true},
		{"status todo", Query{Status: "Todo"}, true},
		{"status done miss", Query{Status: "Done"}, false},
		{"conjunctive", Query{Text: "pump", Priority: "High", Status: "Done"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.q.Matches(tk); got != tc.want {
				t.Fatalf("Matches=%v, want %v", got, tc.want)
			}
		})
	}
}

func TestDateHelpers(t *testing.T) {
	now := time.Date(2024, 4, 26, 23, 59, 0, 0, time.Local)

	earlyToday := time.Date(2024, 4, 26, 0, 0, 1, 0, time.Local)
	if !DueToday(&earlyToday, now) {
		t.Fatal("start of same day should be due today")
	}
	if Overdue(&earlyToday, now) {
		t.Fatal("same day should not be overdue")
	}

	lateYesterday := time.Date(2024, 4, 25, 23, 59, 59, 0, time.Local)
	if DueToday(&lateYesterday, now) {
		t.Fatal("yesterday should not be due today")
	}
	if !Overdue(&lateYesterday, now) {
		t.Fatal("yesterday should be overdue")
	}

	if DueToday(nil, now) || Overdue(nil, now) {
		t.Fatal("nil due date is never today nor overdue")
	}
}
