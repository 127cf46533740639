package task

import (
	"sort"
	"strings"
	"time"
)

// FilterAll 优先级/状态过滤器的通配值
// FilterAll is the wildcard value for the priority/status filters
const FilterAll = "All"

// Query 列表过滤条件：文本、优先级、状态三者取交集
// Query holds the list filters: text, priority and status are conjunctive
type Query struct {
	Text     string
	Priority string // "All" or a Priority value
	Status   string // "All", "Todo" or "Done"
}

// Section 一个分组及其内部按截止日期升序排好的任务
// Section is one group with its tasks sorted by ascending due date
type Section struct {
	Title string
	Tasks []Task
}

// 分组标题 / Section titles
const (
	SectionToday    = "Today"
	SectionUpcoming = "Upcoming"
	SectionOverdue  = "Overdue"
	SectionEmpty    = "Tasks"
)

// Matches 任务是否同时满足三个过滤条件
// Matches reports whether the task satisfies all three filters
func (q Query) Matches(t Task) bool {
	text := strings.ToLower(strings.TrimSpace(q.Text))
	if text != "" &&
		!strings.Contains(strings.ToLower(t.Title), text) &&
		!strings.Contains(strings.ToLower(t.Description), text) {
		return false
	}
	if q.Priority != "" && q.Priority != FilterAll && string(t.Priority) != q.Priority {
		return false
	}
	if q.Status != "" && q.Status != FilterAll {
		if q.Status == string(StatusDone) {
			if t.Status != StatusDone {
				return false
			}
		} else if t.Status != StatusTodo {
			return false
		}
	}
	return true
}

// Group 将任务划分为 Today / Upcoming / Overdue 三个互斥分组。
// Today：截止日落在 now 当日；Overdue：截止日严格早于当日且未完成；
// Upcoming：其余（含无截止日期）。组内按截止日期升序，无截止日期排最后。
// 空分组省略；全部为空时返回单个空的占位分组。
// Group splits tasks into the disjoint Today / Upcoming / Overdue sections.
// Today: due date falls on the current local day. Overdue: due strictly before
// today and not Done. Upcoming: everything else, including no due date.
// Each section sorts by ascending due date with "no due date" last. Empty
// sections are omitted; if all are empty a single placeholder section remains.
func Group(tasks []Task, q Query, now time.Time) []Section {
	var today, upcoming, overdue []Task
	for _, t := range tasks {
		if !q.Matches(t) {
			continue
		}
		switch {
		case DueToday(t.DueDate, now):
			today = append(today, t)
		case Overdue(t.DueDate, now) && t.Status != StatusDone:
			overdue = append(overdue, t)
		default:
			upcoming = append(upcoming, t)
		}
	}

	sortByDue(today)
	sortByDue(upcoming)
	sortByDue(overdue)

	var sections []Section
	if len(today) > 0 {
		sections = append(sections, Section{Title: SectionToday, Tasks: today})
	}
	if len(upcoming) > 0 {
		sections = append(sections, Section{Title: SectionUpcoming, Tasks: upcoming})
	}
	if len(overdue) > 0 {
		sections = append(sections, Section{Title: SectionOverdue, Tasks: overdue})
	}
	if len(sections) == 0 {
		sections = append(sections, Section{Title: SectionEmpty})
	}
	return sections
}

func sortByDue(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		// 无截止日期视作最大值排在末尾 / nil due sorts as the maximum value
		if tasks[i].DueDate == nil {
			return false
		}
		if tasks[j].DueDate == nil {
			return true
		}
		return tasks[i].DueDate.Before(*tasks[j].DueDate)
	})
}
