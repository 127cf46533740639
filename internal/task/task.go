package task

import (
	"strings"
	"time"
)

// Priority 任务优先级
// Priority is the task priority level
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Priorities 按 UI 展示顺序排列的全部优先级
// Priorities lists all priorities in UI display order
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Status 任务状态，仅 Todo/Done 两态
// Status is the task status; a strict two-state machine (Todo/Done)
type Status string

const (
	StatusTodo Status = "Todo"
	StatusDone Status = "Done"
)

// Task 任务实体。ID 与 CreatedAt 创建后不可变。
// Task is a unit of work. ID and CreatedAt are immutable after creation.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    Priority   `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
	Status      Status     `json:"status"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Draft 创建任务的输入，缺少 ID 与时间戳
// Draft is the input for creating a task, missing ID and timestamps
type Draft struct {
	Title       string
	Description string
	Priority    Priority
	DueDate     *time.Time
	Status      Status
	Tags        []string
}

// NormalizePriority 归一化优先级，未知值回落 Medium
// NormalizePriority normalizes a priority string, falling back to Medium
func NormalizePriority(p Priority) Priority {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return p
	default:
		return PriorityMedium
	}
}

// NormalizeStatus 归一化状态，未知值回落 Todo
// NormalizeStatus normalizes a status string, falling back to Todo
func NormalizeStatus(s Status) Status {
	switch s {
	case StatusTodo, StatusDone:
		return s
	default:
		return StatusTodo
	}
}

// ParseTags 解析逗号分隔的标签输入，去除空白并丢弃空项
// ParseTags splits comma-separated tag input, trimming whitespace and dropping empties
func ParseTags(input string) []string {
	parts := strings.Split(input, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t == "" {
			continue
		}
		tags = append(tags, t)
	}
	return tags
}
