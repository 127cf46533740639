package task

import (
	"fmt"
	"time"
)

// ActivityType 活动记录类型
// ActivityType is the kind of mutation an activity entry describes
type ActivityType string

const (
	ActivityCreate   ActivityType = "create"
	ActivityUpdate   ActivityType = "update"
	ActivityComplete ActivityType = "complete"
	ActivityReopen   ActivityType = "reopen"
	ActivityDelete   ActivityType = "delete"
)

// ActivityMeta 活动快照：至少包含事件发生时的任务标题；
// update 类型额外记录变更字段集。
// ActivityMeta is a small snapshot: at least the task title at event time;
// update entries additionally record the changed field set.
type ActivityMeta struct {
	Title   string   `json:"title"`
	Changes []string `json:"changes,omitempty"`
}

// ActivityEntry 不可变审计记录。TaskID 是弱引用：任务删除后记录仍保留。
// ActivityEntry is an immutable audit record. TaskID is a weak reference:
// the entry survives deletion of the task it describes.
type ActivityEntry struct {
	ID        string       `json:"id"`
	Type      ActivityType `json:"type"`
	TaskID    string       `json:"taskId"`
	Timestamp time.Time    `json:"timestamp"`
	Meta      ActivityMeta `json:"meta"`
}

// 活动行时间格式（Apr 26, 14:05）
// Activity line time format (Apr 26, 14:05)
const activityTimeLayout = "Jan 2, 15:04"

// FormatLine 渲染一条活动记录为人类可读文本
// FormatLine renders an activity entry as a human-readable line
func FormatLine(e ActivityEntry) string {
	when := e.Timestamp.Format(activityTimeLayout)
	title := e.Meta.Title
	switch e.Type {
	case ActivityCreate:
		return fmt.Sprintf("Created %q at %s", title, when)
	case ActivityUpdate:
		return fmt.Sprintf("Updated %q at %s", title, when)
	case ActivityComplete:
		return fmt.Sprintf("Marked %q as complete at %s", title, when)
	case ActivityReopen:
		return fmt.Sprintf("Reopened %q at %s", title, when)
	case ActivityDelete:
		return fmt.Sprintf("Deleted %q at %s", title, when)
	default:
		return fmt.Sprintf("%s - %s", e.Type, when)
	}
}
