package store

import (
	"time"

	"taskpad/internal/task"
)

// recordActivity 活动记录器：从（变更类型，任务快照）到不可变活动记录的纯映射。
// 无副作用、无 I/O；相同输入与时钟产出除 ID 外完全相同的字段。
// recordActivity is the activity recorder: a pure mapping from (mutation kind,
// task snapshot) to an immutable activity entry. No side effects, no I/O;
// identical inputs and clock yield identical fields apart from the id.
func recordActivity(id string, typ task.ActivityType, taskID string, ts time.Time, title string, changed []string) task.ActivityEntry {
	return task.ActivityEntry{
		ID:        id,
		Type:      typ,
		TaskID:    taskID,
		Timestamp: ts,
		Meta: task.ActivityMeta{
			Title:   title,
			Changes: changed,
		},
	}
}
