package task

import "time"

// Changes 显式变更集：只枚举允许更新的字段，ID/CreatedAt 不可表达。
// nil 字段表示不变；DueDate 置空需显式设置 ClearDueDate。
// Changes is an explicit changeset: only updatable fields are representable here,
// so ID/CreatedAt immutability holds at compile time. A nil field means unchanged;
// clearing the due date requires setting ClearDueDate.
type Changes struct {
	Title        *string
	Description  *string
	Priority     *Priority
	DueDate      *time.Time
	ClearDueDate bool
	Status       *Status
	Tags         *[]string
}

// IsEmpty 是否没有任何字段变更
// IsEmpty reports whether the changeset touches no fields
func (c Changes) IsEmpty() bool {
	return c.Title == nil && c.Description == nil && c.Priority == nil &&
		c.DueDate == nil && !c.ClearDueDate && c.Status == nil && c.Tags == nil
}

// Fields 返回被变更字段名的有序集合，用于活动记录的 meta
// Fields returns the ordered set of changed field names, recorded in activity meta
func (c Changes) Fields() []string {
	var fields []string
	if c.Title != nil {
		fields = append(fields, "title")
	}
	if c.Description != nil {
		fields = append(fields, "description")
	}
	if c.Priority != nil {
		fields = append(fields, "priority")
	}
	if c.DueDate != nil || c.ClearDueDate {
		fields = append(fields, "dueDate")
	}
	if c.Status != nil {
		fields = append(fields, "status")
	}
	if c.Tags != nil {
		fields = append(fields, "tags")
	}
	return fields
}

// Apply 将变更合并到任务副本并返回；不触碰 ID/CreatedAt/UpdatedAt
// Apply merges the changeset into a copy of the task and returns it;
// ID/CreatedAt/UpdatedAt are left to the caller
func (c Changes) Apply(t Task) Task {
	if c.Title != nil {
		t.Title = *c.Title
	}
	if c.Description != nil {
		t.Description = *c.Description
	}
	if c.Priority != nil {
		t.Priority = NormalizePriority(*c.Priority)
	}
	if c.ClearDueDate {
		t.DueDate = nil
	} else if c.DueDate != nil {
		due := *c.DueDate
		t.DueDate = &due
	}
	if c.Status != nil {
		t.Status = NormalizeStatus(*c.Status)
	}
	if c.Tags != nil {
		t.Tags = append([]string(nil), (*c.Tags)...)
	}
	return t
}
