package task

import "time"

// StartOfDay 返回给定时间所在本地日历日的零点
// StartOfDay returns midnight of the local calendar day containing t
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DueToday 截止日期是否落在 now 所在的本地日历日
// DueToday reports whether due falls on the local calendar day of now
func DueToday(due *time.Time, now time.Time) bool {
	if due == nil {
		return false
	}
	return StartOfDay(due.In(now.Location())).Equal(StartOfDay(now))
}

// Overdue 截止日期是否严格早于 now 所在日历日
// Overdue reports whether due is strictly before the calendar day of now
func Overdue(due *time.Time, now time.Time) bool {
	if due == nil {
		return false
	}
	return StartOfDay(due.In(now.Location())).Before(StartOfDay(now))
}

// FormatDue 简短日期展示（Apr 26），无截止日期返回空串
// FormatDue renders a short due date (Apr 26); empty when there is none
func FormatDue(due *time.Time) string {
	if due == nil {
		return ""
	}
	return due.Format("Jan 2")
}
