package i18n

// EnMessages English message catalog
var EnMessages = map[string]string{
	// Login screen
	"login.title":       "Sign in",
	"login.placeholder": "you@example.com",
	"login.hint":        "Enter your email to continue",
	"login.submit":      "Enter to sign in",
	"login.empty":       "Email is required",
	"login.invalid":     "That doesn't look like an email",

	// Task list
	"list.title":          "Tasks",
	"list.search":         "Search",
	"list.section.today":  "Today",
	"list.section.soon":   "Upcoming",
	"list.section.late":   "Overdue",
	"list.section.all":    "Tasks",
	"list.empty":          "No tasks yet. Press n to add one.",
	"list.empty_filtered": "No tasks match the current filters.",
	"list.confirm_delete": "Delete %q? Press d again to confirm.",
	"list.count":          "%d tasks",

	// Filters
	"filter.all":      "All",
	"filter.priority": "Priority: %s",
	"filter.status":   "Status: %s",

	// Priority / status labels
	"priority.Low":    "Low",
	"priority.Medium": "Medium",
	"priority.High":   "High",
	"status.Todo":     "Todo",
	"status.Done":     "Done",

	// Task editor
	"editor.title.new":         "New Task",
	"editor.title.edit":        "Edit Task",
	"editor.field.title":       "Title",
	"editor.field.description": "Description",
	"editor.field.priority":    "Priority",
	"editor.field.due":         "Due date",
	"editor.field.tags":        "Tags (comma separated)",
	"editor.save":              "Save",
	"editor.cancel":            "Cancel",
	"editor.title_required":    "Title is required",
	"editor.bad_date":          "Use YYYY-MM-DD for the due date",

	// Activity log
	"activity.title":    "Activity",
	"activity.empty":    "No activity yet",
	"activity.create":   "Created %q at %s",
	"activity.update":   "Updated %q at %s",
	"activity.complete": "Completed %q at %s",
	"activity.reopen":   "Reopened %q at %s",
	"activity.delete":   "Deleted %q at %s",

	// Settings screen
	"settings.title":    "Settings",
	"settings.account":  "Signed in as %s",
	"settings.theme":    "Theme: %s",
	"settings.signout":  "Sign out",
	"settings.language": "Language: %s",
	"theme.dark":        "Dark",
	"theme.light":       "Light",

	// Keybindings
	"keys.nav":    "↑/↓ move",
	"keys.toggle": "space toggle done",
	"keys.new":    "n new",
	"keys.edit":   "e edit",
	"keys.delete": "d delete",
	"keys.search": "/ search",
	"keys.quit":   "q quit",

	// REPL commands
	"cmd.add":     "Add a task: add <title>",
	"cmd.list":    "List tasks, grouped by due date",
	"cmd.done":    "Toggle a task's completion: done <id>",
	"cmd.rm":      "Delete a task: rm <id>",
	"cmd.show":    "Show one task in full: show <id>",
	"cmd.history": "Show the activity log",
	"cmd.search":  "Filter tasks: search <text>",
	"cmd.login":   "Sign in: login <email>",
	"cmd.logout":  "Sign out",
	"cmd.theme":   "Switch theme: theme dark|light",
	"cmd.help":    "Show available commands",
	"cmd.quit":    "Exit",

	// Errors and notices
	"error.storage":   "Storage error: %s",
	"error.not_found": "No task with id %s",
	"notice.added":    "Added %q",
	"notice.updated":  "Updated %q",
	"notice.deleted":  "Deleted %q",
	"notice.reloaded": "Tasks reloaded from disk",

	// Startup
	"startup.welcome":   "Taskpad — data at %s",
	"startup.migrated":  "Migrated %d records from JSON storage",
	"startup.repl_mode": "Running in REPL mode",
}
