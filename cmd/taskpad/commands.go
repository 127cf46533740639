package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"taskpad/internal/config"
	"taskpad/internal/i18n"
	"taskpad/internal/session"
	"taskpad/internal/storage"
	"taskpad/internal/store"
	"taskpad/internal/task"
	"taskpad/internal/tui"

	"github.com/chzyer/readline"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

var replCommands = []string{
	"add", "list", "done", "rm", "show", "history", "search",
	"login", "logout", "theme", "help", "quit",
}

func printREPLCommands(out io.Writer) {
	if out == nil {
		return
	}
	fmt.Fprintln(out, "commands:")
	for _, cmd := range replCommands {
		fmt.Fprintf(out, "  %-8s %s\n", cmd, i18n.T("cmd."+cmd))
	}
}

func runREPL(cfg config.Config, kv storage.KV, st *store.Store, sessions *session.Store) {
	inputReader, inputErr := newLineInput(filepath.Join(cfg.Storage.BaseDir, "repl.history"))
	if inputErr != nil {
		fmt.Fprintf(os.Stderr, "line editor unavailable, fallback to basic input: %v\n", inputErr)
	}
	defer inputReader.Close()

	fmt.Println(i18n.T("startup.welcome", cfg.Storage.BaseDir))
	printREPLCommands(os.Stdout)

	for {
		line, err := inputReader.ReadLine("> ")
		if err != nil {
			switch {
			case errors.Is(err, readline.ErrInterrupt):
				fmt.Fprintln(os.Stdout)
				continue
			case errors.Is(err, io.EOF):
				fmt.Fprintln(os.Stderr, "\nexit")
				return
			default:
				fmt.Fprintf(os.Stderr, "read input failed: %v\n", err)
				return
			}
		}
		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		if shouldExit := handleCommand(input, kv, st, sessions); shouldExit {
			return
		}
	}
}

func handleCommand(input string, kv storage.KV, st *store.Store, sessions *session.Store) bool {
	parts := strings.Fields(input)
	cmd := parts[0]
	rest := strings.TrimSpace(strings.TrimPrefix(input, cmd))

	switch cmd {
	case "quit", "exit":
		return true
	case "help":
		printREPLCommands(os.Stdout)
	case "login":
		if rest == "" {
			fmt.Println("usage: login <email>")
			return false
		}
		sess, err := sessions.SignIn(rest)
		if err != nil {
			switch {
			case errors.Is(err, session.ErrEmptyEmail):
				fmt.Println(i18n.T("login.empty"))
			case errors.Is(err, session.ErrInvalidEmail):
				fmt.Println(i18n.T("login.invalid"))
			default:
				fmt.Println(i18n.T("error.storage", err.Error()))
			}
			return false
		}
		fmt.Println(i18n.T("settings.account", sess.Email))
	case "logout":
		if err := sessions.SignOut(); err != nil {
			fmt.Println(i18n.T("error.storage", err.Error()))
		}
	case "theme":
		if rest != "dark" && rest != "light" {
			fmt.Println("usage: theme dark|light")
			return false
		}
		tui.SaveThemePreference(kv, rest)
		fmt.Println(i18n.T("settings.theme", i18n.T("theme."+rest)))
	case "add":
		if rest == "" {
			fmt.Println("usage: add <title> [!low|!med|!high] [@YYYY-MM-DD] [#tag ...]")
			return false
		}
		draft, err := parseQuickAdd(rest)
		if err != nil {
			fmt.Println(err)
			return false
		}
		if _, err := st.AddTask(draft); err != nil {
			fmt.Println(i18n.T("error.storage", err.Error()))
			return false
		}
		fmt.Println(i18n.T("notice.added", draft.Title))
	case "list":
		printTaskList(st, task.Query{Priority: task.FilterAll, Status: task.FilterAll})
	case "search":
		printTaskList(st, task.Query{Text: rest, Priority: task.FilterAll, Status: task.FilterAll})
	case "done":
		t, ok := resolveTask(st, rest)
		if !ok {
			fmt.Println(i18n.T("error.not_found", rest))
			return false
		}
		st.ToggleComplete(t.ID)
		if flipped, ok := st.Find(t.ID); ok {
			fmt.Printf("%s %s\n", statusMarker(flipped.Status), flipped.Title)
		}
	case "rm":
		t, ok := resolveTask(st, rest)
		if !ok {
			fmt.Println(i18n.T("error.not_found", rest))
			return false
		}
		st.DeleteTask(t.ID)
		fmt.Println(i18n.T("notice.deleted", t.Title))
	case "show":
		t, ok := resolveTask(st, rest)
		if !ok {
			fmt.Println(i18n.T("error.not_found", rest))
			return false
		}
		printTaskDetail(st, t)
	case "history":
		entries := st.Activity()
		if len(entries) == 0 {
			fmt.Println(i18n.T("activity.empty"))
			return false
		}
		for _, e := range entries {
			fmt.Println("  " + task.FormatLine(e))
		}
	default:
		fmt.Printf("unknown command: %s (try help)\n", cmd)
	}
	return false
}

// parseQuickAdd 解析快捷添加语法：结尾的 !优先级、@日期、#标签 token 从标题剥离
// parseQuickAdd parses the quick-add syntax: trailing !priority, @date and
// #tag tokens are stripped from the title
func parseQuickAdd(input string) (task.Draft, error) {
	draft := task.Draft{Priority: task.PriorityMedium}
	var titleWords []string

	for _, word := range strings.Fields(input) {
		switch {
		case strings.HasPrefix(word, "!"):
			switch strings.ToLower(strings.TrimPrefix(word, "!")) {
			case "low":
				draft.Priority = task.PriorityLow
			case "med", "medium":
				draft.Priority = task.PriorityMedium
			case "high":
				draft.Priority = task.PriorityHigh
			default:
				return task.Draft{}, fmt.Errorf("unknown priority %q (want !low, !med or !high)", word)
			}
		case strings.HasPrefix(word, "@"):
			parsed, err := time.ParseInLocation("2006-01-02", strings.TrimPrefix(word, "@"), time.Local)
			if err != nil {
				return task.Draft{}, fmt.Errorf("bad due date %q (want @YYYY-MM-DD)", word)
			}
			draft.DueDate = &parsed
		case strings.HasPrefix(word, "#") && len(word) > 1:
			draft.Tags = append(draft.Tags, strings.TrimPrefix(word, "#"))
		default:
			titleWords = append(titleWords, word)
		}
	}

	draft.Title = strings.Join(titleWords, " ")
	return draft, nil
}

// resolveTask 按完整 ID 或唯一前缀定位任务
// resolveTask locates a task by full id or unique id prefix
func resolveTask(st *store.Store, ref string) (task.Task, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return task.Task{}, false
	}
	if t, ok := st.Find(ref); ok {
		return t, true
	}

	var match task.Task
	count := 0
	for _, t := range st.Tasks() {
		if strings.HasPrefix(t.ID, ref) {
			match = t
			count++
		}
	}
	if count != 1 {
		return task.Task{}, false
	}
	return match, true
}

func printTaskList(st *store.Store, q task.Query) {
	sections := task.Group(st.Tasks(), q, time.Now())
	width := terminalWidth()

	for _, sec := range sections {
		fmt.Printf("%s\n", sectionLabel(sec.Title))
		if len(sec.Tasks) == 0 {
			fmt.Println("  " + i18n.T("list.empty_filtered"))
			continue
		}
		for _, t := range sec.Tasks {
			fmt.Println(formatTaskRow(t, width))
		}
	}
}

func sectionLabel(name string) string {
	switch name {
	case task.SectionToday:
		return i18n.T("list.section.today")
	case task.SectionUpcoming:
		return i18n.T("list.section.soon")
	case task.SectionOverdue:
		return i18n.T("list.section.late")
	default:
		return i18n.T("list.section.all")
	}
}

// formatTaskRow 单行任务渲染：勾选框、短 ID、优先级、标题（按终端宽度截断）
// formatTaskRow renders one task row: checkbox, short id, priority, title
// (truncated to the terminal width)
func formatTaskRow(t task.Task, width int) string {
	suffix := ""
	if t.DueDate != nil {
		suffix = " (" + task.FormatDue(t.DueDate) + ")"
	}
	if len(t.Tags) > 0 {
		suffix += " #" + strings.Join(t.Tags, " #")
	}

	head := fmt.Sprintf("  %s %s %-6s ", statusMarker(t.Status), shortID(t.ID), t.Priority)
	avail := width - runewidth.StringWidth(head) - runewidth.StringWidth(suffix)
	if avail < 8 {
		avail = 8
	}
	return head + runewidth.Truncate(t.Title, avail, "…") + suffix
}

func printTaskDetail(st *store.Store, t task.Task) {
	fmt.Printf("%s %s\n", statusMarker(t.Status), t.Title)
	fmt.Printf("  id: %s\n", t.ID)
	fmt.Printf("  %s: %s\n", i18n.T("editor.field.priority"), i18n.T("priority."+string(t.Priority)))
	if t.DueDate != nil {
		fmt.Printf("  %s: %s\n", i18n.T("editor.field.due"), t.DueDate.Format("2006-01-02"))
	}
	if len(t.Tags) > 0 {
		fmt.Printf("  #%s\n", strings.Join(t.Tags, " #"))
	}
	if strings.TrimSpace(t.Description) != "" {
		fmt.Println(tui.RenderMarkdown(t.Description, terminalWidth()-2))
	}
	if entries := st.ActivityForTask(t.ID); len(entries) > 0 {
		fmt.Println("  " + i18n.T("activity.title") + ":")
		for _, e := range entries {
			fmt.Println("    " + task.FormatLine(e))
		}
	}
}

func statusMarker(s task.Status) string {
	if s == task.StatusDone {
		return "[x]"
	}
	return "[ ]"
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 20 {
		return w
	}
	return 80
}
