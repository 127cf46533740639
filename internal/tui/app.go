package tui

import (
	"fmt"
	"strings"
	"time"

	"taskpad/internal/analytics"
	"taskpad/internal/i18n"
	"taskpad/internal/session"
	"taskpad/internal/storage"
	"taskpad/internal/store"
	"taskpad/internal/task"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen 界面标识
// Screen identifies a screen
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenList
	ScreenDetail
	ScreenEditor
	ScreenActivity
	ScreenSettings
)

func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "login"
	case ScreenList:
		return "list"
	case ScreenDetail:
		return "detail"
	case ScreenEditor:
		return "editor"
	case ScreenActivity:
		return "activity"
	case ScreenSettings:
		return "settings"
	}
	return "unknown"
}

// --- Tea Messages ---

// ReloadedMsg 存储被外部写入后的重载结果
// ReloadedMsg carries the result of a reload after an external write
type ReloadedMsg struct{ Err error }

// listRow 平铺后的列表行：分组标题或任务
// listRow is a flattened list row: a section header or a task
type listRow struct {
	header string
	task   task.Task
}

func (r listRow) isHeader() bool { return r.header != "" }

// 编辑器字段序 / editor field order
const (
	fieldTitle = iota
	fieldDescription
	fieldPriority
	fieldDue
	fieldTags
	fieldCount
)

// App Bubble Tea 主 Model
// App is the main Bubble Tea model
type App struct {
	// 布局 / Layout
	width  int
	height int

	// 依赖 / Dependencies
	store    *store.Store
	sessions *session.Store
	kv       storage.KV
	events   analytics.Logger
	clock    func() time.Time

	// 界面 / Screens
	screen Screen

	// 登录 / Login
	emailInput textinput.Model
	loginErr   string

	// 列表 / List
	searchInput    textinput.Model
	searching      bool
	filterPriority string
	filterStatus   string
	cursor         int
	rows           []listRow

	// 详情 / Detail
	detailID   string
	detailView viewport.Model

	// 编辑器 / Editor
	editID       string
	inputs       []textinput.Model
	editPriority task.Priority
	focusIndex   int
	editorErr    string

	// 活动日志 / Activity
	activityView viewport.Model

	// 状态 / State
	notice        string
	confirmDelete string

	// 配置 / Config
	theme     Theme
	themeName string
	keys      KeyMap
	locale    *i18n.I18n
}

// NewApp 创建 TUI 应用。已持久化的会话直接进入任务列表。
// NewApp creates the TUI application. A persisted session opens straight onto
// the task list.
func NewApp(st *store.Store, sessions *session.Store, kv storage.KV, events analytics.Logger, themeName string) App {
	if events == nil {
		events = analytics.Nop{}
	}

	email := textinput.New()
	email.Placeholder = i18n.T("login.placeholder")
	email.CharLimit = 254
	email.Focus()

	search := textinput.New()
	search.Placeholder = i18n.T("list.search")
	search.CharLimit = 256
	search.Prompt = "/ "

	if pref := LoadThemePreference(kv); pref != "" {
		themeName = pref
	}
	if themeName != "light" {
		themeName = "dark"
	}

	a := App{
		store:          st,
		sessions:       sessions,
		kv:             kv,
		events:         events,
		clock:          time.Now,
		screen:         ScreenLogin,
		emailInput:     email,
		searchInput:    search,
		filterPriority: task.FilterAll,
		filterStatus:   task.FilterAll,
		theme:          ThemeByName(themeName),
		themeName:      themeName,
		keys:           DefaultKeyMap(),
		locale:         i18n.Global(),
	}

	if _, ok := sessions.Current(); ok {
		a.screen = ScreenList
	}
	a.refreshRows()
	a.events.Log("screen_view", map[string]any{"screen": a.screen.String()})
	return a
}

func (a App) Init() tea.Cmd {
	return textinput.Blink
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.relayout()
		return a, nil

	case ReloadedMsg:
		if msg.Err != nil {
			a.notice = a.locale.T("error.storage", msg.Err.Error())
		} else {
			a.notice = a.locale.T("notice.reloaded")
		}
		a.refreshRows()
		return a, nil

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.ForceQuit) {
			return a, tea.Quit
		}
		switch a.screen {
		case ScreenLogin:
			return a.updateLogin(msg)
		case ScreenList:
			return a.updateList(msg)
		case ScreenDetail:
			return a.updateDetail(msg)
		case ScreenEditor:
			return a.updateEditor(msg)
		case ScreenActivity:
			return a.updateActivity(msg)
		case ScreenSettings:
			return a.updateSettings(msg)
		}
	}

	return a, nil
}

// --- 界面切换 / Screen transitions ---

func (a *App) gotoScreen(s Screen) {
	a.screen = s
	a.notice = ""
	a.events.Log("screen_view", map[string]any{"screen": s.String()})
}

// --- 登录 / Login ---

func (a App) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Submit):
		if _, err := a.sessions.SignIn(a.emailInput.Value()); err != nil {
			switch {
			case err == session.ErrEmptyEmail:
				a.loginErr = a.locale.T("login.empty")
			case err == session.ErrInvalidEmail:
				a.loginErr = a.locale.T("login.invalid")
			default:
				a.loginErr = a.locale.T("error.storage", err.Error())
			}
			return a, nil
		}
		a.loginErr = ""
		a.emailInput.SetValue("")
		a.gotoScreen(ScreenList)
		a.refreshRows()
		return a, nil
	}

	var cmd tea.Cmd
	a.emailInput, cmd = a.emailInput.Update(msg)
	return a, cmd
}

// --- 任务列表 / Task list ---

func (a App) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.searching {
		switch {
		case key.Matches(msg, a.keys.Back):
			a.searching = false
			a.searchInput.Blur()
			a.searchInput.SetValue("")
			a.refreshRows()
			return a, nil
		case key.Matches(msg, a.keys.Submit):
			a.searching = false
			a.searchInput.Blur()
			return a, nil
		}
		var cmd tea.Cmd
		a.searchInput, cmd = a.searchInput.Update(msg)
		a.refreshRows()
		return a, cmd
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Up):
		a.moveCursor(-1)
	case key.Matches(msg, a.keys.Down):
		a.moveCursor(1)
	case key.Matches(msg, a.keys.Search):
		a.searching = true
		a.searchInput.Focus()
		return a, textinput.Blink
	case key.Matches(msg, a.keys.CyclePriority):
		a.filterPriority = nextPriorityFilter(a.filterPriority)
		a.refreshRows()
	case key.Matches(msg, a.keys.CycleStatus):
		a.filterStatus = nextStatusFilter(a.filterStatus)
		a.refreshRows()
	case key.Matches(msg, a.keys.Toggle):
		if t, ok := a.selectedTask(); ok {
			a.store.ToggleComplete(t.ID)
			a.refreshRows()
		}
	case key.Matches(msg, a.keys.Delete):
		// 第二次按 d 才真正删除 / the second d press actually deletes
		if t, ok := a.selectedTask(); ok {
			if a.confirmDelete == t.ID {
				a.confirmDelete = ""
				a.store.DeleteTask(t.ID)
				a.notice = a.locale.T("notice.deleted", t.Title)
				a.refreshRows()
			} else {
				a.confirmDelete = t.ID
				a.notice = a.locale.T("list.confirm_delete", t.Title)
			}
		}
	case key.Matches(msg, a.keys.Refresh):
		if err := a.store.ReloadFromStorage(); err != nil {
			a.notice = a.locale.T("error.storage", err.Error())
		} else {
			a.notice = a.locale.T("notice.reloaded")
		}
		a.refreshRows()
	case key.Matches(msg, a.keys.Back):
		a.confirmDelete = ""
		a.notice = ""
	case key.Matches(msg, a.keys.New):
		a.openEditor(task.Task{}, false)
		return a, textinput.Blink
	case key.Matches(msg, a.keys.Edit):
		if t, ok := a.selectedTask(); ok {
			a.openEditor(t, true)
			return a, textinput.Blink
		}
	case key.Matches(msg, a.keys.Open):
		if t, ok := a.selectedTask(); ok {
			a.openDetail(t.ID)
		}
	case key.Matches(msg, a.keys.History):
		a.openActivity()
	case key.Matches(msg, a.keys.Settings):
		a.gotoScreen(ScreenSettings)
	}
	return a, nil
}

func (a *App) moveCursor(delta int) {
	a.confirmDelete = ""
	if len(a.rows) == 0 {
		return
	}
	i := a.cursor
	for {
		i += delta
		if i < 0 || i >= len(a.rows) {
			return
		}
		if !a.rows[i].isHeader() {
			a.cursor = i
			return
		}
	}
}

func (a App) selectedTask() (task.Task, bool) {
	if a.cursor < 0 || a.cursor >= len(a.rows) {
		return task.Task{}, false
	}
	r := a.rows[a.cursor]
	if r.isHeader() || r.task.ID == "" {
		return task.Task{}, false
	}
	return r.task, true
}

// refreshRows 按当前筛选重建平铺行，并把光标夹在合法的任务行上
// refreshRows rebuilds the flattened rows for the current filters and clamps
// the cursor onto a valid task row
func (a *App) refreshRows() {
	q := task.Query{
		Text:     a.searchInput.Value(),
		Priority: a.filterPriority,
		Status:   a.filterStatus,
	}
	sections := task.Group(a.store.Tasks(), q, a.clock())

	rows := make([]listRow, 0, 16)
	for _, sec := range sections {
		rows = append(rows, listRow{header: sec.Title})
		for _, t := range sec.Tasks {
			rows = append(rows, listRow{task: t})
		}
	}
	a.rows = rows

	if a.cursor >= len(rows) {
		a.cursor = len(rows) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
	// 光标落在标题上时移到下一个任务行 / nudge the cursor off headers
	if a.cursor < len(rows) && rows[a.cursor].isHeader() {
		a.moveCursor(1)
		if rows[a.cursor].isHeader() {
			a.moveCursor(-1)
		}
	}
}

func nextPriorityFilter(cur string) string {
	order := []string{task.FilterAll, string(task.PriorityHigh), string(task.PriorityMedium), string(task.PriorityLow)}
	for i, v := range order {
		if v == cur {
			return order[(i+1)%len(order)]
		}
	}
	return task.FilterAll
}

func nextStatusFilter(cur string) string {
	order := []string{task.FilterAll, string(task.StatusTodo), string(task.StatusDone)}
	for i, v := range order {
		if v == cur {
			return order[(i+1)%len(order)]
		}
	}
	return task.FilterAll
}

// --- 详情 / Detail ---

func (a *App) openDetail(id string) {
	t, ok := a.store.Find(id)
	if !ok {
		return
	}
	a.detailID = id
	a.detailView = viewport.New(a.contentWidth(), a.contentHeight())
	a.detailView.SetContent(a.renderDetailContent(t))
	a.gotoScreen(ScreenDetail)
}

func (a App) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Back), key.Matches(msg, a.keys.Quit):
		a.gotoScreen(ScreenList)
		a.refreshRows()
		return a, nil
	case key.Matches(msg, a.keys.Toggle):
		a.store.ToggleComplete(a.detailID)
		if t, ok := a.store.Find(a.detailID); ok {
			a.detailView.SetContent(a.renderDetailContent(t))
		}
		return a, nil
	case key.Matches(msg, a.keys.Edit):
		if t, ok := a.store.Find(a.detailID); ok {
			a.openEditor(t, true)
			return a, textinput.Blink
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.detailView, cmd = a.detailView.Update(msg)
	return a, cmd
}

// --- 编辑器 / Editor ---

func (a *App) openEditor(t task.Task, editing bool) {
	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].CharLimit = 512
	}
	inputs[fieldTitle].Placeholder = a.locale.T("editor.field.title")
	inputs[fieldDescription].Placeholder = a.locale.T("editor.field.description")
	inputs[fieldDue].Placeholder = "YYYY-MM-DD"
	inputs[fieldTags].Placeholder = a.locale.T("editor.field.tags")

	a.editPriority = task.PriorityMedium
	a.editID = ""
	if editing {
		a.editID = t.ID
		inputs[fieldTitle].SetValue(t.Title)
		inputs[fieldDescription].SetValue(t.Description)
		inputs[fieldTags].SetValue(strings.Join(t.Tags, ", "))
		if t.DueDate != nil {
			inputs[fieldDue].SetValue(t.DueDate.Format("2006-01-02"))
		}
		a.editPriority = t.Priority
	}

	a.inputs = inputs
	a.focusIndex = fieldTitle
	a.inputs[fieldTitle].Focus()
	a.editorErr = ""
	a.gotoScreen(ScreenEditor)
}

func (a App) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Back):
		a.gotoScreen(ScreenList)
		a.refreshRows()
		return a, nil
	case key.Matches(msg, a.keys.NextField):
		a.setEditorFocus((a.focusIndex + 1) % fieldCount)
		return a, textinput.Blink
	case key.Matches(msg, a.keys.PrevField):
		a.setEditorFocus((a.focusIndex + fieldCount - 1) % fieldCount)
		return a, textinput.Blink
	case key.Matches(msg, a.keys.Submit):
		return a.submitEditor()
	}

	// 优先级行用左右键循环 / the priority row cycles with left/right
	if a.focusIndex == fieldPriority {
		switch msg.String() {
		case "left":
			a.editPriority = prevPriority(a.editPriority)
		case "right", " ":
			a.editPriority = nextPriority(a.editPriority)
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.inputs[a.focusIndex], cmd = a.inputs[a.focusIndex].Update(msg)
	return a, cmd
}

func (a *App) setEditorFocus(i int) {
	for j := range a.inputs {
		a.inputs[j].Blur()
	}
	a.focusIndex = i
	if i != fieldPriority {
		a.inputs[i].Focus()
	}
}

func (a App) submitEditor() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(a.inputs[fieldTitle].Value())
	if title == "" {
		a.editorErr = a.locale.T("editor.title_required")
		return a, nil
	}

	var due *time.Time
	dueRaw := strings.TrimSpace(a.inputs[fieldDue].Value())
	if dueRaw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dueRaw, time.Local)
		if err != nil {
			a.editorErr = a.locale.T("editor.bad_date")
			return a, nil
		}
		due = &parsed
	}

	description := a.inputs[fieldDescription].Value()
	tags := task.ParseTags(a.inputs[fieldTags].Value())

	if a.editID == "" {
		if _, err := a.store.AddTask(task.Draft{
			Title:       title,
			Description: description,
			Priority:    a.editPriority,
			DueDate:     due,
			Tags:        tags,
		}); err != nil {
			a.editorErr = err.Error()
			return a, nil
		}
		a.notice = a.locale.T("notice.added", title)
	} else {
		prio := a.editPriority
		ch := task.Changes{
			Title:        &title,
			Description:  &description,
			Priority:     &prio,
			Tags:         &tags,
			DueDate:      due,
			ClearDueDate: due == nil,
		}
		if _, err := a.store.UpdateTask(a.editID, ch); err != nil {
			a.editorErr = err.Error()
			return a, nil
		}
		a.notice = a.locale.T("notice.updated", title)
	}

	a.gotoScreen(ScreenList)
	a.refreshRows()
	return a, nil
}

func nextPriority(p task.Priority) task.Priority {
	switch p {
	case task.PriorityLow:
		return task.PriorityMedium
	case task.PriorityMedium:
		return task.PriorityHigh
	default:
		return task.PriorityLow
	}
}

func prevPriority(p task.Priority) task.Priority {
	switch p {
	case task.PriorityHigh:
		return task.PriorityMedium
	case task.PriorityMedium:
		return task.PriorityLow
	default:
		return task.PriorityHigh
	}
}

// --- 活动日志 / Activity ---

func (a *App) openActivity() {
	entries := a.store.Activity()
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, "  "+task.FormatLine(e))
	}
	content := strings.Join(lines, "\n")
	if len(entries) == 0 {
		content = "  " + a.locale.T("activity.empty")
	}
	a.activityView = viewport.New(a.contentWidth(), a.contentHeight())
	a.activityView.SetContent(content)
	a.gotoScreen(ScreenActivity)
}

func (a App) updateActivity(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.Back) || key.Matches(msg, a.keys.Quit) {
		a.gotoScreen(ScreenList)
		a.refreshRows()
		return a, nil
	}
	var cmd tea.Cmd
	a.activityView, cmd = a.activityView.Update(msg)
	return a, cmd
}

// --- 设置 / Settings ---

func (a App) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Back), key.Matches(msg, a.keys.Quit):
		a.gotoScreen(ScreenList)
		a.refreshRows()
		return a, nil
	}
	switch msg.String() {
	case "t":
		if a.themeName == "dark" {
			a.themeName = "light"
		} else {
			a.themeName = "dark"
		}
		a.theme = ThemeByName(a.themeName)
		SaveThemePreference(a.kv, a.themeName)
		return a, nil
	case "x":
		if err := a.sessions.SignOut(); err != nil {
			a.notice = a.locale.T("error.storage", err.Error())
			return a, nil
		}
		a.emailInput.SetValue("")
		a.emailInput.Focus()
		a.gotoScreen(ScreenLogin)
		return a, textinput.Blink
	}
	return a, nil
}

// --- 布局与渲染 / Layout and rendering ---

func (a App) contentWidth() int {
	if a.width <= 0 {
		return 80
	}
	return a.width
}

func (a App) contentHeight() int {
	h := a.height - 4
	if h < 3 {
		h = 3
	}
	return h
}

func (a *App) relayout() {
	a.searchInput.Width = a.contentWidth() - 4
	a.detailView.Width = a.contentWidth()
	a.detailView.Height = a.contentHeight()
	a.activityView.Width = a.contentWidth()
	a.activityView.Height = a.contentHeight()
}

func (a App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Initializing..."
	}

	var body string
	switch a.screen {
	case ScreenLogin:
		body = a.viewLogin()
	case ScreenList:
		body = a.viewList()
	case ScreenDetail:
		body = a.detailView.View()
	case ScreenEditor:
		body = a.viewEditor()
	case ScreenActivity:
		body = lipgloss.JoinVertical(lipgloss.Left,
			a.theme.TitleStyle.Render(" "+a.locale.T("activity.title")),
			a.activityView.View(),
		)
	case ScreenSettings:
		body = a.viewSettings()
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, a.renderStatusBar())
}

func (a App) viewLogin() string {
	parts := []string{
		"",
		a.theme.TitleStyle.Render("  " + a.locale.T("login.title")),
		"",
		a.theme.MutedStyle.Render("  " + a.locale.T("login.hint")),
		"",
		"  " + a.emailInput.View(),
		"",
	}
	if a.loginErr != "" {
		parts = append(parts, a.theme.ErrorStyle.Render("  "+a.loginErr))
	}
	parts = append(parts, "", a.theme.MutedStyle.Render("  "+a.locale.T("login.submit")))
	return strings.Join(parts, "\n")
}

func (a App) viewList() string {
	var parts []string

	parts = append(parts, a.theme.TitleStyle.Render(" "+a.locale.T("list.title"))+
		"  "+a.theme.MutedStyle.Render(a.locale.T("list.count", len(a.store.Tasks()))))
	parts = append(parts, a.renderFilterChips())

	if a.searching || a.searchInput.Value() != "" {
		parts = append(parts, " "+a.searchInput.View())
	}
	parts = append(parts, "")

	hasTasks := false
	for _, row := range a.rows {
		if !row.isHeader() {
			hasTasks = true
			break
		}
	}
	if !hasTasks {
		empty := a.locale.T("list.empty")
		if a.searchInput.Value() != "" || a.filterPriority != task.FilterAll || a.filterStatus != task.FilterAll {
			empty = a.locale.T("list.empty_filtered")
		}
		parts = append(parts, a.theme.MutedStyle.Render("  "+empty))
	}

	now := a.clock()
	for i, row := range a.rows {
		if row.isHeader() {
			parts = append(parts, a.theme.SectionStyle.Render(" "+a.sectionLabel(row.header)))
			continue
		}
		line := a.renderTaskLine(row.task, now)
		if i == a.cursor {
			line = a.theme.SelectedStyle.Render(line)
		}
		parts = append(parts, line)
	}

	if a.notice != "" {
		parts = append(parts, "", a.theme.SuccessStyle.Render("  "+a.notice))
	}
	return strings.Join(parts, "\n")
}

// sectionLabel 将分组名映射为本地化标题
// sectionLabel maps a section name to its localized title
func (a App) sectionLabel(name string) string {
	switch name {
	case task.SectionToday:
		return a.locale.T("list.section.today")
	case task.SectionUpcoming:
		return a.locale.T("list.section.soon")
	case task.SectionOverdue:
		return a.locale.T("list.section.late")
	default:
		return a.locale.T("list.section.all")
	}
}

func (a App) renderFilterChips() string {
	prioChip := a.theme.ChipStyle
	if a.filterPriority != task.FilterAll {
		prioChip = a.theme.ActiveChipStyle
	}
	statusChip := a.theme.ChipStyle
	if a.filterStatus != task.FilterAll {
		statusChip = a.theme.ActiveChipStyle
	}
	return " " + prioChip.Render(a.locale.T("filter.priority", a.filterLabel("priority", a.filterPriority))) +
		" " + statusChip.Render(a.locale.T("filter.status", a.filterLabel("status", a.filterStatus)))
}

func (a App) filterLabel(kind, value string) string {
	if value == task.FilterAll {
		return a.locale.T("filter.all")
	}
	return a.locale.T(kind + "." + value)
}

func (a App) renderTaskLine(t task.Task, now time.Time) string {
	check := "[ ]"
	if t.Status == task.StatusDone {
		check = "[x]"
	}

	prio := a.priorityBadge(t.Priority)

	title := t.Title
	if t.Status == task.StatusDone {
		title = a.theme.DoneStyle.Render(title)
	}

	line := fmt.Sprintf("  %s %s %s", check, prio, title)

	if t.DueDate != nil {
		due := task.FormatDue(t.DueDate)
		if task.Overdue(t.DueDate, now) && t.Status != task.StatusDone {
			line += " " + a.theme.OverdueStyle.Render("("+due+")")
		} else {
			line += " " + a.theme.MutedStyle.Render("("+due+")")
		}
	}
	if len(t.Tags) > 0 {
		line += " " + a.theme.TagStyle.Render("#"+strings.Join(t.Tags, " #"))
	}
	return line
}

func (a App) priorityBadge(p task.Priority) string {
	switch p {
	case task.PriorityHigh:
		return a.theme.HighStyle.Render("!!")
	case task.PriorityMedium:
		return a.theme.MediumStyle.Render(" !")
	default:
		return a.theme.LowStyle.Render("  ")
	}
}

func (a App) renderDetailContent(t task.Task) string {
	var parts []string
	parts = append(parts, a.theme.TitleStyle.Render(" "+t.Title))
	parts = append(parts, a.theme.MutedStyle.Render(fmt.Sprintf("  %s · %s",
		a.locale.T("priority."+string(t.Priority)),
		a.locale.T("status."+string(t.Status)))))
	if t.DueDate != nil {
		parts = append(parts, a.theme.MutedStyle.Render("  "+a.locale.T("editor.field.due")+": "+task.FormatDue(t.DueDate)))
	}
	if len(t.Tags) > 0 {
		parts = append(parts, a.theme.TagStyle.Render("  #"+strings.Join(t.Tags, " #")))
	}
	parts = append(parts, "")
	if strings.TrimSpace(t.Description) != "" {
		parts = append(parts, RenderMarkdown(t.Description, a.contentWidth()-4))
	}

	// 任务自身的活动 / per-task activity
	entries := a.store.ActivityForTask(t.ID)
	if len(entries) > 0 {
		parts = append(parts, "", a.theme.SectionStyle.Render(" "+a.locale.T("activity.title")))
		for _, e := range entries {
			parts = append(parts, a.theme.MutedStyle.Render("  "+task.FormatLine(e)))
		}
	}
	return strings.Join(parts, "\n")
}

func (a App) viewEditor() string {
	title := a.locale.T("editor.title.new")
	if a.editID != "" {
		title = a.locale.T("editor.title.edit")
	}

	labels := []string{
		a.locale.T("editor.field.title"),
		a.locale.T("editor.field.description"),
		a.locale.T("editor.field.priority"),
		a.locale.T("editor.field.due"),
		a.locale.T("editor.field.tags"),
	}

	parts := []string{"", a.theme.TitleStyle.Render("  " + title), ""}
	for i := 0; i < fieldCount; i++ {
		label := a.theme.MutedStyle.Render("  " + labels[i])
		if i == a.focusIndex {
			label = a.theme.SectionStyle.Render("  " + labels[i])
		}
		parts = append(parts, label)
		if i == fieldPriority {
			parts = append(parts, "  ← "+a.locale.T("priority."+string(a.editPriority))+" →")
		} else {
			parts = append(parts, "  "+a.inputs[i].View())
		}
		parts = append(parts, "")
	}

	if a.editorErr != "" {
		parts = append(parts, a.theme.ErrorStyle.Render("  "+a.editorErr))
	}
	parts = append(parts, a.theme.MutedStyle.Render("  enter "+a.locale.T("editor.save")+" · esc "+a.locale.T("editor.cancel")))
	return strings.Join(parts, "\n")
}

func (a App) viewSettings() string {
	account := a.theme.MutedStyle.Render("  -")
	if sess, ok := a.sessions.Current(); ok {
		account = "  " + a.locale.T("settings.account", sess.Email)
	}
	return strings.Join([]string{
		"",
		a.theme.TitleStyle.Render("  " + a.locale.T("settings.title")),
		"",
		account,
		"  " + a.locale.T("settings.theme", a.locale.T("theme."+a.themeName)) + a.theme.MutedStyle.Render("  (t)"),
		"  " + a.locale.T("settings.signout") + a.theme.MutedStyle.Render("  (x)"),
	}, "\n")
}

func (a App) renderStatusBar() string {
	var hints []string
	switch a.screen {
	case ScreenLogin:
		hints = []string{a.locale.T("login.submit")}
	case ScreenList:
		hints = []string{
			a.locale.T("keys.nav"),
			a.locale.T("keys.toggle"),
			a.locale.T("keys.new"),
			a.locale.T("keys.edit"),
			a.locale.T("keys.delete"),
			a.locale.T("keys.search"),
			a.locale.T("keys.quit"),
		}
	default:
		hints = []string{"esc back"}
	}

	left := " " + strings.Join(hints, " · ")
	gap := a.width - lipgloss.Width(left)
	if gap < 0 {
		gap = 0
	}
	return a.theme.StatusBarStyle.Width(a.width).Render(left + strings.Repeat(" ", gap))
}

// Run 启动 Bubble Tea TUI；返回 program 供监听协程推送消息
// Run starts the Bubble Tea TUI; the returned program lets the watch goroutine
// push messages in
func Run(st *store.Store, sessions *session.Store, kv storage.KV, events analytics.Logger, themeName string, hook func(*tea.Program)) error {
	app := NewApp(st, sessions, kv, events, themeName)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if hook != nil {
		hook(p)
	}
	_, err := p.Run()
	return err
}
