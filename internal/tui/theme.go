package tui

import (
	"strings"

	"taskpad/internal/storage"

	"github.com/charmbracelet/lipgloss"
)

// Theme 定义 TUI 主题色彩和样式
// Theme defines TUI colors and styles
type Theme struct {
	// 基础色 / Base colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Danger    lipgloss.Color
	Warning   lipgloss.Color
	Success   lipgloss.Color
	Muted     lipgloss.Color
	Text      lipgloss.Color
	TextDim   lipgloss.Color
	BgBar     lipgloss.Color
	Border    lipgloss.Color

	// 预构建样式 / Pre-built styles
	TitleStyle      lipgloss.Style
	SectionStyle    lipgloss.Style
	SelectedStyle   lipgloss.Style
	DoneStyle       lipgloss.Style
	StatusBarStyle  lipgloss.Style
	InputStyle      lipgloss.Style
	ErrorStyle      lipgloss.Style
	SuccessStyle    lipgloss.Style
	MutedStyle      lipgloss.Style
	ChipStyle       lipgloss.Style
	ActiveChipStyle lipgloss.Style
	TagStyle        lipgloss.Style
	HighStyle       lipgloss.Style
	MediumStyle     lipgloss.Style
	LowStyle        lipgloss.Style
	OverdueStyle    lipgloss.Style
}

func (t Theme) build() Theme {
	t.TitleStyle = lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	t.SectionStyle = lipgloss.NewStyle().
		Foreground(t.Secondary).
		Bold(true)

	t.SelectedStyle = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Border).
		Bold(true)

	t.DoneStyle = lipgloss.NewStyle().
		Foreground(t.Muted).
		Strikethrough(true)

	t.StatusBarStyle = lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.BgBar)

	t.InputStyle = lipgloss.NewStyle().
		Foreground(t.Text).
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Danger).
		Bold(true)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	t.MutedStyle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.ChipStyle = lipgloss.NewStyle().
		Foreground(t.TextDim).
		Padding(0, 1)

	t.ActiveChipStyle = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Primary).
		Padding(0, 1).
		Bold(true)

	t.TagStyle = lipgloss.NewStyle().
		Foreground(t.Secondary)

	t.HighStyle = lipgloss.NewStyle().
		Foreground(t.Danger).
		Bold(true)

	t.MediumStyle = lipgloss.NewStyle().
		Foreground(t.Warning)

	t.LowStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	t.OverdueStyle = lipgloss.NewStyle().
		Foreground(t.Danger)

	return t
}

// DarkTheme 暗色主题（默认）
// DarkTheme is the default dark theme
func DarkTheme() Theme {
	return Theme{
		Primary:   lipgloss.Color("#7C3AED"),
		Secondary: lipgloss.Color("#06B6D4"),
		Accent:    lipgloss.Color("#F59E0B"),
		Danger:    lipgloss.Color("#EF4444"),
		Warning:   lipgloss.Color("#F59E0B"),
		Success:   lipgloss.Color("#10B981"),
		Muted:     lipgloss.Color("#6B7280"),
		Text:      lipgloss.Color("#E5E7EB"),
		TextDim:   lipgloss.Color("#9CA3AF"),
		BgBar:     lipgloss.Color("#111827"),
		Border:    lipgloss.Color("#374151"),
	}.build()
}

// LightTheme 亮色主题
// LightTheme is the light theme
func LightTheme() Theme {
	return Theme{
		Primary:   lipgloss.Color("#6D28D9"),
		Secondary: lipgloss.Color("#0E7490"),
		Accent:    lipgloss.Color("#B45309"),
		Danger:    lipgloss.Color("#B91C1C"),
		Warning:   lipgloss.Color("#B45309"),
		Success:   lipgloss.Color("#047857"),
		Muted:     lipgloss.Color("#9CA3AF"),
		Text:      lipgloss.Color("#111827"),
		TextDim:   lipgloss.Color("#4B5563"),
		BgBar:     lipgloss.Color("#E5E7EB"),
		Border:    lipgloss.Color("#D1D5DB"),
	}.build()
}

// ThemeByName 按名称选择主题，未知名称回退暗色
// ThemeByName selects a theme by name, falling back to dark
func ThemeByName(name string) Theme {
	if strings.EqualFold(strings.TrimSpace(name), "light") {
		return LightTheme()
	}
	return DarkTheme()
}

// LoadThemePreference 从 KV 主题槽读取偏好；缺失或损坏返回空串
// LoadThemePreference reads the preference from the KV theme slot; a missing
// or corrupt slot yields the empty string
func LoadThemePreference(kv storage.KV) string {
	raw, ok, err := kv.Get(storage.KeyTheme)
	if err != nil || !ok {
		return ""
	}
	name := strings.ToLower(strings.TrimSpace(string(raw)))
	if name != "dark" && name != "light" {
		return ""
	}
	return name
}

// SaveThemePreference 持久化主题偏好，写失败忽略
// SaveThemePreference persists the preference; write failures are ignored
func SaveThemePreference(kv storage.KV, name string) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name != "dark" && name != "light" {
		return
	}
	_ = kv.Set(storage.KeyTheme, []byte(name))
}
