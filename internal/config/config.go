package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// StorageConfig 本地存储配置。Backend 可选 sqlite 或 json。
// StorageConfig configures local storage. Backend is either sqlite or json.
type StorageConfig struct {
	Backend string `json:"backend"`
	BaseDir string `json:"base_dir"`
}

type UIConfig struct {
	Locale string `json:"locale"`
	Theme  string `json:"theme"`
}

type AnalyticsConfig struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path"`
}

// WatchConfig 外部变更监听：开启后检测到存储文件被其他进程写入时重新加载任务。
// WatchConfig controls external-change watching: when enabled, tasks reload
// after another process writes the storage files.
type WatchConfig struct {
	Enabled    bool `json:"enabled"`
	DebounceMS int  `json:"debounce_ms"`
}

type Config struct {
	Storage   StorageConfig   `json:"storage"`
	UI        UIConfig        `json:"ui"`
	Analytics AnalyticsConfig `json:"analytics"`
	Watch     WatchConfig     `json:"watch"`
}

type fileAnalyticsConfig struct {
	Enabled *bool   `json:"enabled"`
	Path    *string `json:"path"`
}

type fileWatchConfig struct {
	Enabled    *bool `json:"enabled"`
	DebounceMS *int  `json:"debounce_ms"`
}

type fileConfig struct {
	Storage   *StorageConfig       `json:"storage"`
	UI        *UIConfig            `json:"ui"`
	Analytics *fileAnalyticsConfig `json:"analytics"`
	Watch     *fileWatchConfig     `json:"watch"`
}

func Default() Config {
	return Config{
		Storage: StorageConfig{
			Backend: BackendSQLite,
			BaseDir: "~/.taskpad",
		},
		UI: UIConfig{
			Locale: "",
			Theme:  DefaultTheme,
		},
		Analytics: AnalyticsConfig{
			Enabled: true,
			Path:    "",
		},
		Watch: WatchConfig{
			Enabled:    true,
			DebounceMS: DefaultWatchDebounceMS,
		},
	}
}

// Load 按默认值 → 全局配置 → 项目/显式配置 → 环境变量的顺序合并。
// Load merges defaults, then the global config file, then the project or
// explicitly given config file, then environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	for _, globalPath := range globalConfigPaths() {
		if err := mergeFromFile(&cfg, globalPath); err != nil {
			return Config{}, err
		}
	}

	resolvedPath := strings.TrimSpace(path)
	if envPath := strings.TrimSpace(os.Getenv("TASKPAD_CONFIG_PATH")); envPath != "" {
		resolvedPath = envPath
	}
	if resolvedPath == "" {
		resolvedPath = findProjectConfigPath()
	}
	if err := mergeFromFile(&cfg, resolvedPath); err != nil {
		return Config{}, err
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := normalize(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func globalConfigPaths() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return []string{filepath.Join(home, ".taskpad", "config.json")}
}

func findProjectConfigPath() string {
	candidates := []string{
		"taskpad.config.json",
		".taskpad/config.json",
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}

func mergeFromFile(cfg *Config, path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}

	resolved, err := expandPath(path)
	if err != nil {
		return fmt.Errorf("expand config path %q: %w", path, err)
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config %q: %w", resolved, err)
	}

	cleaned := stripJSONComments(data)
	var fileCfg fileConfig
	if err := json.Unmarshal(cleaned, &fileCfg); err != nil {
		return fmt.Errorf("parse config %q: %w", resolved, err)
	}
	applyFileConfig(cfg, fileCfg)
	return nil
}

func applyFileConfig(cfg *Config, fc fileConfig) {
	if fc.Storage != nil {
		if strings.TrimSpace(fc.Storage.Backend) != "" {
			cfg.Storage.Backend = fc.Storage.Backend
		}
		if strings.TrimSpace(fc.Storage.BaseDir) != "" {
			cfg.Storage.BaseDir = fc.Storage.BaseDir
		}
	}
	if fc.UI != nil {
		if strings.TrimSpace(fc.UI.Locale) != "" {
			cfg.UI.Locale = fc.UI.Locale
		}
		if strings.TrimSpace(fc.UI.Theme) != "" {
			cfg.UI.Theme = fc.UI.Theme
		}
	}
	if fc.Analytics != nil {
		if fc.Analytics.Enabled != nil {
			cfg.Analytics.Enabled = *fc.Analytics.Enabled
		}
		if fc.Analytics.Path != nil && strings.TrimSpace(*fc.Analytics.Path) != "" {
			cfg.Analytics.Path = *fc.Analytics.Path
		}
	}
	if fc.Watch != nil {
		if fc.Watch.Enabled != nil {
			cfg.Watch.Enabled = *fc.Watch.Enabled
		}
		if fc.Watch.DebounceMS != nil {
			cfg.Watch.DebounceMS = *fc.Watch.DebounceMS
		}
	}
}

func applyEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv("TASKPAD_DATA_DIR")); v != "" {
		cfg.Storage.BaseDir = v
	}
	if v := strings.TrimSpace(os.Getenv("TASKPAD_BACKEND")); v != "" {
		cfg.Storage.Backend = v
	}
	if v := strings.TrimSpace(os.Getenv("TASKPAD_THEME")); v != "" {
		cfg.UI.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv("TASKPAD_LANG")); v != "" {
		cfg.UI.Locale = v
	}
	if v := strings.TrimSpace(os.Getenv("TASKPAD_WATCH_DEBOUNCE_MS")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid TASKPAD_WATCH_DEBOUNCE_MS: %q", v)
		}
		cfg.Watch.DebounceMS = n
	}
	return nil
}

func normalize(cfg *Config) error {
	backend := strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))
	switch backend {
	case BackendSQLite, BackendJSON:
		cfg.Storage.Backend = backend
	case "":
		cfg.Storage.Backend = BackendSQLite
	default:
		return fmt.Errorf("unknown storage backend %q (want %s or %s)", cfg.Storage.Backend, BackendSQLite, BackendJSON)
	}

	baseDir, err := expandPath(cfg.Storage.BaseDir)
	if err != nil {
		return err
	}
	if baseDir == "" {
		baseDir, err = expandPath(Default().Storage.BaseDir)
		if err != nil {
			return err
		}
	}
	cfg.Storage.BaseDir = baseDir

	theme := strings.ToLower(strings.TrimSpace(cfg.UI.Theme))
	if theme != "dark" && theme != "light" {
		theme = DefaultTheme
	}
	cfg.UI.Theme = theme

	if strings.TrimSpace(cfg.Analytics.Path) == "" {
		cfg.Analytics.Path = filepath.Join(cfg.Storage.BaseDir, "analytics.jsonl")
	} else {
		p, err := expandPath(cfg.Analytics.Path)
		if err != nil {
			return err
		}
		cfg.Analytics.Path = p
	}

	if cfg.Watch.DebounceMS <= 0 {
		cfg.Watch.DebounceMS = DefaultWatchDebounceMS
	}
	return nil
}

func expandPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		if path == "~" {
			path = home
		} else {
			path = filepath.Join(home, strings.TrimPrefix(path, "~/"))
		}
	}
	return filepath.Abs(path)
}

// stripJSONComments 支持带 // 与 /* */ 注释的配置文件
// stripJSONComments allows // and /* */ comments in config files
func stripJSONComments(data []byte) []byte {
	const (
		stateNormal = iota
		stateString
		stateLineComment
		stateBlockComment
	)

	state := stateNormal
	escaped := false
	out := bytes.Buffer{}

	for i := 0; i < len(data); i++ {
		c := data[i]
		next := byte(0)
		if i+1 < len(data) {
			next = data[i+1]
		}

		switch state {
		case stateNormal:
			if c == '"' {
				state = stateString
				out.WriteByte(c)
				continue
			}
			if c == '/' && next == '/' {
				state = stateLineComment
				i++
				continue
			}
			if c == '/' && next == '*' {
				state = stateBlockComment
				i++
				continue
			}
			out.WriteByte(c)
		case stateString:
			out.WriteByte(c)
			if escaped {
				escaped = false
				continue
			}
			if c == '\\' {
				escaped = true
				continue
			}
			if c == '"' {
				state = stateNormal
			}
		case stateLineComment:
			if c == '\n' {
				state = stateNormal
				out.WriteByte(c)
			}
		case stateBlockComment:
			if c == '*' && next == '/' {
				state = stateNormal
				i++
			}
		}
	}

	return out.Bytes()
}
