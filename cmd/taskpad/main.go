package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"taskpad/internal/analytics"
	"taskpad/internal/config"
	"taskpad/internal/i18n"
	"taskpad/internal/session"
	"taskpad/internal/storage"
	"taskpad/internal/store"
	"taskpad/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

func main() {
	var (
		configPath string
		dataDir    string
		replMode   bool
	)
	flag.StringVar(&configPath, "config", "", "Path to config JSON/JSONC")
	flag.StringVar(&dataDir, "data", "", "Data directory override")
	flag.BoolVar(&replMode, "repl", false, "Run line-mode REPL instead of the TUI")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config failed: %v\n", err)
		os.Exit(1)
	}
	if dataDir != "" {
		cfg.Storage.BaseDir = dataDir
		cfg.Analytics.Path = filepath.Join(dataDir, "analytics.jsonl")
	}

	i18n.Init(cfg.UI.Locale)

	if err := os.MkdirAll(cfg.Storage.BaseDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "init data dir failed: %v\n", err)
		os.Exit(1)
	}

	kv, err := openKV(cfg.Storage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init storage failed: %v\n", err)
		os.Exit(1)
	}
	defer kv.Close()

	var events analytics.Logger = analytics.Nop{}
	if cfg.Analytics.Enabled {
		events = analytics.NewFileLogger(cfg.Analytics.Path)
	}

	sessions := session.NewStore(kv)
	st := store.New(kv, store.WithAnalytics(events))

	// 水化失败降级为空集合，应用照常启动
	// Hydration failures degrade to empty collections; startup proceeds
	if err := st.Hydrate(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	// 未进入 TTY 时退回 REPL / fall back to the REPL without a TTY
	if !replMode && !term.IsTerminal(int(os.Stdout.Fd())) {
		replMode = true
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	debounce := time.Duration(cfg.Watch.DebounceMS) * time.Millisecond

	if replMode {
		fmt.Println(i18n.T("startup.repl_mode"))
		if cfg.Watch.Enabled {
			go func() {
				_ = st.Watch(ctx, debounce, func(err error) {
					if err != nil {
						fmt.Fprintf(os.Stderr, "%s\n", i18n.T("error.storage", err.Error()))
						return
					}
					fmt.Println(i18n.T("notice.reloaded"))
				})
			}()
		}
		runREPL(cfg, kv, st, sessions)
		return
	}

	err = tui.Run(st, sessions, kv, events, cfg.UI.Theme, func(p *tea.Program) {
		if !cfg.Watch.Enabled {
			return
		}
		go func() {
			_ = st.Watch(ctx, debounce, func(err error) {
				p.Send(tui.ReloadedMsg{Err: err})
			})
		}()
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "tui failed: %v\n", err)
		os.Exit(1)
	}
}

// openKV 按配置选择存储后端；sqlite 后端会先迁移旧的 JSON 槽文件
// openKV opens the configured storage backend; the sqlite backend migrates
// legacy JSON slot files first
func openKV(cfg config.StorageConfig) (storage.KV, error) {
	switch cfg.Backend {
	case config.BackendJSON:
		return storage.NewFileKV(cfg.BaseDir)
	default:
		kv, err := storage.NewSQLiteKV(filepath.Join(cfg.BaseDir, "taskpad.db"))
		if err != nil {
			return nil, err
		}
		if n, err := storage.MigrateFromJSON(cfg.BaseDir, kv); err != nil {
			fmt.Fprintf(os.Stderr, "warning: migrate json storage: %v\n", err)
		} else if n > 0 {
			fmt.Println(i18n.T("startup.migrated", n))
		}
		return kv, nil
	}
}
