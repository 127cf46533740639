package store

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 250 * time.Millisecond

// Watch 监听持久化位置上的外部写入，去抖后通过 ReloadFromStorage 吸收变更
// （多端编辑恢复）。阻塞直到 ctx 取消；onReload 在每次重载后收到其结果，
// 可为 nil。自身写入触发的事件同样会引起一次重载，结果与内存状态一致，无害。
// Watch observes external writes at the persistence location and, after a
// debounce, absorbs them via ReloadFromStorage (multi-surface editing
// recovery). Blocks until ctx is cancelled; onReload, which may be nil,
// receives each reload result. Events caused by our own writes also trigger
// a reload; it resolves to the state already in memory and is harmless.
func (s *Store) Watch(ctx context.Context, debounce time.Duration, onReload func(error)) error {
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	// SQLite 后端的 Path 是文件，监听其所在目录以捕获重建与 -wal 写入
	// The SQLite backend's Path is a file; watch its directory to catch
	// recreation and -wal writes
	dir := s.kv.Path()
	if fi, statErr := os.Stat(dir); statErr == nil && !fi.IsDir() {
		dir = filepath.Dir(dir)
	}
	if err := fsw.Add(dir); err != nil {
		return err
	}

	var timer *time.Timer
	var timerC <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			// 去抖：等待写入平息后再重载 / Debounce: reload once writes settle
			if timer == nil {
				timer = time.NewTimer(debounce)
				timerC = timer.C
			} else {
				timer.Reset(debounce)
			}
		case <-timerC:
			timer = nil
			timerC = nil
			err := s.ReloadFromStorage()
			if onReload != nil {
				onReload(err)
			}
		case _, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
		}
	}
}
