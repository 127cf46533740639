package analytics

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger 埋点接口：fire-and-forget，调用方不消费返回值
// Logger is the event logging interface: fire-and-forget, callers consume no result
type Logger interface {
	Log(event string, props map[string]any)
}

// Nop 丢弃所有事件 / Nop discards all events
type Nop struct{}

func (Nop) Log(string, map[string]any) {}

// FileLogger 将事件以 JSONL 追加到本地文件；任何失败都被静默忽略
// FileLogger appends events as JSONL to a local file; every failure is silently ignored
type FileLogger struct {
	mu   sync.Mutex
	path string
}

// NewFileLogger 创建文件埋点器，目录不存在则创建
// NewFileLogger creates a file logger, creating the directory if needed
func NewFileLogger(path string) *FileLogger {
	if dir := filepath.Dir(path); dir != "" {
		_ = os.MkdirAll(dir, 0o755)
	}
	return &FileLogger{path: path}
}

func (l *FileLogger) Log(event string, props map[string]any) {
	record := map[string]any{
		"event":      event,
		"props":      props,
		"created_at": time.Now().UTC().Format(time.RFC3339),
	}
	data, err := json.Marshal(record)
	if err != nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = f.Write(append(data, '\n'))
}
