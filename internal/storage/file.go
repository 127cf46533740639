package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileKV JSON 文件后端：每个槽位一个文件，位于 base 目录下。
// 跨平台无 cgo 依赖的最简后端，也是旧版数据格式。
// FileKV is the JSON-file backend: one file per slot under a base directory.
// It is the simplest backend and doubles as the legacy data format.
type FileKV struct {
	dir string
}

// NewFileKV 创建文件后端，目录不存在则创建
// NewFileKV creates the file backend, creating the directory if needed
func NewFileKV(dir string) (*FileKV, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, fmt.Errorf("storage dir is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir %s: %w", dir, err)
	}
	return &FileKV{dir: dir}, nil
}

func (f *FileKV) slotPath(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *FileKV) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.slotPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read %s: %w", f.slotPath(key), err)
	}
	return data, true, nil
}

func (f *FileKV) Set(key string, value []byte) error {
	if err := os.WriteFile(f.slotPath(key), value, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", f.slotPath(key), err)
	}
	return nil
}

func (f *FileKV) Delete(key string) error {
	if err := os.Remove(f.slotPath(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", f.slotPath(key), err)
	}
	return nil
}

// Path 返回槽位文件所在目录 / Path returns the slot file directory
func (f *FileKV) Path() string {
	return f.dir
}

func (f *FileKV) Close() error { return nil }
