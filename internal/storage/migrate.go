package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// MigrateFromJSON 将旧版 JSON 槽位文件迁移到 SQLite。
// 已存在的 SQLite 槽位不会被覆盖，因此迁移是幂等的。
// MigrateFromJSON migrates legacy JSON slot files into SQLite.
// Existing SQLite slots are never overwritten, so migration is idempotent.
func MigrateFromJSON(jsonDir string, kv *SQLiteKV) (int, error) {
	if jsonDir == "" {
		return 0, nil
	}
	if _, err := os.Stat(jsonDir); err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("stat json dir: %w", err)
	}

	migrated := 0
	for _, key := range []string{KeySession, KeyTasks, KeyActivity, KeyTheme} {
		path := filepath.Join(jsonDir, key+".json")
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			fmt.Fprintf(os.Stderr, "skip migrate %s: %v\n", path, err)
			continue
		}

		// 检查是否已迁移 / Check if already migrated
		if _, ok, _ := kv.Get(key); ok {
			continue
		}
		if err := kv.Set(key, data); err != nil {
			fmt.Fprintf(os.Stderr, "migrate %s failed: %v\n", key, err)
			continue
		}
		migrated++
	}
	return migrated, nil
}
