package storage

// 四个独立的持久化槽位，每个槽位是一个自包含的序列化 blob。
// Four independent persistence slots; each holds one self-contained serialized blob.
const (
	KeySession  = "session"
	KeyTasks    = "tasks"
	KeyActivity = "activity"
	KeyTheme    = "theme"
)

// KV 本地键值持久化接口，支持多后端 (SQLite / JSON 文件)。
// 槽位之间没有事务：tasks 与 activity 是两次独立写入。
// KV is the local key-value persistence interface supporting multiple
// backends (SQLite / JSON files). There are no transactions across slots:
// tasks and activity are two independent writes.
type KV interface {
	// Get 返回槽位内容；槽位不存在时 ok 为 false 且无错误
	// Get returns the slot contents; a missing slot yields ok=false and no error
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte) error
	Delete(key string) error

	// Path 返回后端的文件系统位置，用于外部变更监听
	// Path returns the backend's filesystem location, used for external-change watching
	Path() string

	// 生命周期 / Lifecycle
	Close() error
}
