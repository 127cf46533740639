package store

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"taskpad/internal/analytics"
	"taskpad/internal/storage"
	"taskpad/internal/task"

	"github.com/google/uuid"
)

// ErrEmptyTitle 标题去除空白后为空，变更被拒绝
// ErrEmptyTitle rejects a mutation whose title is empty after trimming
var ErrEmptyTitle = errors.New("task title is empty")

// Store 任务与活动日志的唯一权威状态容器。
// 所有变更经由固定的几个操作进入；每次提交的变更都派生一条不可变活动记录，
// 并在内存提交后写入持久化。写失败不回滚内存状态：运行期内存为准，
// 持久化是尽力而为的持久副本。
// Store is the single source of truth for tasks and the activity log.
// Every mutation flows through a small set of operations; each committed
// mutation derives an immutable activity entry and is written to persistence
// after the in-memory commit. A failed write does not roll back memory:
// in-memory state is authoritative for the running session and persistence
// is best-effort durable.
type Store struct {
	mu     sync.RWMutex
	kv     storage.KV
	clock  func() time.Time
	newID  func() string
	events analytics.Logger

	tasks    []task.Task          // 新建在前 / newest-created-first
	activity []task.ActivityEntry // 新记录在前 / newest-first
	hydrated bool
}

// Option 配置 Store / Option configures a Store
type Option func(*Store)

// WithClock 注入时钟，用于确定性测试
// WithClock injects the clock, for deterministic tests
func WithClock(clock func() time.Time) Option {
	return func(s *Store) { s.clock = clock }
}

// WithIDSource 注入 ID 生成器
// WithIDSource injects the id generator
func WithIDSource(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithAnalytics 注入埋点器 / WithAnalytics injects the event logger
func WithAnalytics(l analytics.Logger) Option {
	return func(s *Store) { s.events = l }
}

// New 创建未水化的空 Store
// New creates an empty, not-yet-hydrated Store
func New(kv storage.KV, opts ...Option) *Store {
	s := &Store{
		kv:     kv,
		clock:  time.Now,
		newID:  uuid.NewString,
		events: analytics.Nop{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Hydrate 从持久化加载任务与活动（两次独立读取）。缺失或损坏的槽位退化为
// 空集合而不是阻塞启动；无论如何水化都会完成并置 hydrated。返回值仅供调用
// 方记录，不代表水化失败。调用方必须在接受首个变更之前完成水化（时序契约，
// Store 自身不强制）。
// Hydrate loads tasks and activity from persistence (two independent reads).
// A missing or malformed slot degrades to an empty collection instead of
// blocking startup; hydration always completes and marks the store hydrated.
// The returned error is advisory only. Callers must finish hydration before
// accepting the first mutation (a sequencing contract, not enforced here).
func (s *Store) Hydrate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error
	s.tasks = nil
	if data, ok, err := s.kv.Get(storage.KeyTasks); err != nil {
		firstErr = err
	} else if ok {
		if err := json.Unmarshal(data, &s.tasks); err != nil {
			s.tasks = nil
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	s.activity = nil
	if data, ok, err := s.kv.Get(storage.KeyActivity); err != nil {
		if firstErr == nil {
			firstErr = err
		}
	} else if ok {
		if err := json.Unmarshal(data, &s.activity); err != nil {
			s.activity = nil
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	s.hydrated = true
	return firstErr
}

// Hydrated 是否已完成一次性水化 / Hydrated reports whether one-time hydration finished
func (s *Store) Hydrated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hydrated
}

// AddTask 校验标题非空后创建任务：生成唯一 ID，createdAt=updatedAt=now，
// 未设字段取默认值，插入集合头部并派生 create 活动记录。返回新任务 ID。
// AddTask validates the title, then creates the task: a fresh unique id,
// createdAt=updatedAt=now, defaults for unset fields, insertion at the front
// of the collection, and a derived create activity entry. Returns the new id.
func (s *Store) AddTask(d task.Draft) (string, error) {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return "", ErrEmptyTitle
	}

	s.mu.Lock()
	now := s.clock()
	t := task.Task{
		ID:          s.newID(),
		Title:       title,
		Description: strings.TrimSpace(d.Description),
		Priority:    task.NormalizePriority(d.Priority),
		Status:      task.NormalizeStatus(d.Status),
		Tags:        append([]string{}, d.Tags...),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if d.DueDate != nil {
		due := *d.DueDate
		t.DueDate = &due
	}

	s.tasks = append([]task.Task{t}, s.tasks...)
	s.prependActivity(recordActivity(s.newID(), task.ActivityCreate, t.ID, now, t.Title, nil))
	s.persistLocked()
	s.mu.Unlock()

	s.events.Log("task_created", map[string]any{"id": t.ID})
	return t.ID, nil
}

// UpdateTask 将显式变更集合并进已有任务。未知 ID 返回 false 且无变更；
// 变更标题为空白时拒绝。成功时刷新 updatedAt 并派生带变更字段集的 update 记录。
// UpdateTask merges an explicit changeset into an existing task. An unknown id
// returns false with no state change; a whitespace-only new title is rejected.
// On success updatedAt refreshes and an update entry records the changed fields.
func (s *Store) UpdateTask(id string, ch task.Changes) (bool, error) {
	if ch.Title != nil {
		trimmed := strings.TrimSpace(*ch.Title)
		if trimmed == "" {
			return false, ErrEmptyTitle
		}
		ch.Title = &trimmed
	}
	if ch.Description != nil {
		trimmed := strings.TrimSpace(*ch.Description)
		ch.Description = &trimmed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return false, nil
	}

	now := s.clock()
	updated := ch.Apply(s.tasks[i])
	updated.UpdatedAt = now
	s.tasks[i] = updated

	s.prependActivity(recordActivity(s.newID(), task.ActivityUpdate, id, now, updated.Title, ch.Fields()))
	s.persistLocked()
	return true, nil
}

// ToggleComplete 在 Todo/Done 之间翻转状态（两态切换，非通用状态机），
// 按结果状态派生 complete 或 reopen 记录。未知 ID 返回 false。
// ToggleComplete flips status between Todo and Done (a two-state toggle, not a
// general status machine) and derives a complete or reopen entry depending on
// the resulting status. Unknown ids return false.
func (s *Store) ToggleComplete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return false
	}

	now := s.clock()
	next := task.StatusDone
	typ := task.ActivityComplete
	if s.tasks[i].Status == task.StatusDone {
		next = task.StatusTodo
		typ = task.ActivityReopen
	}
	s.tasks[i].Status = next
	s.tasks[i].UpdatedAt = now

	s.prependActivity(recordActivity(s.newID(), typ, id, now, s.tasks[i].Title, nil))
	s.persistLocked()
	return true
}

// DeleteTask 从集合移除任务并派生 delete 记录。记录携带尽力而为的标题快照
// （任务不存在时为空串），且即便任务已不存在也会保留——活动从不要求能
// 关联回任务。返回任务是否确实被找到并移除。
// DeleteTask removes the task and derives a delete entry. The entry carries a
// best-effort title snapshot (empty when the task was absent) and is retained
// even though the task is gone: activity never requires a resolvable join.
// Returns whether a task was actually found and removed.
func (s *Store) DeleteTask(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	title := ""
	found := false
	i := s.indexLocked(id)
	if i >= 0 {
		title = s.tasks[i].Title
		s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
		found = true
	}

	s.prependActivity(recordActivity(s.newID(), task.ActivityDelete, id, s.clock(), title, nil))
	s.persistLocked()
	return found
}

// ReloadFromStorage 重新读取任务槽位并整体替换内存集合，用于吸收外部修改
// （多端编辑）。不重载活动，也不为重载本身追加活动记录。
// ReloadFromStorage re-reads the tasks slot and replaces the in-memory
// collection wholesale, absorbing external edits (multi-surface editing).
// It does not reload activity and appends no activity entry for the reload.
func (s *Store) ReloadFromStorage() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok, err := s.kv.Get(storage.KeyTasks)
	if err != nil {
		return err
	}
	if !ok {
		s.tasks = nil
		return nil
	}
	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return err
	}
	s.tasks = tasks
	return nil
}

// Tasks 返回任务集合的副本，迭代顺序为新建在前
// Tasks returns a copy of the collection in newest-created-first order
func (s *Store) Tasks() []task.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]task.Task(nil), s.tasks...)
}

// Activity 返回活动序列的副本，新记录在前
// Activity returns a copy of the activity sequence, newest-first
func (s *Store) Activity() []task.ActivityEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]task.ActivityEntry(nil), s.activity...)
}

// ActivityForTask 返回指向给定任务的全部活动记录（任务可能已删除）
// ActivityForTask returns all entries referencing the task (it may be deleted)
func (s *Store) ActivityForTask(taskID string) []task.ActivityEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var entries []task.ActivityEntry
	for _, e := range s.activity {
		if e.TaskID == taskID {
			entries = append(entries, e)
		}
	}
	return entries
}

// Find 按 ID 查找任务 / Find looks up a task by id
func (s *Store) Find(id string) (task.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexLocked(id); i >= 0 {
		return s.tasks[i], true
	}
	return task.Task{}, false
}

func (s *Store) indexLocked(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) prependActivity(e task.ActivityEntry) {
	s.activity = append([]task.ActivityEntry{e}, s.activity...)
}

// persistLocked 将两个集合写入各自槽位：两次独立写入，槽位间无原子性。
// 写失败不重试、不上报——持久化在本设计中是尽力而为的。
// persistLocked writes both collections to their slots: two independent
// writes with no cross-slot atomicity. Failures are neither retried nor
// surfaced; persistence is best-effort in this design.
func (s *Store) persistLocked() {
	if data, err := json.Marshal(s.tasks); err == nil {
		_ = s.kv.Set(storage.KeyTasks, data)
	}
	if data, err := json.Marshal(s.activity); err == nil {
		_ = s.kv.Set(storage.KeyActivity, data)
	}
}
