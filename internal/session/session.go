// Package session 管理本地登录会话：无服务端，仅持久化邮箱身份
// Package session manages the local sign-in session: no server side,
// only the email identity is persisted
package session

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"time"

	"taskpad/internal/storage"
)

var (
	// ErrEmptyEmail 邮箱为空 / the submitted email is empty
	ErrEmptyEmail = errors.New("email is required")
	// ErrInvalidEmail 邮箱格式不合法 / the submitted email is malformed
	ErrInvalidEmail = errors.New("email is invalid")
)

// emailPattern 宽松校验：非空本地部分、@、带点的域名
// emailPattern is a permissive check: non-empty local part, @, dotted domain
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Session 当前登录会话 / the current signed-in session
type Session struct {
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store 在 KV 的 session 槽上读写会话
// Store reads and writes the session through the KV session slot
type Store struct {
	kv    storage.KV
	clock func() time.Time
}

func NewStore(kv storage.KV) *Store {
	return &Store{kv: kv, clock: time.Now}
}

// WithClock 测试用时钟注入 / clock injection for tests
func (s *Store) WithClock(clock func() time.Time) *Store {
	s.clock = clock
	return s
}

// SignIn 校验邮箱并持久化新会话。任何已有会话被覆盖。
// SignIn validates the email and persists a fresh session, replacing any
// existing one.
func (s *Store) SignIn(email string) (Session, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return Session{}, ErrEmptyEmail
	}
	if !emailPattern.MatchString(email) {
		return Session{}, ErrInvalidEmail
	}

	sess := Session{Email: email, CreatedAt: s.clock()}
	raw, err := json.Marshal(sess)
	if err != nil {
		return Session{}, err
	}
	if err := s.kv.Set(storage.KeySession, raw); err != nil {
		return Session{}, err
	}
	return sess, nil
}

// SignOut 清除会话槽。任务与活动数据保留。
// SignOut clears the session slot. Task and activity data stay untouched.
func (s *Store) SignOut() error {
	return s.kv.Delete(storage.KeySession)
}

// Current 返回已持久化的会话。槽缺失、读取失败或载荷损坏都按未登录处理。
// Current returns the persisted session. A missing slot, a read failure, or a
// corrupt payload all count as signed out.
func (s *Store) Current() (Session, bool) {
	raw, ok, err := s.kv.Get(storage.KeySession)
	if err != nil || !ok {
		return Session{}, false
	}
	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil || sess.Email == "" {
		return Session{}, false
	}
	return sess, true
}
