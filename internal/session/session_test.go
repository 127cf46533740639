package session

import (
	"errors"
	"testing"
	"time"

	"taskpad/internal/storage"
)

func newTestKV(t *testing.T) storage.KV {
	t.Helper()
	kv, err := storage.NewFileKV(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileKV: %v", err)
	}
	return kv
}

func TestSignIn(t *testing.T) {
	s := NewStore(newTestKV(t)).WithClock(func() time.Time {
		return time.Date(2024, 4, 26, 8, 0, 0, 0, time.UTC)
	})

	sess, err := s.SignIn("  alice@example.com  ")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if sess.Email != "alice@example.com" {
		t.Fatalf("Email=%q, want trimmed", sess.Email)
	}

	got, ok := s.Current()
	if !ok || got.Email != sess.Email || !got.CreatedAt.Equal(sess.CreatedAt) {
		t.Fatalf("Current=%+v ok=%v", got, ok)
	}
}

func TestSignIn_Validation(t *testing.T) {
	s := NewStore(newTestKV(t))

	cases := []struct {
		email string
		want  error
	}{
		{"", ErrEmptyEmail},
		{"   ", ErrEmptyEmail},
		{"no-at-sign", ErrInvalidEmail},
		{"two@@example.com", ErrInvalidEmail},
		{"dotless@domain", ErrInvalidEmail},
		{"has space@example.com", ErrInvalidEmail},
	}
	for _, c := range cases {
		if _, err := s.SignIn(c.email); !errors.Is(err, c.want) {
			t.Fatalf("SignIn(%q)=%v, want %v", c.email, err, c.want)
		}
	}
	if _, ok := s.Current(); ok {
		t.Fatal("rejected sign-in must not persist a session")
	}
}

func TestSignOut(t *testing.T) {
	s := NewStore(newTestKV(t))
	if _, err := s.SignIn("bob@example.com"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if err := s.SignOut(); err != nil {
		t.Fatalf("SignOut: %v", err)
	}
	if _, ok := s.Current(); ok {
		t.Fatal("session must be gone after sign-out")
	}
	// 重复登出无害 / a second sign-out is harmless
	if err := s.SignOut(); err != nil {
		t.Fatalf("repeat SignOut: %v", err)
	}
}

func TestCurrent_CorruptPayload(t *testing.T) {
	kv := newTestKV(t)
	_ = kv.Set(storage.KeySession, []byte(`{broken`))

	if _, ok := NewStore(kv).Current(); ok {
		t.Fatal("corrupt payload must read as signed out")
	}
}
