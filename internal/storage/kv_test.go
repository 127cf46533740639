package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestSQLite(t *testing.T) *SQLiteKV {
	t.Helper()
	kv, err := NewSQLiteKV(filepath.Join(t.TempDir(), "taskpad.db"))
	if err != nil {
		t.Fatalf("NewSQLiteKV: %v", err)
	}
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

func newTestFile(t *testing.T) *FileKV {
	t.Helper()
	kv, err := NewFileKV(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileKV: %v", err)
	}
	return kv
}

func testBackend(t *testing.T, kv KV) {
	// 缺失槽位 / Missing slot
	if _, ok, err := kv.Get(KeyTasks); ok || err != nil {
		t.Fatalf("empty Get: ok=%v err=%v", ok, err)
	}

	// Set + Get 往返 / Set + Get round trip
	payload := []byte(`[{"id":"t1","title":"hello"}]`)
	if err := kv.Set(KeyTasks, payload); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok, err := kv.Get(KeyTasks)
	if err != nil || !ok {
		t.Fatalf("Get after Set: ok=%v err=%v", ok, err)
	}
	if string(got) != string(payload) {
		t.Fatalf("Get=%q, want %q", got, payload)
	}

	// 覆盖写 / Overwrite
	if err := kv.Set(KeyTasks, []byte(`[]`)); err != nil {
		t.Fatalf("overwrite Set: %v", err)
	}
	got, _, _ = kv.Get(KeyTasks)
	if string(got) != `[]` {
		t.Fatalf("overwrite Get=%q, want []", got)
	}

	// Delete 后槽位消失；再次 Delete 不报错
	// Slot gone after Delete; Delete again is not an error
	if err := kv.Delete(KeyTasks); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := kv.Get(KeyTasks); ok {
		t.Fatal("slot should be absent after Delete")
	}
	if err := kv.Delete(KeyTasks); err != nil {
		t.Fatalf("second Delete: %v", err)
	}
}

func TestSQLiteKV(t *testing.T) {
	testBackend(t, newTestSQLite(t))
}

func TestFileKV(t *testing.T) {
	testBackend(t, newTestFile(t))
}

func TestMigrateFromJSON(t *testing.T) {
	jsonDir := t.TempDir()
	for _, key := range []string{KeySession, KeyTasks, KeyTheme} {
		if err := os.WriteFile(filepath.Join(jsonDir, key+".json"), []byte(`{"from":"`+key+`"}`), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	kv := newTestSQLite(t)
	// 已有槽位不被覆盖 / pre-existing slots survive migration
	if err := kv.Set(KeyTheme, []byte(`"dark"`)); err != nil {
		t.Fatal(err)
	}

	n, err := MigrateFromJSON(jsonDir, kv)
	if err != nil {
		t.Fatalf("MigrateFromJSON: %v", err)
	}
	if n != 2 {
		t.Fatalf("migrated=%d, want 2", n)
	}
	got, ok, _ := kv.Get(KeyTasks)
	if !ok || string(got) != `{"from":"tasks"}` {
		t.Fatalf("tasks slot=%q ok=%v", got, ok)
	}
	got, _, _ = kv.Get(KeyTheme)
	if string(got) != `"dark"` {
		t.Fatalf("theme slot overwritten: %q", got)
	}

	// 幂等 / idempotent
	n, err = MigrateFromJSON(jsonDir, kv)
	if err != nil || n != 0 {
		t.Fatalf("second migrate: n=%d err=%v", n, err)
	}
}

func TestMigrateFromJSON_MissingDir(t *testing.T) {
	kv := newTestSQLite(t)
	n, err := MigrateFromJSON(filepath.Join(t.TempDir(), "nope"), kv)
	if err != nil || n != 0 {
		t.Fatalf("missing dir: n=%d err=%v", n, err)
	}
}
