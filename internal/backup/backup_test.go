package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/astroflow/astroflow/internal/storage"
)

func writeJSONStorage(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "astroflow.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write storage file: %v", err)
	}
	return path
}

func TestCreate_JSON(t *testing.T) {
	path := writeJSONStorage(t, t.TempDir(), `{"version":1,"values":{}}`)
	m := NewManager(path)

	backupPath, err := m.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if !strings.HasPrefix(filepath.Base(backupPath), BackupFilePrefix) {
		t.Errorf("backup name = %s", filepath.Base(backupPath))
	}
	if !strings.HasSuffix(backupPath, ".json") {
		t.Errorf("backup suffix mismatch: %s", backupPath)
	}

	data, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}
	if string(data) != `{"version":1,"values":{}}` {
		t.Errorf("backup content = %s", data)
	}
}

func TestCreate_MissingStorage(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := m.Create(); err == nil {
		t.Error("Create succeeded without a storage file")
	}
}

func TestList_NewestFirst(t *testing.T) {
	dir := t.TempDir()
	path := writeJSONStorage(t, dir, `{}`)
	m := NewManager(path)

	// fabricate snapshots with known timestamps
	if err := os.MkdirAll(m.BackupDir(), 0700); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	for _, stamp := range []string{"20250301-0900", "20250303-0900", "20250302-0900"} {
		name := BackupFilePrefix + stamp + ".json"
		if err := os.WriteFile(filepath.Join(m.BackupDir(), name), []byte(`{}`), 0600); err != nil {
			t.Fatalf("failed to write snapshot: %v", err)
		}
	}

	backups, err := m.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("len(backups) = %d, want 3", len(backups))
	}
	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Errorf("backups not sorted newest first: %v", backups)
		}
	}
}

func TestList_IgnoresForeignFiles(t *testing.T) {
	path := writeJSONStorage(t, t.TempDir(), `{}`)
	m := NewManager(path)

	if err := os.MkdirAll(m.BackupDir(), 0700); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	for _, name := range []string{"notes.txt", "astroflow-garbage.json", BackupFilePrefix + "20250301-0900.json"} {
		if err := os.WriteFile(filepath.Join(m.BackupDir(), name), []byte(`{}`), 0600); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
	}

	backups, err := m.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) != 1 {
		t.Errorf("len(backups) = %d, want 1", len(backups))
	}
}

func TestRestore_JSON(t *testing.T) {
	dir := t.TempDir()
	path := writeJSONStorage(t, dir, `{"version":1,"values":{"af_profile":{}}}`)
	m := NewManager(path)

	backupPath, err := m.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// wreck the live file, then restore
	if err := os.WriteFile(path, []byte(`{"version":1,"values":{}}`), 0600); err != nil {
		t.Fatalf("failed to overwrite storage: %v", err)
	}
	if err := m.Restore(backupPath); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read storage: %v", err)
	}
	if string(data) != `{"version":1,"values":{"af_profile":{}}}` {
		t.Errorf("restored content = %s", data)
	}
}

func TestRestore_RejectsInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeJSONStorage(t, dir, `{}`)
	m := NewManager(path)

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("not json"), 0600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if err := m.Restore(bad); err == nil {
		t.Error("Restore accepted an invalid snapshot")
	}
}

func TestCreateAndRestore_SQLite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "astroflow.db")

	b := storage.NewSQLiteBackend(path)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := b.Set(storage.KeyProfile, []byte(`{"onboardingDone":true}`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	m := NewManager(path)
	backupPath, err := m.Create()
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := m.Restore(backupPath); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}

	reopened := storage.NewSQLiteBackend(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load after restore failed: %v", err)
	}
	defer reopened.Close()

	value, ok, err := reopened.Get(storage.KeyProfile)
	if err != nil || !ok {
		t.Fatalf("Get after restore: ok=%t err=%v", ok, err)
	}
	if string(value) != `{"onboardingDone":true}` {
		t.Errorf("value = %s", value)
	}
}

func TestRotation(t *testing.T) {
	path := writeJSONStorage(t, t.TempDir(), `{}`)
	m := NewManager(path)

	if err := os.MkdirAll(m.BackupDir(), 0700); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}
	// seed more snapshots than the retention limit
	for i := 0; i < MaxBackups+3; i++ {
		name := fmt.Sprintf("%s202503%02d-0900.json", BackupFilePrefix, i+1)
		if err := os.WriteFile(filepath.Join(m.BackupDir(), name), []byte(`{}`), 0600); err != nil {
			t.Fatalf("failed to write snapshot: %v", err)
		}
	}

	if _, err := m.Create(); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	backups, err := m.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(backups) > MaxBackups {
		t.Errorf("len(backups) = %d, want at most %d", len(backups), MaxBackups)
	}
}
