package storage

import (
	"path/filepath"
	"reflect"
	"testing"
)

// backendUnderTest runs the same contract checks against every Backend.
func backendUnderTest(t *testing.T, name string, open func(t *testing.T) Backend) {
	t.Run(name+"/SetGet", func(t *testing.T) {
		b := open(t)
		defer b.Close()

		if err := b.Set(KeyProfile, []byte(`{"onboardingDone":true}`)); err != nil {
			t.Fatalf("Set failed: %v", err)
		}

		value, ok, err := b.Get(KeyProfile)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !ok {
			t.Fatal("key reported absent after Set")
		}
		if string(value) != `{"onboardingDone":true}` {
			t.Errorf("value = %s", value)
		}
	})

	t.Run(name+"/GetAbsent", func(t *testing.T) {
		b := open(t)
		defer b.Close()

		_, ok, err := b.Get("af_missing")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if ok {
			t.Error("absent key reported present")
		}
	})

	t.Run(name+"/Overwrite", func(t *testing.T) {
		b := open(t)
		defer b.Close()

		if err := b.Set(KeyStreaks, []byte(`{"currentStreak":1}`)); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		if err := b.Set(KeyStreaks, []byte(`{"currentStreak":2}`)); err != nil {
			t.Fatalf("Set failed: %v", err)
		}

		value, _, err := b.Get(KeyStreaks)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if string(value) != `{"currentStreak":2}` {
			t.Errorf("value = %s, want last write", value)
		}
	})

	t.Run(name+"/KeysByPrefix", func(t *testing.T) {
		b := open(t)
		defer b.Close()

		for _, date := range []string{"2025-03-11", "2025-03-10", "2025-03-12"} {
			if err := b.Set(DayKey(date), []byte(`{}`)); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
		}
		if err := b.Set(KeyBadges, []byte(`[]`)); err != nil {
			t.Fatalf("Set failed: %v", err)
		}

		keys, err := b.Keys(DayKeyPrefix)
		if err != nil {
			t.Fatalf("Keys failed: %v", err)
		}
		want := []string{
			DayKey("2025-03-10"),
			DayKey("2025-03-11"),
			DayKey("2025-03-12"),
		}
		if !reflect.DeepEqual(keys, want) {
			t.Errorf("Keys = %v, want %v", keys, want)
		}
	})
}

func TestMemoryBackend(t *testing.T) {
	backendUnderTest(t, "memory", func(t *testing.T) Backend {
		return NewMemoryBackend()
	})
}

func TestJSONBackend(t *testing.T) {
	backendUnderTest(t, "json", func(t *testing.T) Backend {
		b := NewJSONBackend(filepath.Join(t.TempDir(), "astroflow.json"))
		if err := b.Init(); err != nil {
			t.Fatalf("Init failed: %v", err)
		}
		return b
	})
}

func TestSQLiteBackend(t *testing.T) {
	backendUnderTest(t, "sqlite", func(t *testing.T) Backend {
		b := NewSQLiteBackend(filepath.Join(t.TempDir(), "astroflow.db"))
		if err := b.Init(); err != nil {
			t.Fatalf("Init failed: %v", err)
		}
		return b
	})
}

func TestJSONBackend_PersistsAcrossLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "astroflow.json")

	b := NewJSONBackend(path)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := b.Set(KeyProfile, []byte(`{"lowEnergyMode":true}`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	reopened := NewJSONBackend(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	value, ok, err := reopened.Get(KeyProfile)
	if err != nil || !ok {
		t.Fatalf("Get after reopen: ok=%t err=%v", ok, err)
	}
	if string(value) != `{"lowEnergyMode":true}` {
		t.Errorf("value = %s", value)
	}
}

func TestJSONBackend_LoadBeforeInit(t *testing.T) {
	b := NewJSONBackend(filepath.Join(t.TempDir(), "missing.json"))
	if err := b.Load(); err == nil {
		t.Error("Load on uninitialized storage did not fail")
	}
}

func TestJSONBackend_DoubleInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "astroflow.json")

	b := NewJSONBackend(path)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := NewJSONBackend(path).Init(); err == nil {
		t.Error("second Init did not fail")
	}
}

func TestSQLiteBackend_PersistsAcrossLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "astroflow.db")

	b := NewSQLiteBackend(path)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := b.Set(KeySettings, []byte(`{"meditationMinutes":10}`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened := NewSQLiteBackend(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer reopened.Close()

	value, ok, err := reopened.Get(KeySettings)
	if err != nil || !ok {
		t.Fatalf("Get after reopen: ok=%t err=%v", ok, err)
	}
	if string(value) != `{"meditationMinutes":10}` {
		t.Errorf("value = %s", value)
	}
}

func TestSQLiteBackend_LoadBeforeInit(t *testing.T) {
	b := NewSQLiteBackend(filepath.Join(t.TempDir(), "missing.db"))
	if err := b.Load(); err == nil {
		t.Error("Load on uninitialized storage did not fail")
	}
}
