package cli

import (
	"testing"
	"time"

	"github.com/astroflow/astroflow/internal/storage"
	"github.com/astroflow/astroflow/internal/store"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

func newBadgeTestStore(t *testing.T, day string) (*store.Store, *fixedClock) {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", day)
	if err != nil {
		t.Fatalf("bad date %q: %v", day, err)
	}
	clock := &fixedClock{now: parsed}
	s := store.New(storage.NewMemoryBackend(), clock)
	if err := s.Open(); err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return s, clock
}

func completeDay(t *testing.T, s *store.Store, day string) {
	t.Helper()
	completed := true
	if err := s.UpdateDayEntry(day, store.DayPatch{EveningCompleted: &completed}); err != nil {
		t.Fatalf("UpdateDayEntry failed: %v", err)
	}
	if err := s.UpdateStreaks(); err != nil {
		t.Fatalf("UpdateStreaks failed: %v", err)
	}
}

func TestAwardStreakBadges_FirstReflection(t *testing.T) {
	s, _ := newBadgeTestStore(t, "2025-03-10")
	completeDay(t, s, "2025-03-10")

	earned, err := awardStreakBadges(s)
	if err != nil {
		t.Fatalf("awardStreakBadges failed: %v", err)
	}
	if len(earned) != 1 || earned[0].ID != "first-reflection" {
		t.Errorf("earned = %+v, want only first-reflection", earned)
	}
}

func TestAwardStreakBadges_NoDoubleAward(t *testing.T) {
	s, _ := newBadgeTestStore(t, "2025-03-10")
	completeDay(t, s, "2025-03-10")

	if _, err := awardStreakBadges(s); err != nil {
		t.Fatalf("awardStreakBadges failed: %v", err)
	}
	earned, err := awardStreakBadges(s)
	if err != nil {
		t.Fatalf("awardStreakBadges failed: %v", err)
	}
	if len(earned) != 0 {
		t.Errorf("second award returned %+v", earned)
	}
	if got := len(s.Badges()); got != 1 {
		t.Errorf("len(badges) = %d, want 1", got)
	}
}

func TestAwardStreakBadges_ThresholdsAccumulate(t *testing.T) {
	s, clock := newBadgeTestStore(t, "2025-03-10")

	day := clock.now
	for i := 0; i < 3; i++ {
		clock.now = day.AddDate(0, 0, i)
		completeDay(t, s, clock.now.Format("2006-01-02"))
		if _, err := awardStreakBadges(s); err != nil {
			t.Fatalf("awardStreakBadges failed: %v", err)
		}
	}

	ids := make(map[string]bool)
	for _, b := range s.Badges() {
		ids[b.ID] = true
	}
	if !ids["first-reflection"] || !ids["streak-3"] {
		t.Errorf("badges = %v, want first-reflection and streak-3", ids)
	}
	if ids["streak-7"] {
		t.Error("streak-7 awarded at 3 days")
	}
}
