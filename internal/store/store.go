package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/astroflow/astroflow/internal/models"
	"github.com/astroflow/astroflow/internal/storage"
)

const dateLayout = "2006-01-02"

// Store is the daily state container: user profile, per-date day entries,
// streak counters, badges, and the synchronicity/ritual journals. All state
// lives in memory and is mirrored to the backend on every mutation. A
// backend write failure leaves the in-memory mutation applied and is
// returned to the caller.
type Store struct {
	backend storage.Backend
	clock   Clock

	profile  models.UserProfile
	days     map[string]models.DayEntry
	streaks  models.Streaks
	badges   []models.Badge
	synchros []models.Synchro
	rituals  []models.Ritual
	settings models.Settings
}

func New(backend storage.Backend, clock Clock) *Store {
	if clock == nil {
		clock = SystemClock
	}
	return &Store{
		backend: backend,
		clock:   clock,
		days:    make(map[string]models.DayEntry),
		badges:  []models.Badge{},
	}
}

// DefaultProfile is the profile a user gets on first load.
func DefaultProfile() models.UserProfile {
	return models.UserProfile{
		OnboardingDone:        false,
		LowEnergyMode:         false,
		NotificationsEnabled:  false,
		MiddayReminderTime:    "11:30",
		EveningReminderTime:   "20:30",
		UseForPersonalization: true,
		ShareToCommunity:      false,
	}
}

// DefaultSettings is the app settings a user gets on first load.
func DefaultSettings() models.Settings {
	return models.Settings{
		MeditationMinutes: 5,
		LunarMode:         false,
	}
}

// DefaultEntry is the empty day entry a date is equivalent to until its
// first write. It is never persisted by reads.
func DefaultEntry(date string) models.DayEntry {
	return models.DayEntry{
		Date:             date,
		Tasks:            []models.DailyTask{},
		Synchronicities:  []string{},
		Gratitude:        []string{},
		EveningCompleted: false,
	}
}

// Init prepares the backend and seeds default state.
func (s *Store) Init() error {
	if err := s.backend.Init(); err != nil {
		return err
	}

	s.profile = DefaultProfile()
	s.settings = DefaultSettings()
	s.streaks = models.Streaks{}
	s.badges = []models.Badge{}

	if err := s.saveProfile(); err != nil {
		return err
	}
	if err := s.saveStreaks(); err != nil {
		return err
	}
	if err := s.saveBadges(); err != nil {
		return err
	}
	return s.saveSettings()
}

// Open loads the full state from the backend. Absent keys fall back to
// defaults so a partially written store still opens.
func (s *Store) Open() error {
	if err := s.backend.Load(); err != nil {
		return err
	}

	s.profile = DefaultProfile()
	if err := s.get(storage.KeyProfile, &s.profile); err != nil {
		return err
	}

	s.streaks = models.Streaks{}
	if err := s.get(storage.KeyStreaks, &s.streaks); err != nil {
		return err
	}

	s.badges = []models.Badge{}
	if err := s.get(storage.KeyBadges, &s.badges); err != nil {
		return err
	}
	if s.badges == nil {
		s.badges = []models.Badge{}
	}

	s.synchros = nil
	if err := s.get(storage.KeySynchros, &s.synchros); err != nil {
		return err
	}

	s.rituals = nil
	if err := s.get(storage.KeyRituals, &s.rituals); err != nil {
		return err
	}

	s.settings = DefaultSettings()
	if err := s.get(storage.KeySettings, &s.settings); err != nil {
		return err
	}

	return s.loadDays()
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// ConfigPath reports where the backend keeps its data.
func (s *Store) ConfigPath() string {
	return s.backend.ConfigPath()
}

func (s *Store) loadDays() error {
	keys, err := s.backend.Keys(storage.DayKeyPrefix)
	if err != nil {
		return err
	}

	s.days = make(map[string]models.DayEntry, len(keys))
	for _, key := range keys {
		var entry models.DayEntry
		if err := s.get(key, &entry); err != nil {
			return err
		}
		date := strings.TrimPrefix(key, storage.DayKeyPrefix)
		entry.Date = date
		s.days[date] = entry
	}
	return nil
}

func (s *Store) get(key string, v interface{}) error {
	data, ok, err := s.backend.Get(key)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return nil
}

func (s *Store) set(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}
	if err := s.backend.Set(key, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *Store) saveProfile() error  { return s.set(storage.KeyProfile, s.profile) }
func (s *Store) saveStreaks() error  { return s.set(storage.KeyStreaks, s.streaks) }
func (s *Store) saveBadges() error   { return s.set(storage.KeyBadges, s.badges) }
func (s *Store) saveSynchros() error { return s.set(storage.KeySynchros, s.synchros) }
func (s *Store) saveRituals() error  { return s.set(storage.KeyRituals, s.rituals) }
func (s *Store) saveSettings() error { return s.set(storage.KeySettings, s.settings) }

func (s *Store) saveDay(entry models.DayEntry) error {
	return s.set(storage.DayKey(entry.Date), entry)
}

func (s *Store) today() string {
	return s.clock.Now().Format(dateLayout)
}

// Profile returns the current user profile.
func (s *Store) Profile() models.UserProfile {
	return s.profile
}

// SetProfile shallow-merges the patch into the profile. Reminder-time
// strings are stored as given; the store does not validate them.
func (s *Store) SetProfile(patch ProfilePatch) error {
	patch.applyTo(&s.profile)
	return s.saveProfile()
}

// Day returns the stored entry for a date, if any.
func (s *Store) Day(date string) (models.DayEntry, bool) {
	entry, ok := s.days[date]
	return entry, ok
}

// TodayEntry returns the stored entry for today, or a default entry that is
// not persisted until a subsequent update.
func (s *Store) TodayEntry() models.DayEntry {
	today := s.today()
	if entry, ok := s.days[today]; ok {
		return entry
	}
	return DefaultEntry(today)
}

// UpdateDayEntry merges the patch over the existing entry for the date,
// synthesizing a default entry first when none is stored. The entry's date
// field is always forced to the given date. Idempotent for identical input.
func (s *Store) UpdateDayEntry(date string, patch DayPatch) error {
	entry, ok := s.days[date]
	if !ok {
		entry = DefaultEntry(date)
	}

	patch.applyTo(&entry)
	entry.Date = date

	s.days[date] = entry
	return s.saveDay(entry)
}

// AddTask appends a task to today's entry, creating the entry if absent.
// No count cap and no id de-duplication; those are UI conventions.
func (s *Store) AddTask(task models.DailyTask) error {
	today := s.today()
	entry, ok := s.days[today]
	if !ok {
		entry = DefaultEntry(today)
	}

	entry.Tasks = append(entry.Tasks, task)
	s.days[today] = entry
	return s.saveDay(entry)
}

// ToggleTask flips the completed flag on the matching task in today's
// entry. No-op when today has no entry or no task matches; other dates are
// never searched.
func (s *Store) ToggleTask(taskID string) error {
	today := s.today()
	entry, ok := s.days[today]
	if !ok {
		return nil
	}

	for i := range entry.Tasks {
		if entry.Tasks[i].ID == taskID {
			entry.Tasks[i].Completed = !entry.Tasks[i].Completed
			s.days[today] = entry
			return s.saveDay(entry)
		}
	}
	return nil
}

// Streaks returns the current streak counters.
func (s *Store) Streaks() models.Streaks {
	return s.streaks
}

// UpdateStreaks advances the streak when today's entry exists and its
// evening reflection is complete; otherwise it leaves state unchanged.
// Re-triggering on a day that already counted keeps the streak as-is, so
// the call is idempotent within a calendar day.
func (s *Store) UpdateStreaks() error {
	now := s.clock.Now()
	today := now.Format(dateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(dateLayout)

	entry, ok := s.days[today]
	if !ok || !entry.EveningCompleted {
		return nil
	}

	newStreak := 1
	switch s.streaks.LastActiveDate {
	case yesterday:
		newStreak = s.streaks.CurrentStreak + 1
	case today:
		newStreak = s.streaks.CurrentStreak
	}

	s.streaks.CurrentStreak = newStreak
	if newStreak > s.streaks.LongestStreak {
		s.streaks.LongestStreak = newStreak
	}
	s.streaks.LastActiveDate = today

	return s.saveStreaks()
}

// Badges returns all earned badges in insertion order.
func (s *Store) Badges() []models.Badge {
	return s.badges
}

// AddBadge inserts the badge unless one with the same id already exists.
// Returns whether the badge was added.
func (s *Store) AddBadge(badge models.Badge) (bool, error) {
	for _, b := range s.badges {
		if b.ID == badge.ID {
			return false, nil
		}
	}

	s.badges = append(s.badges, badge)
	return true, s.saveBadges()
}

// Synchros returns the synchronicity journal in insertion order.
func (s *Store) Synchros() []models.Synchro {
	return s.synchros
}

// AddSynchro appends a synchronicity record.
func (s *Store) AddSynchro(synchro models.Synchro) error {
	s.synchros = append(s.synchros, synchro)
	return s.saveSynchros()
}

// Rituals returns the meditation session log in insertion order.
func (s *Store) Rituals() []models.Ritual {
	return s.rituals
}

// AddRitual appends a meditation session record.
func (s *Store) AddRitual(ritual models.Ritual) error {
	s.rituals = append(s.rituals, ritual)
	return s.saveRituals()
}

// Settings returns the app settings.
func (s *Store) Settings() models.Settings {
	return s.settings
}

// SetSettings shallow-merges the patch into the settings.
func (s *Store) SetSettings(patch SettingsPatch) error {
	patch.applyTo(&s.settings)
	return s.saveSettings()
}

// RecentDays returns up to n stored day entries, newest date first. Stored
// state stays unbounded; this is display-level windowing only.
func (s *Store) RecentDays(n int) []models.DayEntry {
	dates := make([]string, 0, len(s.days))
	for date := range s.days {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	if n > len(dates) {
		n = len(dates)
	}
	entries := make([]models.DayEntry, 0, n)
	for _, date := range dates[:n] {
		entries = append(entries, s.days[date])
	}
	return entries
}
