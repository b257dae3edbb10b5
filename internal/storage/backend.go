package storage

// Keys used by the daily state store. Day entries get one key per calendar
// date so a backend never has to rewrite the whole history for one day.
const (
	KeyProfile  = "af_profile"
	KeyStreaks  = "af_streaks"
	KeyBadges   = "af_badges"
	KeySynchros = "af_synchros"
	KeyRituals  = "af_rituals"
	KeySettings = "af_settings"

	DayKeyPrefix = "af_day_"
)

// DayKey returns the backend key for a YYYY-MM-DD date.
func DayKey(date string) string {
	return DayKeyPrefix + date
}

// Backend is the persistence contract consumed by the store: an opaque
// string-keyed value store with no knowledge of the schema above it.
type Backend interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// KV
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Keys(prefix string) ([]string, error)

	// Utils
	ConfigPath() string
}
