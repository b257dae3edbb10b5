package astro

import (
	"math"
	"time"
)

// MoonPhase is the coarse four-way lunar bucket used for content tagging.
type MoonPhase string

const (
	MoonNew    MoonPhase = "new"
	MoonWaxing MoonPhase = "waxing"
	MoonFull   MoonPhase = "full"
	MoonWaning MoonPhase = "waning"
)

// Synodic month length in days and the Julian Day of a reference new moon
// (2000-01-06).
const (
	synodicMonth = 29.530588853
	newMoonEpoch = 2451550.1
)

// Bucket thresholds in days into the synodic cycle.
const (
	newThreshold    = 1.84566
	waxingThreshold = 7.38264
	fullThreshold   = 14.76528
	waningThreshold = 22.14792
)

// julianDay converts a calendar date to its Julian Day Number at midnight,
// with the standard month<3 adjustment and Gregorian correction.
func julianDay(year, month, day int) float64 {
	if month < 3 {
		year--
		month += 12
	}
	a := year / 100
	b := 2 - a + a/4
	return math.Floor(365.25*float64(year+4716)) +
		math.Floor(30.6001*float64(month+1)) +
		float64(day) + float64(b) - 1524.5
}

// PhaseDay returns how many days the date sits into the current synodic
// cycle, in [0, synodicMonth).
func PhaseDay(date time.Time) float64 {
	jd := julianDay(date.Year(), int(date.Month()), date.Day())
	b := (jd - newMoonEpoch) / synodicMonth
	return (b - math.Floor(b)) * synodicMonth
}

// Phase buckets the date into one of the four named phases.
func Phase(date time.Time) MoonPhase {
	d := PhaseDay(date)
	switch {
	case d < newThreshold:
		return MoonNew
	case d < waxingThreshold:
		return MoonWaxing
	case d < fullThreshold:
		return MoonFull
	case d < waningThreshold:
		return MoonWaning
	default:
		return MoonNew
	}
}

var phaseNames = [8]string{
	"New Moon",
	"Waxing Crescent",
	"First Quarter",
	"Waxing Gibbous",
	"Full Moon",
	"Waning Gibbous",
	"Last Quarter",
	"Waning Crescent",
}

// PhaseDetails is the finer-grained descriptor derived from the same phase
// fraction as Phase, so the two surfaces always agree.
type PhaseDetails struct {
	Name   string    // eight-way descriptor, e.g. "Waxing Gibbous"
	Index  int       // whole days into the cycle, 0-29
	Bucket MoonPhase // four-way bucket for the same date
}

// Details computes the eight-way phase name and 0-29 index for a date.
func Details(date time.Time) PhaseDetails {
	d := PhaseDay(date)
	segment := int(math.Floor(d/synodicMonth*8+0.5)) % 8
	return PhaseDetails{
		Name:   phaseNames[segment],
		Index:  int(d) % 30,
		Bucket: Phase(date),
	}
}

var phaseEmoji = map[MoonPhase]string{
	MoonNew:    "🌑",
	MoonWaxing: "🌒",
	MoonFull:   "🌕",
	MoonWaning: "🌘",
}

// Emoji returns the glyph for a phase bucket.
func Emoji(phase MoonPhase) string {
	return phaseEmoji[phase]
}
