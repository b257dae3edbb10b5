package insight

import "github.com/astroflow/astroflow/internal/models"

// Analysis summarizes the synchronicity journal.
type Analysis struct {
	BestHour  int     // local hour of day with the most sightings
	TopNumber string  // most frequent numberSeen value, empty when none recorded
	ByHour    [24]int // sighting counts per local hour
	Total     int
}

// AnalyzeSynchros buckets records into 24 hourly slots by the local hour of
// each timestamp. Ties on best hour go to the lowest hour index; ties on
// top number go to the lexicographically smaller string. Returns false when
// there are no records.
func AnalyzeSynchros(items []models.Synchro) (Analysis, bool) {
	if len(items) == 0 {
		return Analysis{}, false
	}

	a := Analysis{Total: len(items)}
	numbers := make(map[string]int)
	for _, s := range items {
		a.ByHour[s.TS.Local().Hour()]++
		if s.NumberSeen != "" {
			numbers[s.NumberSeen]++
		}
	}

	best := 0
	for hour, count := range a.ByHour {
		if count > a.ByHour[best] {
			best = hour
		}
	}
	a.BestHour = best

	topCount := 0
	for number, count := range numbers {
		if count > topCount || (count == topCount && number < a.TopNumber) {
			a.TopNumber = number
			topCount = count
		}
	}

	return a, true
}
