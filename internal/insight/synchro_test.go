package insight

import (
	"testing"
	"time"

	"github.com/astroflow/astroflow/internal/models"
)

func at(hour int) time.Time {
	return time.Date(2025, 3, 10, hour, 30, 0, 0, time.Local)
}

func TestAnalyzeSynchros_Empty(t *testing.T) {
	if _, ok := AnalyzeSynchros(nil); ok {
		t.Error("AnalyzeSynchros(nil) reported results")
	}
}

func TestAnalyzeSynchros_BestHour(t *testing.T) {
	items := []models.Synchro{
		{TS: at(9)},
		{TS: at(14)},
		{TS: at(14)},
		{TS: at(21)},
	}

	a, ok := AnalyzeSynchros(items)
	if !ok {
		t.Fatal("no analysis returned")
	}
	if a.BestHour != 14 {
		t.Errorf("BestHour = %d, want 14", a.BestHour)
	}
	if a.Total != 4 {
		t.Errorf("Total = %d, want 4", a.Total)
	}
}

func TestAnalyzeSynchros_BestHourTieGoesToLowest(t *testing.T) {
	items := []models.Synchro{
		{TS: at(20)},
		{TS: at(8)},
	}

	a, _ := AnalyzeSynchros(items)
	if a.BestHour != 8 {
		t.Errorf("BestHour = %d, want lowest tied hour 8", a.BestHour)
	}
}

func TestAnalyzeSynchros_TopNumber(t *testing.T) {
	items := []models.Synchro{
		{TS: at(9), NumberSeen: "11:11"},
		{TS: at(10), NumberSeen: "11:11"},
		{TS: at(11), NumberSeen: "333"},
		{TS: at(12)},
	}

	a, _ := AnalyzeSynchros(items)
	if a.TopNumber != "11:11" {
		t.Errorf("TopNumber = %q, want 11:11", a.TopNumber)
	}
}

func TestAnalyzeSynchros_TopNumberTieIsLexicographic(t *testing.T) {
	items := []models.Synchro{
		{TS: at(9), NumberSeen: "444"},
		{TS: at(10), NumberSeen: "222"},
	}

	a, _ := AnalyzeSynchros(items)
	if a.TopNumber != "222" {
		t.Errorf("TopNumber = %q, want lexicographically smaller 222", a.TopNumber)
	}
}

func TestAnalyzeSynchros_NoNumbers(t *testing.T) {
	items := []models.Synchro{{TS: at(9)}}

	a, ok := AnalyzeSynchros(items)
	if !ok {
		t.Fatal("no analysis returned")
	}
	if a.TopNumber != "" {
		t.Errorf("TopNumber = %q, want empty", a.TopNumber)
	}
}
