package insight

import (
	"fmt"
	"strings"
	"time"

	"github.com/astroflow/astroflow/internal/astro"
	"github.com/astroflow/astroflow/internal/models"
)

var signThemes = map[string][3]string{
	"Aries":       {"bold starts", "movement", "direct talk"},
	"Taurus":      {"stability", "comfort", "crafted work"},
	"Gemini":      {"curiosity", "writing", "social check-ins"},
	"Cancer":      {"nurture", "home rituals", "rest"},
	"Leo":         {"creative shine", "play", "sharing"},
	"Virgo":       {"refinement", "health", "service"},
	"Libra":       {"harmony", "collab", "beauty"},
	"Scorpio":     {"depth", "truth", "transformation"},
	"Sagittarius": {"explore", "learn", "big picture"},
	"Capricorn":   {"structure", "achievement", "discipline"},
	"Aquarius":    {"innovation", "community", "ideas"},
	"Pisces":      {"compassion", "dreamwork", "imagination"},
}

// Daily is the dashboard insight for a single day.
type Daily struct {
	Title string
	Body  string
	Recs  []string
}

// Weekly is the dashboard insight for the week ahead.
type Weekly struct {
	Title     string
	Body      string
	FocusDays []string
}

// DailyInsight composes the day's insight text from the sun sign, the most
// recent energy check-in, and the moon phase for the given date.
func DailyInsight(sunSign string, recentEnergy models.Energy, date time.Time) Daily {
	details := astro.Details(date)
	moon := details.Name

	themes, ok := signThemes[sunSign]
	if !ok {
		themes = [3]string{"balance", "clarity", "care"}
	}

	var base string
	switch {
	case strings.Contains(moon, "New"):
		base = "seed intentions"
	case strings.Contains(moon, "First Quarter"):
		base = "take a clean step"
	case strings.Contains(moon, "Full"):
		base = "harvest & share"
	case strings.Contains(moon, "Last Quarter"):
		base = "reflect & release"
	case strings.HasPrefix(moon, "Waxing"):
		base = "build momentum"
	default:
		base = "restore gently"
	}

	var tone string
	switch recentEnergy {
	case models.EnergyLow:
		tone = "choose gentler tasks"
	case models.EnergyHigh:
		tone = "lean into courageous work"
	default:
		tone = "pace yourself with one focused block"
	}

	ritual := "one-line intention"
	if strings.Contains(moon, "Full") {
		ritual = "gratitude list"
	}

	return Daily{
		Title: fmt.Sprintf("Today • %s", moon),
		Body:  fmt.Sprintf("As a %s, favor %s — %s. Also, %s.", sunSign, themes[0], base, tone),
		Recs: []string{
			fmt.Sprintf("Micro-action: 15 minutes on %s.", themes[1]),
			fmt.Sprintf("Ritual: 3-minute breath + %s.", ritual),
		},
	}
}

// WeeklyInsight composes the week's insight text for a sun sign.
func WeeklyInsight(sunSign string) Weekly {
	themes, ok := signThemes[sunSign]
	if !ok {
		themes = [3]string{"alignment", "clarity", "focus"}
	}
	return Weekly{
		Title:     "This Week in Flow",
		Body:      fmt.Sprintf("Center on %s and protect time for %s. Track one small win daily.", themes[0], themes[1]),
		FocusDays: []string{"Tue", "Thu"},
	}
}
