package astro

import "fmt"

// TransitData is the current sign placement of the bodies the alignment
// text draws on.
type TransitData struct {
	Sun     string
	Moon    string
	Mercury string
}

var moodMap = map[string]string{
	"Aries":       "drive and courage",
	"Taurus":      "stability and grounding",
	"Gemini":      "curiosity and expression",
	"Cancer":      "emotion and intuition",
	"Leo":         "confidence and creativity",
	"Virgo":       "focus and refinement",
	"Libra":       "harmony and connection",
	"Scorpio":     "depth and transformation",
	"Sagittarius": "exploration and optimism",
	"Capricorn":   "discipline and achievement",
	"Aquarius":    "innovation and detachment",
	"Pisces":      "compassion and imagination",
}

// AlignmentInsight composes the morning alignment line for a sun sign under
// the given transits.
func AlignmentInsight(sign string, transits TransitData) string {
	coreMood, ok := moodMap[sign]
	if !ok {
		coreMood = "balance and awareness"
	}
	return fmt.Sprintf("Under the %s Sun and %s Moon, focus on your natural themes of %s. Let your actions reflect inner truth.",
		transits.Sun, transits.Moon, coreMood)
}

// CurrentTransits returns fixed placements. A real ephemeris source would
// replace this; remote lookups are out of scope.
func CurrentTransits() TransitData {
	return TransitData{
		Sun:     "Libra",
		Moon:    "Capricorn",
		Mercury: "Scorpio",
	}
}
