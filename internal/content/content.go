// Package content serves the embedded quote/nudge/prompt catalog, filtered
// by energy level and moon phase.
package content

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/astroflow/astroflow/internal/astro"
	"github.com/astroflow/astroflow/internal/models"
)

//go:embed content.json
var contentData []byte

// Tags narrow catalog items to an energy level and/or moon phase.
type Tags struct {
	Energy models.Energy   `json:"energy,omitempty"`
	Phase  astro.MoonPhase `json:"phase,omitempty"`
}

// Item is one tagged catalog entry.
type Item struct {
	Text string `json:"text"`
	Tags Tags   `json:"tags"`
}

type catalog struct {
	Quotes            []Item   `json:"quotes"`
	Nudges            []Item   `json:"nudges"`
	ReflectionPrompts []string `json:"reflectionPrompts"`
}

// Service picks quotes, nudges, and reflection prompts from the catalog.
type Service struct {
	quotes  []Item
	nudges  []Item
	prompts []string
	rng     *rand.Rand
}

// New loads the embedded catalog.
func New() (*Service, error) {
	return NewWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand loads the embedded catalog with a caller-controlled random
// source, used by tests.
func NewWithRand(rng *rand.Rand) (*Service, error) {
	var c catalog
	if err := json.Unmarshal(contentData, &c); err != nil {
		return nil, fmt.Errorf("failed to parse embedded content: %w", err)
	}
	return &Service{
		quotes:  c.Quotes,
		nudges:  c.Nudges,
		prompts: c.ReflectionPrompts,
		rng:     rng,
	}, nil
}

// Quote returns a quote matching the filters, falling back to phase-only
// matches for the current phase, then to the whole catalog.
func (s *Service) Quote(filters Tags, now time.Time) string {
	currentPhase := astro.Phase(now)

	var matches []Item
	for _, q := range s.quotes {
		if filters.Energy != "" && q.Tags.Energy != filters.Energy {
			continue
		}
		if filters.Phase != "" && q.Tags.Phase != filters.Phase {
			continue
		}
		matches = append(matches, q)
	}

	phase := filters.Phase
	if phase == "" {
		phase = currentPhase
	}
	var phaseMatches []Item
	for _, q := range s.quotes {
		if q.Tags.Phase == phase {
			phaseMatches = append(phaseMatches, q)
		}
	}

	pool := s.quotes
	if len(matches) > 0 {
		pool = matches
	} else if len(phaseMatches) > 0 {
		pool = phaseMatches
	}
	return pool[s.rng.Intn(len(pool))].Text
}

// Nudge returns a nudge for the energy level, or any nudge when no tag
// matches.
func (s *Service) Nudge(energy models.Energy) string {
	var matches []Item
	if energy != "" {
		for _, n := range s.nudges {
			if n.Tags.Energy == energy {
				matches = append(matches, n)
			}
		}
	}

	pool := s.nudges
	if len(matches) > 0 {
		pool = matches
	}
	return pool[s.rng.Intn(len(pool))].Text
}

// ReflectionPrompt returns a random evening reflection prompt.
func (s *Service) ReflectionPrompt() string {
	return s.prompts[s.rng.Intn(len(s.prompts))]
}
