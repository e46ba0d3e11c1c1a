// Package picker selects the next achievement to pursue from a game's
// reconciled achievement set.
package picker

import (
	"github.com/cheevodev/cheevo/internal/models"
)

// Selector chooses zero or one achievement from a candidate set. The
// ranking strategy is deliberately pluggable; callers only depend on this
// contract.
type Selector interface {
	Pick(candidates []models.Achievement) *models.Achievement
}

// Default picks the first unearned achievement in stored order that was
// not recently recommended, so repeated invocations rotate through the
// backlog instead of repeating one suggestion. Deterministic for a given
// candidate set and pick history.
type Default struct {
	recent map[string]bool
}

// New creates the default selector. recentNames are achievement API names
// to avoid, typically the last few ledger entries for the game.
func New(recentNames []string) *Default {
	recent := make(map[string]bool, len(recentNames))
	for _, name := range recentNames {
		recent[name] = true
	}
	return &Default{recent: recent}
}

// Pick returns the recommendation, or nil when every candidate is either
// achieved or was recently picked.
func (d *Default) Pick(candidates []models.Achievement) *models.Achievement {
	var fallback *models.Achievement
	for i := range candidates {
		c := &candidates[i]
		if c.Achieved {
			continue
		}
		if d.recent[c.APIName] {
			if fallback == nil {
				fallback = c
			}
			continue
		}
		return c
	}
	// Everything unearned was recently picked; repeat the oldest suggestion
	// rather than returning nothing while work remains.
	return fallback
}
