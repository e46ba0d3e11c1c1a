// Package achsync reconciles Steam achievement schema with player
// progress and orchestrates per-game synchronization into the local store.
package achsync

import (
	"time"

	"github.com/cheevodev/cheevo/internal/models"
	"github.com/cheevodev/cheevo/internal/steam"
)

// Merge combines a game's schema with the player's progress into one
// record per achievement API name: a full outer join keyed on the name,
// with progress taking precedence for unlock state. No entry from either
// side is dropped.
//
// Output order is deterministic: schema entries in schema order, then
// progress-only entries in progress order. Position is assigned to match.
func Merge(appID uint, schema []steam.SchemaAchievement, progress []steam.PlayerAchievement) []models.Achievement {
	index := make(map[string]int, len(schema)+len(progress))
	merged := make([]models.Achievement, 0, len(schema)+len(progress))

	for _, s := range schema {
		if _, seen := index[s.Name]; seen {
			continue
		}
		displayName := s.DisplayName
		if displayName == "" {
			displayName = s.Name
		}
		index[s.Name] = len(merged)
		merged = append(merged, models.Achievement{
			GameAppID:   appID,
			APIName:     s.Name,
			DisplayName: displayName,
			Description: s.Description,
		})
	}

	for _, p := range progress {
		achieved := p.Achieved == 1
		unlockedAt := unlockTime(achieved, p.UnlockTime)

		if i, ok := index[p.APIName]; ok {
			merged[i].Achieved = achieved
			merged[i].UnlockedAt = unlockedAt
			continue
		}

		// Schema omitted this achievement; record it anyway with the raw
		// API name standing in for the missing metadata.
		index[p.APIName] = len(merged)
		merged = append(merged, models.Achievement{
			GameAppID:   appID,
			APIName:     p.APIName,
			DisplayName: p.APIName,
			Achieved:    achieved,
			UnlockedAt:  unlockedAt,
		})
	}

	for i := range merged {
		merged[i].Position = i
	}
	return merged
}

// unlockTime converts a raw Unix unlock timestamp. Steam reports
// unlocktime 0 for some legitimately achieved entries, so the timestamp
// is only trusted when achieved and strictly positive.
func unlockTime(achieved bool, raw int64) *time.Time {
	if !achieved || raw <= 0 {
		return nil
	}
	t := time.Unix(raw, 0).UTC()
	return &t
}
