package selection

import (
	"time"

	"simulado-service/internal/models"
)

// RecencyWindow is how long a prior answer keeps a question out of new
// simulados when the caller does not exclude answered questions outright.
const RecencyWindow = 30 * 24 * time.Hour

// Eligible is the hard filter applied to every candidate: usable flags,
// answer recency, and the role-level ceiling. Pure predicate, no side
// effects.
func Eligible(q *models.Question, req *Request, answered []time.Time, now time.Time) bool {
	if q.Annulled || q.Outdated {
		return false
	}
	if req.ExcludeAnswered {
		if len(answered) > 0 {
			return false
		}
	} else {
		cutoff := now.Add(-RecencyWindow)
		for _, ts := range answered {
			if ts.After(cutoff) {
				return false
			}
		}
	}
	if req.LevelCeiling != "" && !q.HasRoleAtOrBelow(req.LevelCeiling) {
		return false
	}
	return true
}
