package selection

import "simulado-service/internal/models"

// Score weights live in disjoint magnitude bands so a higher-priority
// preference always outranks any combination of lower ones (1000 > 500 +
// 100 + 30 + 20 + 10).
const (
	boardMatchScore = 1000
	roleMatchScore  = 500
	areaMatchScore  = 100

	advancedBonus     = 30
	intermediateBonus = 20
	basicBonus        = 10
)

// Score ranks an eligible candidate against the request's soft preferences.
// Higher is better; the value is used only for ordering, never as a filter.
// The level bonus counts each tier once regardless of how many linked roles
// sit at it, and is independent of the ceiling filter.
func Score(q *models.Question, req *Request) int {
	score := 0
	if req.BoardID != "" && q.Exam.BoardID == req.BoardID {
		score += boardMatchScore
	}
	if q.HasRole(req.RoleID) {
		score += roleMatchScore
	}
	if len(req.Areas) > 0 && q.MatchesArea(req.Areas) {
		score += areaMatchScore
	}
	if q.HasLevel(models.LevelAdvanced) {
		score += advancedBonus
	}
	if q.HasLevel(models.LevelIntermediate) {
		score += intermediateBonus
	}
	if q.HasLevel(models.LevelBasic) {
		score += basicBonus
	}
	return score
}
