package selection

import (
	"context"
	"errors"
	"fmt"
	"time"

	"simulado-service/internal/models"
)

// ScopeType identifies a level of the discipline/theme/sub-theme tree.
type ScopeType string

const (
	ScopeDiscipline ScopeType = "discipline"
	ScopeTheme      ScopeType = "theme"
	ScopeSubtheme   ScopeType = "subtheme"
)

// ScopeSelection is one caller-requested taxonomy node with a desired count.
type ScopeSelection struct {
	ScopeID  string `json:"scope_id"`
	Quantity int    `json:"quantity"`
}

// Request describes one simulado generation run. Board, role, areas and
// level bonuses are soft ranking preferences; the level ceiling and the
// answered flag are hard filters.
type Request struct {
	Disciplines []ScopeSelection `json:"disciplines"`
	Themes      []ScopeSelection `json:"themes"`
	Subthemes   []ScopeSelection `json:"subthemes"`

	BoardID         string           `json:"board_id"`
	RoleID          string           `json:"role_id"`
	Areas           []string         `json:"areas"`
	LevelCeiling    models.RoleLevel `json:"level_ceiling"` // empty = no ceiling
	ExcludeAnswered bool             `json:"exclude_answered"`
}

// ErrInvalidRequest marks request-level validation failures, rejected before
// any scope is processed.
var ErrInvalidRequest = errors.New("invalid selection request")

// Validate rejects malformed requests: empty selections, non-positive
// quantities, unknown ceiling values.
func (r *Request) Validate() error {
	if len(r.Disciplines)+len(r.Themes)+len(r.Subthemes) == 0 {
		return fmt.Errorf("%w: at least one scope selection is required", ErrInvalidRequest)
	}
	groups := []struct {
		scopeType ScopeType
		entries   []ScopeSelection
	}{
		{ScopeDiscipline, r.Disciplines},
		{ScopeTheme, r.Themes},
		{ScopeSubtheme, r.Subthemes},
	}
	for _, g := range groups {
		for _, s := range g.entries {
			if s.ScopeID == "" {
				return fmt.Errorf("%w: %s selection without a scope id", ErrInvalidRequest, g.scopeType)
			}
			if s.Quantity <= 0 {
				return fmt.Errorf("%w: %s %s: quantity must be positive, got %d",
					ErrInvalidRequest, g.scopeType, s.ScopeID, s.Quantity)
			}
		}
	}
	if r.LevelCeiling != "" && !r.LevelCeiling.Valid() {
		return fmt.Errorf("%w: unknown level ceiling %q", ErrInvalidRequest, r.LevelCeiling)
	}
	return nil
}

// ScopeResult reports fill status for one requested scope.
type ScopeResult struct {
	ScopeType   ScopeType `json:"scope_type"`
	ScopeID     string    `json:"scope_id"`
	Requested   int       `json:"requested"`
	Fulfilled   int       `json:"fulfilled"`
	NotFound    bool      `json:"not_found,omitempty"`
	QuestionIDs []string  `json:"question_ids"`
}

// Result is the assembled outcome of a run: the flat deduplicated question
// id sequence plus the per-scope roll-up.
type Result struct {
	QuestionIDs []string      `json:"question_ids"`
	Scopes      []ScopeResult `json:"scopes"`
}

// FullyFilled reports whether every found scope got its requested quantity.
func (r *Result) FullyFilled() bool {
	for _, s := range r.Scopes {
		if s.NotFound || s.Fulfilled < s.Requested {
			return false
		}
	}
	return true
}

// CandidateSource supplies all questions transitively tagged under a
// taxonomy node, with their exam/board/institution/role linkage.
type CandidateSource interface {
	FindCandidates(ctx context.Context, scopeType ScopeType, scopeID string) ([]models.Question, error)
}

// AnswerSource supplies prior-answer timestamps for a question, empty if
// never answered.
type AnswerSource interface {
	FindAnswerTimestamps(ctx context.Context, questionID string) ([]time.Time, error)
}
