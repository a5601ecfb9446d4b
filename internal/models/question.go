package models

import "strings"

// RoleLevel is the tier of a job role attached to an exam.
type RoleLevel string

const (
	LevelBasic        RoleLevel = "basic"
	LevelIntermediate RoleLevel = "intermediate"
	LevelAdvanced     RoleLevel = "advanced"
)

// Rank maps a level to its position in the Basic < Intermediate < Advanced
// ordering. Unknown values rank 0.
func (l RoleLevel) Rank() int {
	switch l {
	case LevelBasic:
		return 1
	case LevelIntermediate:
		return 2
	case LevelAdvanced:
		return 3
	}
	return 0
}

func (l RoleLevel) Valid() bool {
	return l.Rank() != 0
}

// ExamRole links an exam to a job role with its level and area.
type ExamRole struct {
	RoleID string    `bson:"role_id" json:"role_id"`
	Name   string    `bson:"name" json:"name"`
	Level  RoleLevel `bson:"level" json:"level"`
	Area   string    `bson:"area" json:"area"`
}

// Exam carries the board/institution/role linkage a question inherits from
// its originating exam. Denormalized onto the question document so a single
// catalog read returns everything selection needs.
type Exam struct {
	ID              string     `bson:"id" json:"id"`
	Name            string     `bson:"name" json:"name"`
	Year            int        `bson:"year" json:"year"`
	BoardID         string     `bson:"board_id" json:"board_id"`
	InstitutionID   string     `bson:"institution_id" json:"institution_id"`
	InstitutionArea string     `bson:"institution_area" json:"institution_area"`
	Roles           []ExamRole `bson:"roles" json:"roles"`
}

type Option struct {
	Key  string `bson:"key" json:"key"`
	Text string `bson:"text" json:"text"`
}

type Question struct {
	ID          string   `bson:"_id,omitempty" json:"id"`
	Statement   string   `bson:"statement" json:"statement"`
	Options     []Option `bson:"options" json:"options"`
	CorrectKey  string   `bson:"correct_key" json:"correct_key"`
	Annulled    bool     `bson:"annulled" json:"annulled"`
	Outdated    bool     `bson:"outdated" json:"outdated"`
	SubthemeIDs []string `bson:"subtheme_ids" json:"subtheme_ids"`
	Exam        Exam     `bson:"exam" json:"exam"`
	Status      string   `bson:"status,omitempty" json:"status,omitempty"`
}

// HasRole reports whether the question's exam links the given role.
func (q *Question) HasRole(roleID string) bool {
	if roleID == "" {
		return false
	}
	for _, r := range q.Exam.Roles {
		if r.RoleID == roleID {
			return true
		}
	}
	return false
}

// HasLevel reports whether any linked role sits at the given tier.
func (q *Question) HasLevel(level RoleLevel) bool {
	for _, r := range q.Exam.Roles {
		if r.Level == level {
			return true
		}
	}
	return false
}

// HasRoleAtOrBelow reports whether at least one linked role is admitted by
// the given level ceiling.
func (q *Question) HasRoleAtOrBelow(ceiling RoleLevel) bool {
	for _, r := range q.Exam.Roles {
		if rank := r.Level.Rank(); rank != 0 && rank <= ceiling.Rank() {
			return true
		}
	}
	return false
}

// MatchesArea reports whether the institution area or any linked role's area
// appears in the given list. Comparison is case-insensitive.
func (q *Question) MatchesArea(areas []string) bool {
	for _, area := range areas {
		if area == "" {
			continue
		}
		if strings.EqualFold(q.Exam.InstitutionArea, area) {
			return true
		}
		for _, r := range q.Exam.Roles {
			if strings.EqualFold(r.Area, area) {
				return true
			}
		}
	}
	return false
}
