package selection

import (
	"testing"

	"simulado-service/internal/models"
)

func TestScore(t *testing.T) {
	req := &Request{
		BoardID: "board-1",
		RoleID:  "role-1",
		Areas:   []string{"Health"},
	}

	testCases := []struct {
		name  string
		build func() models.Question
		want  int
	}{
		{
			"no signals",
			func() models.Question { return question("q", "S1") },
			0,
		},
		{
			"board match only",
			func() models.Question {
				q := question("q", "S1")
				q.Exam.BoardID = "board-1"
				return q
			},
			1000,
		},
		{
			"role match adds level bonus for its tier",
			func() models.Question {
				q := question("q", "S1")
				q.Exam.Roles = []models.ExamRole{{RoleID: "role-1", Level: models.LevelBasic}}
				return q
			},
			510,
		},
		{
			"institution area match, case-insensitive",
			func() models.Question {
				q := question("q", "S1")
				q.Exam.InstitutionArea = "HEALTH"
				return q
			},
			100,
		},
		{
			"role area match",
			func() models.Question {
				q := question("q", "S1")
				q.Exam.Roles = []models.ExamRole{{RoleID: "other", Level: models.LevelIntermediate, Area: "health"}}
				return q
			},
			120,
		},
		{
			"all three level tiers accumulate",
			func() models.Question {
				return withRoles(question("q", "S1"),
					models.LevelBasic, models.LevelIntermediate, models.LevelAdvanced)
			},
			60,
		},
		{
			"duplicate tier counts once",
			func() models.Question {
				return withRoles(question("q", "S1"), models.LevelAdvanced, models.LevelAdvanced)
			},
			30,
		},
		{
			"everything matches",
			func() models.Question {
				q := question("q", "S1")
				q.Exam.BoardID = "board-1"
				q.Exam.InstitutionArea = "health"
				q.Exam.Roles = []models.ExamRole{
					{RoleID: "role-1", Level: models.LevelBasic},
					{RoleID: "role-2", Level: models.LevelAdvanced},
				}
				return q
			},
			1640,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := tc.build()
			if got := Score(&q, req); got != tc.want {
				t.Errorf("Score() = %d, want %d", got, tc.want)
			}
		})
	}
}

// A board match alone must outrank any combination of lower-priority
// signals, and a role match any combination below it.
func TestScoreBandsAreDisjoint(t *testing.T) {
	req := &Request{BoardID: "board-1", RoleID: "role-1", Areas: []string{"law"}}

	boardOnly := question("board", "S1")
	boardOnly.Exam.BoardID = "board-1"

	everythingElse := question("rest", "S1")
	everythingElse.Exam.InstitutionArea = "law"
	everythingElse.Exam.Roles = []models.ExamRole{
		{RoleID: "role-1", Level: models.LevelBasic},
		{RoleID: "x", Level: models.LevelIntermediate},
		{RoleID: "y", Level: models.LevelAdvanced},
	}

	if Score(&boardOnly, req) <= Score(&everythingElse, req) {
		t.Errorf("Board match (%d) should outrank all lower signals combined (%d)",
			Score(&boardOnly, req), Score(&everythingElse, req))
	}

	roleOnly := question("role", "S1")
	roleOnly.Exam.Roles = []models.ExamRole{{RoleID: "role-1"}}

	areaAndLevels := question("area", "S1")
	areaAndLevels.Exam.InstitutionArea = "law"
	areaAndLevels.Exam.Roles = []models.ExamRole{
		{RoleID: "x", Level: models.LevelBasic},
		{RoleID: "y", Level: models.LevelIntermediate},
		{RoleID: "z", Level: models.LevelAdvanced},
	}

	if Score(&roleOnly, req) <= Score(&areaAndLevels, req) {
		t.Errorf("Role match (%d) should outrank area and level signals combined (%d)",
			Score(&roleOnly, req), Score(&areaAndLevels, req))
	}
}
