package selection

import (
	"sort"
	"testing"
)

func TestTaxonomyIndexHasScope(t *testing.T) {
	ix := testIndex()

	cases := []struct {
		scopeType ScopeType
		scopeID   string
		want      bool
	}{
		{ScopeDiscipline, "D1", true},
		{ScopeTheme, "T2", true},
		{ScopeSubtheme, "S4", true},
		{ScopeDiscipline, "T1", false},
		{ScopeSubtheme, "9999", false},
		{ScopeType("exam"), "D1", false},
	}
	for _, tc := range cases {
		if got := ix.HasScope(tc.scopeType, tc.scopeID); got != tc.want {
			t.Errorf("HasScope(%s, %s) = %v, want %v", tc.scopeType, tc.scopeID, got, tc.want)
		}
	}
}

func TestTaxonomyIndexParents(t *testing.T) {
	ix := testIndex()

	if themeID, ok := ix.ParentTheme("S3"); !ok || themeID != "T2" {
		t.Errorf("ParentTheme(S3) = %q, %v; want T2, true", themeID, ok)
	}
	if discID, ok := ix.ParentDiscipline("T2"); !ok || discID != "D1" {
		t.Errorf("ParentDiscipline(T2) = %q, %v; want D1, true", discID, ok)
	}
	if discID, ok := ix.DisciplineOfSubtheme("S4"); !ok || discID != "D2" {
		t.Errorf("DisciplineOfSubtheme(S4) = %q, %v; want D2, true", discID, ok)
	}
	if _, ok := ix.ParentTheme("missing"); ok {
		t.Error("ParentTheme of unknown sub-theme should report not found")
	}
}

func TestTaxonomyIndexSubthemesUnder(t *testing.T) {
	ix := testIndex()

	cases := []struct {
		scopeType ScopeType
		scopeID   string
		want      []string
	}{
		{ScopeSubtheme, "S2", []string{"S2"}},
		{ScopeTheme, "T1", []string{"S1", "S2"}},
		{ScopeDiscipline, "D1", []string{"S1", "S2", "S3"}},
		{ScopeDiscipline, "D2", []string{"S4"}},
		{ScopeTheme, "missing", nil},
	}
	for _, tc := range cases {
		got := ix.SubthemesUnder(tc.scopeType, tc.scopeID)
		sort.Strings(got)
		if len(got) != len(tc.want) {
			t.Errorf("SubthemesUnder(%s, %s) = %v, want %v", tc.scopeType, tc.scopeID, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("SubthemesUnder(%s, %s) = %v, want %v", tc.scopeType, tc.scopeID, got, tc.want)
				break
			}
		}
	}
}
