package selection

import "simulado-service/internal/models"

// TaxonomyIndex is a read-only view of the discipline/theme/sub-theme tree,
// built once per run from a catalog snapshot.
type TaxonomyIndex struct {
	disciplines map[string]models.Discipline
	themes      map[string]models.Theme
	subthemes   map[string]models.Subtheme

	themesByDiscipline map[string][]string
	subthemesByTheme   map[string][]string
}

// NewTaxonomyIndex builds the lookup maps for a snapshot of the tree.
// Orphan nodes (parent id not in the snapshot) are kept; they simply expand
// to nothing when traversed downward.
func NewTaxonomyIndex(disciplines []models.Discipline, themes []models.Theme, subthemes []models.Subtheme) *TaxonomyIndex {
	ix := &TaxonomyIndex{
		disciplines:        make(map[string]models.Discipline, len(disciplines)),
		themes:             make(map[string]models.Theme, len(themes)),
		subthemes:          make(map[string]models.Subtheme, len(subthemes)),
		themesByDiscipline: make(map[string][]string),
		subthemesByTheme:   make(map[string][]string),
	}
	for _, d := range disciplines {
		ix.disciplines[d.ID] = d
	}
	for _, t := range themes {
		ix.themes[t.ID] = t
		ix.themesByDiscipline[t.DisciplineID] = append(ix.themesByDiscipline[t.DisciplineID], t.ID)
	}
	for _, s := range subthemes {
		ix.subthemes[s.ID] = s
		ix.subthemesByTheme[s.ThemeID] = append(ix.subthemesByTheme[s.ThemeID], s.ID)
	}
	return ix
}

// HasScope reports whether a taxonomy node with this type and id exists.
func (ix *TaxonomyIndex) HasScope(scopeType ScopeType, scopeID string) bool {
	switch scopeType {
	case ScopeDiscipline:
		_, ok := ix.disciplines[scopeID]
		return ok
	case ScopeTheme:
		_, ok := ix.themes[scopeID]
		return ok
	case ScopeSubtheme:
		_, ok := ix.subthemes[scopeID]
		return ok
	}
	return false
}

// ParentTheme returns the theme a sub-theme belongs to.
func (ix *TaxonomyIndex) ParentTheme(subthemeID string) (string, bool) {
	s, ok := ix.subthemes[subthemeID]
	if !ok {
		return "", false
	}
	return s.ThemeID, true
}

// ParentDiscipline returns the discipline a theme belongs to.
func (ix *TaxonomyIndex) ParentDiscipline(themeID string) (string, bool) {
	t, ok := ix.themes[themeID]
	if !ok {
		return "", false
	}
	return t.DisciplineID, true
}

// DisciplineOfSubtheme resolves a sub-theme to its grandparent discipline.
func (ix *TaxonomyIndex) DisciplineOfSubtheme(subthemeID string) (string, bool) {
	themeID, ok := ix.ParentTheme(subthemeID)
	if !ok {
		return "", false
	}
	return ix.ParentDiscipline(themeID)
}

// SubthemesUnder expands a scope to the sub-theme ids transitively below it:
// the node itself for a sub-theme, all member sub-themes for a theme, all
// member themes' sub-themes for a discipline. Returns nil for unknown scopes.
func (ix *TaxonomyIndex) SubthemesUnder(scopeType ScopeType, scopeID string) []string {
	switch scopeType {
	case ScopeSubtheme:
		if _, ok := ix.subthemes[scopeID]; ok {
			return []string{scopeID}
		}
	case ScopeTheme:
		if _, ok := ix.themes[scopeID]; ok {
			return append([]string(nil), ix.subthemesByTheme[scopeID]...)
		}
	case ScopeDiscipline:
		if _, ok := ix.disciplines[scopeID]; !ok {
			return nil
		}
		var subs []string
		for _, themeID := range ix.themesByDiscipline[scopeID] {
			subs = append(subs, ix.subthemesByTheme[themeID]...)
		}
		return subs
	}
	return nil
}
