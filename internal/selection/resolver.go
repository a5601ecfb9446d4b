package selection

import "simulado-service/internal/models"

// avoidSet lists the narrower, separately requested scope ids whose
// candidates must be excluded from a broader scope's pool. Candidates are
// excluded by membership in the avoided scope, not merely by having been
// picked for it.
type avoidSet struct {
	themes    map[string]struct{}
	subthemes map[string]struct{}
}

func (a avoidSet) empty() bool {
	return len(a.themes) == 0 && len(a.subthemes) == 0
}

// excludes reports whether any of the question's sub-theme memberships fall
// inside an avoided scope.
func (a avoidSet) excludes(ix *TaxonomyIndex, q *models.Question) bool {
	if a.empty() {
		return false
	}
	for _, subID := range q.SubthemeIDs {
		if _, ok := a.subthemes[subID]; ok {
			return true
		}
		if themeID, ok := ix.ParentTheme(subID); ok {
			if _, avoided := a.themes[themeID]; avoided {
				return true
			}
		}
	}
	return false
}

// scopeEntry is one request selection with its processing metadata.
type scopeEntry struct {
	scopeType ScopeType
	ScopeSelection
	avoid avoidSet
}

// resolveEntries orders the request narrowest-first (sub-themes, themes,
// disciplines) and computes each broader entry's avoid-set: the requested
// sub-themes under a requested theme, and the requested themes and
// sub-themes under a requested discipline. Processing in this order makes
// the avoid-sets exclude ids actually consumed by earlier, narrower
// selections in the same run.
func resolveEntries(ix *TaxonomyIndex, req *Request) []scopeEntry {
	entries := make([]scopeEntry, 0, len(req.Subthemes)+len(req.Themes)+len(req.Disciplines))

	for _, s := range req.Subthemes {
		entries = append(entries, scopeEntry{scopeType: ScopeSubtheme, ScopeSelection: s})
	}
	for _, t := range req.Themes {
		avoid := avoidSet{subthemes: make(map[string]struct{})}
		for _, s := range req.Subthemes {
			if themeID, ok := ix.ParentTheme(s.ScopeID); ok && themeID == t.ScopeID {
				avoid.subthemes[s.ScopeID] = struct{}{}
			}
		}
		entries = append(entries, scopeEntry{scopeType: ScopeTheme, ScopeSelection: t, avoid: avoid})
	}
	for _, d := range req.Disciplines {
		avoid := avoidSet{
			themes:    make(map[string]struct{}),
			subthemes: make(map[string]struct{}),
		}
		for _, t := range req.Themes {
			if discID, ok := ix.ParentDiscipline(t.ScopeID); ok && discID == d.ScopeID {
				avoid.themes[t.ScopeID] = struct{}{}
			}
		}
		for _, s := range req.Subthemes {
			if discID, ok := ix.DisciplineOfSubtheme(s.ScopeID); ok && discID == d.ScopeID {
				avoid.subthemes[s.ScopeID] = struct{}{}
			}
		}
		entries = append(entries, scopeEntry{scopeType: ScopeDiscipline, ScopeSelection: d, avoid: avoid})
	}

	return entries
}
