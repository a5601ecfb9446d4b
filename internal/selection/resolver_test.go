package selection

import (
	"testing"

	"simulado-service/internal/models"
)

func TestResolveEntriesOrdering(t *testing.T) {
	req := &Request{
		Disciplines: []ScopeSelection{{ScopeID: "D1", Quantity: 1}},
		Themes:      []ScopeSelection{{ScopeID: "T1", Quantity: 1}},
		Subthemes:   []ScopeSelection{{ScopeID: "S3", Quantity: 1}, {ScopeID: "S1", Quantity: 1}},
	}
	entries := resolveEntries(testIndex(), req)

	wantOrder := []struct {
		scopeType ScopeType
		scopeID   string
	}{
		{ScopeSubtheme, "S3"},
		{ScopeSubtheme, "S1"},
		{ScopeTheme, "T1"},
		{ScopeDiscipline, "D1"},
	}
	if len(entries) != len(wantOrder) {
		t.Fatalf("Expected %d entries, got %d", len(wantOrder), len(entries))
	}
	for i, want := range wantOrder {
		if entries[i].scopeType != want.scopeType || entries[i].ScopeID != want.scopeID {
			t.Errorf("Entry %d: got %s %s, want %s %s",
				i, entries[i].scopeType, entries[i].ScopeID, want.scopeType, want.scopeID)
		}
	}
}

func TestResolveEntriesThemeAvoidSet(t *testing.T) {
	req := &Request{
		Themes:    []ScopeSelection{{ScopeID: "T1", Quantity: 1}},
		Subthemes: []ScopeSelection{{ScopeID: "S1", Quantity: 1}, {ScopeID: "S3", Quantity: 1}},
	}
	entries := resolveEntries(testIndex(), req)

	var theme *scopeEntry
	for i := range entries {
		if entries[i].scopeType == ScopeTheme {
			theme = &entries[i]
		}
	}
	if theme == nil {
		t.Fatal("Theme entry missing")
	}
	if _, ok := theme.avoid.subthemes["S1"]; !ok {
		t.Error("Expected S1 (child of T1) in the theme's avoid-set")
	}
	if _, ok := theme.avoid.subthemes["S3"]; ok {
		t.Error("S3 belongs to T2 and must not be avoided by T1")
	}
}

func TestResolveEntriesDisciplineAvoidSet(t *testing.T) {
	req := &Request{
		Disciplines: []ScopeSelection{{ScopeID: "D1", Quantity: 1}},
		Themes:      []ScopeSelection{{ScopeID: "T2", Quantity: 1}, {ScopeID: "T3", Quantity: 1}},
		Subthemes:   []ScopeSelection{{ScopeID: "S2", Quantity: 1}, {ScopeID: "S4", Quantity: 1}},
	}
	entries := resolveEntries(testIndex(), req)

	var disc *scopeEntry
	for i := range entries {
		if entries[i].scopeType == ScopeDiscipline {
			disc = &entries[i]
		}
	}
	if disc == nil {
		t.Fatal("Discipline entry missing")
	}
	if _, ok := disc.avoid.themes["T2"]; !ok {
		t.Error("Expected T2 (child of D1) in the discipline's avoid-set")
	}
	if _, ok := disc.avoid.themes["T3"]; ok {
		t.Error("T3 belongs to D2 and must not be avoided by D1")
	}
	if _, ok := disc.avoid.subthemes["S2"]; !ok {
		t.Error("Expected S2 (grandchild of D1) in the discipline's avoid-set")
	}
	if _, ok := disc.avoid.subthemes["S4"]; ok {
		t.Error("S4 belongs to D2 and must not be avoided by D1")
	}
}

func TestResolveEntriesEmptyAvoidSets(t *testing.T) {
	req := &Request{
		Disciplines: []ScopeSelection{{ScopeID: "D1", Quantity: 1}},
		Themes:      []ScopeSelection{{ScopeID: "T3", Quantity: 1}},
	}
	entries := resolveEntries(testIndex(), req)

	for _, e := range entries {
		if !e.avoid.empty() {
			t.Errorf("%s %s: expected empty avoid-set when no narrower scope was requested under it",
				e.scopeType, e.ScopeID)
		}
	}
}

func TestAvoidSetExcludesByMembership(t *testing.T) {
	ix := testIndex()

	avoid := avoidSet{
		themes:    map[string]struct{}{"T2": {}},
		subthemes: map[string]struct{}{"S1": {}},
	}

	inAvoidedSubtheme := question("a", "S1")
	inAvoidedTheme := question("b", "S3") // S3's parent is T2
	crossCutting := question("c", "S2", "S1")
	outside := question("d", "S2")

	cases := []struct {
		name string
		q    models.Question
		want bool
	}{
		{"member of avoided sub-theme", inAvoidedSubtheme, true},
		{"member of avoided theme via its sub-theme", inAvoidedTheme, true},
		{"cross-cutting membership still excluded", crossCutting, true},
		{"outside all avoided scopes", outside, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := avoid.excludes(ix, &tc.q); got != tc.want {
				t.Errorf("excludes() = %v, want %v", got, tc.want)
			}
		})
	}
}
