package selection

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"simulado-service/internal/models"
)

// Executor runs simulado question selection against the catalog and
// answer-history sources. Each run is a pure computation over a snapshot:
// all mutable state is local to one Execute call, so concurrent runs need
// no locking as long as each goroutine uses its own Executor.
type Executor struct {
	catalog CandidateSource
	history AnswerSource
	index   *TaxonomyIndex
	rand    *rand.Rand
	now     func() time.Time
}

// NewExecutor creates an executor with time-seeded tie-break randomness.
func NewExecutor(catalog CandidateSource, history AnswerSource, index *TaxonomyIndex) *Executor {
	return NewExecutorWithSeed(catalog, history, index, time.Now().UnixNano())
}

// NewExecutorWithSeed fixes the tie-break randomness so tests can assert
// deterministic orderings among equal-score candidates.
func NewExecutorWithSeed(catalog CandidateSource, history AnswerSource, index *TaxonomyIndex, seed int64) *Executor {
	return &Executor{
		catalog: catalog,
		history: history,
		index:   index,
		rand:    rand.New(rand.NewSource(seed)),
		now:     time.Now,
	}
}

// rankedQuestion pairs a candidate with its preference score and the random
// roll used to break ties within a score band.
type rankedQuestion struct {
	question models.Question
	score    int
	roll     float64
}

// Execute resolves the request into concrete question ids, scope by scope,
// narrowest first. An unknown scope id degrades to a per-entry marker; a
// malformed request or a failed collaborator read aborts the whole run.
func (e *Executor) Execute(ctx context.Context, req *Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entries := resolveEntries(e.index, req)
	consumed := make(map[string]struct{})
	scopes := make([]ScopeResult, 0, len(entries))

	for _, entry := range entries {
		sr := ScopeResult{
			ScopeType: entry.scopeType,
			ScopeID:   entry.ScopeID,
			Requested: entry.Quantity,
		}
		if !e.index.HasScope(entry.scopeType, entry.ScopeID) {
			sr.NotFound = true
			scopes = append(scopes, sr)
			continue
		}

		picked, err := e.selectForScope(ctx, req, entry, consumed)
		if err != nil {
			return nil, err
		}
		for _, id := range picked {
			consumed[id] = struct{}{}
		}
		sr.QuestionIDs = picked
		sr.Fulfilled = len(picked)
		scopes = append(scopes, sr)
	}

	return assemble(scopes), nil
}

// selectForScope gathers the candidate pool for one entry, applies the hard
// filters, ranks what remains and takes the top of the order. Fewer
// candidates than requested is not an error here.
func (e *Executor) selectForScope(ctx context.Context, req *Request, entry scopeEntry, consumed map[string]struct{}) ([]string, error) {
	candidates, err := e.catalog.FindCandidates(ctx, entry.scopeType, entry.ScopeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidates for %s %s: %w", entry.scopeType, entry.ScopeID, err)
	}

	now := e.now()
	ranked := make([]rankedQuestion, 0, len(candidates))
	for i := range candidates {
		q := &candidates[i]
		if _, taken := consumed[q.ID]; taken {
			continue
		}
		if entry.avoid.excludes(e.index, q) {
			continue
		}
		answered, err := e.history.FindAnswerTimestamps(ctx, q.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load answer history for question %s: %w", q.ID, err)
		}
		if !Eligible(q, req, answered, now) {
			continue
		}
		ranked = append(ranked, rankedQuestion{
			question: candidates[i],
			score:    Score(q, req),
			roll:     e.rand.Float64(),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].roll < ranked[j].roll
	})

	take := entry.Quantity
	if take > len(ranked) {
		take = len(ranked)
	}
	ids := make([]string, take)
	for i := 0; i < take; i++ {
		ids[i] = ranked[i].question.ID
	}
	return ids, nil
}

// assemble concatenates the per-scope picks into the flat run result. No
// further filtering happens here; every id was vetted when its scope was
// processed.
func assemble(scopes []ScopeResult) *Result {
	total := 0
	for _, s := range scopes {
		total += s.Fulfilled
	}
	ids := make([]string, 0, total)
	for _, s := range scopes {
		ids = append(ids, s.QuestionIDs...)
	}
	return &Result{QuestionIDs: ids, Scopes: scopes}
}
