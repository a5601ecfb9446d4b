package service

import (
	"context"
	"fmt"
	"time"

	"simulado-service/internal/cache"
	"simulado-service/internal/models"
	"simulado-service/internal/repository"
	"simulado-service/internal/selection"

	"github.com/google/uuid"
)

// Publisher is the event sink for generation runs. A nil publisher disables
// events, like the service-wide optional broker.
type Publisher interface {
	Publish(eventType string, payload interface{}) error
}

// SimuladoService wires the catalog, taxonomy and answer-history stores into
// the selection engine and runs one generation per call.
type SimuladoService struct {
	QuestionRepo *repository.QuestionRepository
	TaxonomyRepo *repository.TaxonomyRepository
	AnswerRepo   *repository.AnswerRepository
	Recency      *cache.RecencyCache
	Events       Publisher
}

func NewSimuladoService(
	questionRepo *repository.QuestionRepository,
	taxonomyRepo *repository.TaxonomyRepository,
	answerRepo *repository.AnswerRepository,
	recency *cache.RecencyCache,
) *SimuladoService {
	return &SimuladoService{
		QuestionRepo: questionRepo,
		TaxonomyRepo: taxonomyRepo,
		AnswerRepo:   answerRepo,
		Recency:      recency,
	}
}

// SimuladoRun is the caller-facing outcome of one generation.
type SimuladoRun struct {
	ID          string                  `json:"id"`
	QuestionIDs []string                `json:"question_ids"`
	Scopes      []selection.ScopeResult `json:"scopes"`
	FullyFilled bool                    `json:"fully_filled"`
	GeneratedAt time.Time               `json:"generated_at"`
}

// Generate resolves a selection request into a concrete simulado. The
// taxonomy snapshot is loaded fresh per run so a half-updated tree can't
// leak between runs.
func (s *SimuladoService) Generate(ctx context.Context, req *selection.Request) (*SimuladoRun, error) {
	index, err := s.loadIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load taxonomy: %w", err)
	}

	executor := selection.NewExecutor(
		&catalogSource{repo: s.QuestionRepo, index: index},
		&historySource{repo: s.AnswerRepo, recency: s.Recency},
		index,
	)
	result, err := executor.Execute(ctx, req)
	if err != nil {
		return nil, err
	}

	run := &SimuladoRun{
		ID:          uuid.NewString(),
		QuestionIDs: result.QuestionIDs,
		Scopes:      result.Scopes,
		FullyFilled: result.FullyFilled(),
		GeneratedAt: time.Now().UTC(),
	}
	s.publishGenerated(run)
	return run, nil
}

// publishGenerated emits the run id and the per-scope fill roll-up.
// Best-effort: a publish failure never fails the run.
func (s *SimuladoService) publishGenerated(run *SimuladoRun) {
	if s.Events == nil {
		return
	}
	scopes := make([]map[string]interface{}, 0, len(run.Scopes))
	for _, sc := range run.Scopes {
		entry := map[string]interface{}{
			"scope_type": sc.ScopeType,
			"scope_id":   sc.ScopeID,
			"requested":  sc.Requested,
			"fulfilled":  sc.Fulfilled,
		}
		if sc.NotFound {
			entry["not_found"] = true
		}
		scopes = append(scopes, entry)
	}
	s.Events.Publish("simulado.generated", map[string]interface{}{
		"run_id":       run.ID,
		"total":        len(run.QuestionIDs),
		"fully_filled": run.FullyFilled,
		"scopes":       scopes,
	})
}

func (s *SimuladoService) loadIndex(ctx context.Context) (*selection.TaxonomyIndex, error) {
	disciplines, err := s.TaxonomyRepo.FindAllDisciplines(ctx)
	if err != nil {
		return nil, err
	}
	themes, err := s.TaxonomyRepo.FindAllThemes(ctx)
	if err != nil {
		return nil, err
	}
	subthemes, err := s.TaxonomyRepo.FindAllSubthemes(ctx)
	if err != nil {
		return nil, err
	}
	return selection.NewTaxonomyIndex(disciplines, themes, subthemes), nil
}

// catalogSource adapts the question repository to the engine's candidate
// interface: a scope expands to its transitive sub-themes, then a single
// $in read fetches the pool.
type catalogSource struct {
	repo  *repository.QuestionRepository
	index *selection.TaxonomyIndex
}

func (c *catalogSource) FindCandidates(ctx context.Context, scopeType selection.ScopeType, scopeID string) ([]models.Question, error) {
	subthemes := c.index.SubthemesUnder(scopeType, scopeID)
	if len(subthemes) == 0 {
		return nil, nil
	}
	return c.repo.FindBySubthemes(ctx, subthemes)
}

// historySource adapts the answer repository with a read-through Redis
// cache; a nil cache degrades to plain Mongo reads.
type historySource struct {
	repo    *repository.AnswerRepository
	recency *cache.RecencyCache
}

func (h *historySource) FindAnswerTimestamps(ctx context.Context, questionID string) ([]time.Time, error) {
	if timestamps, ok := h.recency.Get(ctx, questionID); ok {
		return timestamps, nil
	}
	timestamps, err := h.repo.FindTimestampsByQuestion(ctx, questionID)
	if err != nil {
		return nil, err
	}
	h.recency.Set(ctx, questionID, timestamps)
	return timestamps, nil
}
