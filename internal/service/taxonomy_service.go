package service

import (
	"context"

	"simulado-service/internal/models"
	"simulado-service/internal/repository"
)

type TaxonomyService struct {
	Repo *repository.TaxonomyRepository
}

func NewTaxonomyService(repo *repository.TaxonomyRepository) *TaxonomyService {
	return &TaxonomyService{Repo: repo}
}

func (s *TaxonomyService) ListDisciplines(ctx context.Context) ([]models.Discipline, error) {
	return s.Repo.FindAllDisciplines(ctx)
}

func (s *TaxonomyService) ListThemes(ctx context.Context, disciplineID string) ([]models.Theme, error) {
	return s.Repo.FindThemesByDiscipline(ctx, disciplineID)
}

func (s *TaxonomyService) ListSubthemes(ctx context.Context, themeID string) ([]models.Subtheme, error) {
	return s.Repo.FindSubthemesByTheme(ctx, themeID)
}
