package repository

import (
	"context"

	"simulado-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// TaxonomyRepository reads the three-level subject tree. The tree is managed
// elsewhere; this service only projects it.
type TaxonomyRepository struct {
	Disciplines *mongo.Collection
	Themes      *mongo.Collection
	Subthemes   *mongo.Collection
}

func NewTaxonomyRepository(db *mongo.Database) *TaxonomyRepository {
	return &TaxonomyRepository{
		Disciplines: db.Collection("disciplines"),
		Themes:      db.Collection("themes"),
		Subthemes:   db.Collection("subthemes"),
	}
}

func (r *TaxonomyRepository) FindAllDisciplines(ctx context.Context) ([]models.Discipline, error) {
	cur, err := r.Disciplines.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var disciplines []models.Discipline
	for cur.Next(ctx) {
		var d models.Discipline
		if err := cur.Decode(&d); err != nil {
			return nil, err
		}
		disciplines = append(disciplines, d)
	}
	return disciplines, cur.Err()
}

func (r *TaxonomyRepository) FindAllThemes(ctx context.Context) ([]models.Theme, error) {
	return r.findThemes(ctx, bson.M{})
}

func (r *TaxonomyRepository) FindThemesByDiscipline(ctx context.Context, disciplineID string) ([]models.Theme, error) {
	return r.findThemes(ctx, bson.M{"discipline_id": disciplineID})
}

func (r *TaxonomyRepository) FindAllSubthemes(ctx context.Context) ([]models.Subtheme, error) {
	return r.findSubthemes(ctx, bson.M{})
}

func (r *TaxonomyRepository) FindSubthemesByTheme(ctx context.Context, themeID string) ([]models.Subtheme, error) {
	return r.findSubthemes(ctx, bson.M{"theme_id": themeID})
}

func (r *TaxonomyRepository) findThemes(ctx context.Context, filter bson.M) ([]models.Theme, error) {
	cur, err := r.Themes.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var themes []models.Theme
	for cur.Next(ctx) {
		var t models.Theme
		if err := cur.Decode(&t); err != nil {
			return nil, err
		}
		themes = append(themes, t)
	}
	return themes, cur.Err()
}

func (r *TaxonomyRepository) findSubthemes(ctx context.Context, filter bson.M) ([]models.Subtheme, error) {
	cur, err := r.Subthemes.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var subthemes []models.Subtheme
	for cur.Next(ctx) {
		var s models.Subtheme
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		subthemes = append(subthemes, s)
	}
	return subthemes, cur.Err()
}
