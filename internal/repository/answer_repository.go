package repository

import (
	"context"
	"time"

	"simulado-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AnswerRepository is a read model over the answer history. Answers are
// written by the grading service; selection only needs the timestamps.
type AnswerRepository struct {
	Col *mongo.Collection
}

func NewAnswerRepository(db *mongo.Database) *AnswerRepository {
	return &AnswerRepository{Col: db.Collection("answers")}
}

func (r *AnswerRepository) FindTimestampsByQuestion(ctx context.Context, questionID string) ([]time.Time, error) {
	cur, err := r.Col.Find(ctx, bson.M{"question_id": questionID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var timestamps []time.Time
	for cur.Next(ctx) {
		var a models.AnswerRecord
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		timestamps = append(timestamps, a.AnsweredAt)
	}
	return timestamps, cur.Err()
}
