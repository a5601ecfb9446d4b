package models

import "time"

// AnswerRecord is a read-only signal for recency avoidance. The selection
// engine never writes these; answer submission lives in another service.
type AnswerRecord struct {
	ID         string    `bson:"_id,omitempty" json:"id"`
	QuestionID string    `bson:"question_id" json:"question_id"`
	UserID     string    `bson:"user_id" json:"user_id"`
	ChosenKey  string    `bson:"chosen_key" json:"chosen_key"`
	AnsweredAt time.Time `bson:"answered_at" json:"answered_at"`
}
