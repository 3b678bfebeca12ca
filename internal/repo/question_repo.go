package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/tazhibayda/interview-service/internal/domain"
)

// ListQuestionsByCategory matches the category exactly, case-sensitive.
func (s *Store) ListQuestionsByCategory(ctx context.Context, category string) ([]domain.Question, error) {
	cur, err := s.colQuestions.Find(ctx, bson.M{"category": category})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []domain.Question{}
	for cur.Next(ctx) {
		var q domain.Question
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, cur.Err()
}

func (s *Store) CountQuestions(ctx context.Context) (int64, error) {
	return s.colQuestions.CountDocuments(ctx, bson.M{})
}

// InsertQuestions bulk-loads the seed catalog in one call.
func (s *Store) InsertQuestions(ctx context.Context, qs []domain.Question) error {
	docs := make([]interface{}, len(qs))
	for i := range qs {
		docs[i] = qs[i]
	}
	_, err := s.colQuestions.InsertMany(ctx, docs)
	return err
}
