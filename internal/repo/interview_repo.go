package repo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tazhibayda/interview-service/internal/domain"
)

// SaveInterview inserts the session and fills in ID/CreatedAt.
// The userId is stored as given; it is not checked against users.
func (s *Store) SaveInterview(ctx context.Context, iv *domain.Interview) error {
	iv.CreatedAt = time.Now().UTC()
	res, err := s.colInterviews.InsertOne(ctx, iv)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		iv.ID = oid
	}
	return nil
}

// ListInterviewsByUser returns the user's sessions newest-first.
// No matches is an empty slice, not an error.
func (s *Store) ListInterviewsByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.Interview, error) {
	cur, err := s.colInterviews.Find(ctx,
		bson.M{"userId": userID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []domain.Interview{}
	for cur.Next(ctx) {
		var iv domain.Interview
		if err := cur.Decode(&iv); err != nil {
			return nil, err
		}
		out = append(out, iv)
	}
	return out, cur.Err()
}

func (s *Store) FindInterviewByID(ctx context.Context, id primitive.ObjectID) (*domain.Interview, error) {
	var iv domain.Interview
	err := s.colInterviews.FindOne(ctx, bson.M{"_id": id}).Decode(&iv)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &iv, nil
}
