package repo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	collUsers      = "users"
	collInterviews = "interviews"
	collQuestions  = "questions"
)

type Store struct {
	Client        *mongo.Client
	DB            *mongo.Database
	colUsers      *mongo.Collection
	colInterviews *mongo.Collection
	colQuestions  *mongo.Collection
}

func NewStore(ctx context.Context, uri, dbname string) (*Store, error) {
	cli, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetRetryWrites(true).
		SetMaxPoolSize(50).
		// opaque interview payloads decode into bson.M, not primitive.D,
		// so they re-serialize to JSON objects
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true}),
	)
	if err != nil {
		return nil, err
	}
	if err := cli.Ping(ctx, nil); err != nil {
		_ = cli.Disconnect(context.Background())
		return nil, err
	}
	db := cli.Database(dbname)
	return &Store{
		Client:        cli,
		DB:            db,
		colUsers:      db.Collection(collUsers),
		colInterviews: db.Collection(collInterviews),
		colQuestions:  db.Collection(collQuestions),
	}, nil
}

func (s *Store) Ping(ctx context.Context) error { return s.Client.Ping(ctx, nil) }

func (s *Store) Close(ctx context.Context) error { return s.Client.Disconnect(ctx) }

// EnsureCollections pre-creates the three collections. Mongo would create
// them lazily on first insert anyway; doing it here keeps the seeder's
// "collections exist" log honest and is a no-op on reruns.
func (s *Store) EnsureCollections(ctx context.Context) error {
	for _, name := range []string{collUsers, collInterviews, collQuestions} {
		if err := s.DB.CreateCollection(ctx, name); err != nil && !isNamespaceExists(err) {
			return err
		}
	}
	return nil
}

func (s *Store) EnsureIndexes(ctx context.Context) error {
	// users: the register handler checks email first, but only this unique
	// index makes two concurrent registrations with the same email safe.
	if _, err := s.colUsers.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uniq_email"),
	}); err != nil {
		return err
	}

	if _, err := s.colInterviews.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("user_created_desc"),
	}); err != nil {
		return err
	}

	_, err := s.colQuestions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "category", Value: 1}},
		Options: options.Index().SetName("category"),
	})
	return err
}

func IsDup(err error) bool {
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 {
				return true
			}
		}
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == 11000 {
		return true
	}
	return false
}

func isNamespaceExists(err error) bool {
	var ce mongo.CommandError
	return errors.As(err, &ce) && ce.Code == 48
}
