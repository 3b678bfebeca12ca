package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Interview is an immutable record of one completed practice session.
// The questions/answers/feedback/settings/scores payloads are chosen by
// the client and stored as-is; their inner shape is not contracted here.
type Interview struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId"        json:"userId"`
	Questions []interface{}      `bson:"questions"     json:"questions"`
	Answers   []interface{}      `bson:"answers"       json:"answers"`
	Feedback  interface{}        `bson:"feedback"      json:"feedback"`
	Settings  interface{}        `bson:"settings"      json:"settings"`
	Scores    interface{}        `bson:"scores"        json:"scores"`
	CreatedAt time.Time          `bson:"createdAt"     json:"createdAt"`
}
