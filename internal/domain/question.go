package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Question categories shipped with the seed catalog. The category field
// is an open string; these are the ones we currently serve.
const (
	CategoryTechnical  = "technical"
	CategoryBehavioral = "behavioral"
	CategoryBusiness   = "business"
	CategoryHealthcare = "healthcare"
)

type Question struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Text       string             `bson:"text"          json:"text"`
	Category   string             `bson:"category"      json:"category"`
	Difficulty string             `bson:"difficulty"    json:"difficulty"` // easy|medium|hard
	Tags       []string           `bson:"tags"          json:"tags"`
}
