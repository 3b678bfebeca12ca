package queue

import "go.mongodb.org/mongo-driver/bson/primitive"

// Exchange carries all interview-service events (topic exchange).
const Exchange = "interview.events"

type UserRegistered struct {
	UserID primitive.ObjectID `json:"user_id"`
	Email  string             `json:"email"`
	Name   string             `json:"name"`
}

type InterviewSaved struct {
	InterviewID primitive.ObjectID `json:"interview_id"`
	UserID      primitive.ObjectID `json:"user_id"`
}
