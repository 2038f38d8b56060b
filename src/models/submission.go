package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Submission ---
type Submission struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FormID      primitive.ObjectID `bson:"formId" json:"formId"`
	Answers     []Answer           `bson:"answers" json:"answers"`
	SubmittedAt time.Time          `bson:"submittedAt" json:"submittedAt"`
}

// Answer value shape depends on the question type: string for TEXT, VIDEO
// and MULTIPLE_CHOICE, a 1-5 number for SENTIMENT.
type Answer struct {
	QuestionID primitive.ObjectID `bson:"questionId" json:"questionId"`
	Value      interface{}        `bson:"value" json:"value"`
}

type SubmitResponseRequest struct {
	Answers []Answer `json:"answers"`
}

type PaginatedSubmissionsResponse struct {
	Submissions []Submission `json:"submissions"`
	Total       int64        `json:"total"`
	Page        int          `json:"page"`
	Limit       int          `json:"limit"`
	TotalPages  int          `json:"totalPages"`
}
