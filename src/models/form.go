package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuestionType is the persistence-layer vocabulary for question kinds.
type QuestionType string

const (
	TextQuestion      QuestionType = "TEXT"
	MultipleChoice    QuestionType = "MULTIPLE_CHOICE"
	VideoQuestion     QuestionType = "VIDEO"
	SentimentQuestion QuestionType = "SENTIMENT"
)

// --- Form ---
type Form struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title          string             `bson:"title" json:"title"`
	Description    string             `bson:"description,omitempty" json:"description,omitempty"`
	Image          string             `bson:"image,omitempty" json:"image,omitempty"` // inline data URI, never offloaded
	UserID         primitive.ObjectID `bson:"userId" json:"userId"`
	Published      bool               `bson:"published" json:"published"`
	ResponsesCount int64              `bson:"responsesCount" json:"responsesCount"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// --- Question ---
type Question struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FormID     primitive.ObjectID `bson:"formId" json:"formId"`
	Text       string             `bson:"text" json:"text"`
	Type       QuestionType       `bson:"type" json:"type"`
	IsRequired bool               `bson:"isRequired" json:"isRequired"`
	Image      string             `bson:"image,omitempty" json:"image,omitempty"`
	Options    []string           `bson:"options,omitempty" json:"options,omitempty"`
	Order      int                `bson:"order" json:"order"`
}

type FormWithQuestions struct {
	Form
	Questions []Question `json:"questions"`
}
