package forms

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"formbuilder-backend/src/models"
)

// ErrUnknownQuestionType means a draft type slipped past validation without
// a persistence mapping. That is an internal contract violation: the whole
// publish aborts and nothing is persisted.
var ErrUnknownQuestionType = errors.New("unknown question type")

var draftTypeToStored = map[string]models.QuestionType{
	models.DraftTypeText:           models.TextQuestion,
	models.DraftTypeMultipleChoice: models.MultipleChoice,
	models.DraftTypeVideo:          models.VideoQuestion,
	models.DraftTypeSentiment:      models.SentimentQuestion,
}

// MapQuestionType translates a draft discriminant into the stored
// vocabulary.
func MapQuestionType(draftType string) (models.QuestionType, error) {
	stored, ok := draftTypeToStored[draftType]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownQuestionType, draftType)
	}
	return stored, nil
}

// BuildFormURL derives the shareable URL for a published form. A missing
// base origin falls back to the local default and never blocks publication.
func BuildFormURL(formID string) string {
	base := os.Getenv("APP_PUBLIC_URL")
	if base == "" {
		base = "http://localhost:3000"
	}
	return strings.TrimRight(base, "/") + "/forms/" + formID
}

// buildQuestions turns validated payload questions into storable documents
// for the given form, preserving their order.
func buildQuestions(formID primitive.ObjectID, payload []models.QuestionPayload) ([]models.Question, error) {
	questions := make([]models.Question, 0, len(payload))
	for i, q := range payload {
		stored, err := MapQuestionType(q.Type)
		if err != nil {
			return nil, err
		}
		question := models.Question{
			ID:         primitive.NewObjectID(),
			FormID:     formID,
			Text:       q.Text,
			Type:       stored,
			IsRequired: q.Required,
			Image:      q.Image,
			Order:      i + 1,
		}
		if stored == models.MultipleChoice {
			question.Options = append([]string(nil), q.Options...)
		}
		questions = append(questions, question)
	}
	return questions, nil
}

// CopyForm produces an unpersisted duplicate of a form and its questions:
// new identities, fresh timestamps, unpublished, response count zero,
// everything else copied verbatim.
func CopyForm(src *models.FormWithQuestions, now time.Time) (*models.Form, []models.Question) {
	form := &models.Form{
		ID:          primitive.NewObjectID(),
		Title:       src.Title,
		Description: src.Description,
		Image:       src.Image,
		UserID:      src.UserID,
		Published:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	questions := make([]models.Question, 0, len(src.Questions))
	for _, q := range src.Questions {
		copied := q
		copied.ID = primitive.NewObjectID()
		copied.FormID = form.ID
		copied.Options = append([]string(nil), q.Options...)
		questions = append(questions, copied)
	}
	return form, questions
}
