package submission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"formbuilder-backend/src/models"
	"formbuilder-backend/src/services/submission"
)

func sampleQuestions() []models.Question {
	return []models.Question{
		{ID: primitive.NewObjectID(), Text: "Any feedback?", Type: models.TextQuestion, IsRequired: true, Order: 1},
		{ID: primitive.NewObjectID(), Text: "Pick one", Type: models.MultipleChoice, Options: []string{"A", "B"}, Order: 2},
		{ID: primitive.NewObjectID(), Text: "How do you feel?", Type: models.SentimentQuestion, Order: 3},
		{ID: primitive.NewObjectID(), Text: "Say hi", Type: models.VideoQuestion, Order: 4},
	}
}

func TestValidateAnswersAccepted(t *testing.T) {
	questions := sampleQuestions()
	answers := []models.Answer{
		{QuestionID: questions[0].ID, Value: "Great product"},
		{QuestionID: questions[1].ID, Value: "B"},
		{QuestionID: questions[2].ID, Value: float64(4)},
		{QuestionID: questions[3].ID, Value: "blob:video-chunk"},
	}

	assert.NoError(t, submission.ValidateAnswers(answers, questions))
}

func TestValidateAnswersRequiredMissing(t *testing.T) {
	questions := sampleQuestions()
	// The required text question is skipped.
	answers := []models.Answer{
		{QuestionID: questions[1].ID, Value: "A"},
	}

	err := submission.ValidateAnswers(answers, questions)
	assert.ErrorContains(t, err, "required question not answered")
}

func TestValidateAnswersUnknownQuestion(t *testing.T) {
	questions := sampleQuestions()
	answers := []models.Answer{
		{QuestionID: primitive.NewObjectID(), Value: "stray"},
	}

	err := submission.ValidateAnswers(answers, questions)
	assert.ErrorContains(t, err, "invalid question ID")
}

func TestValidateAnswersPerType(t *testing.T) {
	questions := sampleQuestions()
	required := models.Answer{QuestionID: questions[0].ID, Value: "ok"}

	t.Run("EmptyText", func(t *testing.T) {
		err := submission.ValidateAnswers([]models.Answer{
			{QuestionID: questions[0].ID, Value: ""},
		}, questions)
		assert.Error(t, err)
	})

	t.Run("ChoiceNotInOptions", func(t *testing.T) {
		err := submission.ValidateAnswers([]models.Answer{
			required,
			{QuestionID: questions[1].ID, Value: "Z"},
		}, questions)
		assert.ErrorContains(t, err, "invalid choice")
	})

	t.Run("SentimentOutOfRange", func(t *testing.T) {
		for _, v := range []float64{0, 6, 2.5} {
			err := submission.ValidateAnswers([]models.Answer{
				required,
				{QuestionID: questions[2].ID, Value: v},
			}, questions)
			assert.Error(t, err, "value %v should be rejected", v)
		}
	})

	t.Run("SentimentWrongType", func(t *testing.T) {
		err := submission.ValidateAnswers([]models.Answer{
			required,
			{QuestionID: questions[2].ID, Value: "happy"},
		}, questions)
		assert.ErrorContains(t, err, "numeric value required")
	})
}
