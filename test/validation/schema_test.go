package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"formbuilder-backend/src/models"
	"formbuilder-backend/src/validation"
)

func publishablePayload() *models.FormPayload {
	return &models.FormPayload{
		Title: "Customer Survey",
		Questions: []models.QuestionPayload{
			{ID: "q1", Type: models.DraftTypeText, Text: "Any feedback?"},
			{ID: "q2", Type: models.DraftTypeMultipleChoice, Text: "Favorite color?", Options: []string{"Red", "Blue"}},
			{ID: "q3", Type: models.DraftTypeSentiment, Text: "How do you feel?", Required: true},
			{ID: "q4", Type: models.DraftTypeVideo, Text: "Tell us more"},
		},
	}
}

func TestValidatePublishableForm(t *testing.T) {
	fieldErrs, err := validation.Validate(publishablePayload())
	require.NoError(t, err)
	assert.Empty(t, fieldErrs)
}

func TestValidateTitleRequired(t *testing.T) {
	payload := publishablePayload()
	payload.Title = ""

	fieldErrs, err := validation.Validate(payload)
	require.NoError(t, err)
	assert.Equal(t, []string{"Form title is required"}, fieldErrs["title"])
}

func TestValidateQuestionsRequired(t *testing.T) {
	payload := &models.FormPayload{Title: "Survey"}

	fieldErrs, err := validation.Validate(payload)
	require.NoError(t, err)
	assert.Equal(t, []string{"At least one question is required"}, fieldErrs["questions"])
}

func TestValidateEmptyQuestionTextRejected(t *testing.T) {
	// Title "Survey", one text question with empty text: publish must be
	// rejected with a questions error.
	payload := &models.FormPayload{
		Title: "Survey",
		Questions: []models.QuestionPayload{
			{ID: "q1", Type: models.DraftTypeText, Text: ""},
		},
	}

	fieldErrs, err := validation.Validate(payload)
	require.NoError(t, err)
	require.Contains(t, fieldErrs, "questions")
	assert.Equal(t, []string{"Question 1: question text is required"}, fieldErrs["questions"])
	assert.NotContains(t, fieldErrs, "title")
}

func TestValidateMultipleChoiceOptionRules(t *testing.T) {
	t.Run("NoOptions", func(t *testing.T) {
		payload := &models.FormPayload{
			Title: "Survey",
			Questions: []models.QuestionPayload{
				{ID: "q1", Type: models.DraftTypeMultipleChoice, Text: "Pick one"},
			},
		}
		fieldErrs, err := validation.Validate(payload)
		require.NoError(t, err)
		assert.Equal(t, []string{"Question 1: at least one option is required"}, fieldErrs["questions"])
	})

	t.Run("TooManyOptions", func(t *testing.T) {
		payload := &models.FormPayload{
			Title: "Survey",
			Questions: []models.QuestionPayload{
				{ID: "q1", Type: models.DraftTypeMultipleChoice, Text: "Pick one",
					Options: []string{"A", "B", "C", "D", "E"}},
			},
		}
		fieldErrs, err := validation.Validate(payload)
		require.NoError(t, err)
		assert.Equal(t, []string{"Question 1: at most 4 options are allowed"}, fieldErrs["questions"])
	})

	t.Run("EmptyOption", func(t *testing.T) {
		payload := &models.FormPayload{
			Title: "Survey",
			Questions: []models.QuestionPayload{
				{ID: "q1", Type: models.DraftTypeMultipleChoice, Text: "Pick one",
					Options: []string{"A", "", "C"}},
			},
		}
		fieldErrs, err := validation.Validate(payload)
		require.NoError(t, err)
		assert.Equal(t, []string{"Question 1: option 2 cannot be empty"}, fieldErrs["questions"])
	})
}

func TestValidateAccumulatesAcrossFields(t *testing.T) {
	// Field rules are evaluated independently: a title violation must not
	// short-circuit the question checks.
	payload := &models.FormPayload{
		Title: "",
		Questions: []models.QuestionPayload{
			{ID: "q1", Type: models.DraftTypeText, Text: ""},
			{ID: "q2", Type: models.DraftTypeMultipleChoice, Text: "Pick", Options: []string{""}},
		},
	}

	fieldErrs, err := validation.Validate(payload)
	require.NoError(t, err)
	assert.Equal(t, []string{"Form title is required"}, fieldErrs["title"])
	assert.Equal(t, []string{
		"Question 1: question text is required",
		"Question 2: option 1 cannot be empty",
	}, fieldErrs["questions"])
}

func TestValidateUnknownTypeIsStructural(t *testing.T) {
	payload := &models.FormPayload{
		Title: "Survey",
		Questions: []models.QuestionPayload{
			{ID: "q1", Type: "essay", Text: "Write something"},
		},
	}

	fieldErrs, err := validation.Validate(payload)
	assert.Error(t, err)
	assert.Nil(t, fieldErrs)
}

func TestValidateIsIdempotent(t *testing.T) {
	payload := &models.FormPayload{
		Title: "",
		Questions: []models.QuestionPayload{
			{ID: "q1", Type: models.DraftTypeMultipleChoice, Text: "", Options: []string{"A", ""}},
		},
	}

	first, err1 := validation.Validate(payload)
	second, err2 := validation.Validate(payload)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
}
