package forms

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"formbuilder-backend/src/models"
	"formbuilder-backend/src/services/forms"
)

func TestBuildFormURL(t *testing.T) {
	t.Run("ConfiguredOrigin", func(t *testing.T) {
		t.Setenv("APP_PUBLIC_URL", "https://forms.example.com")
		assert.Equal(t, "https://forms.example.com/forms/abc123", forms.BuildFormURL("abc123"))
	})

	t.Run("TrailingSlashTrimmed", func(t *testing.T) {
		t.Setenv("APP_PUBLIC_URL", "https://forms.example.com/")
		assert.Equal(t, "https://forms.example.com/forms/abc123", forms.BuildFormURL("abc123"))
	})

	t.Run("DefaultOrigin", func(t *testing.T) {
		t.Setenv("APP_PUBLIC_URL", "")
		assert.Equal(t, "http://localhost:3000/forms/abc123", forms.BuildFormURL("abc123"))
	})
}

func TestMapQuestionType(t *testing.T) {
	cases := map[string]models.QuestionType{
		models.DraftTypeText:           models.TextQuestion,
		models.DraftTypeMultipleChoice: models.MultipleChoice,
		models.DraftTypeVideo:          models.VideoQuestion,
		models.DraftTypeSentiment:      models.SentimentQuestion,
	}
	for draftType, want := range cases {
		got, err := forms.MapQuestionType(draftType)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := forms.MapQuestionType("essay")
	assert.ErrorIs(t, err, forms.ErrUnknownQuestionType)
}

func TestCopyForm(t *testing.T) {
	owner := primitive.NewObjectID()
	srcID := primitive.NewObjectID()
	created := time.Now().Add(-48 * time.Hour)

	src := &models.FormWithQuestions{
		Form: models.Form{
			ID:             srcID,
			Title:          "Customer Survey",
			Description:    "Quarterly check-in",
			Image:          "data:image/png;base64,xyz",
			UserID:         owner,
			Published:      true,
			ResponsesCount: 42,
			CreatedAt:      created,
			UpdatedAt:      created,
		},
		Questions: []models.Question{
			{ID: primitive.NewObjectID(), FormID: srcID, Text: "Pick one",
				Type: models.MultipleChoice, Options: []string{"A", "B"}, Order: 1},
			{ID: primitive.NewObjectID(), FormID: srcID, Text: "Why?",
				Type: models.TextQuestion, IsRequired: true, Order: 2},
		},
	}

	now := time.Now()
	dup, questions := forms.CopyForm(src, now)

	// Fresh identity, content copied verbatim.
	assert.NotEqual(t, srcID, dup.ID)
	assert.Equal(t, src.Title, dup.Title)
	assert.Equal(t, src.Description, dup.Description)
	assert.Equal(t, src.Image, dup.Image)
	assert.Equal(t, owner, dup.UserID)

	// Copies are never auto-published and start with zero responses.
	assert.False(t, dup.Published)
	assert.Zero(t, dup.ResponsesCount)
	assert.Equal(t, now, dup.CreatedAt)
	assert.Equal(t, now, dup.UpdatedAt)

	require.Len(t, questions, 2)
	for i, q := range questions {
		assert.NotEqual(t, src.Questions[i].ID, q.ID)
		assert.Equal(t, dup.ID, q.FormID)
		assert.Equal(t, src.Questions[i].Text, q.Text)
		assert.Equal(t, src.Questions[i].Type, q.Type)
		assert.Equal(t, src.Questions[i].IsRequired, q.IsRequired)
		assert.Equal(t, src.Questions[i].Options, q.Options)
		assert.Equal(t, src.Questions[i].Order, q.Order)
	}

	// Option slices must not alias the source.
	if len(questions[0].Options) > 0 {
		questions[0].Options[0] = "mutated"
		assert.Equal(t, "A", src.Questions[0].Options[0])
	}
}
