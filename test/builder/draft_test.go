package builder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"formbuilder-backend/src/builder"
	"formbuilder-backend/src/models"
	"formbuilder-backend/test"
)

func strPtr(s string) *string { return &s }

func TestDraftQuestions(t *testing.T) {
	suiteResult := test.NewTestSuiteResult("Draft Question Tests")
	defer suiteResult.PrintSummary()

	t.Run("TestAddQuestion", func(t *testing.T) {
		timer := test.NewTestTimer("Add Question")
		defer func() {
			duration := timer.Stop()
			suiteResult.AddResult(test.TestResult{Name: "Add Question", Duration: duration, Passed: true})
			test.PerformanceAssertion(t, "Add Question", duration, time.Millisecond)
		}()

		d := builder.NewDraft()
		assert.Equal(t, "Untitled Form", d.Title)

		textID := d.AddQuestion(models.DraftTypeText)
		mcID := d.AddQuestion(models.DraftTypeMultipleChoice)

		assert.Len(t, d.Questions, 2)
		assert.NotEqual(t, textID, mcID)

		assert.Empty(t, d.Questions[0].Text)
		assert.False(t, d.Questions[0].Required)
		assert.Nil(t, d.Questions[0].Options)

		// Multiple choice starts with one seeded option.
		assert.Equal(t, []string{"Option 1"}, d.Questions[1].Options)
	})

	t.Run("TestQuestionIDsUniqueAndStable", func(t *testing.T) {
		d := builder.NewDraft()
		seen := map[string]bool{}
		for i := 0; i < 20; i++ {
			id := d.AddQuestion(models.DraftTypeText)
			assert.False(t, seen[id], "duplicate question id generated")
			seen[id] = true
		}

		first := d.Questions[0].ID
		d.RemoveQuestion(d.Questions[5].ID)
		assert.Equal(t, first, d.Questions[0].ID)
	})

	t.Run("TestUpdateQuestion", func(t *testing.T) {
		d := builder.NewDraft()
		id := d.AddQuestion(models.DraftTypeText)

		d.UpdateQuestion(id, builder.QuestionUpdate{Text: strPtr("How did you hear about us?")})
		assert.Equal(t, "How did you hear about us?", d.Questions[0].Text)
		assert.Equal(t, models.DraftTypeText, d.Questions[0].Type)

		// Absent id is silently ignored.
		d.UpdateQuestion("no-such-id", builder.QuestionUpdate{Text: strPtr("changed")})
		assert.Equal(t, "How did you hear about us?", d.Questions[0].Text)
	})

	t.Run("TestRemoveQuestion", func(t *testing.T) {
		d := builder.NewDraft()
		keep := d.AddQuestion(models.DraftTypeText)
		drop := d.AddQuestion(models.DraftTypeVideo)

		d.RemoveQuestion(drop)
		assert.Len(t, d.Questions, 1)
		assert.Equal(t, keep, d.Questions[0].ID)

		d.RemoveQuestion("no-such-id")
		assert.Len(t, d.Questions, 1)
	})

	t.Run("TestToggleRequired", func(t *testing.T) {
		d := builder.NewDraft()
		id := d.AddQuestion(models.DraftTypeSentiment)

		d.ToggleRequired(id, true)
		assert.True(t, d.Questions[0].Required)

		d.ToggleRequired(id, false)
		assert.False(t, d.Questions[0].Required)
	})
}

func TestDraftOptions(t *testing.T) {
	t.Run("TestAddOptionNumbering", func(t *testing.T) {
		d := builder.NewDraft()
		id := d.AddQuestion(models.DraftTypeMultipleChoice)

		d.AddOption(id)
		d.AddOption(id)
		assert.Equal(t, []string{"Option 1", "Option 2", "Option 3"}, d.Questions[0].Options)
	})

	t.Run("TestAddOptionCapAtFour", func(t *testing.T) {
		d := builder.NewDraft()
		id := d.AddQuestion(models.DraftTypeMultipleChoice)

		// Far past the cap: count must never exceed 4 regardless of call count.
		for i := 0; i < 10; i++ {
			d.AddOption(id)
		}
		assert.Len(t, d.Questions[0].Options, builder.MaxOptions)

		d.AddOption(id)
		assert.Len(t, d.Questions[0].Options, builder.MaxOptions)
	})

	t.Run("TestAddOptionIgnoresOtherTypes", func(t *testing.T) {
		d := builder.NewDraft()
		id := d.AddQuestion(models.DraftTypeText)

		d.AddOption(id)
		assert.Nil(t, d.Questions[0].Options)
	})

	t.Run("TestUpdateOption", func(t *testing.T) {
		d := builder.NewDraft()
		id := d.AddQuestion(models.DraftTypeMultipleChoice)
		d.AddOption(id)

		d.UpdateOption(id, 0, "Red")
		d.UpdateOption(id, 1, "Blue")
		assert.Equal(t, []string{"Red", "Blue"}, d.Questions[0].Options)

		// Out-of-range index is a no-op.
		d.UpdateOption(id, 2, "Green")
		d.UpdateOption(id, -1, "Green")
		assert.Equal(t, []string{"Red", "Blue"}, d.Questions[0].Options)
	})

	t.Run("TestRemoveOption", func(t *testing.T) {
		d := builder.NewDraft()
		id := d.AddQuestion(models.DraftTypeMultipleChoice)
		d.AddOption(id)

		d.RemoveOption(id, 0)
		assert.Equal(t, []string{"Option 2"}, d.Questions[0].Options)

		// Dropping below one option is allowed; validation catches it later.
		d.RemoveOption(id, 0)
		assert.Empty(t, d.Questions[0].Options)

		// Out-of-range never panics, always a no-op.
		d.RemoveOption(id, 0)
		d.RemoveOption(id, 5)
		d.RemoveOption(id, -1)
		assert.Empty(t, d.Questions[0].Options)
	})

	t.Run("TestOptionOrderPreservedAcrossEdits", func(t *testing.T) {
		d := builder.NewDraft()
		id := d.AddQuestion(models.DraftTypeMultipleChoice)
		d.AddOption(id)
		d.AddOption(id)
		d.AddOption(id)

		d.UpdateOption(id, 0, "A")
		d.UpdateOption(id, 1, "B")
		d.UpdateOption(id, 2, "C")
		d.UpdateOption(id, 3, "D")
		d.RemoveOption(id, 1)

		assert.Equal(t, []string{"A", "C", "D"}, d.Questions[0].Options)
	})
}

func TestDraftValidateRoundTrip(t *testing.T) {
	d := builder.NewDraft()
	d.Title = "Survey"
	id := d.AddQuestion(models.DraftTypeText)

	// Question without text: rejected by the shared schema.
	fieldErrs, err := d.Validate()
	assert.NoError(t, err)
	assert.Contains(t, fieldErrs, "questions")

	d.UpdateQuestion(id, builder.QuestionUpdate{Text: strPtr("Any feedback?")})
	fieldErrs, err = d.Validate()
	assert.NoError(t, err)
	assert.Empty(t, fieldErrs)

	payload := d.Payload()
	assert.Equal(t, "Survey", payload.Title)
	assert.Len(t, payload.Questions, 1)
	assert.Equal(t, models.DraftTypeText, payload.Questions[0].Type)
}
