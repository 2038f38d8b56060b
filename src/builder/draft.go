// Package builder holds the in-memory draft of a form under construction.
// All operations are pure data bookkeeping: they never fail, never touch
// storage, and leave enforcement of publishability to the validation
// package.
package builder

import (
	"fmt"

	"github.com/google/uuid"

	"formbuilder-backend/src/models"
	"formbuilder-backend/src/validation"
)

// MaxOptions caps how many options a multiple choice question may carry.
const MaxOptions = 4

type Draft struct {
	Title       string
	Description string
	Image       string
	Questions   []Question
}

type Question struct {
	ID       string
	Type     string
	Text     string
	Required bool
	Image    string
	Options  []string
}

// QuestionUpdate carries a partial update; nil fields are left untouched.
type QuestionUpdate struct {
	Type     *string
	Text     *string
	Required *bool
	Image    *string
	Options  *[]string
}

func NewDraft() *Draft {
	return &Draft{Title: "Untitled Form"}
}

// AddQuestion appends a new question of the given type with a freshly
// generated id. Multiple choice questions start with a single seeded
// option.
func (d *Draft) AddQuestion(qType string) string {
	q := Question{
		ID:   uuid.NewString(),
		Type: qType,
	}
	if qType == models.DraftTypeMultipleChoice {
		q.Options = []string{"Option 1"}
	}
	d.Questions = append(d.Questions, q)
	return q.ID
}

// UpdateQuestion merges the update into the matching question. An absent
// id is silently ignored.
func (d *Draft) UpdateQuestion(id string, update QuestionUpdate) {
	for i := range d.Questions {
		if d.Questions[i].ID != id {
			continue
		}
		q := &d.Questions[i]
		if update.Type != nil {
			q.Type = *update.Type
		}
		if update.Text != nil {
			q.Text = *update.Text
		}
		if update.Required != nil {
			q.Required = *update.Required
		}
		if update.Image != nil {
			q.Image = *update.Image
		}
		if update.Options != nil {
			q.Options = *update.Options
		}
		return
	}
}

// RemoveQuestion deletes the matching question; no-op if absent. Removed
// ids are never reused since every question gets a fresh uuid.
func (d *Draft) RemoveQuestion(id string) {
	for i := range d.Questions {
		if d.Questions[i].ID == id {
			d.Questions = append(d.Questions[:i], d.Questions[i+1:]...)
			return
		}
	}
}

// AddOption appends "Option {n+1}" to a multiple choice question. Calls
// beyond the cap, or against other question types, are no-ops.
func (d *Draft) AddOption(questionID string) {
	q := d.find(questionID)
	if q == nil || q.Type != models.DraftTypeMultipleChoice {
		return
	}
	if len(q.Options) >= MaxOptions {
		return
	}
	q.Options = append(q.Options, fmt.Sprintf("Option %d", len(q.Options)+1))
}

// UpdateOption replaces the option at index; out-of-range is a no-op.
func (d *Draft) UpdateOption(questionID string, index int, value string) {
	q := d.find(questionID)
	if q == nil || q.Type != models.DraftTypeMultipleChoice {
		return
	}
	if index < 0 || index >= len(q.Options) {
		return
	}
	q.Options[index] = value
}

// RemoveOption deletes the option at index. Dropping below one remaining
// option is allowed here; the minimum is enforced at validation time.
func (d *Draft) RemoveOption(questionID string, index int) {
	q := d.find(questionID)
	if q == nil || q.Type != models.DraftTypeMultipleChoice {
		return
	}
	if index < 0 || index >= len(q.Options) {
		return
	}
	q.Options = append(q.Options[:index], q.Options[index+1:]...)
}

// ToggleRequired sets the required flag on the matching question.
func (d *Draft) ToggleRequired(questionID string, required bool) {
	if q := d.find(questionID); q != nil {
		q.Required = required
	}
}

func (d *Draft) find(id string) *Question {
	for i := range d.Questions {
		if d.Questions[i].ID == id {
			return &d.Questions[i]
		}
	}
	return nil
}

// Payload snapshots the draft into the wire shape the publish endpoint
// accepts.
func (d *Draft) Payload() *models.FormPayload {
	payload := &models.FormPayload{
		Title:       d.Title,
		Description: d.Description,
		Image:       d.Image,
	}
	for _, q := range d.Questions {
		payload.Questions = append(payload.Questions, models.QuestionPayload{
			ID:       q.ID,
			Type:     q.Type,
			Text:     q.Text,
			Required: q.Required,
			Image:    q.Image,
			Options:  append([]string(nil), q.Options...),
		})
	}
	return payload
}

// Validate runs the shared publication schema against the current draft
// state. It is the same check the publish pipeline runs server-side.
func (d *Draft) Validate() (validation.FieldErrors, error) {
	return validation.Validate(d.Payload())
}
