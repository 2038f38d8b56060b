// Package validation is the single publication schema for forms. The
// builder runs it before submitting and the publish pipeline runs it again
// at the point of persistence; both sides import this package so the rules
// cannot drift.
package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"formbuilder-backend/src/models"
)

// FieldErrors maps a field path to an ordered list of human-readable
// messages. Empty means publishable.
type FieldErrors map[string][]string

func (fe FieldErrors) add(path, msg string) {
	fe[path] = append(fe[path], msg)
}

var structural = validator.New()

// Validate checks a publish payload against the publishable-form contract.
//
// The structural pass rejects malformed shapes, an unknown question type
// in particular, before any field rule runs. The semantic pass then
// evaluates every field rule independently and accumulates all violations
// rather than stopping at the first. Output is deterministic and
// order-stable for a given snapshot.
func Validate(payload *models.FormPayload) (FieldErrors, error) {
	if payload == nil {
		return nil, fmt.Errorf("form payload is nil")
	}

	if err := structural.Struct(payload); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			f := verrs[0]
			return nil, fmt.Errorf("invalid form shape: field %s failed %s", f.Namespace(), f.Tag())
		}
		return nil, err
	}

	errs := FieldErrors{}

	if payload.Title == "" {
		errs.add("title", "Form title is required")
	}

	if len(payload.Questions) == 0 {
		errs.add("questions", "At least one question is required")
	}

	for i, q := range payload.Questions {
		if q.Text == "" {
			errs.add("questions", fmt.Sprintf("Question %d: question text is required", i+1))
		}
		if q.Type != models.DraftTypeMultipleChoice {
			continue
		}
		if len(q.Options) == 0 {
			errs.add("questions", fmt.Sprintf("Question %d: at least one option is required", i+1))
		}
		if len(q.Options) > 4 {
			errs.add("questions", fmt.Sprintf("Question %d: at most 4 options are allowed", i+1))
		}
		for j, opt := range q.Options {
			if opt == "" {
				errs.add("questions", fmt.Sprintf("Question %d: option %d cannot be empty", i+1, j+1))
			}
		}
	}

	if len(errs) == 0 {
		return nil, nil
	}
	return errs, nil
}
