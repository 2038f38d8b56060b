package models

// Draft-side question type discriminants, as the builder and the wire
// payload spell them. The persistence layer uses QuestionType instead;
// the forms service owns the mapping between the two.
const (
	DraftTypeMultipleChoice = "multiple_choice"
	DraftTypeText           = "text"
	DraftTypeVideo          = "video"
	DraftTypeSentiment      = "sentiment"
)

// FormPayload is the wire shape of a draft submitted for publication.
// The validate tags cover the structural contract only; field-level rules
// live in the validation package so both sides share one schema.
type FormPayload struct {
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Image       string            `json:"image,omitempty"`
	Questions   []QuestionPayload `json:"questions" validate:"dive"`
}

type QuestionPayload struct {
	ID       string   `json:"id,omitempty"`
	Type     string   `json:"type" validate:"required,oneof=multiple_choice text video sentiment"`
	Text     string   `json:"text"`
	Required bool     `json:"required"`
	Image    string   `json:"image,omitempty"`
	Options  []string `json:"options,omitempty"`
}

// PublishResult is what the publish pipeline reports back to the caller.
// Exactly one of the three outcomes is populated: FormID+FormURL on
// success, Errors on a validation reject, Message on a failure.
type PublishResult struct {
	Success bool                `json:"success"`
	FormID  string              `json:"formId,omitempty"`
	FormURL string              `json:"formUrl,omitempty"`
	Message string              `json:"message,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}
