package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeRecountResponses = "form:recount_responses"

type FormTaskPayload struct {
	FormID string `json:"form_id"`
}

func NewRecountResponsesTask(formID string) (*asynq.Task, error) {
	payload, err := json.Marshal(FormTaskPayload{FormID: formID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeRecountResponses, payload), nil
}
