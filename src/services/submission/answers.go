package submission

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"formbuilder-backend/src/models"
)

// ValidateAnswers checks a response against the form's questions: every
// answer must target a known question with a value matching the question
// type, and every required question must be answered.
func ValidateAnswers(answers []models.Answer, questions []models.Question) error {
	questionMap := make(map[primitive.ObjectID]models.Question, len(questions))
	for _, q := range questions {
		questionMap[q.ID] = q
	}

	answered := make(map[primitive.ObjectID]bool, len(answers))

	for _, answer := range answers {
		question, exists := questionMap[answer.QuestionID]
		if !exists {
			return errors.New("invalid question ID in answer")
		}
		answered[answer.QuestionID] = true

		if err := validateAnswerValue(answer.Value, question); err != nil {
			return err
		}
	}

	for _, question := range questions {
		if question.IsRequired && !answered[question.ID] {
			return fmt.Errorf("required question not answered: %s", question.Text)
		}
	}

	return nil
}

func validateAnswerValue(value interface{}, question models.Question) error {
	switch question.Type {
	case models.TextQuestion, models.VideoQuestion:
		if str, ok := value.(string); !ok || str == "" {
			return fmt.Errorf("non-empty string value required for %s questions", question.Type)
		}

	case models.MultipleChoice:
		str, ok := value.(string)
		if !ok {
			return errors.New("string value required for multiple choice questions")
		}
		for _, option := range question.Options {
			if option == str {
				return nil
			}
		}
		return errors.New("invalid choice selected")

	case models.SentimentQuestion:
		// JSON numbers decode as float64.
		num, ok := value.(float64)
		if !ok {
			return errors.New("numeric value required for sentiment questions")
		}
		if num != float64(int(num)) || num < 1 || num > 5 {
			return errors.New("sentiment value must be an integer between 1 and 5")
		}

	default:
		return fmt.Errorf("unsupported question type: %s", question.Type)
	}

	return nil
}
