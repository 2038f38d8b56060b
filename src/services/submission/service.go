package submission

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	DB "formbuilder-backend/src/database"
	"formbuilder-backend/src/jobs"
	"formbuilder-backend/src/models"
	"formbuilder-backend/src/services/forms"
)

var (
	ErrFormNotPublished = errors.New("form is not published")
)

// CreateSubmission records a response to a published form after checking
// the answers against the form's questions.
func CreateSubmission(ctx context.Context, formID primitive.ObjectID, req *models.SubmitResponseRequest) (*models.Submission, error) {
	var form models.Form
	err := DB.FormCollection.FindOne(ctx, bson.M{"_id": formID}).Decode(&form)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, forms.ErrFormNotFound
		}
		return nil, err
	}
	if !form.Published {
		return nil, ErrFormNotPublished
	}

	questions, err := getFormQuestions(ctx, formID)
	if err != nil {
		return nil, err
	}

	if err := ValidateAnswers(req.Answers, questions); err != nil {
		return nil, err
	}

	submission := &models.Submission{
		ID:          primitive.NewObjectID(),
		FormID:      formID,
		Answers:     req.Answers,
		SubmittedAt: time.Now(),
	}

	if _, err := DB.SubmissionCollection.InsertOne(ctx, submission); err != nil {
		return nil, err
	}

	enqueueRecount(ctx, formID)

	log.Printf("[submission] inserted id=%s form=%s answers=%d",
		submission.ID.Hex(), formID.Hex(), len(submission.Answers))

	return submission, nil
}

// enqueueRecount schedules the cached response-count refresh. Without an
// Asynq client (no Redis in dev) the recount runs inline instead.
func enqueueRecount(ctx context.Context, formID primitive.ObjectID) {
	if DB.AsynqClient != nil {
		task, err := jobs.NewRecountResponsesTask(formID.Hex())
		if err == nil {
			if _, err = DB.AsynqClient.Enqueue(task); err == nil {
				return
			}
		}
		log.Println("⚠️ Failed to enqueue recount task, recounting inline:", err)
	}
	if err := RecountResponses(ctx, formID); err != nil {
		log.Println("❌ Inline recount failed:", err)
	}
}

// RecountResponses recomputes the cached responsesCount on a form.
func RecountResponses(ctx context.Context, formID primitive.ObjectID) error {
	count, err := DB.SubmissionCollection.CountDocuments(ctx, bson.M{"formId": formID})
	if err != nil {
		return err
	}
	_, err = DB.FormCollection.UpdateOne(ctx,
		bson.M{"_id": formID},
		bson.M{"$set": bson.M{"responsesCount": count}},
	)
	return err
}

// GetSubmissionsByForm returns a page of a form's submissions, newest
// first, for the form's owner only.
func GetSubmissionsByForm(ctx context.Context, userID string, formID primitive.ObjectID, params models.PaginationParams) (*models.PaginatedSubmissionsResponse, error) {
	ownerID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", userID, err)
	}

	// Ownership gate: reading responses is owner-only.
	err = DB.FormCollection.FindOne(ctx, bson.M{"_id": formID, "userId": ownerID}).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, forms.ErrNotOwner
		}
		return nil, err
	}

	filter := bson.M{"formId": formID}

	total, err := DB.SubmissionCollection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	sort := bson.D{}
	for field, order := range params.GetSortOrder() {
		sort = append(sort, bson.E{Key: field, Value: order})
	}
	opts := options.Find().
		SetSkip(params.GetSkip()).
		SetLimit(int64(params.Limit)).
		SetSort(sort)

	cursor, err := DB.SubmissionCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	submissions := []models.Submission{}
	if err = cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}

	return &models.PaginatedSubmissionsResponse{
		Submissions: submissions,
		Total:       total,
		Page:        params.Page,
		Limit:       params.Limit,
		TotalPages:  models.TotalPages(total, params.Limit),
	}, nil
}

func getFormQuestions(ctx context.Context, formID primitive.ObjectID) ([]models.Question, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := DB.QuestionCollection.Find(ctx, bson.M{"formId": formID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var questions []models.Question
	if err = cursor.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}
