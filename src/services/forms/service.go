package forms

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
	"formbuilder-backend/src/models"
	"formbuilder-backend/src/validation"
)

var (
	ErrFormNotFound = errors.New("form not found")
	// ErrNotOwner covers both "someone else's form" and "no such form" so
	// a non-owner cannot probe for existence.
	ErrNotOwner = errors.New("form not found or not owned by caller")
)

// PublishForm runs the full pipeline: auth precondition, re-validation,
// type mapping, atomic persistence, URL derivation.
//
// A validation reject or missing identity comes back inside the result;
// a returned error means storage or an internal invariant failed and the
// caller should answer with a generic 500.
func PublishForm(ctx context.Context, userID string, payload *models.FormPayload) (*models.PublishResult, error) {
	if userID == "" {
		return &models.PublishResult{
			Success: false,
			Message: "You must be logged in to create a form.",
		}, nil
	}

	// Never trust the client-side check: the same schema runs again here.
	fieldErrs, err := validation.Validate(payload)
	if err != nil {
		return &models.PublishResult{Success: false, Message: err.Error()}, nil
	}
	if len(fieldErrs) > 0 {
		return &models.PublishResult{Success: false, Errors: fieldErrs}, nil
	}

	ownerID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", userID, err)
	}

	now := time.Now()
	form := &models.Form{
		ID:          primitive.NewObjectID(),
		Title:       payload.Title,
		Description: payload.Description,
		Image:       payload.Image,
		UserID:      ownerID,
		Published:   true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	questions, err := buildQuestions(form.ID, payload.Questions)
	if err != nil {
		// Unmapped type past validation: abort before touching storage.
		return nil, err
	}

	if err := insertFormAtomic(ctx, form, questions); err != nil {
		return nil, err
	}

	log.Printf("[forms] published id=%s owner=%s questions=%d", form.ID.Hex(), ownerID.Hex(), len(questions))

	return &models.PublishResult{
		Success: true,
		FormID:  form.ID.Hex(),
		FormURL: BuildFormURL(form.ID.Hex()),
	}, nil
}

// insertFormAtomic stores the form and all its questions in one session
// transaction: either everything lands or nothing does.
func insertFormAtomic(ctx context.Context, form *models.Form, questions []models.Question) error {
	session, err := DB.GetClient().StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := DB.FormCollection.InsertOne(sc, form); err != nil {
			return nil, err
		}
		docs := make([]interface{}, 0, len(questions))
		for _, q := range questions {
			docs = append(docs, q)
		}
		if len(docs) > 0 {
			if _, err := DB.QuestionCollection.InsertMany(sc, docs); err != nil {
				return nil, err
			}
		}
		return nil, nil
	})
	return err
}

// GetFormsByOwner lists the caller's forms newest-created-first. Search
// and re-sorting are presentation concerns left to the client; the server
// ordering is fixed.
func GetFormsByOwner(ctx context.Context, userID string) ([]models.Form, error) {
	ownerID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", userID, err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := DB.FormCollection.Find(ctx, bson.M{"userId": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	forms := []models.Form{}
	if err = cursor.All(ctx, &forms); err != nil {
		return nil, err
	}
	return forms, nil
}

// GetFormByID fetches one form with its ordered questions. A missing id
// yields (nil, nil): the read endpoints answer 200 with a null body rather
// than 404, matching the rest of the read surface.
func GetFormByID(ctx context.Context, formID primitive.ObjectID) (*models.FormWithQuestions, error) {
	var form models.Form
	err := DB.FormCollection.FindOne(ctx, bson.M{"_id": formID}).Decode(&form)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := DB.QuestionCollection.Find(ctx, bson.M{"formId": formID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	questions := []models.Question{}
	if err = cursor.All(ctx, &questions); err != nil {
		return nil, err
	}

	return &models.FormWithQuestions{Form: form, Questions: questions}, nil
}

// DeleteForm hard-deletes a form together with its questions and
// submissions. Ownership is part of the delete filter, so a request for
// another user's form fails with ErrNotOwner and leaves the record intact.
func DeleteForm(ctx context.Context, userID string, formID primitive.ObjectID) (*models.Form, error) {
	ownerID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", userID, err)
	}

	session, err := DB.GetClient().StartSession()
	if err != nil {
		return nil, err
	}
	defer session.EndSession(ctx)

	deleted, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var form models.Form
		err := DB.FormCollection.FindOneAndDelete(sc, bson.M{"_id": formID, "userId": ownerID}).Decode(&form)
		if err != nil {
			if err == mongo.ErrNoDocuments {
				return nil, ErrNotOwner
			}
			return nil, err
		}
		if _, err := DB.QuestionCollection.DeleteMany(sc, bson.M{"formId": formID}); err != nil {
			return nil, err
		}
		if _, err := DB.SubmissionCollection.DeleteMany(sc, bson.M{"formId": formID}); err != nil {
			return nil, err
		}
		return &form, nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[forms] deleted id=%s owner=%s", formID.Hex(), ownerID.Hex())
	return deleted.(*models.Form), nil
}

// DuplicateForm creates a new form owned by the caller, copying title,
// description, image and questions verbatim. Identity and timestamps are
// freshly assigned and the response count starts at zero.
func DuplicateForm(ctx context.Context, userID string, formID primitive.ObjectID) (*models.FormWithQuestions, error) {
	ownerID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", userID, err)
	}

	var src models.Form
	err = DB.FormCollection.FindOne(ctx, bson.M{"_id": formID, "userId": ownerID}).Decode(&src)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotOwner
		}
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := DB.QuestionCollection.Find(ctx, bson.M{"formId": formID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var srcQuestions []models.Question
	if err = cursor.All(ctx, &srcQuestions); err != nil {
		return nil, err
	}

	dup, questions := CopyForm(&models.FormWithQuestions{Form: src, Questions: srcQuestions}, time.Now())

	if err := insertFormAtomic(ctx, dup, questions); err != nil {
		return nil, err
	}

	return &models.FormWithQuestions{Form: *dup, Questions: questions}, nil
}

// SetPublished flips the published flag without touching stored content.
// Idempotent: applying the same state twice is a no-op on the second call.
func SetPublished(ctx context.Context, userID string, formID primitive.ObjectID, published bool) error {
	ownerID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return fmt.Errorf("invalid user id %q: %w", userID, err)
	}

	res, err := DB.FormCollection.UpdateOne(ctx,
		bson.M{"_id": formID, "userId": ownerID},
		bson.M{"$set": bson.M{"published": published, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotOwner
	}
	return nil
}
