package jobs

import (
	"context"
	"encoding/json"
	"log"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"formbuilder-backend/src/database"
)

// HandleRecountResponsesTask refreshes the cached responsesCount of a form
// after a submission landed.
func HandleRecountResponsesTask(ctx context.Context, t *asynq.Task) error {
	var payload FormTaskPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	formID, err := primitive.ObjectIDFromHex(payload.FormID)
	if err != nil {
		return err
	}

	// Form may have been deleted between enqueue and run; not an error.
	err = database.FormCollection.FindOne(ctx, bson.M{"_id": formID}).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Println("⚠️ Form not found. Possibly deleted. Skipping recount:", formID.Hex())
			return nil
		}
		return err
	}

	count, err := database.SubmissionCollection.CountDocuments(ctx, bson.M{"formId": formID})
	if err != nil {
		return err
	}

	_, err = database.FormCollection.UpdateOne(ctx,
		bson.M{"_id": formID},
		bson.M{"$set": bson.M{"responsesCount": count}},
	)
	if err != nil {
		log.Println("❌ Failed to update responsesCount:", err)
		return err
	}

	log.Printf("✅ Responses recounted: form=%s count=%d", formID.Hex(), count)
	return nil
}

// StartWorker runs the Asynq server for background tasks. Call in a
// goroutine once Redis is up.
func StartWorker(redisAddr string) {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeRecountResponses, HandleRecountResponsesTask)

	if err := srv.Run(mux); err != nil {
		log.Println("❌ Asynq worker stopped:", err)
	}
}
