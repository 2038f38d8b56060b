package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client     *mongo.Client
	once       sync.Once
	connectErr error

	dbName string

	UserCollection       *mongo.Collection
	FormCollection       *mongo.Collection
	QuestionCollection   *mongo.Collection
	SubmissionCollection *mongo.Collection
)

// ConnectMongoDB connects to MongoDB exactly once and wires up the
// collection handles the services use.
func ConnectMongoDB() error {

	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	dbName = os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "FormBuilderDB"
	}

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		UserCollection = client.Database(dbName).Collection("users")
		FormCollection = client.Database(dbName).Collection("forms")
		QuestionCollection = client.Database(dbName).Collection("questions")
		SubmissionCollection = client.Database(dbName).Collection("submissions")

		log.Println("✅ MongoDB connected successfully")
	})

	return connectErr
}

// GetClient exposes the raw client for session transactions.
func GetClient() *mongo.Client {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client
}

// GetCollection returns a collection from the configured database.
func GetCollection(collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
