package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"formbuilder-backend/src/database"
	"formbuilder-backend/src/models"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// RegisterUser creates a new account with a bcrypt-hashed password.
func RegisterUser(ctx context.Context, name, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	err := database.UserCollection.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return nil, ErrEmailTaken
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		Password:  string(hash),
		CreatedAt: time.Now(),
	}
	if _, err := database.UserCollection.InsertOne(ctx, user); err != nil {
		return nil, err
	}

	user.Password = ""
	return user, nil
}

// AuthenticateUser checks credentials and returns the account without its
// password hash.
func AuthenticateUser(ctx context.Context, email, password string) (*models.User, error) {
	var dbUser models.User
	err := database.UserCollection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&dbUser)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(dbUser.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	dbUser.Password = ""
	return &dbUser, nil
}
