package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UserCollection          *mongo.Collection
	BookingsCollection      *mongo.Collection
	FinesCollection         *mongo.Collection
	PaymentsCollection      *mongo.Collection
	VisitsCollection        *mongo.Collection
	ProvidersCollection     *mongo.Collection
	AnnouncementsCollection *mongo.Collection
	DocumentsCollection     *mongo.Collection
	Client                  *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	var err error
	Client, err = mongo.Connect(context.TODO(), options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database("milovatdb")
	UserCollection = database.Collection("users")
	BookingsCollection = database.Collection("bookings")
	FinesCollection = database.Collection("fines")
	PaymentsCollection = database.Collection("payments")
	VisitsCollection = database.Collection("visits")
	ProvidersCollection = database.Collection("providers")
	AnnouncementsCollection = database.Collection("announcements")
	DocumentsCollection = database.Collection("documents")
}
