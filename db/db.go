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
	EventsCollection  *mongo.Collection
	VenuesCollection  *mongo.Collection
	ArchiveCollection *mongo.Collection
	UserCollection    *mongo.Collection
	Client            *mongo.Client
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

	EventsCollection = Client.Database("earlobedb").Collection("events")
	VenuesCollection = Client.Database("earlobedb").Collection("venues")
	ArchiveCollection = Client.Database("earlobedb").Collection("archive")
	UserCollection = Client.Database("earlobedb").Collection("users")
}
