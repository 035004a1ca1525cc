package database

import (
	"context"
	"log"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const DBName = "AgencyDB"

var (
	client     *mongo.Client
	once       sync.Once
	connectErr error

	SubmissionCollection    *mongo.Collection
	BlogCollection          *mongo.Collection
	CaseStudyCollection     *mongo.Collection
	PageCollection          *mongo.Collection
	NewsletterCollection    *mongo.Collection
	RegionContactCollection *mongo.Collection
	UserCollection          *mongo.Collection
)

// ConnectMongoDB opens the shared client once. Called from main before
// any route is registered; services read the exported collections.
func ConnectMongoDB() error {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, connectErr = mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
		if connectErr != nil {
			return
		}

		connectErr = client.Ping(ctx, readpref.Primary())
		if connectErr != nil {
			return
		}

		db := client.Database(DBName)
		SubmissionCollection = db.Collection("submissions")
		BlogCollection = db.Collection("blogs")
		CaseStudyCollection = db.Collection("caseStudies")
		PageCollection = db.Collection("pages")
		NewsletterCollection = db.Collection("newsletterSubscribers")
		RegionContactCollection = db.Collection("regionContacts")
		UserCollection = db.Collection("users")

		log.Println("MongoDB connected")
	})

	return connectErr
}

// DisconnectMongoDB releases the shared client, used on shutdown.
func DisconnectMongoDB(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

// GetCollection returns a collection on the agency database.
func GetCollection(collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("MongoDB client is nil, call ConnectMongoDB first")
	}
	return client.Database(DBName).Collection(collectionName)
}
