package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"doctors_portal_go/config"
)

// Collection names of the portal database.
const (
	AppointmentOptions = "appointment_options"
	Bookings           = "bookings"
	Users              = "users"
	Doctors            = "doctors"
)

// InitDatabase connects to MongoDB and prepares the portal database. The
// returned client lives for the whole process.
func InitDatabase(cfg *config.Config) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, fmt.Errorf("failed to ping database: %v", err)
	}

	database := client.Database(cfg.DatabaseName)

	if err := ensureIndexes(ctx, database); err != nil {
		return nil, nil, err
	}

	return client, database, nil
}

// ensureIndexes creates the unique compound index backing the one-booking-per
// (email, date, treatment) rule, so duplicate inserts fail atomically instead
// of relying on a read-then-write check.
func ensureIndexes(ctx context.Context, database *mongo.Database) error {
	_, err := database.Collection(Bookings).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "email", Value: 1},
			{Key: "appointmentDate", Value: 1},
			{Key: "treatment", Value: 1},
		},
		Options: options.Index().SetUnique(true).SetName("unique_booking_per_day"),
	})
	if err != nil {
		return fmt.Errorf("failed to create booking index: %v", err)
	}
	return nil
}
