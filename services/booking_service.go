package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"doctors_portal_go/auth"
	"doctors_portal_go/db"
	"doctors_portal_go/models"
)

// BookingInserter persists a booking and returns its generated id. A
// duplicate of an existing (email, date, treatment) booking must surface as
// a duplicate-key error from the store.
type BookingInserter func(ctx context.Context, booking models.Booking) (primitive.ObjectID, error)

// MongoBookingInserter builds the inserter CreateBooking runs on.
func MongoBookingInserter(database *mongo.Database) BookingInserter {
	return func(ctx context.Context, booking models.Booking) (primitive.ObjectID, error) {
		result, err := database.Collection(db.Bookings).InsertOne(ctx, booking)
		if err != nil {
			return primitive.NilObjectID, err
		}
		oid, _ := result.InsertedID.(primitive.ObjectID)
		return oid, nil
	}
}

// GetBookings lists the bookings of the email in the query. The email must
// match the one in the verified credential.
func GetBookings(c *gin.Context, database *mongo.Database) {
	email := c.Query("email")
	decodedEmail, _ := auth.EmailFromContext(c)
	if decodedEmail != email {
		c.JSON(http.StatusForbidden, gin.H{"message": "Access Forbidden"})
		return
	}

	ctx := c.Request.Context()
	cursor, err := database.Collection(db.Bookings).Find(ctx, bson.D{{Key: "email", Value: email}})
	if err != nil {
		zap.L().Error("failed to fetch bookings", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		zap.L().Error("failed to decode bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBookingByID fetches one booking. An unknown id answers null, matching
// the lookup semantics of the store.
func GetBookingByID(c *gin.Context, database *mongo.Database) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}

	var booking models.Booking
	err = database.Collection(db.Bookings).FindOne(c.Request.Context(), bson.D{{Key: "_id", Value: id}}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		zap.L().Error("failed to fetch booking", zap.String("id", id.Hex()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, booking)
}

// CreateBooking persists a new booking. One booking per (email, date,
// treatment) is enforced by the unique index, so a concurrent duplicate
// cannot slip through; the duplicate-key error answers as a soft conflict
// with acknowledged false, not an HTTP error.
func CreateBooking(c *gin.Context, insert BookingInserter) {
	var booking models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Request"})
		return
	}

	insertedID, err := insert(c.Request.Context(), booking)
	if mongo.IsDuplicateKeyError(err) {
		c.JSON(http.StatusOK, gin.H{
			"acknowledged": false,
			"message":      conflictMessage(booking.Treatment, booking.AppointmentDate),
		})
		return
	}
	if err != nil {
		zap.L().Error("failed to insert booking", zap.String("email", booking.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": insertedID.Hex()})
}

func conflictMessage(treatment, appointmentDate string) string {
	return fmt.Sprintf("Already have a booking for %s in %s.", treatment, appointmentDate)
}
