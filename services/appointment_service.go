package services

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"doctors_portal_go/db"
	"doctors_portal_go/models"
)

// GetAppointmentOptions lists all options with their open slots for the date
// given in the query, computed in memory. The date is taken as-is: a format
// that does not match stored bookings simply matches none of them, so every
// slot is reported open.
func GetAppointmentOptions(c *gin.Context, database *mongo.Database) {
	date := c.Query("date")
	ctx := c.Request.Context()

	cursor, err := database.Collection(db.AppointmentOptions).Find(ctx, bson.D{})
	if err != nil {
		zap.L().Error("failed to fetch appointment options", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	appointmentOptions := []models.AppointmentOption{}
	if err := cursor.All(ctx, &appointmentOptions); err != nil {
		zap.L().Error("failed to decode appointment options", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	bookingsCursor, err := database.Collection(db.Bookings).Find(ctx, bson.D{{Key: "appointmentDate", Value: date}})
	if err != nil {
		zap.L().Error("failed to fetch bookings", zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	bookingsByDate := []models.Booking{}
	if err := bookingsCursor.All(ctx, &bookingsByDate); err != nil {
		zap.L().Error("failed to decode bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, ApplyBookings(appointmentOptions, bookingsByDate))
}

// GetAppointmentOptionsV2 answers the same contract as GetAppointmentOptions
// through a single server-side aggregation.
func GetAppointmentOptionsV2(c *gin.Context, database *mongo.Database) {
	date := c.Query("date")
	ctx := c.Request.Context()

	cursor, err := database.Collection(db.AppointmentOptions).Aggregate(ctx, availabilityPipeline(date))
	if err != nil {
		zap.L().Error("availability aggregation failed", zap.String("date", date), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	appointmentOptions := []models.AppointmentOption{}
	if err := cursor.All(ctx, &appointmentOptions); err != nil {
		zap.L().Error("failed to decode aggregated options", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, appointmentOptions)
}

// GetSpecialties lists the distinct treatment names.
func GetSpecialties(c *gin.Context, database *mongo.Database) {
	ctx := c.Request.Context()

	projection := options.Find().SetProjection(bson.D{{Key: "name", Value: 1}})
	cursor, err := database.Collection(db.AppointmentOptions).Find(ctx, bson.D{}, projection)
	if err != nil {
		zap.L().Error("failed to fetch specialties", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	specialties := []models.Specialty{}
	if err := cursor.All(ctx, &specialties); err != nil {
		zap.L().Error("failed to decode specialties", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, specialties)
}
