package services

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"doctors_portal_go/db"
	"doctors_portal_go/models"
)

// GetDoctors lists all doctors. Admin only.
func GetDoctors(c *gin.Context, database *mongo.Database) {
	ctx := c.Request.Context()

	cursor, err := database.Collection(db.Doctors).Find(ctx, bson.D{})
	if err != nil {
		zap.L().Error("failed to fetch doctors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	doctors := []models.Doctor{}
	if err := cursor.All(ctx, &doctors); err != nil {
		zap.L().Error("failed to decode doctors", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, doctors)
}

// AddDoctor saves a new doctor. Admin only.
func AddDoctor(c *gin.Context, database *mongo.Database) {
	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Request"})
		return
	}

	result, err := database.Collection(db.Doctors).InsertOne(c.Request.Context(), doctor)
	if err != nil {
		zap.L().Error("failed to insert doctor", zap.String("email", doctor.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	insertedID := ""
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		insertedID = oid.Hex()
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": insertedID})
}

// DeleteDoctor removes a doctor by id. Admin only.
func DeleteDoctor(c *gin.Context, database *mongo.Database) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid doctor id"})
		return
	}

	result, err := database.Collection(db.Doctors).DeleteOne(c.Request.Context(), bson.D{{Key: "_id", Value: id}})
	if err != nil {
		zap.L().Error("failed to delete doctor", zap.String("id", id.Hex()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedCount": result.DeletedCount})
}
