package services

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"doctors_portal_go/auth"
	"doctors_portal_go/db"
	"doctors_portal_go/models"
)

// UserLookup builds the role-lookup capability the admin guard runs on.
func UserLookup(database *mongo.Database) auth.RoleLookup {
	return func(ctx context.Context, email string) (*models.User, error) {
		var user models.User
		err := database.Collection(db.Users).FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&user)
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return &user, nil
	}
}

// IssueToken signs an access token for the email in the query, provided a
// user with that email exists.
func IssueToken(c *gin.Context, database *mongo.Database, secret []byte) {
	email := c.Query("email")

	user, err := UserLookup(database)(c.Request.Context(), email)
	if err != nil {
		zap.L().Error("failed to look up user", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if user == nil {
		c.JSON(http.StatusForbidden, gin.H{"accessToken": ""})
		return
	}

	token, err := auth.GenerateToken(email, secret)
	if err != nil {
		zap.L().Error("failed to sign token", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}

// GetUsers lists all users.
func GetUsers(c *gin.Context, database *mongo.Database) {
	ctx := c.Request.Context()

	cursor, err := database.Collection(db.Users).Find(ctx, bson.D{})
	if err != nil {
		zap.L().Error("failed to fetch users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		zap.L().Error("failed to decode users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// CreateUser saves a new user record.
func CreateUser(c *gin.Context, database *mongo.Database) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Request"})
		return
	}

	result, err := database.Collection(db.Users).InsertOne(c.Request.Context(), user)
	if err != nil {
		zap.L().Error("failed to insert user", zap.String("email", user.Email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	insertedID := ""
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		insertedID = oid.Hex()
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": insertedID})
}

// CheckAdmin reports whether the email in the path holds the admin role. A
// missing user is simply not an admin.
func CheckAdmin(c *gin.Context, database *mongo.Database) {
	email := c.Param("email")

	user, err := UserLookup(database)(c.Request.Context(), email)
	if err != nil {
		zap.L().Error("failed to look up user", zap.String("email", email), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"isAdmin": user.IsAdmin()})
}

// MakeAdmin grants the admin role to the user with the given id, as an
// upsert. Reaching this handler already means the requester is an admin.
func MakeAdmin(c *gin.Context, database *mongo.Database) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	update := bson.D{{Key: "$set", Value: bson.D{{Key: "role", Value: models.RoleAdmin}}}}
	result, err := database.Collection(db.Users).UpdateByID(c.Request.Context(), id, update, options.Update().SetUpsert(true))
	if err != nil {
		zap.L().Error("failed to grant admin role", zap.String("id", id.Hex()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"acknowledged":  true,
		"matchedCount":  result.MatchedCount,
		"modifiedCount": result.ModifiedCount,
		"upsertedCount": result.UpsertedCount,
	})
}
