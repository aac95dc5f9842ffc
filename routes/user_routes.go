package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"doctors_portal_go/auth"
	"doctors_portal_go/services"
)

func SetupUserRoutes(r *gin.Engine, database *mongo.Database, secret []byte) {

	r.GET("/jwt", func(c *gin.Context) {
		services.IssueToken(c, database, secret)
	})

	r.GET("/users", func(c *gin.Context) {
		services.GetUsers(c, database)
	})

	r.POST("/users", func(c *gin.Context) {
		services.CreateUser(c, database)
	})

	r.GET("/users/admin/:email", func(c *gin.Context) {
		services.CheckAdmin(c, database)
	})

	// only an existing admin may grant the admin role
	r.PUT("/users/admin/:id", auth.VerifyJWT(secret), auth.VerifyAdmin(services.UserLookup(database)), func(c *gin.Context) {
		services.MakeAdmin(c, database)
	})
}
