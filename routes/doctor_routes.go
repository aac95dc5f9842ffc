package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"doctors_portal_go/auth"
	"doctors_portal_go/services"
)

func SetupDoctorRoutes(r *gin.Engine, database *mongo.Database, secret []byte) {

	doctors := r.Group("/doctors")
	doctors.Use(auth.VerifyJWT(secret), auth.VerifyAdmin(services.UserLookup(database)))
	{
		doctors.GET("", func(c *gin.Context) {
			services.GetDoctors(c, database)
		})

		doctors.POST("", func(c *gin.Context) {
			services.AddDoctor(c, database)
		})

		doctors.DELETE("/:id", func(c *gin.Context) {
			services.DeleteDoctor(c, database)
		})
	}
}
