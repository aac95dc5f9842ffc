package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"doctors_portal_go/auth"
	"doctors_portal_go/services"
)

func SetupBookingRoutes(r *gin.Engine, database *mongo.Database, secret []byte) {

	r.GET("/bookings", auth.VerifyJWT(secret), func(c *gin.Context) {
		services.GetBookings(c, database)
	})

	r.GET("/bookings/:id", auth.VerifyJWT(secret), func(c *gin.Context) {
		services.GetBookingByID(c, database)
	})

	// intentionally open: bookings are placed before the patient signs in
	insert := services.MongoBookingInserter(database)
	r.POST("/bookings", func(c *gin.Context) {
		services.CreateBooking(c, insert)
	})
}
