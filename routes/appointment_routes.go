package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"doctors_portal_go/services"
)

func SetupAppointmentRoutes(r *gin.Engine, database *mongo.Database) {

	r.GET("/appointment-options", func(c *gin.Context) {
		services.GetAppointmentOptions(c, database)
	})

	r.GET("/v2/appointment-options", func(c *gin.Context) {
		services.GetAppointmentOptionsV2(c, database)
	})

	r.GET("/specialties", func(c *gin.Context) {
		services.GetSpecialties(c, database)
	})
}
