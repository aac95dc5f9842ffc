package routes

import (
	"github.com/gin-gonic/gin"

	"doctors_portal_go/auth"
	"doctors_portal_go/services"
)

func SetupPaymentRoutes(r *gin.Engine, secret []byte) {

	r.POST("/create-payment-intent", auth.VerifyJWT(secret), func(c *gin.Context) {
		services.CreatePaymentIntent(c)
	})
}
