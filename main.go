package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"

	"doctors_portal_go/config"
	"doctors_portal_go/db"
	"doctors_portal_go/logger"
	"doctors_portal_go/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger := logger.New(cfg.Environment)
	defer zapLogger.Sync()
	zap.ReplaceGlobals(zapLogger)

	stripe.Key = cfg.StripeSecretKey

	r := gin.Default()

	corsConfig := cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Content-Length", "Authorization"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}
	r.Use(cors.New(corsConfig))

	// Initialize database
	client, database, err := db.InitDatabase(cfg)
	if err != nil {
		zapLogger.Fatal("Failed to connect to the database", zap.Error(err))
	}
	defer client.Disconnect(context.Background())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "doctors portal server")
	})

	secret := []byte(cfg.AccessTokenSecret)

	// Initialize routes
	routes.SetupAppointmentRoutes(r, database)
	routes.SetupBookingRoutes(r, database, secret)
	routes.SetupUserRoutes(r, database, secret)
	routes.SetupDoctorRoutes(r, database, secret)
	routes.SetupPaymentRoutes(r, secret)

	// Start server
	zapLogger.Info("Server is running", zap.String("port", cfg.Port))
	r.Run(":" + cfg.Port)
}
