package services

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

type paymentIntentRequest struct {
	Price float64 `json:"price"`
}

// CreatePaymentIntent asks the payment processor for a card PaymentIntent
// over the booking's price and hands the client secret back to the caller.
// The processor takes the amount in minor currency units.
func CreatePaymentIntent(c *gin.Context) {
	var req paymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Request"})
		return
	}

	amount := int64(math.Round(req.Price * 100))

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.SetIdempotencyKey(uuid.NewString())

	intent, err := paymentintent.New(params)
	if err != nil {
		zap.L().Error("failed to create payment intent", zap.Int64("amount", amount), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": intent.ClientSecret})
}
