package booking

import (
	"context"
	"strings"

	"github.com/Codekiller51/brandconnect-server/config"
	"github.com/Codekiller51/brandconnect-server/models"
	"github.com/Codekiller51/brandconnect-server/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// depositPercent is the share of the service price collected up front.
const depositPercent = 30

// setupDeposit creates a Stripe payment intent for the booking deposit and
// records its ID on the booking. A payment setup failure does not void the
// booking; the deposit can be retried from the client.
func (s *DefaultBookingService) setupDeposit(ctx context.Context, b *models.Booking) string {
	if config.AppConfig.StripeKey == "" {
		return ""
	}

	amount := int64(b.TotalAmount * depositPercent / 100)
	if amount <= 0 {
		return ""
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currencyCode(b.Currency)),
		Metadata: map[string]string{
			"bookingId":  b.ID,
			"creativeId": b.CreativeID,
			"clientId":   b.ClientID,
		},
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		utils.GetLogger().Warn("setupDeposit: payment intent creation failed",
			zap.String("bookingID", b.ID), zap.Error(err))
		return ""
	}

	if err := s.bookings.SetPaymentID(ctx, b.ID, intent.ID); err != nil {
		utils.GetLogger().Warn("setupDeposit: failed to record payment id",
			zap.String("bookingID", b.ID), zap.Error(err))
	}
	b.PaymentID = intent.ID
	return intent.ClientSecret
}

func currencyCode(c string) string {
	if c == "" {
		return string(stripe.CurrencyTZS)
	}
	return strings.ToLower(c)
}
