package service

import (
	"context"
	"math"

	"github.com/mariaparlour/backend/internal/model"
	"github.com/mariaparlour/backend/internal/repository"
	"github.com/mariaparlour/backend/internal/server"
	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// IntentCreator is the slice of the Stripe client the payment service
// needs. Tests substitute a fake; production uses the real API client.
type IntentCreator interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// PaymentService records payments and creates charge intents with the
// payment processor.
type PaymentService struct {
	server   *server.Server
	payments repository.PaymentStore
	intents  IntentCreator
}

// NewPaymentService constructs a PaymentService with a Stripe client
// initialized from the configured API key.
func NewPaymentService(s *server.Server, payments repository.PaymentStore) *PaymentService {
	sc := &client.API{}
	sc.Init(s.Config.Integration.StripeAccessToken, nil)

	return &PaymentService{
		server:   s,
		payments: payments,
		intents:  sc.PaymentIntents,
	}
}

// WithIntentCreator swaps the processor client. Test hook.
func (s *PaymentService) WithIntentCreator(ic IntentCreator) *PaymentService {
	s.intents = ic
	return s
}

// CreateIntent asks the processor for a card charge intent in USD and
// returns the client secret the frontend completes the payment with.
//
// The price arrives in dollars; the processor wants integer cents, so the
// amount is round(price*100).
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount := int64(math.Round(price * 100))

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := s.intents.New(params)
	if err != nil {
		return "", errors.Wrap(err, "failed to create payment intent")
	}
	return intent.ClientSecret, nil
}

// Record stores a payment document after the client-side payment flow
// confirms. New payments default to pending status. A receipt email is
// enqueued for the payer; enqueue failures are logged, never returned.
func (s *PaymentService) Record(ctx context.Context, payment *model.Payment) (*mongo.InsertOneResult, error) {
	if payment.Status == "" {
		payment.Status = model.PaymentStatusPending
	}

	result, err := s.payments.Insert(ctx, payment)
	if err != nil {
		return nil, err
	}

	if err := s.server.Job.EnqueueReceiptEmail(payment.Email, payment.ServiceName, payment.Price, payment.Status); err != nil {
		s.server.Logger.Warn().
			Err(err).
			Str("email", payment.Email).
			Msg("failed to enqueue receipt email")
	}

	return result, nil
}

// List returns all payment documents.
func (s *PaymentService) List(ctx context.Context) ([]bson.M, error) {
	return s.payments.List(ctx)
}

// ListByEmail returns the payments belonging to the given email.
func (s *PaymentService) ListByEmail(ctx context.Context, email string) ([]bson.M, error) {
	return s.payments.ListByEmail(ctx, email)
}

// SetStatus updates the status of the payment matched by id.
func (s *PaymentService) SetStatus(ctx context.Context, id, status string) (*mongo.UpdateResult, error) {
	return s.payments.SetStatus(ctx, id, status)
}
