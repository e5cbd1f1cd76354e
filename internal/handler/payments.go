package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/mariaparlour/backend/internal/model"
	"github.com/mariaparlour/backend/internal/server"
	"github.com/mariaparlour/backend/internal/service"
	"github.com/mariaparlour/backend/internal/validation"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// RecordPaymentRequest is the payment record stored after the client-side
// payment flow confirms.
type RecordPaymentRequest struct {
	model.Payment
}

func (r *RecordPaymentRequest) Validate() error {
	return validation.Struct(r)
}

// PaymentsByEmailRequest filters payment records by owner email.
type PaymentsByEmailRequest struct {
	Email string `query:"email" validate:"required"`
}

func (r *PaymentsByEmailRequest) Validate() error {
	return validation.Struct(r)
}

// SetPaymentStatusRequest updates the status of the payment at the path
// identifier.
type SetPaymentStatusRequest struct {
	ID     string `param:"id" json:"-"`
	Status string `json:"status" validate:"required,oneof=pending completed"`
}

func (r *SetPaymentStatusRequest) Validate() error {
	return validation.Struct(r)
}

// CreateIntentRequest asks the payment processor for a charge intent on
// the given price, supplied in dollars.
type CreateIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

func (r *CreateIntentRequest) Validate() error {
	return validation.Struct(r)
}

// CreateIntentResponse carries the secret the frontend completes the
// payment with.
type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// PaymentHandler serves the payment routes.
type PaymentHandler struct {
	Handler
	payments *service.PaymentService
}

// NewPaymentHandler constructs a PaymentHandler.
func NewPaymentHandler(s *server.Server, payments *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		Handler:  NewHandler(s),
		payments: payments,
	}
}

// List returns all payment records.
func (h *PaymentHandler) List(c echo.Context, _ *EmptyRequest) ([]bson.M, error) {
	return h.payments.List(c.Request().Context())
}

// ListByEmail returns the payment records owned by the email query
// parameter.
func (h *PaymentHandler) ListByEmail(c echo.Context, req *PaymentsByEmailRequest) ([]bson.M, error) {
	return h.payments.ListByEmail(c.Request().Context(), req.Email)
}

// Record stores a payment record and returns the driver's write result.
func (h *PaymentHandler) Record(c echo.Context, req *RecordPaymentRequest) (*mongo.InsertOneResult, error) {
	return h.payments.Record(c.Request().Context(), &req.Payment)
}

// SetStatus updates the status of the payment at the path identifier.
func (h *PaymentHandler) SetStatus(c echo.Context, req *SetPaymentStatusRequest) (*mongo.UpdateResult, error) {
	return h.payments.SetStatus(c.Request().Context(), req.ID, req.Status)
}

// CreateIntent asks the payment processor for a card charge intent and
// returns its client secret.
func (h *PaymentHandler) CreateIntent(c echo.Context, req *CreateIntentRequest) (*CreateIntentResponse, error) {
	secret, err := h.payments.CreateIntent(c.Request().Context(), req.Price)
	if err != nil {
		return nil, err
	}
	return &CreateIntentResponse{ClientSecret: secret}, nil
}
