package router_test

import (
	"net/http"
	"testing"

	"github.com/stripe/stripe-go/v79"
	"go.mongodb.org/mongo-driver/bson"
)

// fakeIntentCreator captures the params the payment service sends to the
// processor and returns a canned intent.
type fakeIntentCreator struct {
	params *stripe.PaymentIntentParams
	err    error
}

func (f *fakeIntentCreator) New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	return &stripe.PaymentIntent{ClientSecret: "pi_secret_123"}, nil
}

func TestCreatePaymentIntent(t *testing.T) {
	app := newTestApp(t)

	fake := &fakeIntentCreator{}
	app.services.Payments.WithIntentCreator(fake)

	rec := app.do(t, http.MethodPost, "/create-payment-intent", `{"price":19.99}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	assertBody(t, rec, `{"clientSecret":"pi_secret_123"}`)

	if fake.params == nil {
		t.Fatal("processor never called")
	}
	// Dollars in, integer cents out.
	if got := *fake.params.Amount; got != 1999 {
		t.Errorf("amount = %d, want 1999", got)
	}
	if got := *fake.params.Currency; got != "usd" {
		t.Errorf("currency = %s, want usd", got)
	}
	if len(fake.params.PaymentMethodTypes) != 1 || *fake.params.PaymentMethodTypes[0] != "card" {
		t.Errorf("payment method types = %v, want [card]", fake.params.PaymentMethodTypes)
	}
}

func TestCreatePaymentIntentRoundsToCents(t *testing.T) {
	app := newTestApp(t)

	fake := &fakeIntentCreator{}
	app.services.Payments.WithIntentCreator(fake)

	// 10.10 * 100 is 1009.9999... in floating point; the amount must still
	// come out as 1010.
	rec := app.do(t, http.MethodPost, "/create-payment-intent", `{"price":10.10}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := *fake.params.Amount; got != 1010 {
		t.Errorf("amount = %d, want 1010", got)
	}
}

func TestCreatePaymentIntentRequiresPrice(t *testing.T) {
	app := newTestApp(t)

	for name, payload := range map[string]string{
		"missing price":  `{}`,
		"zero price":     `{"price":0}`,
		"negative price": `{"price":-5}`,
	} {
		rec := app.do(t, http.MethodPost, "/create-payment-intent", payload, "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", name, rec.Code)
		}
	}
}

func TestRecordPaymentDefaultsToPending(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/payments", `{"email":"a@x.com","price":19.99,"serviceName":"Facial"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	token := app.token(t, "a@x.com")
	rec = app.do(t, http.MethodGet, "/payments/user?email=a@x.com", "", token)

	var payments []bson.M
	decodeJSON(t, rec, &payments)
	if len(payments) != 1 {
		t.Fatalf("len(payments) = %d, want 1", len(payments))
	}
	if payments[0]["status"] != "pending" {
		t.Errorf("status = %v, want pending", payments[0]["status"])
	}
}

func TestPaymentsFilteredByEmail(t *testing.T) {
	app := newTestApp(t)

	app.do(t, http.MethodPost, "/payments", `{"email":"a@x.com","price":10}`, "")
	app.do(t, http.MethodPost, "/payments", `{"email":"b@x.com","price":20}`, "")
	app.do(t, http.MethodPost, "/payments", `{"email":"a@x.com","price":30}`, "")

	token := app.token(t, "a@x.com")
	rec := app.do(t, http.MethodGet, "/payments/user?email=a@x.com", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var payments []bson.M
	decodeJSON(t, rec, &payments)
	if len(payments) != 2 {
		t.Fatalf("len(payments) = %d, want 2", len(payments))
	}
	for _, p := range payments {
		if p["email"] != "a@x.com" {
			t.Errorf("payment for %v leaked into a@x.com's list", p["email"])
		}
	}
}

func TestListAllPaymentsRequiresAdmin(t *testing.T) {
	app := newTestApp(t)

	app.do(t, http.MethodPost, "/payments", `{"email":"a@x.com","price":10}`, "")
	app.do(t, http.MethodPost, "/payments", `{"email":"b@x.com","price":20}`, "")

	token := adminToken(t, app)
	rec := app.do(t, http.MethodGet, "/payments", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var payments []bson.M
	decodeJSON(t, rec, &payments)
	if len(payments) != 2 {
		t.Errorf("len(payments) = %d, want 2", len(payments))
	}
}

func TestSetPaymentStatus(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/payments", `{"email":"a@x.com","price":10}`, "")
	var created struct {
		InsertedID string
	}
	decodeJSON(t, rec, &created)

	token := adminToken(t, app)
	rec = app.do(t, http.MethodPut, "/payments/"+created.InsertedID, `{"status":"completed"}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var result writeResult
	decodeJSON(t, rec, &result)
	if result.MatchedCount != 1 || result.ModifiedCount != 1 {
		t.Errorf("result = %+v, want matched 1 modified 1", result)
	}

	userToken := app.token(t, "a@x.com")
	rec = app.do(t, http.MethodGet, "/payments/user?email=a@x.com", "", userToken)
	var payments []bson.M
	decodeJSON(t, rec, &payments)
	if payments[0]["status"] != "completed" {
		t.Errorf("status = %v, want completed", payments[0]["status"])
	}
}

func TestSetPaymentStatusRejectsUnknownStatus(t *testing.T) {
	app := newTestApp(t)
	token := adminToken(t, app)

	rec := app.do(t, http.MethodPut, "/payments/507f1f77bcf86cd799439011", `{"status":"refunded"}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestSetPaymentStatusUnknownID(t *testing.T) {
	app := newTestApp(t)
	token := adminToken(t, app)

	rec := app.do(t, http.MethodPut, "/payments/507f1f77bcf86cd799439011", `{"status":"completed"}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var result writeResult
	decodeJSON(t, rec, &result)
	if result.MatchedCount != 0 {
		t.Errorf("MatchedCount = %d, want 0", result.MatchedCount)
	}
}
