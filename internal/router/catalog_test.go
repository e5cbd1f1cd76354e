package router_test

import (
	"fmt"
	"net/http"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

// adminToken stores a user, grants it the admin role and returns a token
// for it.
func adminToken(t *testing.T, app *testApp) string {
	t.Helper()

	app.do(t, http.MethodPut, "/save-user", `{"email":"admin@x.com","name":"Admin"}`, "")
	token := app.token(t, "admin@x.com")

	rec := app.do(t, http.MethodPatch, "/users/make-admin?email=admin@x.com", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("make-admin: status = %d, body %s", rec.Code, rec.Body.String())
	}
	return token
}

func TestServiceLifecycle(t *testing.T) {
	app := newTestApp(t)
	token := adminToken(t, app)

	rec := app.do(t, http.MethodPost, "/services", `{"title":"Facial","price":25,"description":"deep clean"}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("create: status = %d, body %s", rec.Code, rec.Body.String())
	}

	var created struct {
		InsertedID string
	}
	decodeJSON(t, rec, &created)
	if created.InsertedID == "" {
		t.Fatal("missing InsertedID")
	}

	// Public list includes the new service.
	rec = app.do(t, http.MethodGet, "/services", "", "")
	var services []bson.M
	decodeJSON(t, rec, &services)
	if len(services) != 1 {
		t.Fatalf("len(services) = %d, want 1", len(services))
	}
	if services[0]["title"] != "Facial" {
		t.Errorf("title = %v", services[0]["title"])
	}

	// Public fetch by id.
	rec = app.do(t, http.MethodGet, "/services/"+created.InsertedID, "", "")
	var fetched bson.M
	decodeJSON(t, rec, &fetched)
	if fetched["title"] != "Facial" {
		t.Errorf("fetched title = %v", fetched["title"])
	}

	// Replace updates fields in place.
	rec = app.do(t, http.MethodPut, "/services/"+created.InsertedID, `{"title":"Facial Deluxe","price":35}`, token)
	var replaced writeResult
	decodeJSON(t, rec, &replaced)
	if replaced.MatchedCount != 1 || replaced.ModifiedCount != 1 {
		t.Errorf("replace = %+v, want matched 1 modified 1", replaced)
	}

	rec = app.do(t, http.MethodGet, "/services/"+created.InsertedID, "", "")
	decodeJSON(t, rec, &fetched)
	if fetched["title"] != "Facial Deluxe" {
		t.Errorf("title after replace = %v", fetched["title"])
	}

	// Delete removes the document.
	rec = app.do(t, http.MethodDelete, "/services/"+created.InsertedID, "", token)
	var deleted struct {
		DeletedCount int64
	}
	decodeJSON(t, rec, &deleted)
	if deleted.DeletedCount != 1 {
		t.Errorf("DeletedCount = %d, want 1", deleted.DeletedCount)
	}

	rec = app.do(t, http.MethodGet, "/services/"+created.InsertedID, "", "")
	assertBody(t, rec, "null")
}

func TestReplaceServiceUpsertsMissingID(t *testing.T) {
	app := newTestApp(t)
	token := adminToken(t, app)

	rec := app.do(t, http.MethodPut, "/services/507f1f77bcf86cd799439011", `{"title":"Manicure","price":15}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var result writeResult
	decodeJSON(t, rec, &result)
	if result.UpsertedCount != 1 {
		t.Errorf("UpsertedCount = %d, want 1", result.UpsertedCount)
	}

	rec = app.do(t, http.MethodGet, "/services/507f1f77bcf86cd799439011", "", "")
	var fetched bson.M
	decodeJSON(t, rec, &fetched)
	if fetched["title"] != "Manicure" {
		t.Errorf("title = %v", fetched["title"])
	}
}

func TestGetServiceUnknownIDReturnsNull(t *testing.T) {
	app := newTestApp(t)

	// Well-formed identifier with no document behind it: null, not an error.
	rec := app.do(t, http.MethodGet, "/services/507f1f77bcf86cd799439011", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	assertBody(t, rec, "null")
}

func TestGetServiceMalformedID(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/services/not-a-hex-id", "", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Error   bool   `json:"error"`
		Message string `json:"message"`
	}
	decodeJSON(t, rec, &body)
	if !body.Error || body.Message != "invalid id" {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestCreateServiceValidation(t *testing.T) {
	app := newTestApp(t)
	token := adminToken(t, app)

	cases := map[string]string{
		"missing title":  `{"price":25}`,
		"missing price":  `{"title":"Facial"}`,
		"negative price": fmt.Sprintf(`{"title":"Facial","price":%d}`, -5),
	}

	for name, payload := range cases {
		rec := app.do(t, http.MethodPost, "/services", payload, token)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400, body %s", name, rec.Code, rec.Body.String())
		}
	}
}

func TestReviewsFlow(t *testing.T) {
	app := newTestApp(t)

	// Reviews are world-readable.
	rec := app.do(t, http.MethodGet, "/reviews", "", "")
	assertBody(t, rec, "[]")

	// Creating one requires a token but not the admin role.
	token := app.token(t, "a@x.com")
	rec = app.do(t, http.MethodPost, "/reviews", `{"name":"A","message":"lovely","rating":5}`, token)
	if rec.Code != http.StatusOK {
		t.Fatalf("create review: status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = app.do(t, http.MethodGet, "/reviews", "", "")
	var reviews []bson.M
	decodeJSON(t, rec, &reviews)
	if len(reviews) != 1 {
		t.Fatalf("len(reviews) = %d, want 1", len(reviews))
	}
	if reviews[0]["message"] != "lovely" {
		t.Errorf("message = %v", reviews[0]["message"])
	}
}

func TestReviewRequiresMessage(t *testing.T) {
	app := newTestApp(t)

	token := app.token(t, "a@x.com")
	rec := app.do(t, http.MethodPost, "/reviews", `{"name":"A"}`, token)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
