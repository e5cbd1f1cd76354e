// Package memory provides in-memory store implementations.
//
// They mirror the document-store semantics closely enough for handler and
// service tests: generated ObjectIDs, upsert-by-filter behavior, $set
// merges, and driver-style write results. Not safe for production use.
package memory

import (
	"sync"

	"github.com/mariaparlour/backend/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewRepositories returns a Repositories container backed entirely by
// in-memory stores.
func NewRepositories() *repository.Repositories {
	return &repository.Repositories{
		Users:    NewUserStore(),
		UserInfo: NewUserInfoStore(),
		Services: NewServiceStore(),
		Reviews:  NewReviewStore(),
		Payments: NewPaymentStore(),
	}
}

// collection is a mutex-guarded slice of documents shared by the stores.
type collection struct {
	mu   sync.Mutex
	docs []bson.M
}

// toDoc round-trips v through bson so documents carry the same field names
// and omissions the real driver would produce.
func toDoc(v any) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// applySet merges fields into dst the way a $set update does. The _id
// field is never overwritten.
func applySet(dst, fields bson.M) bool {
	changed := false
	for k, v := range fields {
		if k == "_id" {
			continue
		}
		if cur, ok := dst[k]; !ok || cur != v {
			dst[k] = v
			changed = true
		}
	}
	return changed
}

func cloneDoc(doc bson.M) bson.M {
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}

func (c *collection) insert(doc bson.M) primitive.ObjectID {
	id := primitive.NewObjectID()
	doc["_id"] = id
	c.docs = append(c.docs, doc)
	return id
}

func (c *collection) findAll(match func(bson.M) bool) []bson.M {
	results := []bson.M{}
	for _, doc := range c.docs {
		if match(doc) {
			results = append(results, cloneDoc(doc))
		}
	}
	return results
}

func (c *collection) findOne(match func(bson.M) bool) bson.M {
	for _, doc := range c.docs {
		if match(doc) {
			return doc
		}
	}
	return nil
}

func matchID(oid primitive.ObjectID) func(bson.M) bool {
	return func(doc bson.M) bool {
		id, ok := doc["_id"].(primitive.ObjectID)
		return ok && id == oid
	}
}

func matchEmail(email string) func(bson.M) bool {
	return func(doc bson.M) bool {
		return doc["email"] == email
	}
}
