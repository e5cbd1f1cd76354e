package service

import (
	"context"

	"github.com/mariaparlour/backend/internal/model"
	"github.com/mariaparlour/backend/internal/repository"
	"github.com/mariaparlour/backend/internal/server"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogService manages the services catalog. Reads are public; writes
// are restricted to admins by the route guards, not here.
type CatalogService struct {
	server   *server.Server
	services repository.ServiceStore
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(s *server.Server, services repository.ServiceStore) *CatalogService {
	return &CatalogService{
		server:   s,
		services: services,
	}
}

// List returns all catalog items.
func (s *CatalogService) List(ctx context.Context) ([]bson.M, error) {
	return s.services.List(ctx)
}

// Get returns the catalog item by id, or nil when none exists.
func (s *CatalogService) Get(ctx context.Context, id string) (bson.M, error) {
	return s.services.FindByID(ctx, id)
}

// Create stores a new catalog item.
func (s *CatalogService) Create(ctx context.Context, svc *model.Service) (*mongo.InsertOneResult, error) {
	return s.services.Insert(ctx, svc)
}

// Replace upserts the catalog item matched by id.
func (s *CatalogService) Replace(ctx context.Context, id string, svc *model.Service) (*mongo.UpdateResult, error) {
	return s.services.Replace(ctx, id, svc)
}

// Delete removes the catalog item matched by id.
func (s *CatalogService) Delete(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	return s.services.Delete(ctx, id)
}
