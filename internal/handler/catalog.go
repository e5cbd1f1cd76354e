package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/mariaparlour/backend/internal/model"
	"github.com/mariaparlour/backend/internal/server"
	"github.com/mariaparlour/backend/internal/service"
	"github.com/mariaparlour/backend/internal/validation"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateServiceRequest is the catalog item payload.
type CreateServiceRequest struct {
	model.Service
}

func (r *CreateServiceRequest) Validate() error {
	return validation.Struct(r)
}

// ReplaceServiceRequest carries the catalog item fields to upsert at the
// path identifier. Identifiers are generated server-side, so any _id in the
// body is discarded before the write.
type ReplaceServiceRequest struct {
	ID string `param:"id" json:"-"`
	model.Service
}

func (r *ReplaceServiceRequest) Validate() error {
	return validation.Struct(r)
}

// CatalogHandler serves the services catalog routes.
type CatalogHandler struct {
	Handler
	catalog *service.CatalogService
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(s *server.Server, catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		Handler: NewHandler(s),
		catalog: catalog,
	}
}

// List returns all catalog items.
func (h *CatalogHandler) List(c echo.Context, _ *EmptyRequest) ([]bson.M, error) {
	return h.catalog.List(c.Request().Context())
}

// Get returns the catalog item at the path identifier, or null when none
// exists. A malformed identifier fails with the driver's parse error.
func (h *CatalogHandler) Get(c echo.Context, _ *EmptyRequest) (bson.M, error) {
	return h.catalog.Get(c.Request().Context(), c.Param("id"))
}

// Create inserts a new catalog item and returns the driver's write result.
func (h *CatalogHandler) Create(c echo.Context, req *CreateServiceRequest) (*mongo.InsertOneResult, error) {
	req.Service.ID = primitive.NilObjectID
	return h.catalog.Create(c.Request().Context(), &req.Service)
}

// Replace upserts the catalog item at the path identifier.
func (h *CatalogHandler) Replace(c echo.Context, req *ReplaceServiceRequest) (*mongo.UpdateResult, error) {
	req.Service.ID = primitive.NilObjectID
	return h.catalog.Replace(c.Request().Context(), req.ID, &req.Service)
}

// Delete removes the catalog item at the path identifier.
func (h *CatalogHandler) Delete(c echo.Context, _ *EmptyRequest) (*mongo.DeleteResult, error) {
	return h.catalog.Delete(c.Request().Context(), c.Param("id"))
}
