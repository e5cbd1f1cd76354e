package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/mariaparlour/backend/internal/errs"
	"github.com/mariaparlour/backend/internal/model"
	"github.com/mariaparlour/backend/internal/server"
	"github.com/mariaparlour/backend/internal/service"
	"github.com/mariaparlour/backend/internal/validation"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SaveUserRequest is the account payload upserted by email.
type SaveUserRequest struct {
	model.User
}

func (r *SaveUserRequest) Validate() error {
	return validation.Struct(r)
}

// SaveUserInfoRequest is the supplementary profile payload.
type SaveUserInfoRequest struct {
	model.UserInfo
}

func (r *SaveUserInfoRequest) Validate() error {
	return validation.Struct(r)
}

// IsAdminRequest looks up the role of the user keyed by email.
type IsAdminRequest struct {
	Email string `query:"email" validate:"required"`
}

func (r *IsAdminRequest) Validate() error {
	return validation.Struct(r)
}

// IsAdminResponse reports whether the looked-up user has the admin role.
type IsAdminResponse struct {
	Admin bool `json:"admin"`
}

// MakeAdminResponse pairs the user document as it was before the role
// write with the write result itself. result1 is null when no user
// matched.
type MakeAdminResponse struct {
	Result1 bson.M              `json:"result1"`
	Result2 *mongo.UpdateResult `json:"result2"`
}

// UserHandler serves account and supplementary-info routes.
type UserHandler struct {
	Handler
	users *service.UserService
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(s *server.Server, users *service.UserService) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

// SaveUser upserts the account keyed by email and returns the driver's
// write result. The role field is managed by MakeAdmin only, so whatever
// the payload carried there is discarded.
func (h *UserHandler) SaveUser(c echo.Context, req *SaveUserRequest) (*mongo.UpdateResult, error) {
	req.Role = ""
	return h.users.SaveUser(c.Request().Context(), &req.User)
}

// SaveUserInfo appends a supplementary info document.
func (h *UserHandler) SaveUserInfo(c echo.Context, req *SaveUserInfoRequest) (*mongo.InsertOneResult, error) {
	return h.users.SaveUserInfo(c.Request().Context(), &req.UserInfo)
}

// MakeAdmin sets role=admin on the user matched by the email query
// parameter.
//
// The email comes from the query string rather than the body, so it is
// read off the context directly; Echo only binds query values on GET and
// DELETE requests.
func (h *UserHandler) MakeAdmin(c echo.Context, _ *EmptyRequest) (*MakeAdminResponse, error) {
	email := c.QueryParam("email")
	if email == "" {
		return nil, errs.NewBadRequestError("Validation failed", []errs.FieldError{
			{Field: "email", Error: "is required"},
		})
	}

	prior, result, err := h.users.PromoteToAdmin(c.Request().Context(), email)
	if err != nil {
		return nil, err
	}

	return &MakeAdminResponse{Result1: prior, Result2: result}, nil
}

// IsAdmin reports whether the user keyed by the email query parameter has
// the admin role. A missing user is simply not an admin.
func (h *UserHandler) IsAdmin(c echo.Context, req *IsAdminRequest) (*IsAdminResponse, error) {
	admin, err := h.users.IsAdmin(c.Request().Context(), req.Email)
	if err != nil {
		return nil, err
	}
	return &IsAdminResponse{Admin: admin}, nil
}
