// Package model defines the record types stored in the document database.
//
// Every entity used to be a free-form document; these types pin down the
// minimum required shape so payloads are validated at the boundary before
// they reach the store layer. Documents read back from the store are still
// returned to clients verbatim.
package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RoleAdmin is the only role value that grants elevated privileges.
// A missing role field, or any other value, means a regular user.
const RoleAdmin = "admin"

// User is an account document keyed by email.
//
// Users are created and updated through upserts on the email field and are
// never deleted. Role is managed through the make-admin operation only; the
// save-user payload cannot set it.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email string             `bson:"email" json:"email" validate:"required,email"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Photo string             `bson:"photo,omitempty" json:"photo,omitempty"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}

// IsAdmin reports whether the user's role grants elevated privileges.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserInfo is supplementary profile data tied to a user. Insert-only.
type UserInfo struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email   string             `bson:"email" json:"email" validate:"required,email"`
	Phone   string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address string             `bson:"address,omitempty" json:"address,omitempty"`
	Bio     string             `bson:"bio,omitempty" json:"bio,omitempty"`
}

// Service is a catalog item. Only privileged actors create, replace or
// delete services; everyone can read them.
type Service struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title       string             `bson:"title" json:"title" validate:"required"`
	Price       float64            `bson:"price" json:"price" validate:"required,gt=0"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
}

// Review is customer feedback. Insert-only by authenticated callers,
// world-readable.
type Review struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name    string             `bson:"name,omitempty" json:"name,omitempty"`
	Email   string             `bson:"email,omitempty" json:"email,omitempty" validate:"omitempty,email"`
	Message string             `bson:"message" json:"message" validate:"required"`
	Rating  float64            `bson:"rating,omitempty" json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	Photo   string             `bson:"photo,omitempty" json:"photo,omitempty"`
}

// Payment statuses. Status is the one mutable field on a payment record.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
)

// Payment records a confirmed charge. Created by any caller after the
// client-side payment flow finishes; status is mutated by privileged
// actors only.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email" validate:"required,email"`
	Status        string             `bson:"status,omitempty" json:"status,omitempty" validate:"omitempty,oneof=pending completed"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Price         float64            `bson:"price,omitempty" json:"price,omitempty"`
	ServiceID     string             `bson:"serviceId,omitempty" json:"serviceId,omitempty"`
	ServiceName   string             `bson:"serviceName,omitempty" json:"serviceName,omitempty"`
	Date          string             `bson:"date,omitempty" json:"date,omitempty"`
}
