// internal/domain/models/client.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Client statuses. Records read from the store may carry values outside
// this set; aggregation buckets anything unrecognized or empty under
// StatusUnknown rather than dropping the record.
const (
	ClientStatusActive   = "Active"
	ClientStatusInactive = "Inactive"
	ClientStatusVIP      = "VIP"

	StatusUnknown = "Unknown"
)

// Client is a customer record owned by the surrounding CRM application.
// This service only reads clients; it never creates or mutates them.
type Client struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CompanyID string             `bson:"company_id" json:"companyId"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Status    string             `bson:"status,omitempty" json:"status,omitempty"`
	CreatedAt time.Time          `bson:"created_at,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time          `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}
