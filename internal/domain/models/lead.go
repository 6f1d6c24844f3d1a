// internal/domain/models/lead.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lead statuses follow the pipeline stages used by the CRM front end.
const (
	LeadStatusNew       = "New"
	LeadStatusContacted = "Contacted"
	LeadStatusQualified = "Qualified"
	LeadStatusWon       = "Won"
	LeadStatusLost      = "Lost"
)

// Lead is a sales lead record owned by the surrounding CRM application.
type Lead struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CompanyID string             `bson:"company_id" json:"companyId"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	Source    string             `bson:"source,omitempty" json:"source,omitempty"`
	Status    string             `bson:"status,omitempty" json:"status,omitempty"`
	Value     float64            `bson:"value,omitempty" json:"value,omitempty"`
	CreatedAt time.Time          `bson:"created_at,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time          `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}
