// internal/domain/models/company.go
package models

import "time"

// Company is the tenant partition. Every client, lead, and task carries a
// CompanyID, and the dashboard only ever aggregates records whose CompanyID
// exactly matches the current selection.
type Company struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	CreatedAt time.Time `bson:"created_at,omitempty" json:"createdAt,omitempty"`
}
