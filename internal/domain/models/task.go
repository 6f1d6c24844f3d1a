// internal/domain/models/task.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task priorities. The priority chart uses exactly this set; a missing
// priority is treated as PriorityMedium, while a value outside the set is
// not counted at all. That asymmetry with the status fields is deliberate
// and matches the behavior the front end has always had.
const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// Task statuses used by the completion stats.
const (
	TaskStatusPending   = "Pending"
	TaskStatusCompleted = "Completed"
)

// Task is a todo record owned by the surrounding CRM application. Tasks
// live in the "generalTodos" collection for historical reasons.
type Task struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CompanyID string             `bson:"company_id" json:"companyId"`
	Title     string             `bson:"title" json:"title"`
	Priority  string             `bson:"priority,omitempty" json:"priority,omitempty"`
	Status    string             `bson:"status,omitempty" json:"status,omitempty"`
	DueDate   *time.Time         `bson:"due_date,omitempty" json:"dueDate,omitempty"`
	CreatedAt time.Time          `bson:"created_at,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time          `bson:"updated_at,omitempty" json:"updatedAt,omitempty"`
}
