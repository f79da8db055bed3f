// internal/domain/models/delegate.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Delegate is a learner. Every delegate belongs to exactly one client
// organisation, which is the grouping key for auto-generated quotations.
type Delegate struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrganisationID primitive.ObjectID `bson:"organisation_id" json:"organisationId"`
	FirstName      string             `bson:"first_name" json:"firstName"`
	LastName       string             `bson:"last_name" json:"lastName"`
	Email          string             `bson:"email" json:"email"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
