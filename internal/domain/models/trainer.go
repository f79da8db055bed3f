// internal/domain/models/trainer.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trainer delivers scheduled course instances.
type Trainer struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	NameCI         string             `bson:"name_ci" json:"name_ci"`
	Email          string             `bson:"email" json:"email"`
	Certifications []string           `bson:"certifications,omitempty" json:"certifications,omitempty"` // e.g. ["ITIL 4", "Prince2"]

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
