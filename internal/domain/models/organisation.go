// internal/domain/models/organisation.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BillingAddress is the postal address quotations are billed to.
type BillingAddress struct {
	Street   string `bson:"street,omitempty" json:"street,omitempty"`
	City     string `bson:"city,omitempty" json:"city,omitempty"`
	Postcode string `bson:"postcode,omitempty" json:"postcode,omitempty"`
}

// Organisation is a billable client. Includes a case/diacritic-insensitive
// name field for search/sort.
type Organisation struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name           string             `bson:"name" json:"name"`
	NameCI         string             `bson:"name_ci" json:"name_ci"` // ← always stored
	ContactEmail   string             `bson:"contact_email" json:"contactEmail"`
	BillingAddress BillingAddress     `bson:"billing_address,omitempty" json:"billingAddress,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
