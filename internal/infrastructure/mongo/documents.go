package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BusinessDocument is the MongoDB schema for one registered business.
// All five record fields are plain text; there is no secondary index and
// no schema enforcement beyond what the application validates.
type BusinessDocument struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	BusinessName  string             `bson:"businessName"`
	Address       string             `bson:"address"`
	Category      string             `bson:"category"`
	ContactNumber string             `bson:"contactNumber"`
	LogoURL       string             `bson:"logoUrl"`
	CreatedAt     time.Time          `bson:"createdAt"`
}
