package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mzansibiz/mzansibiz-services/api/internal/public/domain"
)

// BusinessRepository implements application.BusinessRepository using MongoDB.
type BusinessRepository struct {
	collection *mongo.Collection
}

// NewBusinessRepository creates a Mongo-backed business record store.
func NewBusinessRepository(db *mongo.Database, collectionName string) *BusinessRepository {
	return &BusinessRepository{collection: db.Collection(collectionName)}
}

// Insert writes a sealed record and returns it tagged with the
// store-assigned identifier.
func (r *BusinessRepository) Insert(ctx context.Context, record domain.BusinessRecord) (domain.DirectoryEntry, error) {
	doc := BusinessDocument{
		ID:            primitive.NewObjectID(),
		BusinessName:  record.BusinessName,
		Address:       record.Address,
		Category:      record.Category,
		ContactNumber: record.ContactNumber,
		LogoURL:       record.LogoURL,
		CreatedAt:     time.Now().UTC(),
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return domain.DirectoryEntry{}, err
	}

	return mapBusinessDocument(doc), nil
}

// FindAll returns every persisted business. No server-side ordering is
// applied; zero records decode to an empty slice, not an error.
func (r *BusinessRepository) FindAll(ctx context.Context) ([]domain.DirectoryEntry, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := make([]domain.DirectoryEntry, 0)
	for cursor.Next(ctx) {
		var doc BusinessDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		entries = append(entries, mapBusinessDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func mapBusinessDocument(doc BusinessDocument) domain.DirectoryEntry {
	return domain.DirectoryEntry{
		ID:            doc.ID.Hex(),
		BusinessName:  doc.BusinessName,
		Address:       doc.Address,
		Category:      doc.Category,
		ContactNumber: doc.ContactNumber,
		LogoURL:       doc.LogoURL,
		CreatedAt:     doc.CreatedAt,
	}
}
