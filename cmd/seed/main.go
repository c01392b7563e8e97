package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mzansibiz/mzansibiz-services/api/internal/config"
	mongodoc "github.com/mzansibiz/mzansibiz-services/api/internal/infrastructure/mongo"
	"github.com/mzansibiz/mzansibiz-services/api/internal/public/domain"
)

// Seeds a handful of sample businesses so the listing view has content
// in a fresh environment. Skips seeding when the collection already
// holds records.
func main() {
	cfg := config.LoadStore()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	clientOptions := options.Client().ApplyURI(cfg.MongoURI).SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("error disconnecting MongoDB: %v", err)
		}
	}()

	collection := client.Database(cfg.MongoDatabase).Collection(cfg.BusinessCollection)

	count, err := collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		log.Fatalf("failed to count businesses: %v", err)
	}
	if count > 0 {
		log.Printf("collection %q already has %d businesses, nothing to seed", cfg.BusinessCollection, count)
		return
	}

	repo := mongodoc.NewBusinessRepository(client.Database(cfg.MongoDatabase), cfg.BusinessCollection)

	samples := []domain.BusinessRecord{
		{
			BusinessName:  "Joe's Cafe",
			Address:       "12 Long Street, Cape Town",
			Category:      "Food",
			ContactNumber: "0215551234",
			LogoURL:       "https://mzansibiz-logos.s3.af-south-1.amazonaws.com/businessLogos/seed_joes-cafe.jpg",
		},
		{
			BusinessName:  "Acme Hardware",
			Address:       "45 Market Road, Johannesburg",
			Category:      "Retail",
			ContactNumber: "0115559876",
			LogoURL:       "https://mzansibiz-logos.s3.af-south-1.amazonaws.com/businessLogos/seed_acme-hardware.jpg",
		},
		{
			BusinessName:  "Thandi's Salon",
			Address:       "8 Vilakazi Street, Soweto",
			Category:      "Beauty",
			ContactNumber: "0825554321",
			LogoURL:       "https://mzansibiz-logos.s3.af-south-1.amazonaws.com/businessLogos/seed_thandis-salon.jpg",
		},
	}

	start := time.Now()
	for _, record := range samples {
		entry, err := repo.Insert(ctx, record)
		if err != nil {
			log.Fatalf("failed to seed business %q: %v", record.BusinessName, err)
		}
		log.Printf("seeded business %q as %s", entry.BusinessName, entry.ID)
	}

	log.Printf("seeded %d businesses in %s", len(samples), time.Since(start))
}
