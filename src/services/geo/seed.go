package geo

import (
	"context"
	"time"

	"Agency-Backend/src/database"
	"Agency-Backend/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SeedRegionContacts inserts the default office directory when the
// collection is empty, so the geo endpoint always has a fallback.
func SeedRegionContacts() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := database.RegionContactCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := []interface{}{
		models.RegionContact{
			ID:           primitive.NewObjectID(),
			Region:       "North America",
			CountryCodes: []string{"US", "CA", "MX"},
			Email:        "hello@agency.com",
			Phone:        "+1 555 010 2030",
			Default:      true,
		},
		models.RegionContact{
			ID:           primitive.NewObjectID(),
			Region:       "Europe",
			CountryCodes: []string{"GB", "DE", "FR", "NL", "ES", "IT", "PL"},
			Email:        "europe@agency.com",
			Phone:        "+44 20 0100 2030",
		},
		models.RegionContact{
			ID:           primitive.NewObjectID(),
			Region:       "Asia Pacific",
			CountryCodes: []string{"AU", "NZ", "SG", "JP", "IN"},
			Email:        "apac@agency.com",
			Phone:        "+61 2 0100 2030",
		},
	}

	_, err = database.RegionContactCollection.InsertMany(ctx, defaults)
	return err
}
