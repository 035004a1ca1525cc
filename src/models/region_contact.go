package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// RegionContact maps a set of country codes to the regional office a
// visitor should be routed to.
type RegionContact struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Region       string             `bson:"region" json:"region" validate:"required"`
	CountryCodes []string           `bson:"countryCodes" json:"countryCodes"`
	Email        string             `bson:"email" json:"email" validate:"required,email"`
	Phone        string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address      string             `bson:"address,omitempty" json:"address,omitempty"`
	Default      bool               `bson:"default" json:"default"`
}

// GeoContactResponse is what the public geo endpoint returns.
type GeoContactResponse struct {
	CountryCode string        `json:"countryCode,omitempty"`
	CountryName string        `json:"countryName,omitempty"`
	Contact     RegionContact `json:"contact"`
}
