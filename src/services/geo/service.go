package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"Agency-Backend/src/database"
	"Agency-Backend/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// LookupBaseURL points at an ip-api.com compatible endpoint, swapped
// out in tests.
var LookupBaseURL = "http://ip-api.com/json"

var httpClient = &http.Client{Timeout: 5 * time.Second}

const cacheTTL = 24 * time.Hour

var ErrNoRegionContact = errors.New("no region contact configured")

// IPInfo is the subset of the geolocation response we keep.
type IPInfo struct {
	CountryCode string `json:"countryCode"`
	CountryName string `json:"country"`
}

type lookupResponse struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`
}

// LookupIP resolves an IP to a country, with a Redis cache in front of
// the external call. Lookups without Redis go straight to the API.
func LookupIP(ctx context.Context, ip string) (*IPInfo, error) {
	cacheKey := fmt.Sprintf("geoip:%s", ip)

	if database.RedisClient != nil {
		if cached, err := database.RedisClient.Get(ctx, cacheKey).Result(); err == nil {
			var info IPInfo
			if json.Unmarshal([]byte(cached), &info) == nil {
				return &info, nil
			}
		}
	}

	endpoint := fmt.Sprintf("%s/%s?fields=status,message,country,countryCode", LookupBaseURL, url.PathEscape(ip))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	res, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var body lookupResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Status != "success" {
		return nil, fmt.Errorf("geo lookup failed: %s", body.Message)
	}

	info := &IPInfo{CountryCode: body.CountryCode, CountryName: body.Country}

	if database.RedisClient != nil {
		if raw, err := json.Marshal(info); err == nil {
			database.RedisClient.Set(ctx, cacheKey, raw, cacheTTL)
		}
	}

	return info, nil
}

// ResolveRegionContact picks the regional office for a country code,
// falling back to the default office.
func ResolveRegionContact(ctx context.Context, countryCode string) (*models.RegionContact, error) {
	var contact models.RegionContact

	if countryCode != "" {
		err := database.RegionContactCollection.FindOne(ctx, bson.M{"countryCodes": countryCode}).Decode(&contact)
		if err == nil {
			return &contact, nil
		}
		if err != mongo.ErrNoDocuments {
			return nil, err
		}
	}

	err := database.RegionContactCollection.FindOne(ctx, bson.M{"default": true}).Decode(&contact)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNoRegionContact
		}
		return nil, err
	}
	return &contact, nil
}

// ContactForIP resolves the regional contact for a visitor IP. A
// failed geolocation still resolves to the default office.
func ContactForIP(ctx context.Context, ip string) (*models.GeoContactResponse, error) {
	info, err := LookupIP(ctx, ip)
	if err != nil {
		info = &IPInfo{}
	}

	contact, err := ResolveRegionContact(ctx, info.CountryCode)
	if err != nil {
		return nil, err
	}

	return &models.GeoContactResponse{
		CountryCode: info.CountryCode,
		CountryName: info.CountryName,
		Contact:     *contact,
	}, nil
}
