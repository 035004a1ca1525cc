package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupIPParsesCountry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/8.8.8.8", r.URL.Path)
		w.Write([]byte(`{"status":"success","country":"United States","countryCode":"US"}`))
	}))
	defer srv.Close()

	orig := LookupBaseURL
	LookupBaseURL = srv.URL
	defer func() { LookupBaseURL = orig }()

	info, err := LookupIP(context.Background(), "8.8.8.8")

	require.NoError(t, err)
	assert.Equal(t, "US", info.CountryCode)
	assert.Equal(t, "United States", info.CountryName)
}

func TestLookupIPFailureStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"fail","message":"private range"}`))
	}))
	defer srv.Close()

	orig := LookupBaseURL
	LookupBaseURL = srv.URL
	defer func() { LookupBaseURL = orig }()

	_, err := LookupIP(context.Background(), "192.168.0.1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "private range")
}
