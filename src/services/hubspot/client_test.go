package hubspot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(srv *httptest.Server) *Client {
	return &Client{
		BaseURL: srv.URL,
		Token:   "test-token",
		HTTP:    srv.Client(),
	}
}

func TestUpsertCreatesWhenSearchFindsNothing(t *testing.T) {
	var created ContactProperties

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		switch r.URL.Path {
		case "/crm/v3/objects/contacts/search":
			json.NewEncoder(w).Encode(searchResponse{Total: 0})
		case "/crm/v3/objects/contacts":
			var body contactObject
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			created = body.Properties
			json.NewEncoder(w).Encode(contactObject{ID: "new-1"})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	id, err := testClient(srv).UpsertContactByEmail(context.Background(), ContactProperties{
		Email:     "a@x.com",
		Firstname: "Jo",
	})

	require.NoError(t, err)
	assert.Equal(t, "new-1", id)
	assert.Equal(t, "a@x.com", created.Email)
}

func TestUpsertUpdatesExistingContact(t *testing.T) {
	patched := false

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/crm/v3/objects/contacts/search":
			json.NewEncoder(w).Encode(searchResponse{
				Total:   1,
				Results: []contactObject{{ID: "existing-9"}},
			})
		case "/crm/v3/objects/contacts/existing-9":
			assert.Equal(t, http.MethodPatch, r.Method)
			patched = true
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("{}"))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	id, err := testClient(srv).UpsertContactByEmail(context.Background(), ContactProperties{Email: "a@x.com"})

	require.NoError(t, err)
	assert.Equal(t, "existing-9", id)
	assert.True(t, patched)
}

func TestUpsertWithoutEmailCreatesDirectly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// phone-only leads skip the search entirely
		assert.Equal(t, "/crm/v3/objects/contacts", r.URL.Path)
		json.NewEncoder(w).Encode(contactObject{ID: "phone-1"})
	}))
	defer srv.Close()

	id, err := testClient(srv).UpsertContactByEmail(context.Background(), ContactProperties{Phone: "+1555"})

	require.NoError(t, err)
	assert.Equal(t, "phone-1", id)
}

func TestUpsertSurfacesAPIErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid token"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv).UpsertContactByEmail(context.Background(), ContactProperties{Email: "a@x.com"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}

func TestUpsertRequiresToken(t *testing.T) {
	c := &Client{BaseURL: "http://localhost", HTTP: http.DefaultClient}
	_, err := c.UpsertContactByEmail(context.Background(), ContactProperties{Email: "a@x.com"})
	require.Error(t, err)
}
