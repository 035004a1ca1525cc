package hubspot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const defaultBaseURL = "https://api.hubapi.com"

// ContactProperties is the flat property set pushed to HubSpot.
// Property names follow the HubSpot contact schema.
type ContactProperties struct {
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Firstname string `json:"firstname,omitempty"`
	Lastname  string `json:"lastname,omitempty"`
	Company   string `json:"company,omitempty"`
	Message   string `json:"message,omitempty"`
	Country   string `json:"country,omitempty"`
	Source    string `json:"lead_source,omitempty"`
}

// API is what callers need from the CRM, kept small so tests can stub
// it out.
type API interface {
	UpsertContactByEmail(ctx context.Context, props ContactProperties) (string, error)
}

// Client talks to the HubSpot v3 contacts API with a private-app token.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

// NewClientFromEnv builds a client from HUBSPOT_ACCESS_TOKEN and the
// optional HUBSPOT_BASE_URL override.
func NewClientFromEnv() *Client {
	baseURL := os.Getenv("HUBSPOT_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		BaseURL: baseURL,
		Token:   os.Getenv("HUBSPOT_ACCESS_TOKEN"),
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled reports whether a token is configured.
func (c *Client) Enabled() bool {
	return c.Token != ""
}

type contactObject struct {
	ID         string            `json:"id,omitempty"`
	Properties ContactProperties `json:"properties"`
}

type searchRequest struct {
	FilterGroups []filterGroup `json:"filterGroups"`
	Limit        int           `json:"limit"`
}

type filterGroup struct {
	Filters []filter `json:"filters"`
}

type filter struct {
	PropertyName string `json:"propertyName"`
	Operator     string `json:"operator"`
	Value        string `json:"value"`
}

type searchResponse struct {
	Total   int             `json:"total"`
	Results []contactObject `json:"results"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
		return fmt.Errorf("hubspot %s %s: status %d: %s", method, path, res.StatusCode, string(raw))
	}

	if out != nil {
		return json.NewDecoder(res.Body).Decode(out)
	}
	return nil
}

// SearchContactByEmail returns the contact id for an email, or ""
// when no contact exists yet.
func (c *Client) SearchContactByEmail(ctx context.Context, email string) (string, error) {
	req := searchRequest{
		FilterGroups: []filterGroup{{Filters: []filter{{
			PropertyName: "email",
			Operator:     "EQ",
			Value:        email,
		}}}},
		Limit: 1,
	}

	var res searchResponse
	if err := c.do(ctx, http.MethodPost, "/crm/v3/objects/contacts/search", req, &res); err != nil {
		return "", err
	}
	if len(res.Results) == 0 {
		return "", nil
	}
	return res.Results[0].ID, nil
}

// CreateContact creates a new contact and returns its id.
func (c *Client) CreateContact(ctx context.Context, props ContactProperties) (string, error) {
	var res contactObject
	err := c.do(ctx, http.MethodPost, "/crm/v3/objects/contacts", contactObject{Properties: props}, &res)
	if err != nil {
		return "", err
	}
	return res.ID, nil
}

// UpdateContact patches an existing contact's properties.
func (c *Client) UpdateContact(ctx context.Context, id string, props ContactProperties) error {
	path := fmt.Sprintf("/crm/v3/objects/contacts/%s", id)
	return c.do(ctx, http.MethodPatch, path, contactObject{Properties: props}, nil)
}

// UpsertContactByEmail searches by email and creates or updates
// accordingly. The adapter itself performs no idempotency check,
// callers guard with their own sync flag.
func (c *Client) UpsertContactByEmail(ctx context.Context, props ContactProperties) (string, error) {
	if !c.Enabled() {
		return "", fmt.Errorf("hubspot access token not configured")
	}

	var id string
	if props.Email != "" {
		found, err := c.SearchContactByEmail(ctx, props.Email)
		if err != nil {
			return "", err
		}
		id = found
	}

	if id == "" {
		return c.CreateContact(ctx, props)
	}

	if err := c.UpdateContact(ctx, id, props); err != nil {
		return "", err
	}
	return id, nil
}
