// Package ghl is a client for the GoHighLevel REST API, covering the
// location, contact and user operations this service needs.
package ghl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// API version headers differ per endpoint family.
	saasAPIVersion  = "2021-04-15"
	locationVersion = "2021-07-28"

	contactSearchLimit = 100

	tokenMaxAttempts = 3

	defaultTimeout   = 30 * time.Second
	maxErrorBodySize = 1024
)

// tokenRetryStep is the linear backoff unit for rate-limited token
// exchanges; a variable so tests can shrink it.
var tokenRetryStep = 2 * time.Second

// Client talks to the GoHighLevel API on behalf of one agency. Location
// scoped calls additionally take a short-lived location token obtained via
// GetLocationToken. Construct one per delivery; it holds no mutable state.
type Client struct {
	baseURL     string
	companyID   string
	agencyToken string
	httpClient  *http.Client
	logger      zerolog.Logger
}

// New creates a Client. agencyToken is the long-lived agency access token
// used for location discovery and token exchange.
func New(baseURL, companyID, agencyToken string, logger zerolog.Logger) *Client {
	return &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		companyID:   companyID,
		agencyToken: agencyToken,
		httpClient:  &http.Client{Timeout: defaultTimeout},
		logger:      logger,
	}
}

// GetLocationsByCustomer returns the ids of locations provisioned for the
// given Stripe customer.
func (c *Client) GetLocationsByCustomer(ctx context.Context, customerID, subscriptionID string) ([]string, error) {
	params := url.Values{}
	params.Set("companyId", c.companyID)
	params.Set("customerId", customerID)
	if subscriptionID != "" {
		params.Set("subscriptionId", subscriptionID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/saas-api/public-api/locations?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create locations request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.agencyToken)
	req.Header.Set("Version", saasAPIVersion)
	req.Header.Set("Accept", "application/json")

	var result locationsResponse
	if err := c.do(req, &result); err != nil {
		c.logger.Error().Err(err).Str("customer_id", customerID).Msg("failed to get locations")
		return nil, err
	}
	c.logger.Info().Int("count", len(result.Data)).Str("customer_id", customerID).Msg("found locations for Stripe customer")
	return result.Data, nil
}

// GetLocationsByCustomerWithRetry polls GetLocationsByCustomer until it
// returns a non-empty result or maxAttempts is exhausted. The delay doubles
// after every empty attempt (no sleep after the last one); Stripe checkout
// completion and GHL subaccount provisioning are not transactionally linked,
// so the first attempts routinely come back empty. Lookup failures count as
// empty attempts. An exhausted poll returns an empty slice and no error; the
// only error returned is ctx cancellation during a sleep.
func (c *Client) GetLocationsByCustomerWithRetry(ctx context.Context, customerID, subscriptionID string, maxAttempts int, initialDelay time.Duration) ([]string, error) {
	delay := initialDelay

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		locations, err := c.GetLocationsByCustomer(ctx, customerID, subscriptionID)
		if err == nil && len(locations) > 0 {
			c.logger.Info().Int("attempt", attempt).Msg("found locations")
			return locations, nil
		}

		if attempt < maxAttempts {
			c.logger.Info().
				Dur("delay", delay).
				Int("attempt", attempt).
				Int("max_attempts", maxAttempts).
				Msg("no locations found yet, waiting before retry")
			if err := sleep(ctx, delay); err != nil {
				return nil, err
			}
			delay *= 2
		}
	}

	c.logger.Warn().Int("max_attempts", maxAttempts).Msg("no locations found after all attempts")
	return nil, nil
}

// GetLocationToken exchanges the agency token for a token scoped to one
// location. HTTP 429 is retried with a linear backoff (2s, 4s) for at most
// tokenMaxAttempts attempts; any other non-success status fails immediately.
func (c *Client) GetLocationToken(ctx context.Context, locationID string) (string, error) {
	form := url.Values{}
	form.Set("companyId", c.companyID)
	form.Set("locationId", locationID)

	for attempt := 1; attempt <= tokenMaxAttempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/oauth/locationToken", strings.NewReader(form.Encode()))
		if err != nil {
			return "", fmt.Errorf("failed to create location token request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+c.agencyToken)
		req.Header.Set("Version", locationVersion)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			c.logger.Error().Err(err).Str("location_id", locationID).Msg("failed to POST location token request")
			return "", fmt.Errorf("location token request failed: %w", err)
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			drain(resp)
			wait := time.Duration(attempt) * tokenRetryStep
			c.logger.Info().Dur("wait", wait).Str("location_id", locationID).Msg("rate limited on token exchange")
			if err := sleep(ctx, wait); err != nil {
				return "", err
			}
			continue
		}

		if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
			body := readErrorBody(resp)
			drain(resp)
			c.logger.Error().Int("status_code", resp.StatusCode).Str("response_body", body).Str("location_id", locationID).Msg("failed to get location token")
			return "", fmt.Errorf("location token exchange returned status %d", resp.StatusCode)
		}

		var result locationTokenResponse
		err = json.NewDecoder(resp.Body).Decode(&result)
		drain(resp)
		if err != nil {
			return "", fmt.Errorf("failed to decode location token response: %w", err)
		}
		c.logger.Info().Str("location_id", locationID).Msg("retrieved location access token")
		return result.AccessToken, nil
	}

	c.logger.Error().Str("location_id", locationID).Msg("failed to get location token after rate limit retries")
	return "", fmt.Errorf("location token exchange rate limited after %d attempts", tokenMaxAttempts)
}

// SearchContactsByEmail returns the contacts in a location whose email
// exactly equals email. The server-side search can match loosely, so the
// results are filtered again client-side.
func (c *Client) SearchContactsByEmail(ctx context.Context, locationID, email, locationToken string) ([]Contact, error) {
	params := url.Values{}
	params.Set("locationId", locationID)
	params.Set("query", email)
	params.Set("limit", fmt.Sprintf("%d", contactSearchLimit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/contacts/?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact search request: %w", err)
	}
	c.setLocationHeaders(req, locationToken)

	var result contactsResponse
	if err := c.do(req, &result); err != nil {
		c.logger.Error().Err(err).Str("location_id", locationID).Msg("failed to search contacts")
		return nil, err
	}

	matching := make([]Contact, 0, len(result.Contacts))
	for _, contact := range result.Contacts {
		if contact.Email == email {
			matching = append(matching, contact)
		}
	}
	c.logger.Info().Int("count", len(matching)).Str("location_id", locationID).Msg("found contacts with matching email")
	return matching, nil
}

// UpdateContactPhoneAndTags sets the contact's phone and applies any of
// tagsToAdd that the contact does not already carry. The current tag set is
// read first; the update payload carries existing plus new tags, or no tags
// field at all when nothing new is requested.
func (c *Client) UpdateContactPhoneAndTags(ctx context.Context, contactID, phone, locationToken string, tagsToAdd []string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/contacts/"+contactID, nil)
	if err != nil {
		return fmt.Errorf("failed to create contact get request: %w", err)
	}
	c.setLocationHeaders(req, locationToken)

	var current struct {
		Tags []string `json:"tags"`
	}
	if err := c.do(req, &current); err != nil {
		c.logger.Error().Err(err).Str("contact_id", contactID).Msg("failed to get contact before update")
		return err
	}

	payload := updateContactRequest{Phone: phone}
	if merged, changed := MergeTags(current.Tags, tagsToAdd); changed {
		payload.Tags = merged
		c.logger.Info().Str("contact_id", contactID).Strs("tags", merged).Msg("adding tags to contact")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal contact update payload: %w", err)
	}

	update, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/contacts/"+contactID, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create contact update request: %w", err)
	}
	c.setLocationHeaders(update, locationToken)
	update.Header.Set("Content-Type", "application/json")

	if err := c.do(update, nil); err != nil {
		c.logger.Error().Err(err).Str("contact_id", contactID).Msg("failed to update contact")
		return err
	}
	c.logger.Info().Str("contact_id", contactID).Str("phone", phone).Msg("updated contact")
	return nil
}

// GetUsersByLocation returns every user in the location.
func (c *Client) GetUsersByLocation(ctx context.Context, locationID, locationToken string) ([]User, error) {
	params := url.Values{}
	params.Set("locationId", locationID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users/?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create users request: %w", err)
	}
	c.setLocationHeaders(req, locationToken)

	var result usersResponse
	if err := c.do(req, &result); err != nil {
		c.logger.Error().Err(err).Str("location_id", locationID).Msg("failed to get users")
		return nil, err
	}
	c.logger.Info().Int("count", len(result.Users)).Str("location_id", locationID).Msg("found users for location")
	return result.Users, nil
}

// UpdateUserPhone sets the user's phone number.
func (c *Client) UpdateUserPhone(ctx context.Context, userID, phone, locationToken string) error {
	body, err := json.Marshal(updateUserRequest{Phone: phone, IsEjectedUser: false})
	if err != nil {
		return fmt.Errorf("failed to marshal user update payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/users/"+userID, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create user update request: %w", err)
	}
	c.setLocationHeaders(req, locationToken)
	req.Header.Set("Content-Type", "application/json")

	if err := c.do(req, nil); err != nil {
		c.logger.Error().Err(err).Str("user_id", userID).Msg("failed to update user")
		return err
	}
	c.logger.Info().Str("user_id", userID).Str("phone", phone).Msg("updated user")
	return nil
}

// MergeTags returns existing plus any of toAdd not already present, in that
// order. changed reports whether anything new was appended.
func MergeTags(existing, toAdd []string) (merged []string, changed bool) {
	have := make(map[string]struct{}, len(existing))
	for _, tag := range existing {
		have[tag] = struct{}{}
	}

	merged = append(merged, existing...)
	for _, tag := range toAdd {
		if _, ok := have[tag]; !ok {
			merged = append(merged, tag)
			changed = true
		}
	}
	return merged, changed
}

func (c *Client) setLocationHeaders(req *http.Request, locationToken string) {
	req.Header.Set("Authorization", "Bearer "+locationToken)
	req.Header.Set("Version", locationVersion)
	req.Header.Set("Accept", "application/json")
}

// do executes the request, requires a 200 response and decodes the body into
// out when non-nil.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", req.URL.Path, err)
	}
	defer drain(resp)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s %s returned status %d: %s", req.Method, req.URL.Path, resp.StatusCode, readErrorBody(resp))
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", req.URL.Path, err)
	}
	return nil
}

// readErrorBody reads a bounded prefix of the response body for logging.
func readErrorBody(resp *http.Response) string {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	return string(body)
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// sleep blocks for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
