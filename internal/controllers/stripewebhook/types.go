package stripewebhook

import "github.com/grandcanyonsmith/ghl-phone-sync/internal/services/phonesync"

// WebhookResponse is returned for every accepted delivery. For ignored event
// types only Message is set.
type WebhookResponse struct {
	// Message provides a brief status message for the delivery.
	Message string `json:"message"`
	// DefaultLocation reports what changed in the fixed default location.
	DefaultLocation *DefaultLocationSummary `json:"default_location,omitempty"`
	// NewSubaccounts reports what changed in newly provisioned locations.
	NewSubaccounts *NewSubaccountsSummary `json:"new_subaccounts,omitempty"`
	// CustomerEmail echoes the checkout customer's email.
	CustomerEmail string `json:"customer_email,omitempty"`
	// CustomerPhone echoes the checkout customer's phone.
	CustomerPhone string `json:"customer_phone,omitempty"`
	// StripeCustomerID echoes the Stripe customer id.
	StripeCustomerID string `json:"stripe_customer_id,omitempty"`
}

// DefaultLocationSummary is the phase-one outcome.
type DefaultLocationSummary struct {
	LocationID      string `json:"location_id"`
	ContactsUpdated int    `json:"contacts_updated"`
	TagsAdded       int    `json:"tags_added"`
}

// NewSubaccountsSummary is the phase-two outcome.
type NewSubaccountsSummary struct {
	TotalUsersUpdated int                        `json:"total_users_updated"`
	Locations         []phonesync.LocationResult `json:"locations"`
}
