// Package phonesync propagates a Stripe customer's phone number into
// GoHighLevel contact and user records after a completed checkout.
package phonesync

import (
	"context"
	"time"

	"github.com/grandcanyonsmith/ghl-phone-sync/internal/clients/ghl"
	"github.com/rs/zerolog"
)

// RequiredContactTags are applied to every matching contact in the default
// location.
var RequiredContactTags = []string{"close", "closed"}

// CRMClient is the subset of the GHL client this service drives.
type CRMClient interface {
	GetLocationsByCustomerWithRetry(ctx context.Context, customerID, subscriptionID string, maxAttempts int, initialDelay time.Duration) ([]string, error)
	GetLocationToken(ctx context.Context, locationID string) (string, error)
	SearchContactsByEmail(ctx context.Context, locationID, email, locationToken string) ([]ghl.Contact, error)
	UpdateContactPhoneAndTags(ctx context.Context, contactID, phone, locationToken string, tagsToAdd []string) error
	GetUsersByLocation(ctx context.Context, locationID, locationToken string) ([]ghl.User, error)
	UpdateUserPhone(ctx context.Context, userID, phone, locationToken string) error
}

// Customer is the subset of a checkout session this service acts on.
type Customer struct {
	Email                string
	Phone                string
	StripeCustomerID     string
	StripeSubscriptionID string
}

// LocationResult is the per-subaccount outcome of a sync.
type LocationResult struct {
	LocationID   string `json:"location_id"`
	UsersUpdated int    `json:"users_updated"`
}

// Summary is the outcome of one sync run.
type Summary struct {
	DefaultLocationID string
	ContactsUpdated   int
	TagsAdded         int
	TotalUsersUpdated int
	Locations         []LocationResult
}

// Service runs the two-phase sync: contacts in the fixed default location,
// then users in any subaccounts provisioned for the Stripe customer.
type Service struct {
	crm               CRMClient
	defaultLocationID string
	pollMaxAttempts   int
	pollInitialDelay  time.Duration
	logger            zerolog.Logger
}

// New creates a Service.
func New(crm CRMClient, defaultLocationID string, pollMaxAttempts int, pollInitialDelay time.Duration, logger zerolog.Logger) *Service {
	return &Service{
		crm:               crm,
		defaultLocationID: defaultLocationID,
		pollMaxAttempts:   pollMaxAttempts,
		pollInitialDelay:  pollInitialDelay,
		logger:            logger,
	}
}

// Process synchronizes the customer's phone number into the CRM. Individual
// CRM failures are logged and skipped; Process itself never fails, it just
// reports what it managed to update.
func (s *Service) Process(ctx context.Context, customer Customer) Summary {
	summary := Summary{
		DefaultLocationID: s.defaultLocationID,
		Locations:         []LocationResult{},
	}

	s.syncDefaultLocation(ctx, customer, &summary)
	s.syncSubaccounts(ctx, customer, &summary)

	return summary
}

// syncDefaultLocation updates contacts in the default location. A token
// failure skips the phase entirely without failing the run.
func (s *Service) syncDefaultLocation(ctx context.Context, customer Customer, summary *Summary) {
	s.logger.Info().Str("location_id", s.defaultLocationID).Msg("updating contacts in default location")

	token, err := s.crm.GetLocationToken(ctx, s.defaultLocationID)
	if err != nil {
		s.logger.Error().Err(err).Str("location_id", s.defaultLocationID).Msg("failed to get token for default location, skipping contact updates")
		return
	}

	contacts, err := s.crm.SearchContactsByEmail(ctx, s.defaultLocationID, customer.Email, token)
	if err != nil {
		s.logger.Error().Err(err).Str("location_id", s.defaultLocationID).Msg("contact search failed, skipping contact updates")
		return
	}
	s.logger.Info().Int("count", len(contacts)).Msg("found contacts in default location")

	for _, contact := range contacts {
		action, phone := planContactUpdate(contact, RequiredContactTags)
		switch action {
		case contactActionNone:
			s.logger.Info().Str("contact_id", contact.ID).Msg("contact already has phone and tags")
			continue
		case contactActionSetPhoneAndTags:
			phone = customer.Phone
		}

		if err := s.crm.UpdateContactPhoneAndTags(ctx, contact.ID, phone, token, RequiredContactTags); err != nil {
			s.logger.Error().Err(err).Str("contact_id", contact.ID).Msg("contact update failed")
			continue
		}

		switch action {
		case contactActionSetPhoneAndTags:
			summary.ContactsUpdated++
			s.logger.Info().Str("contact_id", contact.ID).Msg("updated contact with phone and tags")
		case contactActionRepairTags:
			summary.TagsAdded++
			s.logger.Info().Str("contact_id", contact.ID).Msg("added tags to contact")
		}
	}
}

// syncSubaccounts waits for newly provisioned locations and updates matching
// users in each one.
func (s *Service) syncSubaccounts(ctx context.Context, customer Customer, summary *Summary) {
	s.logger.Info().Str("customer_id", customer.StripeCustomerID).Msg("looking for new subaccounts for Stripe customer")

	locationIDs, err := s.crm.GetLocationsByCustomerWithRetry(ctx, customer.StripeCustomerID, customer.StripeSubscriptionID, s.pollMaxAttempts, s.pollInitialDelay)
	if err != nil {
		s.logger.Error().Err(err).Msg("location lookup aborted")
		return
	}

	for _, locationID := range locationIDs {
		s.logger.Info().Str("location_id", locationID).Msg("processing new subaccount")

		token, err := s.crm.GetLocationToken(ctx, locationID)
		if err != nil {
			s.logger.Error().Err(err).Str("location_id", locationID).Msg("failed to get token for subaccount, skipping")
			continue
		}

		// A failed user listing still reports the location, with nothing
		// updated.
		users, err := s.crm.GetUsersByLocation(ctx, locationID, token)
		if err != nil {
			s.logger.Error().Err(err).Str("location_id", locationID).Msg("failed to list users")
			users = nil
		}

		updated := 0
		for _, user := range users {
			if !shouldUpdateUser(user, customer.Email) {
				continue
			}
			if err := s.crm.UpdateUserPhone(ctx, user.ID, customer.Phone, token); err != nil {
				s.logger.Error().Err(err).Str("user_id", user.ID).Msg("user update failed")
				continue
			}
			updated++
			s.logger.Info().Str("user_id", user.ID).Str("location_id", locationID).Msg("updated user in new subaccount")
		}

		summary.TotalUsersUpdated += updated
		summary.Locations = append(summary.Locations, LocationResult{
			LocationID:   locationID,
			UsersUpdated: updated,
		})
	}
}

type contactAction int

const (
	contactActionNone contactAction = iota
	contactActionSetPhoneAndTags
	contactActionRepairTags
)

// planContactUpdate decides what to do with a contact. A contact without a
// phone gets the customer's phone plus the required tags. A contact with a
// phone keeps it (existing numbers are never overwritten) but gets a
// tag-repair update when any required tag is missing; that update re-sends
// the contact's current phone since the endpoint requires the field.
func planContactUpdate(contact ghl.Contact, requiredTags []string) (contactAction, string) {
	if contact.Phone == "" {
		return contactActionSetPhoneAndTags, ""
	}
	if _, changed := ghl.MergeTags(contact.Tags, requiredTags); changed {
		return contactActionRepairTags, contact.Phone
	}
	return contactActionNone, ""
}

// shouldUpdateUser reports whether the user's phone should be set: exact
// email match and no phone on record yet.
func shouldUpdateUser(user ghl.User, email string) bool {
	return user.Email == email && user.Phone == ""
}
