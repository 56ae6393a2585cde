// Package stripewebhook receives Stripe webhook deliveries and drives the
// phone sync for completed checkout sessions.
package stripewebhook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/grandcanyonsmith/ghl-phone-sync/internal/services/phonesync"
	"github.com/grandcanyonsmith/ghl-phone-sync/internal/signature"
	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v74"
)

const (
	signatureHeader          = "Stripe-Signature"
	checkoutSessionCompleted = "checkout.session.completed"
	successMessage           = "Phone numbers updated successfully"
	ignoredMessage           = "Event type not processed"
)

// SecretGetter retrieves the agency access token.
type SecretGetter interface {
	GetSecretString(ctx context.Context, name string) (string, error)
}

// Syncer runs the CRM phone sync for one customer.
type Syncer interface {
	Process(ctx context.Context, customer phonesync.Customer) phonesync.Summary
}

// SyncerFactory builds a Syncer bound to the agency token fetched for the
// current delivery. The token is short-lived from this service's point of
// view: it is fetched fresh per delivery and never cached.
type SyncerFactory func(agencyToken string) Syncer

// Controller handles inbound Stripe webhook deliveries.
type Controller struct {
	verifier   *signature.Verifier
	secrets    SecretGetter
	secretName string
	newSyncer  SyncerFactory
	logger     zerolog.Logger
}

// NewController creates a Controller.
func NewController(verifier *signature.Verifier, secrets SecretGetter, secretName string, newSyncer SyncerFactory, logger zerolog.Logger) *Controller {
	return &Controller{
		verifier:   verifier,
		secrets:    secrets,
		secretName: secretName,
		newSyncer:  newSyncer,
		logger:     logger,
	}
}

// HandleStripeEvent processes one webhook delivery: verify the signature,
// filter on event type, validate the customer fields, then run the two-phase
// CRM sync. Runs synchronously; with subaccount polling the worst case blocks
// for several minutes before responding.
func (ctl *Controller) HandleStripeEvent(c *fiber.Ctx) error {
	logger := ctl.logger.With().Str("delivery_id", uuid.NewString()).Logger()
	body := c.Body()

	if !ctl.verifier.Verify(body, c.Get(signatureHeader)) {
		return richerrors.Error{
			ExternalMsg: "Invalid webhook signature",
			Err:         errors.New("stripe signature verification failed"),
			Code:        fiber.StatusUnauthorized,
		}
	}

	var event stripe.Event
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("failed to parse event payload: %w", err)
	}
	logger.Info().Str("event_type", event.Type).Msg("processing event")

	if event.Type != checkoutSessionCompleted {
		logger.Info().Str("event_type", event.Type).Msg("ignoring event type")
		return c.JSON(WebhookResponse{Message: ignoredMessage})
	}
	// An event without a data object is treated as an empty session so the
	// field validation below produces the 400 responses instead of a parse
	// failure.
	var session stripe.CheckoutSession
	if event.Data != nil && len(event.Data.Raw) > 0 {
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return fmt.Errorf("failed to parse checkout session: %w", err)
		}
	}

	customer, err := extractCustomer(&session)
	if err != nil {
		return err
	}
	logger.Info().
		Str("customer_email", customer.Email).
		Str("stripe_customer_id", customer.StripeCustomerID).
		Msg("processing customer")

	// The agency token is the one dependency nothing can proceed without.
	agencyToken, err := ctl.secrets.GetSecretString(c.Context(), ctl.secretName)
	if err != nil {
		return err
	}

	summary := ctl.newSyncer(agencyToken).Process(c.Context(), customer)

	return c.JSON(WebhookResponse{
		Message: successMessage,
		DefaultLocation: &DefaultLocationSummary{
			LocationID:      summary.DefaultLocationID,
			ContactsUpdated: summary.ContactsUpdated,
			TagsAdded:       summary.TagsAdded,
		},
		NewSubaccounts: &NewSubaccountsSummary{
			TotalUsersUpdated: summary.TotalUsersUpdated,
			Locations:         summary.Locations,
		},
		CustomerEmail:    customer.Email,
		CustomerPhone:    customer.Phone,
		StripeCustomerID: customer.StripeCustomerID,
	})
}

// extractCustomer pulls the required customer fields out of the checkout
// session. Each missing field fails with its own message so the sender can
// tell what to fix.
func extractCustomer(session *stripe.CheckoutSession) (phonesync.Customer, error) {
	var customer phonesync.Customer
	if session.CustomerDetails != nil {
		customer.Email = session.CustomerDetails.Email
		customer.Phone = session.CustomerDetails.Phone
	}
	if session.Customer != nil {
		customer.StripeCustomerID = session.Customer.ID
	}
	if session.Subscription != nil {
		customer.StripeSubscriptionID = session.Subscription.ID
	}

	switch {
	case customer.Email == "":
		return customer, validationError("No customer email found")
	case customer.Phone == "":
		return customer, validationError("No customer phone found")
	case customer.StripeCustomerID == "":
		return customer, validationError("No Stripe customer ID found")
	}
	return customer, nil
}

func validationError(msg string) error {
	return richerrors.Error{
		ExternalMsg: msg,
		Err:         errors.New(msg),
		Code:        fiber.StatusBadRequest,
	}
}
