// Package app wires the webhook service together.
package app

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/grandcanyonsmith/ghl-phone-sync/internal/clients/ghl"
	"github.com/grandcanyonsmith/ghl-phone-sync/internal/clients/secrets"
	"github.com/grandcanyonsmith/ghl-phone-sync/internal/config"
	"github.com/grandcanyonsmith/ghl-phone-sync/internal/controllers/stripewebhook"
	"github.com/grandcanyonsmith/ghl-phone-sync/internal/services/phonesync"
	"github.com/grandcanyonsmith/ghl-phone-sync/internal/signature"
	"github.com/rs/zerolog"
)

// CreateServer builds the fiber app with all dependencies attached.
func CreateServer(settings *config.Settings, logger zerolog.Logger) (*fiber.App, error) {
	secretsClient, err := secrets.New(settings.AWSRegion, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create secrets client: %w", err)
	}
	return CreateFiberApp(settings, secretsClient, logger), nil
}

// CreateFiberApp sets up the routes and handlers. The secrets dependency is
// injected so tests can swap it out.
func CreateFiberApp(settings *config.Settings, secretsClient stripewebhook.SecretGetter, logger zerolog.Logger) *fiber.App {
	logger.Info().Msg("Starting GHL phone sync service...")

	app := fiber.New(fiber.Config{
		ErrorHandler:          stripewebhook.ErrorHandler(logger),
		DisableStartupMessage: true,
	})
	app.Use(fiberrecover.New())

	verifier := signature.NewVerifier(settings.StripeWebhookSecret, settings.AllowUnsignedWebhooks, logger)

	// Each delivery fetches the agency token fresh and gets its own CRM
	// client; nothing is shared or cached between deliveries.
	newSyncer := func(agencyToken string) stripewebhook.Syncer {
		crm := ghl.New(settings.GHLAPIBaseURL, settings.GHLCompanyID, agencyToken, logger)
		return phonesync.New(crm, settings.DefaultLocationID, settings.LocationPollMaxAttempts, settings.LocationPollInitialDelay, logger)
	}

	controller := stripewebhook.NewController(verifier, secretsClient, settings.GHLSecretName, newSyncer, logger)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to the GHL Phone Sync service!")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})
	app.Post("/v1/webhooks/stripe", controller.HandleStripeEvent)

	return app
}
