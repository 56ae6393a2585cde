package config

import "time"

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	MonPort     int    `env:"MON_PORT" envDefault:"8888"`
	EnablePprof bool   `env:"ENABLE_PPROF"`
	LogLevel    string `env:"LOG_LEVEL"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"ghl-phone-sync"`

	// AWS Secrets Manager holds the long-lived GHL agency access token.
	AWSRegion     string `env:"REGION_NAME" envDefault:"us-west-2"`
	GHLSecretName string `env:"GHL_SECRET_NAME" envDefault:"GHLAccessKey"`

	GHLAPIBaseURL     string `env:"GHL_API_BASE_URL" envDefault:"https://services.leadconnectorhq.com"`
	GHLCompanyID      string `env:"GHL_COMPANY_ID" envDefault:"Cbjwl9dRdmiskYlzh8Oo"`
	DefaultLocationID string `env:"DEFAULT_LOCATION_ID" envDefault:"c2DjRsOo4e13Od6ZTU6S"`

	// StripeWebhookSecret is the shared HMAC secret for inbound deliveries.
	// When it is empty, AllowUnsignedWebhooks decides whether deliveries are
	// accepted without verification.
	StripeWebhookSecret   string `env:"STRIPE_WEBHOOK_SECRET"`
	AllowUnsignedWebhooks bool   `env:"ALLOW_UNSIGNED_WEBHOOKS" envDefault:"true"`

	// Subaccount provisioning in GHL lags Stripe checkout completion, so the
	// location lookup polls with a doubling delay. With the defaults the worst
	// case blocks a single delivery for roughly 10.5 minutes; whatever fronts
	// this service must allow at least that long before timing out.
	LocationPollMaxAttempts  int           `env:"LOCATION_POLL_MAX_ATTEMPTS" envDefault:"6"`
	LocationPollInitialDelay time.Duration `env:"LOCATION_POLL_INITIAL_DELAY" envDefault:"10s"`
}
