// Package secrets retrieves credentials from AWS Secrets Manager.
package secrets

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
	"github.com/aws/aws-sdk-go/service/secretsmanager/secretsmanageriface"
	"github.com/rs/zerolog"
)

// Client fetches secret values from AWS Secrets Manager.
type Client struct {
	sm     secretsmanageriface.SecretsManagerAPI
	logger zerolog.Logger
}

// New creates a Client for the given region using the default credential
// chain.
func New(region string, logger zerolog.Logger) (*Client, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}
	return &Client{
		sm:     secretsmanager.New(sess),
		logger: logger,
	}, nil
}

// NewWithAPI creates a Client backed by an existing Secrets Manager API,
// mainly for tests.
func NewWithAPI(sm secretsmanageriface.SecretsManagerAPI, logger zerolog.Logger) *Client {
	return &Client{sm: sm, logger: logger}
}

// GetSecretString returns the string value of the named secret. Unlike the
// CRM calls, a failure here is fatal for the caller: without the agency token
// nothing downstream can be attempted, so the error is returned rather than
// swallowed.
func (c *Client) GetSecretString(ctx context.Context, name string) (string, error) {
	out, err := c.sm.GetSecretValueWithContext(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(name),
	})
	if err != nil {
		c.logger.Error().Err(err).Str("secret_name", name).Msg("unable to retrieve secret")
		return "", fmt.Errorf("failed to retrieve secret %q: %w", name, err)
	}
	c.logger.Info().Str("secret_name", name).Msg("retrieved secret successfully")
	return aws.StringValue(out.SecretString), nil
}
