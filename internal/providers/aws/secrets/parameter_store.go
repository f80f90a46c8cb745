// Package secrets reads secret values from AWS Systems Manager Parameter Store.
package secrets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	appErrors "github.com/ecs-state-check/ecs-state-check/internal/errors"
	"github.com/ecs-state-check/ecs-state-check/internal/logger"
	"github.com/ecs-state-check/ecs-state-check/internal/providers/aws/client"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
)

// ParameterStoreReader retrieves SecureString parameters.
type ParameterStoreReader struct {
	client client.SSMClient
	logger *slog.Logger
}

// NewParameterStoreReader creates a reader backed by the given SSM client.
func NewParameterStoreReader(ssmClient client.SSMClient, log *slog.Logger) *ParameterStoreReader {
	return &ParameterStoreReader{
		client: ssmClient,
		logger: log,
	}
}

// RetrieveSecret returns the decrypted value of the named parameter.
func (r *ParameterStoreReader) RetrieveSecret(ctx context.Context, name string) (string, error) {
	reqLogger := logger.DeriveRequestLogger(ctx, r.logger)

	reqLogger.Debug("calling external service", "context", map[string]string{
		"operation": "SSM.GetParameter",
		"name":      name,
	})

	result, err := r.client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		if isParameterNotFound(err) {
			return "", fmt.Errorf("parameter %s not found: %w", name, err)
		}
		return "", fmt.Errorf("failed to retrieve parameter %s: %w", name, err)
	}

	if result.Parameter == nil || result.Parameter.Value == nil {
		return "", fmt.Errorf("parameter %s has no value", name)
	}

	return *result.Parameter.Value, nil
}

// WebhookSource describes where the webhook URL comes from.
type WebhookSource struct {
	URL           string
	ParameterName string
}

// ResolveWebhookURL returns the literal URL when set, and otherwise reads it from Parameter Store.
func ResolveWebhookURL(ctx context.Context, reader *ParameterStoreReader, src WebhookSource) (string, error) {
	if url := strings.TrimSpace(src.URL); url != "" {
		return url, nil
	}

	if src.ParameterName == "" {
		return "", appErrors.ErrConfig("webhook URL is not configured", nil)
	}

	if reader == nil {
		return "", appErrors.ErrConfig("webhook URL parameter set but no parameter store reader available", nil)
	}

	value, err := reader.RetrieveSecret(ctx, src.ParameterName)
	if err != nil {
		return "", appErrors.ErrConfig("failed to load webhook URL", err)
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return "", appErrors.ErrConfig(fmt.Sprintf("parameter %s is empty", src.ParameterName), nil)
	}

	return value, nil
}

func isParameterNotFound(err error) bool {
	var notFound *types.ParameterNotFound
	return errors.As(err, &notFound)
}
