package secrets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	appErrors "github.com/ecs-state-check/ecs-state-check/internal/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSSMClient struct {
	getParameterFunc func(
		ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options),
	) (*ssm.GetParameterOutput, error)
	calls int
}

func (m *mockSSMClient) GetParameter(
	ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options),
) (*ssm.GetParameterOutput, error) {
	m.calls++
	return m.getParameterFunc(ctx, params, optFns...)
}

func parameterValue(value string) func(
	context.Context, *ssm.GetParameterInput, ...func(*ssm.Options),
) (*ssm.GetParameterOutput, error) {
	return func(
		_ context.Context, _ *ssm.GetParameterInput, _ ...func(*ssm.Options),
	) (*ssm.GetParameterOutput, error) {
		return &ssm.GetParameterOutput{Parameter: &types.Parameter{Value: aws.String(value)}}, nil
	}
}

func TestRetrieveSecret(t *testing.T) {
	var gotInput *ssm.GetParameterInput
	mock := &mockSSMClient{
		getParameterFunc: func(
			_ context.Context, params *ssm.GetParameterInput, _ ...func(*ssm.Options),
		) (*ssm.GetParameterOutput, error) {
			gotInput = params
			return &ssm.GetParameterOutput{Parameter: &types.Parameter{Value: aws.String("s3cr3t")}}, nil
		},
	}
	reader := NewParameterStoreReader(mock, slog.Default())

	value, err := reader.RetrieveSecret(context.Background(), "/ecs-state-check/webhook")

	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", value)
	require.NotNil(t, gotInput)
	assert.Equal(t, "/ecs-state-check/webhook", aws.ToString(gotInput.Name))
	assert.True(t, aws.ToBool(gotInput.WithDecryption))
}

func TestRetrieveSecret_Errors(t *testing.T) {
	tests := []struct {
		name    string
		output  *ssm.GetParameterOutput
		err     error
		wantMsg string
	}{
		{
			name:    "not found",
			err:     fmt.Errorf("wrapped: %w", &types.ParameterNotFound{Message: aws.String("missing")}),
			wantMsg: "not found",
		},
		{
			name:    "api failure",
			err:     errors.New("throttled"),
			wantMsg: "failed to retrieve parameter",
		},
		{
			name:    "no value",
			output:  &ssm.GetParameterOutput{},
			wantMsg: "has no value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockSSMClient{
				getParameterFunc: func(
					_ context.Context, _ *ssm.GetParameterInput, _ ...func(*ssm.Options),
				) (*ssm.GetParameterOutput, error) {
					return tt.output, tt.err
				},
			}

			_, err := NewParameterStoreReader(mock, slog.Default()).
				RetrieveSecret(context.Background(), "/p")

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestResolveWebhookURL(t *testing.T) {
	t.Run("literal URL wins without a lookup", func(t *testing.T) {
		mock := &mockSSMClient{getParameterFunc: parameterValue("https://from-ssm")}
		reader := NewParameterStoreReader(mock, slog.Default())

		url, err := ResolveWebhookURL(context.Background(), reader, WebhookSource{
			URL:           " https://hooks.example.com/x ",
			ParameterName: "/p",
		})

		require.NoError(t, err)
		assert.Equal(t, "https://hooks.example.com/x", url)
		assert.Equal(t, 0, mock.calls)
	})

	t.Run("reads parameter when URL empty", func(t *testing.T) {
		mock := &mockSSMClient{getParameterFunc: parameterValue("https://hooks.example.com/y\n")}
		reader := NewParameterStoreReader(mock, slog.Default())

		url, err := ResolveWebhookURL(context.Background(), reader, WebhookSource{ParameterName: "/p"})

		require.NoError(t, err)
		assert.Equal(t, "https://hooks.example.com/y", url)
		assert.Equal(t, 1, mock.calls)
	})

	tests := []struct {
		name   string
		reader *ParameterStoreReader
		src    WebhookSource
	}{
		{
			name: "nothing configured",
			src:  WebhookSource{},
		},
		{
			name: "no reader",
			src:  WebhookSource{ParameterName: "/p"},
		},
		{
			name: "empty parameter",
			reader: NewParameterStoreReader(
				&mockSSMClient{getParameterFunc: parameterValue("  ")}, slog.Default()),
			src: WebhookSource{ParameterName: "/p"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveWebhookURL(context.Background(), tt.reader, tt.src)

			require.Error(t, err)
			assert.Equal(t, appErrors.ErrCodeConfig, appErrors.GetErrorCode(err))
		})
	}
}
