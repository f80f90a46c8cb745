package lambdaapi

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockProcessor implements a simple processor for testing
type mockProcessor struct {
	handleFunc func(ctx context.Context, rawEvent *json.RawMessage) error
	callCount  int
	lastEvent  string
}

func (m *mockProcessor) Handle(ctx context.Context, rawEvent *json.RawMessage) error {
	m.callCount++
	if rawEvent != nil {
		m.lastEvent = string(*rawEvent)
	}
	if m.handleFunc != nil {
		return m.handleFunc(ctx, rawEvent)
	}
	return nil
}

func TestEventProcessorHandler(t *testing.T) {
	tests := []struct {
		name      string
		processor *mockProcessor
		wantErr   bool
	}{
		{
			name:      "processor succeeds",
			processor: &mockProcessor{},
		},
		{
			name: "processor error fails the invocation",
			processor: &mockProcessor{
				handleFunc: func(_ context.Context, _ *json.RawMessage) error {
					return errors.New("webhook returned status 500")
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewEventProcessorHandler(tt.processor)
			require.NotNil(t, handler)

			payload := []byte(`{"detail-type":"ECS Task State Change","detail":{}}`)
			_, err := handler.Invoke(context.Background(), payload)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, 1, tt.processor.callCount)
			assert.JSONEq(t, string(payload), tt.processor.lastEvent)
		})
	}
}
