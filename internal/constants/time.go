package constants

import "time"

// DefaultInitTimeout bounds cold-start work such as loading the AWS SDK configuration.
const DefaultInitTimeout = 10 * time.Second

// DefaultWebhookTimeout is the HTTP client timeout for the webhook POST.
const DefaultWebhookTimeout = 10 * time.Second

// TestContextTimeout is the timeout for test contexts.
const TestContextTimeout = 5 * time.Second
