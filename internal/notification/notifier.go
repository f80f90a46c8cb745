package notification

import "context"

// Notifier delivers a rendered message.
type Notifier interface {
	Notify(ctx context.Context, msg *Message) error
}

var (
	_ Notifier = (*WebhookSender)(nil)
	_ Notifier = (*WriterNotifier)(nil)
)
