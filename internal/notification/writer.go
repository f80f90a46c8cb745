package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// WriterNotifier prints messages instead of posting them. The CLI uses it for dry runs.
type WriterNotifier struct {
	w io.Writer
}

// NewWriterNotifier creates a notifier writing indented JSON to w.
func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

// Notify writes the message.
func (n *WriterNotifier) Notify(_ context.Context, msg *Message) error {
	encoder := json.NewEncoder(n.w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(msg); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	return nil
}
