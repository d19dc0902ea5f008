package events

import (
	"log/slog"
	"time"
)

// PublishWithRetry attempts to publish an event up to maxRetries times
// with exponential backoff, returning the error from the final attempt.
// Live updates are best effort, so callers usually only log the result.
func PublishWithRetry(p Publisher, event Event, maxRetries int) error {
	if p == nil {
		return nil
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	var lastErr error
	baseDelay := 50 * time.Millisecond

	for attempt := range maxRetries {
		err := p.SendEvent(event)
		if err == nil {
			if attempt > 0 {
				slog.Debug("event published after retry",
					"attempt", attempt+1,
					"event_type", event.Type,
					"view", event.View)
			}
			return nil
		}

		lastErr = err

		if attempt < maxRetries-1 {
			delay := baseDelay * (1 << attempt)
			slog.Debug("event publish failed, retrying",
				"attempt", attempt+1,
				"max_retries", maxRetries,
				"retry_delay", delay,
				"error", err)
			time.Sleep(delay)
		}
	}

	slog.Warn("event publish failed after all retries",
		"attempts", maxRetries,
		"event_type", event.Type,
		"view", event.View,
		"error", lastErr)

	return lastErr
}
