package analytics

import (
	"encoding/json"
	"fmt"
)

const (
	maxEventNameLength = 100
	maxSessionIDLength = 100
	maxEventDataBytes  = 8192
)

// ValidateEventPayload validates tracking event payload fields before
// they enter the stream. The event name is free-form (the web client
// may ship new names without a server deploy) but bounded.
func ValidateEventPayload(payload EventPayload) error {
	if payload.EventName == "" {
		return fmt.Errorf("event_name is required")
	}
	if len(payload.EventName) > maxEventNameLength {
		return fmt.Errorf("event_name too long")
	}
	if payload.SessionID == "" {
		return fmt.Errorf("session_id is required")
	}
	if len(payload.SessionID) > maxSessionIDLength {
		return fmt.Errorf("session_id too long")
	}
	if len(payload.UserAgent) > MaxUserAgentLength {
		return fmt.Errorf("user_agent too long")
	}
	if payload.CreatedAt <= 0 {
		return fmt.Errorf("created_at must be set")
	}
	if payload.EventData != nil {
		data, err := json.Marshal(payload.EventData)
		if err != nil {
			return fmt.Errorf("event_data not serializable: %w", err)
		}
		if len(data) > maxEventDataBytes {
			return fmt.Errorf("event_data too large")
		}
	}
	return nil
}
