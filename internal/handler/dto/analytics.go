package dto

// TrackEventRequest is the tracking ingestion body.
type TrackEventRequest struct {
	EventName string         `json:"event_name"`
	EventData map[string]any `json:"event_data,omitempty"`
	SessionID string         `json:"session_id,omitempty"`
}

// TrackEventResponse acknowledges an ingested event. The session ID is
// echoed (or minted) so the client can reuse it for the tab lifetime.
type TrackEventResponse struct {
	Status    string `json:"status"`
	SessionID string `json:"session_id,omitempty"`
}

// SummaryRequest is the optional JSON body for the summary endpoint.
type SummaryRequest struct {
	Days *int `json:"days,omitempty"`
}
