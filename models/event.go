package models

// Event is a domain notification published to Redis by mq.Emit.
type Event struct {
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	Action     string `json:"action"`
	Date       string `json:"date,omitempty"`
}
