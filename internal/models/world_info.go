package models

import "glade.dev/internal/generation"

// WorldEnvelope is what world endpoints send: the seed as requested plus
// the generated world document.
type WorldEnvelope struct {
	Seed  string            `json:"seed"`
	World *generation.World `json:"world"`
}

// HealthResponse reports server status
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// LiveEvent is one websocket frame pushed to connected renderer clients.
// Type is "world" for the snapshot sent on connect and "reload" when the
// server rebuilt its default world after a pack reload.
type LiveEvent struct {
	Type  string         `json:"type"`
	World *WorldEnvelope `json:"world,omitempty"`
}
