package services

import "carbontrack-api/models"

// WriteEvent reports the outcome of one fire-and-forget remote write. The
// local cache is already updated when the event is published; a non-nil Err
// means the remote store is behind the cache until the next Load.
type WriteEvent struct {
	UserID   string
	Kind     string // "emission_upsert", "emission_clear", "target_upsert"
	Category models.Category
	Err      error
}

// Broadcaster pushes dashboard refresh signals to a user's open sockets.
// Implemented by the WebSocket handler; nil disables push.
type Broadcaster interface {
	BroadcastToUser(userID, event string)
}

// publish drops the event when nobody is draining the channel; the write
// path must never block on observers.
func publish(ch chan WriteEvent, ev WriteEvent) {
	select {
	case ch <- ev:
	default:
	}
}
