package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message represents an immutable chat message confirmed by the routing
// service. Ordering within a conversation is arrival order, never re-sorted.
type Message struct {
	ID        uuid.UUID // assigned locally on receipt, used as the index key
	From      string
	Text      string
	Timestamp time.Time
}
