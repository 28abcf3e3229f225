package shared

import (
	"time"

	"github.com/google/uuid"
)

// OutboxMessage is written in the same transaction as the state change it
// describes and relayed to the broker afterwards.
type OutboxMessage struct {
	EventType  string
	Key        string
	Payload    []byte
	OccurredAt time.Time
}

type OutboxRecord struct {
	ID         uuid.UUID
	EventType  string
	Key        string
	Payload    []byte
	Attempts   int32
	OccurredAt time.Time
}
