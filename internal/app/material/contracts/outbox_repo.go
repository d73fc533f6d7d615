package contracts

import (
	"time"

	commitplan "github.com/murkotick/material-tracking-service/internal/pkg/committer"
)

// OutboxRepo is the write-side repository interface for the transactional outbox.
// It returns writes; it does not apply them.
type OutboxRepo interface {
	InsertMut(e *OutboxEvent) *commitplan.Write
}

// OutboxEvent is the application-level representation of an event persisted to the outbox table.
// Usecases are responsible for enriching domain events into this structure.
type OutboxEvent struct {
	EventID      string
	EventType    string
	AggregateID  string
	PayloadJSON  string
	Status       string
	CreatedAtUTC time.Time
}
