package shared

import (
	"time"

	"github.com/google/uuid"

	contracts "github.com/murkotick/material-tracking-service/internal/app/material/contracts"
	"github.com/murkotick/material-tracking-service/internal/app/material/domain"
	commitplan "github.com/murkotick/material-tracking-service/internal/pkg/committer"
)

// OutboxStatusPending is the status of freshly enqueued outbox rows.
const OutboxStatusPending = "pending"

// AddOutboxEvents appends one outbox insert per domain event to the plan.
func AddOutboxEvents(plan *commitplan.Plan, outbox contracts.OutboxRepo, events []domain.DomainEvent, now time.Time) error {
	for _, ev := range events {
		payload, err := MarshalDomainEventPayload(ev)
		if err != nil {
			return err
		}
		plan.Add(outbox.InsertMut(&contracts.OutboxEvent{
			EventID:      uuid.New().String(),
			EventType:    ev.EventType(),
			AggregateID:  ev.AggregateID(),
			PayloadJSON:  payload,
			Status:       OutboxStatusPending,
			CreatedAtUTC: now,
		}))
	}
	return nil
}
