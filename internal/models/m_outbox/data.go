package m_outbox

import (
	"time"

	commitplan "github.com/murkotick/material-tracking-service/internal/pkg/committer"
)

// BuildInsertMap constructs a map with fields for outbox insertion.
func BuildInsertMap(eventID, eventType, aggregateID string, payload string, status string, createdAt time.Time) map[string]interface{} {
	return map[string]interface{}{
		ColEventID:     eventID,
		ColEventType:   eventType,
		ColAggregateID: aggregateID,
		ColPayload:     payload,
		ColStatus:      status,
		ColCreatedAt:   createdAt,
		ColProcessedAt: nil,
	}
}

// InsertWrite constructs an insert for the outbox table.
func InsertWrite(values map[string]interface{}) *commitplan.Write {
	return &commitplan.Write{Op: commitplan.OpInsert, Table: TableName, KeyColumn: ColEventID, Values: values}
}
