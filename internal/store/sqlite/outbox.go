package sqlite

import (
	"context"
	"fmt"
	"time"

	contracts "github.com/murkotick/material-tracking-service/internal/app/material/contracts"
)

// OutboxEvents returns the outbox rows of an aggregate in insertion order.
func (rm *ReadModel) OutboxEvents(ctx context.Context, aggregateID string) ([]contracts.OutboxEvent, error) {
	rows, err := rm.db.QueryContext(ctx,
		`SELECT event_id, event_type, aggregate_id, payload, status, created_at
		 FROM outbox_events WHERE aggregate_id = ? ORDER BY created_at ASC, rowid ASC`, aggregateID)
	if err != nil {
		return nil, fmt.Errorf("select outbox: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []contracts.OutboxEvent
	for rows.Next() {
		var (
			e         contracts.OutboxEvent
			createdAt string
		)
		if err := rows.Scan(&e.EventID, &e.EventType, &e.AggregateID, &e.PayloadJSON, &e.Status, &createdAt); err != nil {
			return nil, fmt.Errorf("scan outbox: %w", err)
		}
		e.CreatedAtUTC, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("outbox %s created_at: %w", e.EventID, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
