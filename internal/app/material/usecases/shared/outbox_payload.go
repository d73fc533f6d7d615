package shared

import (
	"fmt"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/murkotick/material-tracking-service/internal/app/material/domain"
)

// MarshalDomainEventPayload converts a domain event into a JSON payload suitable for the outbox.
//
// The domain layer avoids serialization concerns; this adapter extracts primitives
// (tagged values as plain JSON scalars, timestamps as RFC3339) to keep payloads useful.
func MarshalDomainEventPayload(ev domain.DomainEvent) (string, error) {
	if ev == nil {
		return "{}", nil
	}

	var payload map[string]interface{}
	switch e := ev.(type) {
	case *domain.ProjectCreatedEvent:
		payload = map[string]interface{}{
			"project_id": e.ProjectID,
			"name":       e.Name,
			"status":     string(e.Status),
			"created_at": timestamp(e.CreatedAt),
		}

	case *domain.MaterialCreatedEvent:
		payload = map[string]interface{}{
			"material_id": e.MaterialID,
			"project_id":  e.ProjectID,
			"name":        e.Name,
			"category":    e.Category,
			"quantity":    e.Quantity,
			"unit":        e.Unit,
			"status":      string(e.Status),
			"created_by":  e.CreatedBy,
			"created_at":  timestamp(e.CreatedAt),
		}

	case *domain.MaterialUpdatedEvent:
		changes := make([]interface{}, 0, len(e.Changes))
		for _, c := range e.Changes {
			changes = append(changes, map[string]interface{}{
				"field":     string(c.Field),
				"old_value": c.OldValue.Interface(),
				"new_value": c.NewValue.Interface(),
			})
		}
		payload = map[string]interface{}{
			"material_id": e.MaterialID,
			"changes":     changes,
			"changed_by":  e.ChangedBy,
			"updated_at":  timestamp(e.UpdatedAt),
			"occurred_at": timestamp(e.OccurredAt()),
		}

	case *domain.MaterialConfirmedEvent:
		ids := make([]interface{}, 0, len(e.EntryIDs))
		for _, id := range e.EntryIDs {
			ids = append(ids, id)
		}
		payload = map[string]interface{}{
			"material_id":  e.MaterialID,
			"entry_ids":    ids,
			"confirmed_by": e.ConfirmedBy,
			"confirmed_at": timestamp(e.ConfirmedAt),
		}

	default:
		payload = map[string]interface{}{
			"event_type":   ev.EventType(),
			"aggregate_id": ev.AggregateID(),
			"occurred_at":  timestamp(ev.OccurredAt()),
		}
	}

	s, err := structpb.NewStruct(payload)
	if err != nil {
		return "", fmt.Errorf("build outbox payload for %T: %w", ev, err)
	}
	b, err := protojson.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("marshal outbox payload for %T: %w", ev, err)
	}
	return string(b), nil
}

func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
