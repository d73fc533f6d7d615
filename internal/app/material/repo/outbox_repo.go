package repo

import (
	contracts "github.com/murkotick/material-tracking-service/internal/app/material/contracts"
	"github.com/murkotick/material-tracking-service/internal/models/m_outbox"
	commitplan "github.com/murkotick/material-tracking-service/internal/pkg/committer"
)

// OutboxRepo is the write-side implementation of the transactional outbox repository.
// It returns writes but never applies them.
type OutboxRepo struct{}

func NewOutboxRepo() *OutboxRepo {
	return &OutboxRepo{}
}

func (r *OutboxRepo) InsertMut(e *contracts.OutboxEvent) *commitplan.Write {
	if e == nil {
		return nil
	}

	values := m_outbox.BuildInsertMap(
		e.EventID,
		e.EventType,
		e.AggregateID,
		e.PayloadJSON,
		e.Status,
		e.CreatedAtUTC,
	)
	return m_outbox.InsertWrite(values)
}
