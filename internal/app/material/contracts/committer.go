package contracts

import (
	"context"

	commitplan "github.com/murkotick/material-tracking-service/internal/pkg/committer"
)

// Committer is a small abstraction the usecases call to apply a collection
// of writes atomically. This keeps usecases independent of the storage
// driver (Spanner in production, SQLite locally and in tests).
type Committer interface {
	// Apply atomically applies the provided write plan.
	Apply(ctx context.Context, plan *commitplan.Plan) error
}
