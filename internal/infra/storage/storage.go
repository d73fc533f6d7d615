// Package storage opens the configured backend and exposes it through the
// commit and read-model contracts.
package storage

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"

	contracts "github.com/murkotick/material-tracking-service/internal/app/material/contracts"
	"github.com/murkotick/material-tracking-service/internal/app/material/queries"
	"github.com/murkotick/material-tracking-service/internal/config"
	committer "github.com/murkotick/material-tracking-service/internal/pkg/committer"
	"github.com/murkotick/material-tracking-service/internal/store/sqlite"
)

type Backend struct {
	Driver    string
	Committer committer.Applier
	ReadModel contracts.ReadModel

	close func() error
}

func (b *Backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// Open connects to the store selected by cfg.Store.Driver. SQLite databases
// are migrated on open.
func Open(ctx context.Context, cfg config.Config) (*Backend, error) {
	switch cfg.Store.Driver {
	case config.StoreSQLite:
		db, err := sqlite.Open(ctx, cfg.Store.SQLite.Path)
		if err != nil {
			return nil, err
		}
		return &Backend{
			Driver:    cfg.Store.Driver,
			Committer: sqlite.NewCommitter(db),
			ReadModel: sqlite.NewReadModel(db),
			close:     db.Close,
		}, nil

	case config.StoreSpanner:
		client, err := spanner.NewClient(ctx, cfg.Store.Spanner.Database)
		if err != nil {
			return nil, fmt.Errorf("spanner client: %w", err)
		}
		return &Backend{
			Driver:    cfg.Store.Driver,
			Committer: committer.NewAdapter(client),
			ReadModel: queries.NewSpannerReadModel(client),
			close: func() error {
				client.Close()
				return nil
			},
		}, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}
