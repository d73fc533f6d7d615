package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	databasepb "cloud.google.com/go/spanner/admin/database/apiv1/databasepb"

	"github.com/murkotick/material-tracking-service/internal/config"
	"github.com/murkotick/material-tracking-service/internal/infra/logger"
	"github.com/murkotick/material-tracking-service/internal/store/sqlite"
)

// Applies the schema of the configured store.
//
// SQLite databases are migrated with the embedded goose migrations. Spanner
// (typically the emulator for local dev) gets the DDL in
// migrations/spanner/001_initial_schema.sql:
//
//	export SPANNER_EMULATOR_HOST=localhost:9010
//	export APP_STORE_DRIVER=spanner
//	export APP_STORE_SPANNER_DATABASE=projects/test-project/instances/emulator-instance/databases/test-db
//	go run ./cmd/migrate
func main() {
	configPath := flag.String("config", "", "path to an optional config file")
	ddlPath := flag.String("ddl", "migrations/spanner/001_initial_schema.sql", "spanner DDL file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load config", slog.Any("err", err))
		os.Exit(1)
	}
	log := logger.New(cfg.App.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	switch cfg.Store.Driver {
	case config.StoreSQLite:
		db, err := sqlite.Open(ctx, cfg.Store.SQLite.Path)
		if err != nil {
			log.Error("migrate sqlite", slog.String("path", cfg.Store.SQLite.Path), slog.Any("err", err))
			os.Exit(1)
		}
		_ = db.Close()
		log.Info("sqlite schema up to date", slog.String("path", cfg.Store.SQLite.Path))

	case config.StoreSpanner:
		n, err := migrateSpanner(ctx, cfg.Store.Spanner.Database, *ddlPath)
		if err != nil {
			log.Error("migrate spanner", slog.String("database", cfg.Store.Spanner.Database), slog.Any("err", err))
			os.Exit(1)
		}
		log.Info("applied DDL statements", slog.Int("count", n), slog.String("database", cfg.Store.Spanner.Database))
	}
}

func migrateSpanner(ctx context.Context, db, ddlPath string) (int, error) {
	stmts, err := readDDLStatements(ddlPath)
	if err != nil {
		return 0, err
	}
	if len(stmts) == 0 {
		return 0, fmt.Errorf("no DDL statements found in %s", ddlPath)
	}

	admin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return 0, err
	}
	defer admin.Close()

	op, err := admin.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
		Database:   db,
		Statements: stmts,
	})
	if err != nil {
		return 0, err
	}
	if err := op.Wait(ctx); err != nil {
		return 0, err
	}
	return len(stmts), nil
}

func readDDLStatements(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return splitDDL(string(b)), nil
}

func splitDDL(src string) []string {
	// Normalize line endings for Windows-authored files.
	src = strings.ReplaceAll(src, "\r\n", "\n")

	var lines []string
	for _, line := range strings.Split(src, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		lines = append(lines, line)
	}

	parts := strings.Split(strings.Join(lines, "\n"), ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		stmt := strings.TrimSpace(p)
		if stmt == "" {
			continue
		}
		out = append(out, stmt)
	}
	return out
}
