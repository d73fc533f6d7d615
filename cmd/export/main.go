package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/murkotick/material-tracking-service/internal/config"
	"github.com/murkotick/material-tracking-service/internal/export"
	"github.com/murkotick/material-tracking-service/internal/infra/logger"
	"github.com/murkotick/material-tracking-service/internal/infra/storage"
	"github.com/murkotick/material-tracking-service/internal/pkg/clock"
)

// Writes an xlsx report of one project's materials, history and summary.
//
//	go run ./cmd/export -project prj_... [-out exports/] [-s3]
//
// With -s3 the workbook goes to export.s3.bucket (APP_EXPORT_S3_BUCKET).
func main() {
	configPath := flag.String("config", "", "path to an optional config file")
	projectID := flag.String("project", "", "project id to export")
	outDir := flag.String("out", "", "output directory, overrides export.dir")
	toS3 := flag.Bool("s3", false, "upload to the configured S3 bucket")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load config", slog.Any("err", err))
		os.Exit(1)
	}
	log := logger.New(cfg.App.Env)

	if *projectID == "" {
		log.Error("-project is required")
		os.Exit(2)
	}
	if *outDir != "" {
		cfg.Export.Dir = *outDir
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, log, *projectID, *toS3); err != nil {
		log.Error("export failed", slog.String("project_id", *projectID), slog.Any("err", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger, projectID string, toS3 bool) error {
	sink, err := newSink(ctx, cfg, toS3)
	if err != nil {
		return err
	}

	backend, err := storage.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() { _ = backend.Close() }()

	location, err := export.NewExporter(backend.ReadModel, sink, clock.RealClock{}, log).Export(ctx, projectID)
	if err != nil {
		return err
	}
	fmt.Println(location)
	return nil
}

func newSink(ctx context.Context, cfg config.Config, toS3 bool) (export.Sink, error) {
	if !toS3 {
		return export.NewFileSink(cfg.Export.Dir), nil
	}
	s3cfg := cfg.Export.S3
	return export.NewS3Sink(ctx, export.S3Config{
		Bucket:    s3cfg.Bucket,
		Region:    s3cfg.Region,
		Endpoint:  s3cfg.Endpoint,
		PathStyle: s3cfg.PathStyle,
		Prefix:    s3cfg.Prefix,
	})
}
