package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/murkotick/material-tracking-service/internal/app/material/queries/change_summary"
	"github.com/murkotick/material-tracking-service/internal/app/material/queries/get_material"
	"github.com/murkotick/material-tracking-service/internal/app/material/queries/get_project"
	"github.com/murkotick/material-tracking-service/internal/app/material/queries/list_materials"
	"github.com/murkotick/material-tracking-service/internal/app/material/queries/project_summary"
	"github.com/murkotick/material-tracking-service/internal/app/material/repo"
	"github.com/murkotick/material-tracking-service/internal/app/material/usecases/confirm_material"
	"github.com/murkotick/material-tracking-service/internal/app/material/usecases/create_material"
	"github.com/murkotick/material-tracking-service/internal/app/material/usecases/create_project"
	"github.com/murkotick/material-tracking-service/internal/app/material/usecases/update_material"
	"github.com/murkotick/material-tracking-service/internal/config"
	"github.com/murkotick/material-tracking-service/internal/infra/http"
	"github.com/murkotick/material-tracking-service/internal/infra/logger"
	"github.com/murkotick/material-tracking-service/internal/infra/storage"
	"github.com/murkotick/material-tracking-service/internal/pkg/clock"
	committer "github.com/murkotick/material-tracking-service/internal/pkg/committer"
	grpcmaterial "github.com/murkotick/material-tracking-service/internal/transport/grpc/material"
	"github.com/murkotick/material-tracking-service/internal/transport/grpc/server"
)

func main() {
	configPath := flag.String("config", "", "path to an optional config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load config", slog.Any("err", err))
		os.Exit(1)
	}
	log := logger.New(cfg.App.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM.
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		log.Info("shutdown signal received")
		cancel()
	}()

	backend, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Error("open store", slog.String("driver", cfg.Store.Driver), slog.Any("err", err))
		os.Exit(1)
	}
	defer func() { _ = backend.Close() }()

	var (
		reg     *prometheus.Registry
		metrics *server.Metrics
		cm      committer.Applier = backend.Committer
	)
	if cfg.Metrics.Enabled {
		reg = prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics = server.NewMetrics(reg)
		cm = committer.NewInstrumented(backend.Committer, reg)
	}

	clk := clock.RealClock{}
	readModel := backend.ReadModel
	projectRepo := repo.NewProjectRepo()
	materialRepo := repo.NewMaterialRepo()
	historyRepo := repo.NewHistoryRepo()
	outboxRepo := repo.NewOutboxRepo()

	// CQRS wiring
	cmds := grpcmaterial.Commands{
		CreateProject:  create_project.NewInteractor(projectRepo, outboxRepo, cm, clk),
		CreateMaterial: create_material.NewInteractor(materialRepo, outboxRepo, cm, readModel, clk),
		UpdateMaterial: update_material.NewInteractor(materialRepo, historyRepo, outboxRepo, cm, readModel, clk),
		Confirm:        confirm_material.NewInteractor(materialRepo, historyRepo, outboxRepo, cm, readModel, clk),
	}
	qrys := grpcmaterial.Queries{
		GetProject:     get_project.NewHandler(readModel),
		GetMaterial:    get_material.NewHandler(readModel),
		ListMaterials:  list_materials.NewHandler(readModel),
		ProjectSummary: project_summary.NewHandler(readModel),
		ChangeSummary:  change_summary.NewHandler(readModel),
	}
	srv := server.New(log, metrics, grpcmaterial.NewHandler(cmds, qrys))

	lis, err := net.Listen("tcp", cfg.GRPC.Addr)
	if err != nil {
		log.Error("listen", slog.String("addr", cfg.GRPC.Addr), slog.Any("err", err))
		os.Exit(1)
	}

	go func() {
		log.Info("gRPC server listening", slog.String("addr", cfg.GRPC.Addr), slog.String("store", backend.Driver))
		if err := srv.Serve(lis); err != nil {
			log.Error("grpc serve", slog.Any("err", err))
			cancel()
		}
	}()

	var gatherer prometheus.Gatherer
	if reg != nil {
		gatherer = reg
	}
	admin := http.New(cfg.HTTP.Addr, gatherer)
	go func() {
		log.Info("admin http listening", slog.String("addr", cfg.HTTP.Addr))
		if err := admin.Start(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Error("admin http", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	timeout := time.Duration(cfg.GRPC.ShutdownTimeout) * time.Second

	srv.Shutdown()
	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(timeout):
		srv.Stop()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), timeout)
	defer shutdownCancel()
	if err := admin.Shutdown(shutdownCtx); err != nil {
		log.Warn("admin http shutdown", slog.Any("err", err))
	}

	log.Info("server stopped")
}
