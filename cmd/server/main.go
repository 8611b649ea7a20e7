package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/samber/do"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/muhammaaddsafii-dev/BE-terestria/internal/bootstrap"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/config"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/infra/db"
	mq "github.com/muhammaaddsafii-dev/BE-terestria/internal/infra/queue"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/handler"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/service"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/router"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/telemetry"
)

const shutdownTimeout = 10 * time.Second

//	@title						GeoForm Admin API
//	@version					1.0
//	@description				Read-only administration API over GeoForm projects and field data, with an audit trail.
//	@BasePath					/api
//	@securityDefinitions.apikey	TokenAuth
//	@in							header
//	@name						Authorization
//	@description				"Token <key>" or "Bearer <key>"
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	inj := bootstrap.BuildContainer()
	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)
	defer func() { _ = log.Sync() }()

	if cfg.App.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	if _, err := telemetry.SetupTracing(cfg); err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	if _, err := telemetry.SetupMetrics(cfg); err != nil {
		return fmt.Errorf("setup metrics: %w", err)
	}
	if err := telemetry.InitAuditMetrics(); err != nil {
		return fmt.Errorf("init audit metrics: %w", err)
	}

	gdb, err := do.Invoke[*gorm.DB](inj)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if cfg.Telemetry.Enabled {
		if err := db.RegisterOpenTelemetryPlugin(gdb); err != nil {
			log.Warn("gorm tracing disabled", zap.Error(err))
		}
	}

	engine := router.NewRouter(router.RouterDeps{
		Config:          cfg,
		Log:             log,
		AuthService:     do.MustInvoke[service.AuthService](inj),
		ProjectHandler:  do.MustInvoke[*handler.ProjectHandler](inj),
		GeoDataHandler:  do.MustInvoke[*handler.GeoDataHandler](inj),
		AdminLogHandler: do.MustInvoke[*handler.AdminLogHandler](inj),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("server starting", zap.String("addr", srv.Addr), zap.String("api_prefix", cfg.App.APIPrefix))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var errs []error
		if err := srv.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, fmt.Errorf("http shutdown: %w", err))
		}
		if cfg.RabbitMQ.Enabled {
			if p, err := do.Invoke[*mq.Publisher](inj); err == nil {
				errs = append(errs, p.Close())
			}
			if conn, err := do.Invoke[*amqp.Connection](inj); err == nil {
				errs = append(errs, conn.Close())
			}
		}
		if sqlDB, err := gdb.DB(); err == nil {
			errs = append(errs, sqlDB.Close())
		}
		errs = append(errs, telemetry.Shutdown(shutdownCtx))
		return errors.Join(errs...)
	})

	return g.Wait()
}
