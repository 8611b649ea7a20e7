package bootstrap

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/muhammaaddsafii-dev/BE-terestria/internal/config"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/infra/db"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/infra/logger"
	mq "github.com/muhammaaddsafii-dev/BE-terestria/internal/infra/queue"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/handler"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/repo"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/service"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level, cfg.App.Env)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		log := do.MustInvoke[*zap.Logger](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		// [optional] auto migrate
		if cfg.Database.AutoMigrate {
			if err := db.AutoMigrate(d); err != nil {
				return nil, err
			}
		}

		if err := EnsureRootAdmin(context.Background(), d, cfg, log); err != nil {
			return nil, err
		}
		return d, nil
	})

	// RabbitMQ, only when the audit fan-out is enabled
	do.Provide(inj, func(i *do.Injector) (*amqp.Connection, error) {
		return mq.Dial(do.MustInvoke[*config.Config](i))
	})
	do.Provide(inj, func(i *do.Injector) (*mq.Publisher, error) {
		return mq.NewPublisher(
			do.MustInvoke[*amqp.Connection](i),
			do.MustInvoke[*zap.Logger](i),
			do.MustInvoke[*config.Config](i),
		)
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.UserRepo, error) {
		return repo.NewUserRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ProjectRepo, error) {
		return repo.NewProjectRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.GeoDataRepo, error) {
		return repo.NewGeoDataRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.AdminLogRepo, error) {
		return repo.NewAdminLogRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.AuthService, error) {
		return service.NewAuthService(do.MustInvoke[repo.UserRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.AuditService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		var publisher service.AuditPublisher
		if cfg.RabbitMQ.Enabled {
			p, err := do.Invoke[*mq.Publisher](i)
			if err != nil {
				return nil, err
			}
			publisher = p
		}
		return service.NewAuditService(
			do.MustInvoke[repo.AdminLogRepo](i),
			publisher,
			service.AuditTarget{
				ExchangeName: cfg.RabbitMQ.ExchangeName.Audit,
				RoutingKey:   cfg.RabbitMQ.RoutingKey.Audit,
			},
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ProjectService, error) {
		return service.NewProjectService(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.GeoDataRepo](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.GeoDataService, error) {
		return service.NewGeoDataService(
			do.MustInvoke[repo.GeoDataRepo](i),
			do.MustInvoke[repo.ProjectRepo](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.AdminLogService, error) {
		return service.NewAdminLogService(do.MustInvoke[repo.AdminLogRepo](i)), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.ProjectHandler, error) {
		return handler.NewProjectHandler(
			do.MustInvoke[service.ProjectService](i),
			do.MustInvoke[service.AuditService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.GeoDataHandler, error) {
		return handler.NewGeoDataHandler(
			do.MustInvoke[service.GeoDataService](i),
			do.MustInvoke[service.AuditService](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.AdminLogHandler, error) {
		return handler.NewAdminLogHandler(do.MustInvoke[service.AdminLogService](i)), nil
	})
	return inj
}
