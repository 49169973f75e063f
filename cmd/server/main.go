// HTTP API: kudos, награды, пользователи, проекты
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	api "github.com/glkeru/employeehub/internal/api"
	"github.com/glkeru/employeehub/internal/auth"
	"github.com/glkeru/employeehub/internal/config"
	db "github.com/glkeru/employeehub/internal/db"
	kafka "github.com/glkeru/employeehub/internal/external/kafka"
	webhook "github.com/glkeru/employeehub/internal/external/webhook"
	interf "github.com/glkeru/employeehub/internal/interfaces"
	services "github.com/glkeru/employeehub/internal/services"
	otel "github.com/glkeru/employeehub/observability/otel"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// config
	kudosCfg, err := config.Load[config.KudosConfig]()
	if err != nil {
		panic(err)
	}
	dbCfg, err := config.Load[config.DBConfig]()
	if err != nil {
		panic(err)
	}
	authCfg, err := config.Load[config.AuthConfig]()
	if err != nil {
		panic(err)
	}
	httpCfg, err := config.Load[config.HTTPConfig]()
	if err != nil {
		panic(err)
	}
	cacheCfg, err := config.Load[config.CacheConfig]()
	if err != nil {
		panic(err)
	}
	notifyCfg, err := config.Load[config.NotifyConfig]()
	if err != nil {
		panic(err)
	}

	// log
	var logger *zap.Logger
	if kudosCfg.LogProduction {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// tracing
	shutdownTracer, err := otel.InitTracer(ctx, "kudos-api")
	if err != nil {
		logger.Fatal("tracer", zap.Error(err))
	}
	defer shutdownTracer()

	// database
	storage, err := db.NewKudosDB(ctx, logger, dbCfg.DSN())
	if err != nil {
		logger.Fatal("database", zap.Error(err))
	}
	defer storage.Close()
	if err = storage.Migrate(ctx); err != nil {
		logger.Fatal("migrate", zap.Error(err))
	}

	// cache
	var cache interf.CacheStorage
	if cacheCfg.Addr != "" {
		redis, err := db.NewCacheService(ctx, cacheCfg)
		if err != nil {
			logger.Error("cache is disabled", zap.Error(err))
		} else {
			defer redis.Close()
			cache = redis
		}
	}

	// уведомления: через Kafka, если настроена, иначе напрямую в Teams
	var notifier interf.Notifier
	switch {
	case notifyCfg.KafkaURL != "":
		publisher, err := kafka.NewKafkaPublisher(notifyCfg)
		if err != nil {
			logger.Fatal("kafka", zap.Error(err))
		}
		defer publisher.Close()
		notifier = publisher
	case notifyCfg.WebhookURL != "":
		notifier = webhook.NewTeamsNotifier(notifyCfg.WebhookURL, notifyCfg.Timeout, logger)
	default:
		logger.Warn("notifications are disabled")
	}

	// services
	tokens := auth.NewJWTTokenManager(authCfg.Secret, authCfg.Issuer, authCfg.TTL)
	kudosSvc := services.NewKudosService(logger, storage, cache, notifier, services.Options{
		LeaderboardSize: kudosCfg.LeaderboardSize,
		NotifyTimeout:   notifyCfg.Timeout,
	})
	srv := api.Services{
		Auth:     services.NewAuthService(logger, storage, tokens),
		Kudos:    kudosSvc,
		Rewards:  services.NewRewardService(logger, storage, cache),
		Users:    services.NewUserService(logger, storage, cache),
		Projects: services.NewProjectService(logger, storage),
	}

	// api handlers
	r := api.NewHandler(srv, logger)
	server := &http.Server{
		Handler:           otelhttp.NewHandler(r, "kudos-api"),
		Addr:              ":" + httpCfg.Port,
		WriteTimeout:      10 * time.Second,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server started", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	// shutdown
	g.Go(func() error {
		<-gctx.Done()
		timeout, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(timeout)
	})
	if err := g.Wait(); err != nil {
		logger.Error("server error", zap.Error(err))
	}

	// дожидаемся отправки уведомлений
	kudosSvc.Wait()
}
