// Job - пересылка событий о kudos из Kafka в Teams
// Недоставленные сохраняются в MongoDB и повторяются по таймеру
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/glkeru/employeehub/internal/config"
	db "github.com/glkeru/employeehub/internal/db"
	kafka "github.com/glkeru/employeehub/internal/external/kafka"
	webhook "github.com/glkeru/employeehub/internal/external/webhook"
	interf "github.com/glkeru/employeehub/internal/interfaces"
	services "github.com/glkeru/employeehub/internal/services"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// config
	notifyCfg, err := config.Load[config.NotifyConfig]()
	if err != nil {
		panic(err)
	}
	mongoCfg, err := config.Load[config.MongoConfig]()
	if err != nil {
		panic(err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// kafka
	reader, err := kafka.NewKafkaReader(notifyCfg)
	if err != nil {
		panic(err)
	}
	defer reader.Close()

	// журнал доставки
	var deliveries interf.DeliveryLog
	if mongoCfg.URI != "" {
		mgo, err := db.NewDeliveryDB(mongoCfg)
		if err != nil {
			logger.Error(err.Error())
		} else {
			defer mgo.Close(context.Background())
			deliveries = mgo
		}
	}

	// services
	teams := webhook.NewTeamsNotifier(notifyCfg.WebhookURL, notifyCfg.Timeout, logger)
	serv := services.NewNotificationService(logger, teams, deliveries)

	workers := notifyCfg.Workers
	if workers <= 0 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		wg := &sync.WaitGroup{}
		defer wg.Wait()
		semaphore := make(chan struct{}, workers)
		for {
			event, err := reader.GetNewMessage(gctx)
			if err != nil {
				if gctx.Err() != nil {
					return nil
				}
				return err
			}

			semaphore <- struct{}{}
			wg.Add(1)
			go func(event []byte) {
				defer wg.Done()
				defer func() { <-semaphore }()
				if err := serv.Forward(gctx, event); err != nil {
					logger.Error(err.Error())
				}
			}(event)
		}
	})
	if deliveries != nil && notifyCfg.RetryInterval > 0 {
		g.Go(func() error {
			ticker := time.NewTicker(notifyCfg.RetryInterval)
			defer ticker.Stop()
			for {
				select {
				case <-gctx.Done():
					return nil
				case <-ticker.C:
					n, err := serv.RetryFailed(gctx, notifyCfg.MaxAttempts)
					if err != nil && !errors.Is(err, context.Canceled) {
						logger.Error("retry failed deliveries", zap.Error(err))
						continue
					}
					if n > 0 {
						logger.Info("failed deliveries resent", zap.Int("count", n))
					}
				}
			}
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error(err.Error())
	}
}
