// Job - обработка заявок на награды из RabbitMQ
package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/glkeru/employeehub/internal/config"
	db "github.com/glkeru/employeehub/internal/db"
	rabbit "github.com/glkeru/employeehub/internal/external/rabbitmq"
	interf "github.com/glkeru/employeehub/internal/interfaces"
	services "github.com/glkeru/employeehub/internal/services"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// config
	rabbitCfg, err := config.Load[config.RabbitConfig]()
	if err != nil {
		panic(err)
	}
	dbCfg, err := config.Load[config.DBConfig]()
	if err != nil {
		panic(err)
	}
	cacheCfg, err := config.Load[config.CacheConfig]()
	if err != nil {
		panic(err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// rabbitmq
	reader, err := rabbit.NewRedeemQueueClient(rabbitCfg)
	if err != nil {
		logger.Error(err.Error())
		panic(err)
	}
	defer reader.Close()

	// database
	storage, err := db.NewKudosDB(ctx, logger, dbCfg.DSN())
	if err != nil {
		logger.Error(err.Error())
		panic(err)
	}
	defer storage.Close()

	// cache
	var cache interf.CacheStorage
	if cacheCfg.Addr != "" {
		redis, err := db.NewCacheService(ctx, cacheCfg)
		if err != nil {
			logger.Error(err.Error())
		} else {
			defer redis.Close()
			cache = redis
		}
	}

	// services
	serv := services.NewRewardService(logger, storage, cache)

	workers := rabbitCfg.Workers
	if workers <= 0 {
		workers = 1
	}

	// workers
	wg := &sync.WaitGroup{}
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go worker(ctx, serv, wg, logger, reader)
	}
	wg.Wait()
}

type redeemer interface {
	RedeemMessage(ctx context.Context, redeemJson string) (redeemId string, err error)
}

type confirmer interface {
	Processed(ctx context.Context, redeemId string, success bool) error
}

// worker for rabbitmq messages
func worker(ctx context.Context, serv redeemer, wg *sync.WaitGroup, logger *zap.Logger, reader *rabbit.RedeemQueueClient) {
	defer wg.Done()
	for {
		var msg amqp.Delivery
		var ok bool
		select {
		case <-ctx.Done():
			return
		case msg, ok = <-reader.Msg:
			if !ok {
				return
			}
		}
		handle(ctx, serv, reader, logger, msg)
	}
}

// Обработка одной заявки. При остановке сервиса заявка возвращается в очередь.
func handle(ctx context.Context, serv redeemer, confirm confirmer, logger *zap.Logger, msg amqp.Delivery) {
	redeemId, err := serv.RedeemMessage(ctx, string(msg.Body))
	if err != nil && ctx.Err() != nil {
		logger.Warn("redeem interrupted, requeue", zap.String("redeem", redeemId), zap.Error(err))
		if err := msg.Nack(false, true); err != nil {
			logger.Error(err.Error())
		}
		return
	}
	// списание уже зафиксировано, подтверждение уходит и во время остановки
	confirmCtx := context.WithoutCancel(ctx)
	if err != nil {
		logger.Error(err.Error())
		if redeemId != "" {
			if err := confirm.Processed(confirmCtx, redeemId, false); err != nil {
				logger.Error(err.Error())
			}
		}
		_ = msg.Ack(false)
		return
	}
	if err := confirm.Processed(confirmCtx, redeemId, true); err != nil {
		logger.Error(err.Error())
	}
	_ = msg.Ack(false)
}
