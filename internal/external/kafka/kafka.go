package kudos

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/glkeru/employeehub/internal/config"
	model "github.com/glkeru/employeehub/internal/models"
	"github.com/segmentio/kafka-go"
)

// Публикация событий о переводах, реализует Notifier
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(cfg config.NotifyConfig) (*KafkaPublisher, error) {
	if cfg.KafkaURL == "" {
		return nil, fmt.Errorf("env KAFKA_URL is not set")
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.KafkaBroker()),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
	}
	return &KafkaPublisher{writer}, nil
}

func (k *KafkaPublisher) Notify(ctx context.Context, n model.KudosNotification) error {
	value, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(n.EventID.String()),
		Value: value,
		Time:  n.CreatedAt,
	})
}

func (k *KafkaPublisher) Close() error {
	return k.writer.Close()
}

// Чтение событий для пересылки
type KafkaReader struct {
	reader *kafka.Reader
}

func NewKafkaReader(cfg config.NotifyConfig) (*KafkaReader, error) {
	if cfg.KafkaURL == "" {
		return nil, fmt.Errorf("env KAFKA_URL is not set")
	}
	kafkaconfig := kafka.ReaderConfig{
		Brokers: []string{cfg.KafkaBroker()},
		Topic:   cfg.KafkaTopic,
		GroupID: cfg.KafkaGroup,
	}
	return &KafkaReader{kafka.NewReader(kafkaconfig)}, nil
}

func (k *KafkaReader) GetNewMessage(ctx context.Context) (eventJson []byte, err error) {
	msg, err := k.reader.ReadMessage(ctx)
	if err != nil {
		return nil, err
	}
	return msg.Value, nil
}

func (k *KafkaReader) Close() error {
	return k.reader.Close()
}
