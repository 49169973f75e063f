package kudos

import (
	"context"
	"encoding/json"

	"github.com/glkeru/employeehub/internal/config"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	RedeemQueue  = "redeems"
	ConfirmQueue = "confirms"
)

// Заявки на награды из RabbitMQ и подтверждения обратно
type RedeemQueueClient struct {
	conn    *amqp.Connection
	in      *amqp.Channel
	out     *amqp.Channel
	Msg     <-chan amqp.Delivery
	closers []func() error
}

func NewRedeemQueueClient(cfg config.RabbitConfig) (client *RedeemQueueClient, err error) {
	client = &RedeemQueueClient{}
	defer func() {
		if err != nil {
			client.Close()
			client = nil
		}
	}()

	client.conn, err = amqp.Dial(cfg.URL())
	if err != nil {
		return client, err
	}
	client.closers = append(client.closers, client.conn.Close)

	client.in, err = client.channel(RedeemQueue)
	if err != nil {
		return client, err
	}
	// не больше неподтвержденных сообщений, чем воркеров
	if err = client.in.Qos(cfg.Workers, 0, false); err != nil {
		return client, err
	}
	client.out, err = client.channel(ConfirmQueue)
	if err != nil {
		return client, err
	}

	client.Msg, err = client.in.Consume(RedeemQueue, "", false, false, false, false, nil)
	return client, err
}

// канал с объявленной durable очередью
func (c *RedeemQueueClient) channel(queue string) (*amqp.Channel, error) {
	ch, err := c.conn.Channel()
	if err != nil {
		return nil, err
	}
	c.closers = append(c.closers, ch.Close)
	_, err = ch.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}
	return ch, nil
}

func (c *RedeemQueueClient) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		_ = c.closers[i]()
	}
	c.closers = nil
}

type RedeemConfirm struct {
	RedeemId string
	Success  bool
}

// подтверждение обработки заявки
func (c *RedeemQueueClient) Processed(ctx context.Context, redeemId string, success bool) error {
	body, err := json.Marshal(RedeemConfirm{redeemId, success})
	if err != nil {
		return err
	}
	return c.out.PublishWithContext(ctx, "", ConfirmQueue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
}
