package kudos

import (
	"context"
	"fmt"
	"time"

	"github.com/glkeru/employeehub/internal/config"
	model "github.com/glkeru/employeehub/internal/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Результат доставки уведомления
type Delivery struct {
	EventID      uuid.UUID `bson:"eventId"`
	SenderName   string    `bson:"senderName"`
	ReceiverName string    `bson:"receiverName"`
	Amount       int64     `bson:"amount"`
	Message      string    `bson:"message,omitempty"`
	SentAt       time.Time `bson:"sentAt"`
	Delivered    bool      `bson:"delivered"`
	Error        string    `bson:"error,omitempty"`
	Attempts     int       `bson:"attempts"`
	CreatedAt    time.Time `bson:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}

func (d Delivery) Notification() model.KudosNotification {
	return model.KudosNotification{
		EventID:      d.EventID,
		SenderName:   d.SenderName,
		ReceiverName: d.ReceiverName,
		Amount:       d.Amount,
		Message:      d.Message,
		CreatedAt:    d.SentAt,
	}
}

type DeliveryDB struct {
	mgo  *mongo.Client
	coll *mongo.Collection
}

func NewDeliveryDB(cfg config.MongoConfig) (*DeliveryDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if cfg.URI == "" {
		return nil, fmt.Errorf("env KUDOS_MONGO is not set")
	}

	options := options.Client().ApplyURI("mongodb://" + cfg.URI)
	client, err := mongo.Connect(ctx, options)
	if err != nil {
		return nil, err
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, err
	}
	coll := client.Database(cfg.Database).Collection("deliveries")

	return &DeliveryDB{client, coll}, nil
}

func (d *DeliveryDB) Close(ctx context.Context) error {
	return d.mgo.Disconnect(ctx)
}

// Повторная доставка того же события обновляет запись и счетчик попыток
func (d *DeliveryDB) SaveDelivery(ctx context.Context, n model.KudosNotification, deliveryErr error) error {
	now := time.Now()
	set := bson.M{
		"senderName":   n.SenderName,
		"receiverName": n.ReceiverName,
		"amount":       n.Amount,
		"message":      n.Message,
		"sentAt":       n.CreatedAt,
		"delivered":    deliveryErr == nil,
		"updatedAt":    now,
	}
	unset := bson.M{}
	if deliveryErr != nil {
		set["error"] = deliveryErr.Error()
	} else {
		unset["error"] = ""
	}
	update := bson.M{
		"$set":         set,
		"$inc":         bson.M{"attempts": 1},
		"$setOnInsert": bson.M{"createdAt": now},
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	filter := bson.M{"eventId": n.EventID}
	_, err := d.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// Недоставленные уведомления с числом попыток меньше maxAttempts
func (d *DeliveryDB) FailedDeliveries(ctx context.Context, maxAttempts int) ([]model.KudosNotification, error) {
	var notifications []model.KudosNotification
	filter := bson.M{"delivered": false, "attempts": bson.M{"$lt": maxAttempts}}
	result, err := d.coll.Find(ctx, filter, options.Find().SetSort(bson.M{"sentAt": 1}))
	if err != nil {
		return nil, err
	}
	defer result.Close(ctx)

	for result.Next(ctx) {
		var delivery Delivery
		err := result.Decode(&delivery)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, delivery.Notification())
	}
	return notifications, result.Err()
}
