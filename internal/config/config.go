package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// PostgreSQL
type DBConfig struct {
	Host     string `env:"KUDOS_DB,required,notEmpty"`
	Port     string `env:"KUDOS_DB_PORT" envDefault:"5432"`
	User     string `env:"KUDOS_DB_USER,required,notEmpty"`
	Password string `env:"KUDOS_DB_PASSWORD,required,notEmpty"`
	Base     string `env:"KUDOS_DB_BASE,required,notEmpty"`
}

func (c DBConfig) DSN() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + c.Port + "/" + c.Base
}

// Redis
type CacheConfig struct {
	Addr           string        `env:"KUDOS_CACHE_URL"`
	User           string        `env:"KUDOS_CACHE_USER"`
	Password       string        `env:"KUDOS_CACHE_PWD"`
	AccountTTL     time.Duration `env:"KUDOS_CACHE_ACCOUNT_TTL" envDefault:"30s"`
	LeaderboardTTL time.Duration `env:"KUDOS_CACHE_LEADERBOARD_TTL" envDefault:"30s"`
}

type HTTPConfig struct {
	Port string `env:"KUDOS_HTTP_PORT" envDefault:"8080"`
}

type AuthConfig struct {
	Secret string        `env:"KUDOS_JWT_SECRET,required,notEmpty"`
	Issuer string        `env:"KUDOS_JWT_ISSUER" envDefault:"employeehub"`
	TTL    time.Duration `env:"KUDOS_JWT_TTL" envDefault:"24h"`
}

// Уведомления: webhook напрямую или через Kafka
type NotifyConfig struct {
	WebhookURL    string        `env:"TEAMS_WEBHOOK_URL"`
	Timeout       time.Duration `env:"KUDOS_NOTIFY_TIMEOUT" envDefault:"5s"`
	KafkaURL      string        `env:"KAFKA_URL"`
	KafkaPort     string        `env:"KAFKA_PORT" envDefault:"9092"`
	KafkaTopic    string        `env:"KUDOS_KAFKA_TOPIC" envDefault:"kudos"`
	KafkaGroup    string        `env:"KUDOS_KAFKA_GROUP" envDefault:"kudos_notifications"`
	Workers       int           `env:"KUDOS_NOTIFY_WORKERS" envDefault:"5"`
	RetryInterval time.Duration `env:"KUDOS_NOTIFY_RETRY_INTERVAL" envDefault:"1m"` // повтор недоставленных, нужен MongoDB
	MaxAttempts   int           `env:"KUDOS_NOTIFY_MAX_ATTEMPTS" envDefault:"5"`
}

func (c NotifyConfig) KafkaBroker() string {
	return c.KafkaURL + ":" + c.KafkaPort
}

type RabbitConfig struct {
	Host     string `env:"RABBIT_URL,required,notEmpty"`
	Port     string `env:"RABBIT_PORT" envDefault:"5672"`
	User     string `env:"RABBIT_USER,required,notEmpty"`
	Password string `env:"RABBIT_PASSWORD,required,notEmpty"`
	VHost    string `env:"RABBIT_VHOST" envDefault:"kudos"`
	Workers  int    `env:"KUDOS_REDEEM_WORKERS" envDefault:"5"`
}

func (c RabbitConfig) URL() string {
	return "amqp://" + c.User + ":" + c.Password + "@" + c.Host + ":" + c.Port + "/" + c.VHost
}

type MongoConfig struct {
	URI      string `env:"KUDOS_MONGO"`
	Database string `env:"KUDOS_MONGO_BASE" envDefault:"kudosDB"`
}

type KudosConfig struct {
	LeaderboardSize int  `env:"KUDOS_LEADERBOARD_SIZE" envDefault:"10"`
	LogProduction   bool `env:"KUDOS_LOG_PRODUCTION" envDefault:"false"`
}

// Чтение любой из структур выше из окружения
func Load[T any]() (T, error) {
	var cfg T
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
