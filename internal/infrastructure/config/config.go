package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Store       StoreConfig       `mapstructure:"store"`
	AWS         AWSConfig         `mapstructure:"aws"`
	DynamoDB    DynamoDBConfig    `mapstructure:"dynamodb"`
	Tables      TablesConfig      `mapstructure:"tables"`
	Payment     PaymentConfig     `mapstructure:"payment"`
	MercadoPago MercadoPagoConfig `mapstructure:"mercadopago"`
	Redis       RedisConfig       `mapstructure:"redis"`
	JWT         JWTConfig         `mapstructure:"jwt"`
	Realtime    RealtimeConfig    `mapstructure:"realtime"`
	Message     MessageConfig     `mapstructure:"message"`
	Log         LogConfig         `mapstructure:"log"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
	// NodeID seeds the snowflake message id generator; unique per instance.
	NodeID int64 `mapstructure:"node_id"`
}

type StoreConfig struct {
	Driver string `mapstructure:"driver"` // dynamodb | memory
}

type AWSConfig struct {
	Region string `mapstructure:"region"`
}

type DynamoDBConfig struct {
	Endpoint string `mapstructure:"endpoint"`
}

type TablesConfig struct {
	Challenges   string `mapstructure:"challenges"`
	Proposals    string `mapstructure:"proposals"`
	Rooms        string `mapstructure:"rooms"`
	Messages     string `mapstructure:"messages"`
	PaymentOrder string `mapstructure:"payment_orders"`
}

type PaymentConfig struct {
	Currency            string        `mapstructure:"currency"`
	SelectionTimeout    time.Duration `mapstructure:"selection_timeout"`
	SweepInterval       time.Duration `mapstructure:"sweep_interval"`
	SweepWorkers        int           `mapstructure:"sweep_workers"`
	WebhookSecret       string        `mapstructure:"webhook_secret"`
	NotificationBaseURL string        `mapstructure:"notification_base_url"`
	GatewayMock         bool          `mapstructure:"gateway_mock"`
}

type MercadoPagoConfig struct {
	AccessToken string `mapstructure:"access_token"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Enabled reports whether a redis address was configured.
func (r RedisConfig) Enabled() bool { return strings.TrimSpace(r.Addr) != "" }

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
}

type RealtimeConfig struct {
	TypingTTL  time.Duration `mapstructure:"typing_ttl"`
	PongWait   time.Duration `mapstructure:"pong_wait"`
	SendBuffer int           `mapstructure:"send_buffer"`
}

type MessageConfig struct {
	RateLimit  int           `mapstructure:"rate_limit"`
	RateWindow time.Duration `mapstructure:"rate_window"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Output string `mapstructure:"output"`
	File   string `mapstructure:"file"`
}

// Load reads config.yaml (optional) and the environment. Keys map to env
// vars by upper-casing and replacing dots, e.g. payment.webhook_secret is
// PAYMENT_WEBHOOK_SECRET.
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Names kept from earlier deployments.
	_ = v.BindEnv("server.mode", "SERVER_MODE", "GIN_MODE")
	_ = v.BindEnv("payment.gateway_mock", "PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK")
	_ = v.BindEnv("tables.challenges", "TABLES_CHALLENGES", "CHALLENGES_TABLE")
	_ = v.BindEnv("tables.proposals", "TABLES_PROPOSALS", "PROPOSALS_TABLE")
	_ = v.BindEnv("tables.rooms", "TABLES_ROOMS", "PROJECT_ROOMS_TABLE")
	_ = v.BindEnv("tables.messages", "TABLES_MESSAGES", "ROOM_MESSAGES_TABLE")
	_ = v.BindEnv("tables.payment_orders", "TABLES_PAYMENT_ORDERS", "PAYMENT_ORDERS_TABLE")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.node_id", 1)
	v.SetDefault("store.driver", "dynamodb")
	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("dynamodb.endpoint", "")
	v.SetDefault("tables.challenges", "challenges")
	v.SetDefault("tables.proposals", "proposals")
	v.SetDefault("tables.rooms", "project_rooms")
	v.SetDefault("tables.messages", "room_messages")
	v.SetDefault("tables.payment_orders", "payment_orders")
	v.SetDefault("payment.currency", "BRL")
	v.SetDefault("payment.selection_timeout", "15m")
	v.SetDefault("payment.sweep_interval", "1m")
	v.SetDefault("payment.sweep_workers", 8)
	v.SetDefault("payment.webhook_secret", "")
	v.SetDefault("payment.notification_base_url", "")
	v.SetDefault("payment.gateway_mock", false)
	v.SetDefault("mercadopago.access_token", "")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("realtime.typing_ttl", "5s")
	v.SetDefault("realtime.pong_wait", "60s")
	v.SetDefault("realtime.send_buffer", 64)
	v.SetDefault("message.rate_limit", 5)
	v.SetDefault("message.rate_window", "2s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("log.file", "logs/app.log")
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case "dynamodb", "memory":
	default:
		return fmt.Errorf("store.driver must be dynamodb or memory, got %q", c.Store.Driver)
	}
	if strings.TrimSpace(c.JWT.Secret) == "" {
		return errors.New("jwt.secret is required")
	}
	if c.Payment.SelectionTimeout <= 0 {
		return errors.New("payment.selection_timeout must be positive")
	}
	if c.Payment.SweepInterval <= 0 {
		return errors.New("payment.sweep_interval must be positive")
	}
	if !c.Payment.GatewayMock {
		if strings.TrimSpace(c.MercadoPago.AccessToken) == "" {
			return errors.New("mercadopago.access_token is required unless payment.gateway_mock is set")
		}
		if strings.TrimSpace(c.Payment.WebhookSecret) == "" {
			return errors.New("payment.webhook_secret is required unless payment.gateway_mock is set")
		}
	}
	if c.Realtime.PongWait < time.Second {
		return errors.New("realtime.pong_wait must be at least 1s")
	}
	return nil
}

// PingPeriod is how often the server pings a websocket; it stays below the
// pong deadline so one lost ping does not drop the connection.
func (r RealtimeConfig) PingPeriod() time.Duration {
	return r.PongWait * 9 / 10
}
