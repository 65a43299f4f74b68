package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/Cloud-Native-RS/collector-v.0.1-sub001/internal/resilience"
)

// Service имя сервиса, для которого загружается конфигурация.
type Service string

const (
	ServiceOrders Service = "orders"
	ServiceOffers Service = "offers"
)

type RetryConfig struct {
	MaxAttempts int           `env:"MAX_ATTEMPTS" envDefault:"3"`
	BaseDelay   time.Duration `env:"BASE_DELAY"   envDefault:"100ms"`
	MaxDelay    time.Duration `env:"MAX_DELAY"    envDefault:"2s"`
	Timeout     time.Duration `env:"TIMEOUT"      envDefault:"5s"`
}

// Policy политика повторов для исходящих вызовов.
func (r RetryConfig) Policy() resilience.Policy {
	p := resilience.DefaultPolicy()
	p.MaxAttempts = r.MaxAttempts
	p.BaseDelay = r.BaseDelay
	p.MaxDelay = r.MaxDelay
	p.Timeout = r.Timeout
	return p
}

type Config struct {
	Service Service

	RunAddress    string `env:"RUN_ADDRESS"`
	DatabaseDSN   string `env:"DATABASE_URI"`
	MigrationsDir string `env:"MIGRATIONS_DIR"`

	KafkaBrokers     string `env:"KAFKA_BROKERS"`
	KafkaTopicPrefix string `env:"KAFKA_TOPIC_PREFIX"`
	KafkaGroupID     string `env:"KAFKA_GROUP_ID"`
	EventMaxRequeues int    `env:"EVENT_MAX_REQUEUES" envDefault:"5"`
	RedisAddr        string `env:"REDIS_ADDR"`

	OffersServiceURL    string `env:"OFFERS_SERVICE_URL"`
	InventoryServiceURL string `env:"INVENTORY_SERVICE_URL"`
	ShippingServiceURL  string `env:"SHIPPING_SERVICE_URL"`

	StripeAPIKey           string        `env:"STRIPE_API_KEY"`
	StripeAccountID        string        `env:"STRIPE_ACCOUNT_ID"`
	DefaultPaymentProvider string        `env:"DEFAULT_PAYMENT_PROVIDER" envDefault:"manual"`
	AutoConfirmOrders      bool          `env:"AUTO_CONFIRM_ORDERS"      envDefault:"false"`
	ApprovalDedupTTL       time.Duration `env:"APPROVAL_DEDUP_TTL"       envDefault:"72h"`

	ApprovalTokenKey    string        `env:"APPROVAL_TOKEN_KEY"`
	ExpirySweepInterval time.Duration `env:"OFFER_EXPIRY_SWEEP_INTERVAL" envDefault:"1m"`
	ExpirySweepLimit    uint          `env:"OFFER_EXPIRY_SWEEP_LIMIT"    envDefault:"100"`

	Retry RetryConfig `envPrefix:"RETRY_"`
}

// LoadConfig собирает конфигурацию сервиса из .env, переменных окружения и флагов args.
// Переменные окружения имеют приоритет над флагами.
func LoadConfig(service Service, args []string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %s", err.Error())
	}

	var envConfig, flagsConfig Config
	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	if flagsErr := loadFlags(service, args, &flagsConfig); flagsErr != nil {
		return nil, fmt.Errorf("parse flags: %s", flagsErr.Error())
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	conf.Service = service
	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func MustLoadConfig(service Service) *Config {
	config, err := LoadConfig(service, os.Args[1:])
	if err != nil {
		panic(err)
	}
	return config
}

func (c *Config) validate() error {
	var errs []error
	if c.DatabaseDSN == "" {
		errs = append(errs, errors.New("database DSN is not set"))
	}
	switch c.Service {
	case ServiceOrders:
		if c.OffersServiceURL == "" {
			errs = append(errs, errors.New("offers service URL is not set"))
		}
		if c.InventoryServiceURL == "" {
			errs = append(errs, errors.New("inventory service URL is not set"))
		}
		if c.ShippingServiceURL == "" {
			errs = append(errs, errors.New("shipping service URL is not set"))
		}
	case ServiceOffers:
		if c.ApprovalTokenKey == "" {
			errs = append(errs, errors.New("approval token key is not set"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown service %q", c.Service))
	}
	return errors.Join(errs...)
}

func loadFlags(service Service, args []string, flagConfig *Config) error {
	defaultAddress := "localhost:8080"
	if service == ServiceOffers {
		defaultAddress = "localhost:8081"
	}

	flags := flag.NewFlagSet(string(service), flag.ContinueOnError)
	flags.StringVar(&flagConfig.RunAddress, "a", defaultAddress, "Run address in format host:port")
	flags.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flags.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations/"+string(service),
		"Database migrations directory")
	flags.StringVar(&flagConfig.KafkaBrokers, "k", "", "Kafka brokers, comma separated")
	flags.StringVar(&flagConfig.KafkaGroupID, "g", string(service)+"-service", "Kafka consumer group")
	flags.StringVar(&flagConfig.RedisAddr, "r", "", "Redis address in format host:port")

	return flags.Parse(args) //nolint:wrapcheck
}

// mergeConfig берет значения окружения и заполняет пустые строковые поля значениями флагов.
func mergeConfig(envConfig, flagsConfig *Config) *Config {
	conf := *envConfig
	conf.RunAddress = defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress)
	conf.DatabaseDSN = defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN)
	conf.MigrationsDir = defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir)
	conf.KafkaBrokers = defaultIfBlank(envConfig.KafkaBrokers, flagsConfig.KafkaBrokers)
	conf.KafkaGroupID = defaultIfBlank(envConfig.KafkaGroupID, flagsConfig.KafkaGroupID)
	conf.RedisAddr = defaultIfBlank(envConfig.RedisAddr, flagsConfig.RedisAddr)
	return &conf
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
