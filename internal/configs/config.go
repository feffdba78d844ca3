package configs

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Kafka    KafkaConfig    `mapstructure:"kafka"`
	RabbitMQ RabbitMQConfig `mapstructure:"rabbitmq"`
	SMTP     SMTPConfig     `mapstructure:"smtp"`
	Booking  BookingConfig  `mapstructure:"booking"`
}

type ServerConfig struct {
	Port             string        `mapstructure:"port"`
	MaxHeaderBytes   int           `mapstructure:"max_header_bytes"`
	ReadTimeout      time.Duration `mapstructure:"read_timeout"`
	WriteTimeout     time.Duration `mapstructure:"write_timeout"`
	RequestTimeout   time.Duration `mapstructure:"request_timeout"`
	GracefulShutdown time.Duration `mapstructure:"graceful_shutdown"`
	RateLimit        float64       `mapstructure:"rate_limit"`
	RateBurst        int           `mapstructure:"rate_burst"`
}

type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type KafkaConfig struct {
	BootstrapServers string      `mapstructure:"bootstrap_servers"`
	RetryBackoffMs   int         `mapstructure:"retry_backoff_ms"`
	BatchSize        int         `mapstructure:"batch_size"`
	Acks             string      `mapstructure:"acks"`
	GroupId          string      `mapstructure:"group_id"`
	Topics           KafkaTopics `mapstructure:"topics"`
}

type KafkaTopics struct {
	InfoLog  string `mapstructure:"info_log"`
	ErrorLog string `mapstructure:"error_log"`
	WarnLog  string `mapstructure:"warn_log"`
}

type RabbitMQConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	Name        string `mapstructure:"name"`
	Password    string `mapstructure:"password"`
	Queue       string `mapstructure:"queue"`
	Exchange    string `mapstructure:"exchange"`
	ConsumerTag string `mapstructure:"consumer_tag"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

type BookingConfig struct {
	LockTTL             time.Duration `mapstructure:"lock_ttl"`
	LockRetries         int           `mapstructure:"lock_retries"`
	LockRetryDelay      time.Duration `mapstructure:"lock_retry_delay"`
	MembershipCacheTTL  time.Duration `mapstructure:"membership_cache_ttl"`
	NotificationWorkers int           `mapstructure:"notification_workers"`
	NotificationQueue   int           `mapstructure:"notification_queue"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.max_header_bytes", 1<<20)
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.request_timeout", 5*time.Second)
	v.SetDefault("server.graceful_shutdown", 5*time.Second)
	v.SetDefault("server.rate_limit", 5.0)
	v.SetDefault("server.rate_burst", 10)
	v.SetDefault("database.driver", "pgx")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "classroom")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 25)
	v.SetDefault("database.conn_max_lifetime", 5*time.Minute)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("kafka.bootstrap_servers", "localhost:9092")
	v.SetDefault("kafka.retry_backoff_ms", 100)
	v.SetDefault("kafka.batch_size", 100)
	v.SetDefault("kafka.acks", "all")
	v.SetDefault("kafka.group_id", "classroom-log-tail")
	v.SetDefault("rabbitmq.host", "localhost")
	v.SetDefault("rabbitmq.port", 5672)
	v.SetDefault("rabbitmq.name", "guest")
	v.SetDefault("rabbitmq.password", "guest")
	v.SetDefault("rabbitmq.exchange", "classroom.events")
	v.SetDefault("rabbitmq.queue", "classroom.emails")
	v.SetDefault("rabbitmq.consumer_tag", "classroom-mailer")
	v.SetDefault("smtp.host", "localhost")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.username", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.from", "classroom@localhost")
	v.SetDefault("booking.lock_ttl", 10*time.Second)
	v.SetDefault("booking.lock_retries", 3)
	v.SetDefault("booking.lock_retry_delay", 100*time.Millisecond)
	v.SetDefault("booking.membership_cache_ttl", 10*time.Minute)
	v.SetDefault("booking.notification_workers", 3)
	v.SetDefault("booking.notification_queue", 1000)
}

// LoadConfig reads config.yml from configDir, then applies CLASSROOM_* environment
// overrides. A missing file is not an error.
func LoadConfig(configDir string, logger *zap.Logger) (Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file loaded", zap.Error(err))
	}
	v := viper.New()
	setDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(configDir)
	v.SetEnvPrefix("CLASSROOM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
		logger.Warn("Config file not found; using defaults or environment variables", zap.String("dir", configDir))
	}
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, err
	}
	if os.Getenv("DOCKER") == "TRUE" {
		LoadDockerConfig(&config)
		logger.Info("Successful Load Config (docker)")
		return config, nil
	}
	logger.Info("Successful Load Config (localhost)")
	return config, nil
}

func LoadDockerConfig(config *Config) {
	if db := os.Getenv("DB_HOST"); db != "" {
		config.Database.Host = db
	}
	if redis := os.Getenv("REDIS_HOST"); redis != "" {
		config.Redis.Host = redis
	}
	if kafka := os.Getenv("KAFKA_BOOTSTRAP_SERVERS"); kafka != "" {
		config.Kafka.BootstrapServers = kafka
	}
	if rabbit := os.Getenv("RABBITMQ_HOST"); rabbit != "" {
		config.RabbitMQ.Host = rabbit
	}
}
