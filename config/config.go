package config

import (
	"log"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	App    AppConfig
	DB     DBConfig
	Redis  RedisConfig
	Kafka  KafkaConfig
	Server ServerConfig
}

type AppConfig struct {
	Env   string
	Debug bool
}

type DBConfig struct {
	Driver string // sqlite | postgres

	DBPath string // Путь к файлу SQLite

	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
}

type RedisConfig struct {
	Host     string // Пустой host отключает счетчики в Redis
	Port     string
	Password string
}

type KafkaConfig struct {
	Brokers          []string // Пустой список отключает публикацию событий
	TransactionTopic string
}

type ServerConfig struct {
	HTTPPort int
	GRPCPort int
}

func Load() *Config {
	// Загружаем .env файл, если он существует
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		App: AppConfig{
			Env:   getEnv("ENV", "dev"),
			Debug: getEnvAsBool("DEBUG", true),
		},
		DB: DBConfig{
			Driver:   getEnv("DB_DRIVER", DriverSQLite),
			DBPath:   getEnv("DB_PATH", "./data/transactions.db"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "transactions"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Kafka: KafkaConfig{
			Brokers:          getEnvAsList("KAFKA_BROKERS"),
			TransactionTopic: getEnv("KAFKA_TRANSACTION_TOPIC", "transactions.changed"),
		},
		Server: ServerConfig{
			HTTPPort: getEnvAsInt("HTTP_PORT", 8080),
			GRPCPort: getEnvAsInt("GRPC_PORT", 50051),
		},
	}
}

// PostgresDSN собирает URL подключения к PostgreSQL из параметров DBConfig.
// Значения экранируются, поэтому пустой пароль или пароль с пробелами не ломают строку.
func (c DBConfig) PostgresDSN() string {
	query := url.Values{}
	query.Set("sslmode", c.SSLMode)

	dsn := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     "/" + c.Name,
		RawQuery: query.Encode(),
	}
	return dsn.String()
}

func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsList(key string) []string {
	var values []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	return values
}
