package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the storefront service
type Config struct {
	Port     int
	Database DatabaseConfig
	RabbitMQ RabbitMQConfig
	Notify   NotifyConfig
	Orders   OrdersConfig
}

// DatabaseConfig holds database connection configuration.
// URL takes precedence over the discrete fields when set.
type DatabaseConfig struct {
	URL      string
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

// RabbitMQConfig holds the optional RabbitMQ connection configuration.
// An empty Host disables kitchen event publishing.
type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

// NotifyConfig holds the push notification endpoint configuration.
type NotifyConfig struct {
	Server string
	Topic  string
}

// OrdersConfig holds order intake policy values.
type OrdersConfig struct {
	// PickupWindowDays is the number of days ahead (starting tomorrow)
	// a pickup date may fall in. Zero disables the window check.
	PickupWindowDays int
}

// Load reads configuration from the environment. A .env file in the
// working directory is merged in first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnvInt("PORT", 3000),
		Database: DatabaseConfig{
			URL:      os.Getenv("DATABASE_URL"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Database: getEnv("DB_NAME", "storefront"),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     os.Getenv("RABBITMQ_HOST"),
			Port:     getEnvInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
		Notify: NotifyConfig{
			Server: getEnv("NTFY_SERVER", "https://ntfy.sh"),
			Topic:  getEnv("NTFY_TOPIC", "food-prep-orders"),
		},
		Orders: OrdersConfig{
			PickupWindowDays: getEnvInt("PICKUP_WINDOW_DAYS", 3),
		},
	}

	if cfg.Orders.PickupWindowDays < 0 {
		return nil, fmt.Errorf("PICKUP_WINDOW_DAYS must not be negative")
	}

	return cfg, nil
}

// DatabaseURL returns the PostgreSQL connection URL. Managed cloud hosts
// (Supabase, Neon) require TLS, so sslmode is forced on for them unless
// the URL already carries one.
func (c *Config) DatabaseURL() string {
	if c.Database.URL != "" {
		return withSSLMode(c.Database.URL)
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.Database.User, url.QueryEscape(c.Database.Password),
		c.Database.Host, c.Database.Port, c.Database.Database)
}

// RabbitMQURL returns an AMQP connection URL.
func (c *Config) RabbitMQURL() string {
	return fmt.Sprintf("amqp://%s:%s@%s:%d/",
		c.RabbitMQ.User, c.RabbitMQ.Password, c.RabbitMQ.Host, c.RabbitMQ.Port)
}

// MessagingEnabled reports whether kitchen event publishing is configured.
func (c *Config) MessagingEnabled() bool {
	return c.RabbitMQ.Host != ""
}

func withSSLMode(connURL string) string {
	if strings.Contains(connURL, "sslmode=") {
		return connURL
	}
	if !strings.Contains(connURL, "supabase") && !strings.Contains(connURL, "neon") {
		return connURL
	}
	sep := "?"
	if strings.Contains(connURL, "?") {
		sep = "&"
	}
	return connURL + sep + "sslmode=require"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
