package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingEnv возвращается, если обязательная переменная окружения не задана
var ErrMissingEnv = errors.New("required environment variable is not set")

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPHost        string        `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	HTTPPort        string        `env:"HTTP_PORT" envDefault:"5000"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"`
	GinMode         string        `env:"GIN_MODE" envDefault:"release"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	// Twilio Config
	TwilioAccountSID string `env:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken  string `env:"TWILIO_AUTH_TOKEN"`
	TwilioFromNumber string `env:"TWILIO_FROM_NUMBER"`

	// Номера получателей SOS, порядок сохраняется
	Recipients []string `env:"SOS_RECIPIENTS"`
}

// Addr возвращает адрес для HTTP-сервера
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.HTTPHost, c.HTTPPort)
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPHost:         getEnv("HTTP_HOST", "0.0.0.0"),
		HTTPPort:         getEnv("HTTP_PORT", "5000"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "json"),
		GinMode:          getEnv("GIN_MODE", "release"),
		ShutdownTimeout:  getEnvAsDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber: os.Getenv("TWILIO_FROM_NUMBER"),
		Recipients:       splitList(os.Getenv("SOS_RECIPIENTS")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет наличие обязательных параметров
func (c *Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"TWILIO_ACCOUNT_SID", c.TwilioAccountSID},
		{"TWILIO_AUTH_TOKEN", c.TwilioAuthToken},
		{"TWILIO_FROM_NUMBER", c.TwilioFromNumber},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%s: %w", r.name, ErrMissingEnv)
		}
	}

	if len(c.Recipients) == 0 {
		return fmt.Errorf("SOS_RECIPIENTS: %w", ErrMissingEnv)
	}
	return nil
}

// splitList разбирает список через запятую, пустые элементы отбрасываются
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
