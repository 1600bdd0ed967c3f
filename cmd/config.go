package cmd

import (
	"fmt"
	"time"
)

// Config is read from the environment (and an optional .env file).
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`

	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"orderbot"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`
	DBDriver   string `env:"DB_DRIVER" envDefault:"postgres"`

	CommerceBaseURL       string `env:"COMMERCE_BASE_URL" envDefault:"https://api.moltin.com"`
	CommerceTokenURL      string `env:"COMMERCE_TOKEN_URL" envDefault:"https://api.moltin.com/oauth/access_token"`
	CommerceClientID      string `env:"COMMERCE_CLIENT_ID,required"`
	CommerceClientSecret  string `env:"COMMERCE_CLIENT_SECRET,required"`
	CommerceCurrency      string `env:"COMMERCE_CURRENCY" envDefault:"RUB"`
	CommercePointsFlow    string `env:"COMMERCE_POINTS_FLOW" envDefault:"pizzeria"`
	CommerceCustomersFlow string `env:"COMMERCE_CUSTOMERS_FLOW" envDefault:"customer-address"`

	GeocoderURL    string `env:"GEOCODER_URL" envDefault:"https://geocode-maps.yandex.ru/1.x/"`
	GeocoderAPIKey string `env:"GEOCODER_API_KEY,required"`

	MessengerAPIURL    string  `env:"MESSENGER_API_URL" envDefault:"https://api.telegram.org"`
	MessengerToken     string  `env:"MESSENGER_TOKEN,required"`
	MessengerRateLimit float64 `env:"MESSENGER_RATE_LIMIT" envDefault:"25"`
	MessengerBurst     int     `env:"MESSENGER_BURST" envDefault:"5"`

	PaymentPayload       string `env:"PAYMENT_PAYLOAD" envDefault:"Custom-Payload"`
	PaymentProviderToken string `env:"PAYMENT_PROVIDER_TOKEN"`
	PaymentCurrency      string `env:"PAYMENT_CURRENCY" envDefault:"RUB"`

	CollaboratorTimeout time.Duration `env:"COLLABORATOR_TIMEOUT" envDefault:"15s"`
	ReminderDelay       time.Duration `env:"REMINDER_DELAY" envDefault:"1h"`
	ReminderSchedule    string        `env:"REMINDER_SCHEDULE" envDefault:"*/30 * * * * *"`
	ReminderBatch       int           `env:"REMINDER_BATCH" envDefault:"50"`
}

// DSN is the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
