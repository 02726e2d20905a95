package config

import (
	"os"
	"strconv"
)

// Config holds every runtime setting, loaded once at startup and passed
// explicitly to the pieces that need it.
type Config struct {
	AppEnv string
	Port   string

	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string

	JWTSecret      string
	JWTExpiresHour int

	AdminAPIKey string

	MidtransServerKey    string
	MidtransIsProduction bool

	// Orders with a subtotal at or above FreeShippingMin ship for free,
	// everything below pays ShippingFlatFee.
	FreeShippingMin float64
	ShippingFlatFee float64
}

func Load() Config {
	return Config{
		AppEnv: getEnv("APP_ENV", "development"),
		Port:   getEnv("PORT", "8080"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      getEnv("DB_NAME", "ecommerce"),

		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTExpiresHour: getEnvInt("JWT_EXPIRES_HOURS", 168),

		AdminAPIKey: os.Getenv("ADMIN_API_KEY"),

		MidtransServerKey:    os.Getenv("MIDTRANS_SERVER_KEY"),
		MidtransIsProduction: getEnv("MIDTRANS_IS_PRODUCTION", "false") == "true",

		FreeShippingMin: getEnvFloat("FREE_SHIPPING_MIN", 100000),
		ShippingFlatFee: getEnvFloat("SHIPPING_FLAT_FEE", 15000),
	}
}

// IsDevelopment reports whether full error detail may be returned to clients.
func (c Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getEnvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}
