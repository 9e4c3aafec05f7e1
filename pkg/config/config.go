package config

import (
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
)

const defaultDBPort = 3306

// App holds runtime configuration derived from env vars.
type App struct {
	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string

	AppColor           string
	BackgroundImageURL string
	MyName             string
	StaticDir          string

	APIPort     string
	Environment string
	LogLevel    string
	LogEncoding string
	CORSOrigins []string

	KafkaBrokers string
	KafkaTopic   string
}

// FromEnv loads the application configuration from environment variables.
func FromEnv() App {
	return App{
		DBHost:     getEnv("DBHOST", "localhost"),
		DBPort:     getEnvInt("DBPORT", defaultDBPort),
		DBUser:     getEnv("DBUSER", "root"),
		DBPassword: getEnv("DBPWD", "password"),
		DBName:     getEnv("DATABASE", "employees"),

		AppColor:           getEnv("APP_COLOR", "lime"),
		BackgroundImageURL: os.Getenv("BACKGROUND_IMAGE_URL"),
		MyName:             getEnv("MY_NAME", "Group - 6 CLO-835"),
		StaticDir:          getEnv("STATIC_DIR", "static"),

		APIPort:     getEnv("API_PORT", "81"),
		Environment: getEnv("ENVIRONMENT", "production"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogEncoding: getEnv("LOG_ENCODING", "json"),
		CORSOrigins: getCORSOrigins(),

		KafkaBrokers: os.Getenv("KAFKA_BROKERS"),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "employee-events"),
	}
}

// DSN renders the MySQL data source name for the configured database.
func (a App) DSN() string {
	cfg := mysql.NewConfig()
	cfg.User = a.DBUser
	cfg.Passwd = a.DBPassword
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(a.DBHost, strconv.Itoa(a.DBPort))
	cfg.DBName = a.DBName
	return cfg.FormatDSN()
}

// KafkaBrokerList splits KAFKA_BROKERS into individual addresses.
func (a App) KafkaBrokerList() []string {
	return splitList(a.KafkaBrokers)
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
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func getCORSOrigins() []string {
	raw := os.Getenv("CORS_ORIGINS")
	if raw == "" {
		return []string{"*"}
	}
	return splitList(raw)
}

func splitList(raw string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
