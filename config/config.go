package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

var loadOnce sync.Once

// Config returns the value of an environment variable, loading .env on first use.
func Config(key string) string {
	loadOnce.Do(func() {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("No .env file found, using process environment")
		}
	})
	return os.Getenv(key)
}

type App struct {
	Port        string
	CorsOrigins string

	DBHost     string
	DBPort     int
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret string

	RedisAddr     string
	RedisPassword string
	RabbitURL     string

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	EnableJobs bool
}

func Load() App {
	return App{
		Port:        getenv("APP_PORT", "8002"),
		CorsOrigins: getenv("CORS_ORIGINS", "*"),

		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getint("DB_PORT", 5432),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD", "postgres"),
		DBName:     getenv("DB_NAME", "carbon_zero"),

		JWTSecret: Config("JWT_SECRET"),

		RedisAddr:     Config("REDIS_ADDR"),
		RedisPassword: Config("REDIS_PASSWORD"),
		RabbitURL:     Config("RABBITMQ_URL"),

		SMTPHost:     Config("SMTP_HOST"),
		SMTPPort:     getint("SMTP_PORT", 587),
		SMTPUsername: Config("SMTP_USERNAME"),
		SMTPPassword: Config("SMTP_PASSWORD"),
		SMTPFrom:     Config("SMTP_FROM"),

		CloudinaryCloudName: Config("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    Config("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: Config("CLOUDINARY_API_SECRET"),

		EnableJobs: getbool("ENABLE_JOBS", true),
	}
}

var ErrMissingJWTSecret = errors.New("JWT_SECRET is not set")

// Validate reports settings the server cannot start without.
func (a App) Validate() error {
	if a.JWTSecret == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

// DSN builds the postgres connection string for gorm.
func (a App) DSN() string {
	return "host=" + a.DBHost +
		" port=" + strconv.Itoa(a.DBPort) +
		" user=" + a.DBUser +
		" password=" + a.DBPassword +
		" dbname=" + a.DBName +
		" sslmode=disable"
}

func getenv(k, def string) string {
	if v := Config(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	v := Config(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid integer for %s=%q, using %d", k, v, def)
		return def
	}
	return n
}

func getbool(k string, def bool) bool {
	v := strings.ToLower(Config(k))
	switch v {
	case "":
		return def
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
