package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "todoapp"

type Config struct {
	Port               string
	MongoURI           string
	Database           string
	ConnectAttempts    int
	ConnectRetryDelay  time.Duration
	ConnectPingTimeout time.Duration
	ShutdownTimeout    time.Duration
	LogLevel           string
}

// Defaults совпадают с захардкоженными значениями исходного сервиса
func Defaults() Config {
	return Config{
		Port:               "8080",
		MongoURI:           "mongodb://mongodb:27017",
		Database:           "todoapp",
		ConnectAttempts:    10,
		ConnectRetryDelay:  2 * time.Second,
		ConnectPingTimeout: 5 * time.Second,
		ShutdownTimeout:    10 * time.Second,
		LogLevel:           "info",
	}
}

// RegisterFlags adds the configuration flags with their default values.
func RegisterFlags(flags *pflag.FlagSet) {
	d := Defaults()
	flags.String("port", d.Port, "port the HTTP server listens on")
	flags.String("mongodb-uri", d.MongoURI, "MongoDB connection string")
	flags.String("database", d.Database, "name of the MongoDB database")
	flags.Int("connect-attempts", d.ConnectAttempts, "how many times to try connecting to MongoDB on startup")
	flags.Duration("connect-retry-delay", d.ConnectRetryDelay, "delay between connection attempts")
	flags.Duration("connect-ping-timeout", d.ConnectPingTimeout, "timeout of the ping issued on every connection attempt")
	flags.Duration("shutdown-timeout", d.ShutdownTimeout, "how long to wait for in-flight requests on shutdown")
	flags.String("log-level", d.LogLevel, "log level (debug, info, warn, error)")
}

// Load reads .env files, TODOAPP_* environment variables and flags
// (may be nil). Flags win over env, env wins over defaults.
func Load(flags *pflag.FlagSet) (Config, error) {
	// отсутствие файла не ошибка, битый файл - ошибка
	for _, f := range []string{".env", ".env.local"} {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	d := Defaults()
	v.SetDefault("port", d.Port)
	v.SetDefault("mongodb-uri", d.MongoURI)
	v.SetDefault("database", d.Database)
	v.SetDefault("connect-attempts", d.ConnectAttempts)
	v.SetDefault("connect-retry-delay", d.ConnectRetryDelay)
	v.SetDefault("connect-ping-timeout", d.ConnectPingTimeout)
	v.SetDefault("shutdown-timeout", d.ShutdownTimeout)
	v.SetDefault("log-level", d.LogLevel)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, err
		}
	}

	return Config{
		Port:               v.GetString("port"),
		MongoURI:           v.GetString("mongodb-uri"),
		Database:           v.GetString("database"),
		ConnectAttempts:    v.GetInt("connect-attempts"),
		ConnectRetryDelay:  v.GetDuration("connect-retry-delay"),
		ConnectPingTimeout: v.GetDuration("connect-ping-timeout"),
		ShutdownTimeout:    v.GetDuration("shutdown-timeout"),
		LogLevel:           v.GetString("log-level"),
	}, nil
}
