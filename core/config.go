package core

import (
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Env          string
		Build        string
		AppName      string
		Debug        bool
		TestMode     bool
		SecretKey    string
		RollbarToken string
		Server       ServerConfig
		Database     DatabaseConfig
	}

	ServerConfig struct {
		Host                      string
		DebugHost                 string
		ShutdownTimeout           time.Duration
		JWTExpirationDelta        time.Duration
		JWTRefreshExpirationDelta time.Duration
		CORSOrigins               []string
		DisableReqLogs            bool
	}

	DatabaseConfig struct {
		Engine        string // postgres | mongo | memory
		User          string
		Password      string
		AdminUser     string
		AdminPassword string
		Host          string
		Port          string
		Name          string
		DisableTLS    bool
		MongoURI      string
		Timeout       time.Duration
	}
)

// database engines
const (
	EnginePostgres = "postgres"
	EngineMongo    = "mongo"
	EngineMemory   = "memory"
)

func (dc DatabaseConfig) Address() string {
	return net.JoinHostPort(dc.Host, dc.Port)
}

// NewConfig loads the configuration for the current ENV (DEV by default).
// Values come from defaults, then `config/.env.<env>` (if any), then <ENV>_ prefixed environment variables.
func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("testMode", false)
	v.SetDefault("appName", "Department")
	v.SetDefault("build", "develop")
	v.SetDefault("secretKey", "g1r#k9-2x=qz0p&v!f4w7(yb^m3t)n8d_hs$e5c@ja6lu")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("server.host", "0.0.0.0:8000")
	v.SetDefault("server.debugHost", "0.0.0.0:4000")
	v.SetDefault("server.shutdownTimeout", 5*time.Second)
	v.SetDefault("server.jwtExpirationDelta", 24*time.Hour)
	v.SetDefault("server.jwtRefreshExpirationDelta", 7*24*time.Hour)
	v.SetDefault("server.corsOrigins", "*")
	v.SetDefault("server.disableReqLogs", false)
	v.SetDefault("database.engine", EnginePostgres)
	v.SetDefault("database.user", "department")
	v.SetDefault("database.password", "department")
	v.SetDefault("database.adminUser", "postgres")
	v.SetDefault("database.adminPassword", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.name", "department")
	v.SetDefault("database.disableTLS", true)
	v.SetDefault("database.mongoURI", "mongodb://localhost:27017")
	v.SetDefault("database.timeout", 10*time.Second)

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	loadDotEnv(env)
	v.AutomaticEnv()

	return &Config{
		Env:          env,
		Build:        v.GetString("build"),
		AppName:      v.GetString("appName"),
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("testMode"),
		SecretKey:    v.GetString("secretKey"),
		RollbarToken: v.GetString("rollbarToken"),
		Server: ServerConfig{
			Host:                      v.GetString("server.host"),
			DebugHost:                 v.GetString("server.debugHost"),
			ShutdownTimeout:           v.GetDuration("server.shutdownTimeout"),
			JWTExpirationDelta:        v.GetDuration("server.jwtExpirationDelta"),
			JWTRefreshExpirationDelta: v.GetDuration("server.jwtRefreshExpirationDelta"),
			CORSOrigins:               splitList(v.GetString("server.corsOrigins")),
			DisableReqLogs:            v.GetBool("server.disableReqLogs"),
		},
		Database: DatabaseConfig{
			Engine:        strings.ToLower(v.GetString("database.engine")),
			User:          v.GetString("database.user"),
			Password:      v.GetString("database.password"),
			AdminUser:     v.GetString("database.adminUser"),
			AdminPassword: v.GetString("database.adminPassword"),
			Host:          v.GetString("database.host"),
			Port:          v.GetString("database.port"),
			Name:          v.GetString("database.name"),
			DisableTLS:    v.GetBool("database.disableTLS"),
			MongoURI:      v.GetString("database.mongoURI"),
			Timeout:       v.GetDuration("database.timeout"),
		},
	}
}

// load .env if it exists (ignore if it does not)
func loadDotEnv(env string) {
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatal(fmt.Sprintf("config.godotenv(%s): %v", dotEnvPath, err))
		}
	} else if !os.IsNotExist(err) {
		log.Fatal(fmt.Sprintf("config.os.Stat(%s): %v", dotEnvPath, err))
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = CleanString(p); p != "" {
			list = append(list, p)
		}
	}
	return list
}
