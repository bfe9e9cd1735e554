package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	HttpAddr           string        `yaml:"http_addr"`
	JwtTTL             time.Duration `yaml:"jwt_ttl"`
	LogLevel           string        `yaml:"log_level"`
	LogJSON            bool          `yaml:"log_json"`
	Https              bool          `yaml:"https"`
	CorsAllowedOrigins []string      `yaml:"cors_allowed_origins"`
	MaxBodyBytes       int64         `yaml:"max_body_bytes"`
	RateLimit          RateLimit     `yaml:"rate_limit"`
	Pool               Pool          `yaml:"pg"`
}

// RateLimit applies per authenticated user to mutating endpoints.
// Zero Rps disables limiting.
type RateLimit struct {
	Rps   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

type Pool struct {
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

type Private struct {
	JwtKey string `yaml:"jwt_key"`
	Pg     Pg     `yaml:"pg"`
}

func (s *Config) JwtKey() string {
	return s.Private.JwtKey
}

func (s *Config) JwtTTL() time.Duration {
	return s.Public.JwtTTL
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file: " + err.Error())
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{Public: public, Private: private}
	cfg.applyEnv()
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		panic(err.Error())
	}
	return cfg
}

func (s *Config) applyEnv() {
	if addr := os.Getenv("FORUM_HTTP_ADDR"); addr != "" {
		s.Public.HttpAddr = addr
	}
	if key := os.Getenv("FORUM_JWT_KEY"); key != "" {
		s.Private.JwtKey = key
	}
}

func (s *Config) applyDefaults() {
	if s.Public.HttpAddr == "" {
		s.Public.HttpAddr = ":8080"
	}
	if s.Public.LogLevel == "" {
		s.Public.LogLevel = "info"
	}
	if s.Public.MaxBodyBytes == 0 {
		s.Public.MaxBodyBytes = 1 << 20
	}
	if s.Private.Pg.SSLMode == "" {
		s.Private.Pg.SSLMode = "disable"
	}
}

func (s *Config) validate() error {
	switch {
	case s.Private.JwtKey == "":
		return fmt.Errorf("config: jwt_key is required")
	case s.Public.JwtTTL <= 0:
		return fmt.Errorf("config: jwt_ttl must be positive")
	case s.Private.Pg.Host == "" || s.Private.Pg.Port == 0 || s.Private.Pg.Dbname == "":
		return fmt.Errorf("config: pg host, port and dbname are required")
	case s.Public.RateLimit.Rps < 0 || s.Public.RateLimit.Burst < 0:
		return fmt.Errorf("config: rate_limit values must not be negative")
	}
	return nil
}
