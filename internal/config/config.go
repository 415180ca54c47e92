package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN         string `yaml:"url"`
		AutoMigrate bool   `yaml:"auto_migrate"`
	} `yaml:"database"`

	// Сессии выдает внешний identity provider, мы только проверяем подпись
	Auth struct {
		SessionSecret string `yaml:"session_secret"`
		CookieName    string `yaml:"cookie_name"`
	} `yaml:"auth"`

	AI struct {
		APIKey         string `yaml:"api_key"`
		Model          string `yaml:"model"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"ai"`

	// Пустой addr - лимитер в памяти процесса
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	RateLimit struct {
		Requests      int `yaml:"requests"`
		WindowSeconds int `yaml:"window_seconds"`
	} `yaml:"rate_limit"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`

	Seed struct {
		FirstAdminEmail string `yaml:"first_admin_email"`
		DemoLawyers     bool   `yaml:"demo_lawyers"`
	} `yaml:"seed"`
}

var AppConfig *Config

// LoadConfig читает .env, затем либо переменные окружения (если задан DATABASE_URL),
// либо yaml-файл. Ошибки конфигурации фатальны: это проблема запуска, а не запроса.
func LoadConfig() {
	// .env не обязателен
	_ = godotenv.Load()

	var (
		cfg *Config
		err error
	)

	if os.Getenv("DATABASE_URL") == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}
		log.Printf("Loading configuration from %s", configPath)
		cfg, err = LoadFromFile(configPath)
	} else {
		log.Println("Loading configuration from environment variables")
		cfg, err = LoadFromEnv()
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	AppConfig = cfg
}

// LoadFromFile декодирует yaml и проставляет значения по умолчанию
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file at %s: %w", path, err)
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file at %s: %w", path, err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadFromEnv собирает конфиг из переменных окружения (тесты, контейнеры)
func LoadFromEnv() (*Config, error) {
	var cfg Config

	cfg.Server.Host = os.Getenv("SERVER_HOST")
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Database.DSN = os.Getenv("DATABASE_URL")
	cfg.Auth.SessionSecret = os.Getenv("SESSION_SECRET")
	cfg.Auth.CookieName = os.Getenv("SESSION_COOKIE_NAME")
	cfg.AI.APIKey = os.Getenv("GEMINI_API_KEY")
	cfg.AI.Model = os.Getenv("GEMINI_MODEL")
	cfg.Redis.Addr = os.Getenv("REDIS_ADDR")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	cfg.Seed.FirstAdminEmail = os.Getenv("FIRST_ADMIN_EMAIL")

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORS.AllowedOrigins = append(cfg.CORS.AllowedOrigins, o)
			}
		}
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{"SERVER_PORT", &cfg.Server.Port},
		{"AI_TIMEOUT_SECONDS", &cfg.AI.TimeoutSeconds},
		{"REDIS_DB", &cfg.Redis.DB},
		{"RATE_LIMIT_REQUESTS", &cfg.RateLimit.Requests},
		{"RATE_LIMIT_WINDOW_SECONDS", &cfg.RateLimit.WindowSeconds},
	}
	for _, v := range ints {
		raw := os.Getenv(v.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%s must be an integer: %w", v.name, err)
		}
		*v.dst = n
	}

	bools := []struct {
		name string
		dst  *bool
	}{
		{"AUTO_MIGRATE", &cfg.Database.AutoMigrate},
		{"SEED_DEMO_LAWYERS", &cfg.Seed.DemoLawyers},
	}
	for _, v := range bools {
		raw := os.Getenv(v.name)
		if raw == "" {
			continue
		}
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%s must be a boolean: %w", v.name, err)
		}
		*v.dst = b
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 4000
	}
	if c.Server.Env == "" {
		c.Server.Env = "development"
	}
	if c.Auth.CookieName == "" {
		c.Auth.CookieName = "session-token"
	}
	if c.AI.Model == "" {
		c.AI.Model = "gemini-1.5-flash"
	}
	if c.AI.TimeoutSeconds <= 0 {
		c.AI.TimeoutSeconds = 30
	}
	if c.RateLimit.Requests <= 0 {
		c.RateLimit.Requests = 20
	}
	if c.RateLimit.WindowSeconds <= 0 {
		c.RateLimit.WindowSeconds = 60
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{"http://localhost:3000"}
	}
}

// Validate проверяет обязательные значения
func (c *Config) Validate() error {
	var missing []string
	if c.Database.DSN == "" {
		missing = append(missing, "database.url")
	}
	if c.Auth.SessionSecret == "" {
		missing = append(missing, "auth.session_secret")
	}
	if c.AI.APIKey == "" && c.Server.Env != "test" {
		missing = append(missing, "ai.api_key")
	}
	if len(missing) > 0 {
		return errors.New("missing required config values: " + strings.Join(missing, ", "))
	}
	return nil
}

// Address - host:port для gin.Run
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) AITimeout() time.Duration {
	return time.Duration(c.AI.TimeoutSeconds) * time.Second
}

func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimit.WindowSeconds) * time.Second
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
