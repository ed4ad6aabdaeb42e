// config реализует конфигурацию photo-feed (feed-service и propagator):
// загрузка из YAML/ENV с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация.
// Приоритет источников:
//  1. явный путь, переданный в MustLoad/Load;
//  2. переменная окружения CONFIG_PATH;
//  3. файл ./local.yaml из рабочей директории;
//  4. переменные окружения.
type Config struct {
	Env         string            `yaml:"env" env:"ENV" env-default:"local"`
	HTTP        HTTPConfig        `yaml:"http"`
	GRPC        GRPCConfig        `yaml:"grpc"`
	DB          DBConfig          `yaml:"db"`
	S3          S3Config          `yaml:"s3"`
	Images      ImagesConfig      `yaml:"images"`
	Auth        AuthConfig        `yaml:"auth"`
	Limits      LimitsConfig      `yaml:"limits"`
	Propagation PropagationConfig `yaml:"propagation"`
	Timeouts    TimeoutConfig     `yaml:"timeouts"`
}

// HTTPConfig — HTTP API (feed-service) и health/metrics (propagator).
type HTTPConfig struct {
	Host     string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port     string `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	BasePath string `yaml:"base_path" env:"HTTP_BASE_PATH" env-default:"/api"`
}

// GRPCConfig — gRPC health-сервер воркера propagator.
type GRPCConfig struct {
	Host string `yaml:"host" env:"GRPC_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"GRPC_PORT" env-default:"50061"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// Addr возвращает адрес в формате host:port.
func (g GRPCConfig) Addr() string {
	return net.JoinHostPort(g.Host, g.Port)
}

// DBConfig — настройки подключения к MongoDB (нужен replica set:
// транзакции и change streams).
type DBConfig struct {
	URL string `yaml:"url" env:"DATABASE_URL" env-required:"true"`
}

// S3Config — объектное хранилище изображений постов.
// Пустой Endpoint отключает загрузку изображений.
type S3Config struct {
	Endpoint      string        `yaml:"endpoint" env:"S3_ENDPOINT"`
	RootUser      string        `yaml:"root_user" env:"S3_ROOT_USER"`
	RootPassword  string        `yaml:"root_password" env:"S3_ROOT_PASSWORD"`
	Bucket        string        `yaml:"bucket" env:"S3_BUCKET" env-default:"images"`
	PresignTTL    time.Duration `yaml:"presign_ttl" env:"S3_PRESIGN_TTL" env-default:"10m"`
	PublicBaseURL string        `yaml:"public_base_url" env:"S3_PUBLIC_BASE_URL"`
}

// ImagesConfig — ограничения на изображения поста.
type ImagesConfig struct {
	MaxSizeBytes        int64    `yaml:"max_size_bytes" env:"IMAGES_MAX_SIZE_BYTES" env-default:"10485760"`
	AllowedContentTypes []string `yaml:"allowed_content_types" env:"IMAGES_ALLOWED_CONTENT_TYPES" env-separator:"," env-default:"image/jpeg,image/png,image/webp"`
	MaxPerPost          int      `yaml:"max_per_post" env:"IMAGES_MAX_PER_POST" env-default:"4"`
}

// AuthConfig — проверка access-токенов внешнего identity-провайдера (HS256).
type AuthConfig struct {
	JWTSecret string   `yaml:"jwt_secret" env:"JWT_SECRET"`
	Issuer    string   `yaml:"issuer" env:"JWT_ISSUER" env-default:"auth-service"`
	Audience  []string `yaml:"audience" env:"JWT_AUDIENCE" env-separator:"," env-default:"photo-feed"`
}

// LimitsConfig — лимиты постраничной выдачи.
type LimitsConfig struct {
	// page_size=0 -> берём Default; верхняя граница — Max.
	Default int32 `yaml:"default" env:"DEFAULT_LIMIT" env-default:"20"`
	Max     int32 `yaml:"max"     env:"MAX_LIMIT"     env-default:"100"`
}

// PropagationConfig — fan-out снапшотов профиля и доставка событий из change stream.
type PropagationConfig struct {
	// Размер страницы перезаписи постов; каждая страница — отдельная транзакция.
	// 0 — все посты автора одной транзакцией.
	BatchSize int `yaml:"batch_size" env:"PROPAGATION_BATCH_SIZE" env-default:"500"`
	// Переписывать ли снапшот также в комментариях автора.
	IncludeComments bool `yaml:"include_comments" env:"PROPAGATION_INCLUDE_COMMENTS" env-default:"false"`
	// Повторы обработки одного события.
	MaxRetries     uint64        `yaml:"max_retries" env:"PROPAGATION_MAX_RETRIES" env-default:"5"`
	InitialBackoff time.Duration `yaml:"initial_backoff" env:"PROPAGATION_INITIAL_BACKOFF" env-default:"200ms"`
	MaxBackoff     time.Duration `yaml:"max_backoff" env:"PROPAGATION_MAX_BACKOFF" env-default:"10s"`
	// Имя чекпойнта resume token в коллекции trigger_checkpoints.
	CheckpointName string `yaml:"checkpoint_name" env:"PROPAGATION_CHECKPOINT" env-default:"users-propagator"`
}

// TimeoutConfig — сервисные таймауты (общий дедлайн обработки запроса).
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"5s"`
}

// ImagesEnabled сообщает, сконфигурировано ли объектное хранилище.
func (c *Config) ImagesEnabled() bool {
	return c.S3.Endpoint != ""
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
// После чтения файла накладываем ENV-переменные поверх значений из YAML.
func Load(path string) (*Config, error) {
	var cfg Config

	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}

		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		c, err := tryRead(path)
		if err != nil {
			return nil, err
		}

		if err := c.validate(); err != nil {
			return nil, err
		}

		return c, nil
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		c, err := tryRead(envPath)
		if err != nil {
			return nil, err
		}

		if err := c.validate(); err != nil {
			return nil, err
		}

		return c, nil
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		c, err := tryRead("local.yaml")
		if err != nil {
			return nil, err
		}

		if err := c.validate(); err != nil {
			return nil, err
		}

		return c, nil
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	if c.DB.URL == "" {
		return fmt.Errorf("db.url is required")
	}

	if p, err := strconv.Atoi(c.HTTP.Port); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("http.port must be a valid TCP port (1..65535)")
	}

	if p, err := strconv.Atoi(c.GRPC.Port); err != nil || p <= 0 || p > 65535 {
		return fmt.Errorf("grpc.port must be a valid TCP port (1..65535)")
	}

	if c.Limits.Default <= 0 {
		return fmt.Errorf("limits.default must be > 0")
	}

	if c.Limits.Max <= 0 {
		return fmt.Errorf("limits.max must be > 0")
	}

	if c.Limits.Default > c.Limits.Max {
		return fmt.Errorf("limits.default must be <= limits.max")
	}

	if c.Propagation.BatchSize < 0 {
		return fmt.Errorf("propagation.batch_size must be >= 0")
	}

	if c.Propagation.InitialBackoff <= 0 {
		return fmt.Errorf("propagation.initial_backoff must be > 0")
	}

	if c.Propagation.MaxBackoff < c.Propagation.InitialBackoff {
		return fmt.Errorf("propagation.max_backoff must be >= propagation.initial_backoff")
	}

	if c.Propagation.CheckpointName == "" {
		return fmt.Errorf("propagation.checkpoint_name is required")
	}

	if c.S3.Endpoint != "" {
		if c.S3.RootUser == "" || c.S3.RootPassword == "" {
			return fmt.Errorf("s3.root_user and s3.root_password are required when s3.endpoint is set")
		}

		if c.S3.Bucket == "" {
			return fmt.Errorf("s3.bucket is required")
		}

		if c.S3.PresignTTL <= 0 {
			return fmt.Errorf("s3.presign_ttl must be > 0")
		}
	}

	if c.Images.MaxSizeBytes <= 0 {
		return fmt.Errorf("images.max_size_bytes must be > 0")
	}

	if len(c.Images.AllowedContentTypes) == 0 {
		return fmt.Errorf("images.allowed_content_types must not be empty")
	}

	if c.Images.MaxPerPost <= 0 {
		return fmt.Errorf("images.max_per_post must be > 0")
	}

	return nil
}
