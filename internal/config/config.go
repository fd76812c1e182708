package config

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort        = 8001
	defaultEnv         = "development"
	defaultDBHost      = "127.0.0.1"
	defaultDBPort      = 3306
	defaultDBUser      = "root"
	defaultDBPassword  = "password"
	defaultDBName      = "findelmundo"
	defaultDBCharset   = "utf8mb4"
	defaultDBLoc       = "Local"
	defaultRedisHost   = "localhost"
	defaultRedisPort   = 6379
	defaultRedisDB     = 0
	defaultUploadsPath = "uploads"
)

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int                   `yaml:"port"`
	Database       DatabaseRuntimeConfig `yaml:"database"`
	Redis          RedisRuntimeConfig    `yaml:"redis"`
	Env            string                `yaml:"env"` // "development" | "production"
	AllowedOrigins []string              `yaml:"allowed_origins"`
	JWTSecret      string                `yaml:"jwt_secret"`
	Paths          RuntimePathsConfig    `yaml:"paths"`
	S3             S3Config              `yaml:"s3"`
}

type DatabaseRuntimeConfig struct {
	DSN      string            `yaml:"dsn"`
	Host     string            `yaml:"host"`
	Port     int               `yaml:"port"`
	User     string            `yaml:"user"`
	Password string            `yaml:"password"`
	Name     string            `yaml:"name"`
	Charset  string            `yaml:"charset"`
	Loc      string            `yaml:"loc"`
	Params   map[string]string `yaml:"params"`
}

type RedisRuntimeConfig struct {
	URL      string `yaml:"url"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	TLS      bool   `yaml:"tls"`
}

type RuntimePathsConfig struct {
	Uploads string `yaml:"uploads"`
}

// S3Config enables the S3 media storage backend when complete.
type S3Config struct {
	Enable          bool   `yaml:"enable"`
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region"`
	CustomDomain    string `yaml:"custom_domain"`
	PathStyleAccess bool   `yaml:"path_style_access"`
}

// Load reads and validates the YAML config file, applying defaults and
// environment variable overrides for secrets.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	cfg := defaultAppConfig()

	content, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config file %q: %w", path, err)
		}
		// No config file: defaults plus environment are enough for dev.
	} else {
		decoder := yaml.NewDecoder(bytes.NewReader(content))
		decoder.KnownFields(true)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config file %q: %w", path, err)
		}
	}

	applyEnvOverrides(&cfg)
	cfg.Env = normalizeEnv(cfg.Env)

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d in %q, expected 1-65535", cfg.Port, path)
	}
	if cfg.Database.DSN == "" && (cfg.Database.Port < 1 || cfg.Database.Port > 65535) {
		return nil, fmt.Errorf("invalid database.port %d in %q, expected 1-65535", cfg.Database.Port, path)
	}
	if cfg.Redis.URL == "" && (cfg.Redis.Port < 1 || cfg.Redis.Port > 65535) {
		return nil, fmt.Errorf("invalid redis.port %d in %q, expected 1-65535", cfg.Redis.Port, path)
	}

	return &cfg, nil
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Port: defaultPort,
		Env:  defaultEnv,
		Database: DatabaseRuntimeConfig{
			Host:     defaultDBHost,
			Port:     defaultDBPort,
			User:     defaultDBUser,
			Password: defaultDBPassword,
			Name:     defaultDBName,
			Charset:  defaultDBCharset,
			Loc:      defaultDBLoc,
		},
		Redis: RedisRuntimeConfig{
			Host: defaultRedisHost,
			Port: defaultRedisPort,
			DB:   defaultRedisDB,
		},
		Paths: RuntimePathsConfig{
			Uploads: defaultUploadsPath,
		},
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := os.Getenv("FDM_JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("FDM_DATABASE_DSN"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("FDM_REDIS_URL"); v != "" {
		cfg.Redis.URL = v
	}
}

func normalizeEnv(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "prod", "production":
		return "production"
	default:
		return "development"
	}
}

// DSNValue assembles the MySQL DSN from its parts unless one is given verbatim.
func (c DatabaseRuntimeConfig) DSNValue() string {
	if strings.TrimSpace(c.DSN) != "" {
		return strings.TrimSpace(c.DSN)
	}

	params := url.Values{}
	params.Set("charset", valueOr(c.Charset, defaultDBCharset))
	params.Set("parseTime", "True")
	params.Set("loc", valueOr(c.Loc, defaultDBLoc))
	for k, v := range c.Params {
		params.Set(k, v)
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		valueOr(c.User, defaultDBUser),
		c.Password,
		valueOr(c.Host, defaultDBHost),
		portOr(c.Port, defaultDBPort),
		valueOr(c.Name, defaultDBName),
		params.Encode(),
	)
}

// URLValue assembles the redis URL from its parts unless one is given verbatim.
func (c RedisRuntimeConfig) URLValue() string {
	if strings.TrimSpace(c.URL) != "" {
		return strings.TrimSpace(c.URL)
	}

	scheme := "redis"
	if c.TLS {
		scheme = "rediss"
	}
	u := url.URL{
		Scheme: scheme,
		Host:   fmt.Sprintf("%s:%d", valueOr(c.Host, defaultRedisHost), portOr(c.Port, defaultRedisPort)),
		Path:   fmt.Sprintf("/%d", c.DB),
	}
	if c.Username != "" || c.Password != "" {
		u.User = url.UserPassword(c.Username, c.Password)
	}
	return u.String()
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return c.Env != "production"
}

// UploadsDir returns the absolute local uploads directory.
func (c *AppConfig) UploadsDir() string {
	dir := strings.TrimSpace(c.Paths.Uploads)
	if dir == "" {
		dir = defaultUploadsPath
	}
	if abs, err := filepath.Abs(dir); err == nil {
		return abs
	}
	return dir
}

// S3Enabled reports whether the S3 media backend is fully configured.
func (c *AppConfig) S3Enabled() bool {
	s := c.S3
	return s.Enable && s.Bucket != "" && s.Region != "" && s.AccessKeyID != "" && s.SecretAccessKey != ""
}

func valueOr(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return strings.TrimSpace(v)
}

func portOr(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
