package config

import (
	"time"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Backend     BackendConfig     `yaml:"backend"`
	Log         LogConfig         `yaml:"log"`
	CORS        CORSConfig        `yaml:"cors"`
	Sessions    SessionConfig     `yaml:"sessions"`
	Credentials CredentialsConfig `yaml:"credentials"`
	RateLimit   RateLimitConfig   `yaml:"rate_limit"`
	Redis       *RedisConfig      `yaml:"redis"`
}

type ServerConfig struct {
	Port  int                `yaml:"port"`
	Debug *ServerDebugConfig `yaml:"debug"`
}

var DefaultServerConfig = ServerConfig{
	Port: 8080,
}

type ServerDebugConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
}

var DefaultDebugConfig = ServerDebugConfig{
	Enabled: false,
	Host:    "localhost",
	Port:    5123,
}

// BackendConfig points at the shop REST API this client fronts.
type BackendConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

var DefaultBackendConfig = BackendConfig{
	Timeout: 15 * time.Second,
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

var DefaultLogConfig = LogConfig{
	Level:  "info",
	Format: "text",
}

type CORSConfig struct {
	AllowedOrigins   []string `yaml:"allowed_origins"`
	AllowedMethods   []string `yaml:"allowed_methods"`
	AllowedHeaders   []string `yaml:"allowed_headers"`
	ExposedHeaders   []string `yaml:"exposed_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAgeSeconds    int      `yaml:"max_age_seconds"`
}

var DefaultCORSConfig = CORSConfig{
	AllowedOrigins: []string{"http://localhost:8080"},
	AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	AllowedHeaders: []string{"*"},
	MaxAgeSeconds:  300,
}

// SessionConfig covers the browser cookie session (navigation state only,
// never credentials).
type SessionConfig struct {
	Store        string        `yaml:"store"`
	FixedTimeout time.Duration `yaml:"fixed_timeout"`
	Name         string        `yaml:"name"`
	Secure       bool          `yaml:"secure"`
}

var DefaultSessionConfig = SessionConfig{
	Store:        "memory",
	FixedTimeout: 24 * time.Hour,
	Name:         "storefront_session",
	Secure:       true,
}

// CredentialsConfig selects where the bearer token pair is persisted
// across restarts.
type CredentialsConfig struct {
	Store string `yaml:"store"` // "memory", "file" or "redis"
	Path  string `yaml:"path"`  // file store only
}

var DefaultCredentialsConfig = CredentialsConfig{
	Store: "file",
	Path:  "./state/credentials.json",
}

type RateLimitConfig struct {
	AuthPerMinute int `yaml:"auth_per_minute"`
}

var DefaultRateLimitConfig = RateLimitConfig{
	AuthPerMinute: 10,
}

type RedisConfig struct {
	Address          string               `yaml:"address"`
	Username         string               `yaml:"username"`
	Password         string               `yaml:"password"`
	Sentinel         *RedisSentinelConfig `yaml:"sentinel"`
	SessionIndex     int                  `yaml:"session_index"`
	CredentialsIndex int                  `yaml:"credentials_index"`
}

var DefaultRedisConfig = RedisConfig{
	SessionIndex:     0,
	CredentialsIndex: 1,
}

type RedisSentinelConfig struct {
	MasterName        string   `yaml:"master_name"`
	SentinelAddresses []string `yaml:"addresses"`
	SentinelPassword  string   `yaml:"password"`
	SentinelUsername  string   `yaml:"username"`
}
