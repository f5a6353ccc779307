package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	Address        string        `yaml:"address"`
	JwtTTL         time.Duration `yaml:"jwt_ttl"`
	SecureCookies  bool          `yaml:"secure_cookies"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	LogLevel       string        `yaml:"log_level"`
	LogJSON        bool          `yaml:"log_json"`
	BannedStore    string        `yaml:"banned_store"` // "memory" or "redis"
	Redis          Redis         `yaml:"redis"`
	Email          Email         `yaml:"email"`
}

type Redis struct {
	Addr string `yaml:"addr"`
	DB   int    `yaml:"db"`
}

type Email struct {
	SMTPServer string `yaml:"smtp_server"`
	SMTPPort   int    `yaml:"smtp_port"`
	Username   string `yaml:"username"`
	SenderName string `yaml:"sender_name"`
	Timeout    int    `yaml:"timeout"` // seconds
}

type Private struct {
	JwtKey        string `yaml:"jwt_key"`
	SMTPPassword  string `yaml:"smtp_password"`
	RedisPassword string `yaml:"redis_password"`
}

func (s *Config) JwtKey() string {
	return s.private.JwtKey
}

func (s *Config) JwtTTL() time.Duration {
	return s.Public.JwtTTL
}

func (s *Config) SMTPPassword() string {
	return s.private.SMTPPassword
}

func (s *Config) RedisPassword() string {
	return s.private.RedisPassword
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)

	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	return &Config{public, private}
}

// NewTest returns a config suitable for unit tests without reading files.
func NewTest() *Config {
	return &Config{
		Public: Public{
			Address:     ":8080",
			JwtTTL:      10 * time.Minute,
			BannedStore: "memory",
		},
		private: Private{JwtKey: "test_secret_key"},
	}
}
