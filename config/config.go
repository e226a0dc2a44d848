package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Site    SiteConfig    `yaml:"site"`
	Editor  EditorConfig  `yaml:"editor"`
}

type LoggingConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=trace debug info notice warn warning error fatal panic"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" validate:"required"`
	// CORSAllowedOrigins 는 에디터 API(/api/v1)를 호출할 수 있는 origin 목록이다.
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

// StorageConfig selects the backend holding authors and posts.
// Driver "mongo" uses MongoURI/MongoDBName, the SQL drivers use DSN.
type StorageConfig struct {
	Driver      string `yaml:"driver" validate:"required,oneof=mongo sqlite postgres"`
	DSN         string `yaml:"dsn" validate:"required_unless=Driver mongo"`
	MongoURI    string `yaml:"mongo_uri"`
	MongoDBName string `yaml:"mongo_db_name"`
}

// SiteConfig builds public author links. {slug} is replaced by the
// author's slug.
type SiteConfig struct {
	BaseURL    string `yaml:"base_url" validate:"required,url"`
	AuthorPath string `yaml:"author_path" validate:"required,contains={slug}"`
	FeedPath   string `yaml:"feed_path" validate:"required,contains={slug}"`
	Title      string `yaml:"title"`
}

type EditorConfig struct {
	// MaxSessions bounds the per-block preview session registry.
	MaxSessions int `yaml:"max_sessions" validate:"gte=0"`
}

var config *AppConfig

// Default returns the configuration used when config.yaml leaves a value
// empty.
func Default() AppConfig {
	return AppConfig{
		Logging: LoggingConfig{Level: "info"},
		Server:  ServerConfig{Addr: ":8080"},
		Storage: StorageConfig{Driver: "sqlite", DSN: "file:list-authors.db?_pragma=foreign_keys(1)"},
		Site: SiteConfig{
			BaseURL:    "http://localhost:8080",
			AuthorPath: "/author/{slug}/",
			FeedPath:   "/author/{slug}/feed/",
			Title:      "List Authors",
		},
		Editor: EditorConfig{MaxSessions: 256},
	}
}

func InitApp() {
	c, err := Load(GetBasePath())
	if err != nil {
		panic(err)
	}
	config = &c
}

// Load reads .env and config.yaml from dir, applies environment overrides
// and validates the result. A missing config.yaml is not an error.
func Load(dir string) (AppConfig, error) {
	// load environment variables
	_ = godotenv.Load(filepath.Join(dir, ENV_FILE))

	c := Default()
	data, err := os.ReadFile(filepath.Join(dir, CONFIG_FILE))
	if err != nil && !os.IsNotExist(err) {
		return AppConfig{}, err
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &c); err != nil {
			return AppConfig{}, fmt.Errorf("parse %s: %w", CONFIG_FILE, err)
		}
	}

	applyEnv(&c)
	if err := Validate(c); err != nil {
		return AppConfig{}, err
	}
	return c, nil
}

func applyEnv(c *AppConfig) {
	override := func(key string, dst *string) {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			*dst = v
		}
	}
	override("LOG_LEVEL", &c.Logging.Level)
	override("SERVER_ADDR", &c.Server.Addr)
	override("DATABASE_DRIVER", &c.Storage.Driver)
	override("DATABASE_DSN", &c.Storage.DSN)
	override("MONGO_URI", &c.Storage.MongoURI)
	override("MONGO_DB_NAME", &c.Storage.MongoDBName)
	override("SITE_BASE_URL", &c.Site.BaseURL)
}

func Validate(c AppConfig) error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return cwd
}
