package config

import (
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	HistoryStorageYAML  = "yaml"
	HistoryStorageMySQL = "mysql"
)

type Config struct {
	Client   ClientConfig   `mapstructure:"client"`
	Server   ServerConfig   `mapstructure:"server"`
	Document DocumentConfig `mapstructure:"document"`
	OpenAI   OpenAIConfig   `mapstructure:"openai"`
	History  HistoryConfig  `mapstructure:"history"`
	Database DatabaseConfig `mapstructure:"database"`
	Exports  ExportsConfig  `mapstructure:"exports"`
}

// ClientConfig points the askdoc CLI at a running QA API.
type ClientConfig struct {
	BaseURL        string `mapstructure:"base_url" validate:"required,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"gte=0"`
}

type ServerConfig struct {
	Port int        `mapstructure:"port" validate:"min=1,max=65535"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DocumentConfig describes the reference PDF and how it is split for retrieval.
type DocumentConfig struct {
	PDFPath      string `mapstructure:"pdf_path"`
	ChunkSize    int    `mapstructure:"chunk_size" validate:"gt=0"`
	ChunkOverlap int    `mapstructure:"chunk_overlap" validate:"gte=0,ltfield=ChunkSize"`
	TopK         int    `mapstructure:"top_k" validate:"gt=0"`
}

type OpenAIConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model" validate:"required"`
	MaxTokens   int     `mapstructure:"max_tokens" validate:"gt=0"`
	Temperature float32 `mapstructure:"temperature" validate:"gte=0,lte=2"`
}

type HistoryConfig struct {
	Storage  string `mapstructure:"storage" validate:"oneof=yaml mysql"`
	YAMLFile string `mapstructure:"yaml_file"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type ExportsConfig struct {
	// Template is optional. The embedded template is used when it is empty.
	Template string `mapstructure:"template" validate:"omitempty,file"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/askdoc")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("client.base_url", "http://localhost:8000")
	v.SetDefault("client.timeout_seconds", 60)
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.cors.allowed_origins", []string{"*"})
	v.SetDefault("document.pdf_path", "./lecture.pdf")
	v.SetDefault("document.chunk_size", 500)
	v.SetDefault("document.chunk_overlap", 100)
	v.SetDefault("document.top_k", 3)
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.max_tokens", 256)
	v.SetDefault("openai.temperature", 0.7)
	v.SetDefault("history.storage", HistoryStorageYAML)
	v.SetDefault("history.yaml_file", "qa_history.yml")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "askdoc")
	v.SetDefault("database.username", "user")
	v.SetDefault("exports.template", "")

	envBindings := []struct {
		key string
		env string
	}{
		{key: "client.base_url", env: "ASKDOC_BASE_URL"},
		{key: "document.pdf_path", env: "DOWNLOAD_PDF"},
		// OpenAI credentials are only read from the environment
		{key: "openai.api_key", env: "OPENAI_API_KEY"},
		{key: "openai.model", env: "OPENAI_MODEL"},
		{key: "database.password", env: "DB_PASSWORD"},
	}
	for _, binding := range envBindings {
		if err := v.BindEnv(binding.key, binding.env); err != nil {
			return nil, fmt.Errorf("failed to bind %s environment variable: %w", binding.env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, fmt.Errorf("validator.Struct() > %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
