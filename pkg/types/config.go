package types

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	OpenAI   OpenAIConfig
	Gemini   GeminiConfig
	Google   GoogleConfig
	Speech   SpeechConfig
}

type ServerConfig struct {
	Host         string
	Port         string
	BaseURL      string
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	AppEnv       string
	LogLevel     string
	Provider     string
}

type DatabaseConfig struct {
	Path string
}

type OpenAIConfig struct {
	APIKey string
}

type GeminiConfig struct {
	APIKey string
}

type GoogleConfig struct {
	Credentials string
}

type SpeechConfig struct {
	Model string
	Voice string
}

// LoadConfig reads configuration from environment variables
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Enable environment variable reading first
	v.AutomaticEnv()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		log.Print("No config file found, falling back to environment variables")
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, err
		}
	}

	config := &Config{
		Server: ServerConfig{
			Host:     v.GetString("SERVER_HOST"),
			Port:     v.GetString("SERVER_PORT"),
			BaseURL:  v.GetString("BASE_URL"),
			AppEnv:   v.GetString("APP_ENV"),
			LogLevel: v.GetString("LOG_LEVEL"),
			Provider: v.GetString("TRANSLATE_PROVIDER"),
		},
		Database: DatabaseConfig{
			Path: v.GetString("DB_PATH"),
		},
		OpenAI: OpenAIConfig{
			APIKey: v.GetString("OPENAI_API_KEY"),
		},
		Gemini: GeminiConfig{
			APIKey: v.GetString("GEMINI_API_KEY"),
		},
		Google: GoogleConfig{
			Credentials: v.GetString("GOOGLE_APPLICATION_CREDENTIALS"),
		},
		Speech: SpeechConfig{
			Model: v.GetString("TTS_MODEL"),
			Voice: v.GetString("TTS_VOICE"),
		},
	}

	// Set default values if not provided
	if config.Server.Port == "" {
		config.Server.Port = "6777"
	}
	if config.Server.BaseURL == "" {
		config.Server.BaseURL = fmt.Sprintf("http://localhost:%s", config.Server.Port)
	}
	if config.Server.Provider == "" {
		config.Server.Provider = "gemini"
	}
	if config.Database.Path == "" {
		config.Database.Path = "lingobridge.db"
	}
	if config.Speech.Model == "" {
		config.Speech.Model = "gpt-4o-mini-tts"
	}
	if config.Speech.Voice == "" {
		config.Speech.Voice = "alloy"
	}

	return config, nil
}

// GetServerAddress returns the full server address
func (c *ServerConfig) GetServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// ShareURL builds the absolute URL under which a stored translation
// can be retrieved.
func (c *ServerConfig) ShareURL(id string) string {
	return fmt.Sprintf("%s/?share=%s", c.BaseURL, id)
}
