package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	Port      string `yaml:"PORT"`
	StaticDir string `yaml:"STATIC_DIR"`

	// Database configuration
	DBPath string `yaml:"DB_PATH"`

	// Mailing configuration
	AppURL           string `yaml:"APP_URL"`
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// Gemini API configuration
	GeminiAPIKey string `yaml:"GEMINI_API_KEY"`
	GeminiModel  string `yaml:"GEMINI_MODEL"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}
}

// GetConfig resolves a key from config.yaml, falling back to the environment
// so values loaded from .env keep working without a yaml file.
func GetConfig(key string) string {
	value := ""
	switch key {
	case "PORT":
		value = config.Port
	case "STATIC_DIR":
		value = config.StaticDir
	case "DB_PATH":
		value = config.DBPath
	case "APP_URL":
		value = config.AppURL
	case "SMTP_HOST":
		value = config.SMTPHost
	case "SMTP_PORT":
		value = config.SMTPPort
	case "SMTP_SENDER_NAME":
		value = config.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		value = config.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		value = config.SMTPAuthPassword
	case "GEMINI_API_KEY":
		value = config.GeminiAPIKey
	case "GEMINI_MODEL":
		value = config.GeminiModel
	}

	if value == "" {
		return os.Getenv(key)
	}
	return value
}
