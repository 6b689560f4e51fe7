package config

import (
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Security
		Window
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Path     string
		LogLevel string // silent, error, warn, info
	}
	Security struct {
		CSRFSecret    string // CSRF protection is enabled only when set
		SecureCookies bool   // Set to false for local dev without HTTPS
	}
	Window struct {
		Title         string
		StatusMessage string
		LogFile       string // Empty discards logs while the window is open
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8189)
	v.SetDefault("host", "127.0.0.1")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_log_level", "warn")

	v.SetDefault("csrf_secret", "")
	v.SetDefault("secure_cookies", false)

	v.SetDefault("window_title", DefaultWindowTitle)
	v.SetDefault("status_message", DefaultStatusMessage)
	v.SetDefault("log_file", "")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path:     v.GetString("DATABASE_PATH"),
			LogLevel: v.GetString("DATABASE_LOG_LEVEL"),
		},
		Security: Security{
			CSRFSecret:    v.GetString("CSRF_SECRET"),
			SecureCookies: v.GetBool("SECURE_COOKIES"),
		},
		Window: Window{
			Title:         v.GetString("WINDOW_TITLE"),
			StatusMessage: v.GetString("STATUS_MESSAGE"),
			LogFile:       v.GetString("LOG_FILE"),
		},
	}
}
