package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Conf holds the application configuration, accessible globally.
var Conf *Config

// Config is the top-level configuration structure.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	GitHub    GitHubConfig    `mapstructure:"github"`
	Slack     SlackConfig     `mapstructure:"slack"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// ServerConfig holds webhook server settings. WebhookTokenHash is the bcrypt
// hash of the shared token the recorder bot presents on each request.
type ServerConfig struct {
	Port             string `mapstructure:"port"`
	WebhookTokenHash string `mapstructure:"webhook_token_hash"`
}

// DatabaseConfig holds the users-table connection settings.
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
}

// GitHubConfig holds the API token and the committer identity used for every
// write to a user's repository. A missing token is fatal at startup.
type GitHubConfig struct {
	Token          string `mapstructure:"token"`
	CommitterName  string `mapstructure:"committer_name"`
	CommitterEmail string `mapstructure:"committer_email"`
}

// SlackConfig points at the bot that delivers prompts and weekly summary
// notifications. ServiceSecret signs the bearer tokens on those calls.
type SlackConfig struct {
	BotURL        string `mapstructure:"bot_url"`
	ServiceID     string `mapstructure:"service_id"`
	ServiceSecret string `mapstructure:"service_secret"`
}

// StorageConfig configures the optional chart archive bucket. An empty
// endpoint disables archiving.
type StorageConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

// SchedulerConfig controls the in-process jobs when serving with --scheduler.
// ChartsWeekday is 0 (Sunday) through 6; the reminder pass always runs hourly.
type SchedulerConfig struct {
	ChartsWeekday int `mapstructure:"charts_weekday"`
	ChartsHour    int `mapstructure:"charts_hour"`
}

// LoggingConfig holds settings for the logger.
type LoggingConfig struct {
	Directory  string `mapstructure:"directory"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "7071")

	v.SetDefault("database.host", "db")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "user")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.dbname", "goodday-db")

	v.SetDefault("github.committer_name", "Good Day Bot")
	v.SetDefault("github.committer_email", "octo-devex+goodday@github.com")

	v.SetDefault("slack.service_id", "goodday-pipeline")

	// charts go out Sunday morning, once the week is complete
	v.SetDefault("scheduler.charts_weekday", 0)
	v.SetDefault("scheduler.charts_hour", 9)

	v.SetDefault("logging.directory", "logs")
	v.SetDefault("logging.max_size", 10)   // 10 MB
	v.SetDefault("logging.max_backups", 3) // Keep 3 backups
	v.SetDefault("logging.max_age", 7)     // 7 days
	v.SetDefault("logging.compress", true) // Compress old logs
}

// Init initializes the configuration with Viper.
func Init(projectRoot string, log *zap.Logger) error {
	v := viper.New()

	setDefaults(v)

	v.AddConfigPath(filepath.Join(projectRoot, "config"))
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// e.g. GOODDAY_GITHUB_TOKEN, GOODDAY_DATABASE_PASSWORD
	v.SetEnvPrefix("GOODDAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The file is optional; defaults and env vars cover everything.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := v.Unmarshal(&Conf); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if Conf.GitHub.Token == "" {
		return fmt.Errorf("github.token is required (GOODDAY_GITHUB_TOKEN)")
	}

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		log.Info("Configuration file changed, reloading.", zap.String("file", e.Name))
		if err := v.Unmarshal(&Conf); err != nil {
			log.Error("Error reloading configuration", zap.Error(err))
		}
	})

	log.Info("Configuration loaded successfully")
	return nil
}
