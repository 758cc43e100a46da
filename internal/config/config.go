package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/example/wordslearning/pkg/validator"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage backends
const (
	BackendDatabase = "database"
	BackendKeyValue = "keyvalue"
)

// Config is the application configuration
type Config struct {
	Env      string         `mapstructure:"env" validate:"oneof=development production"`
	Bot      BotConfig      `mapstructure:"bot"`
	DB       DBConfig       `mapstructure:"db"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Quiz     QuizConfig     `mapstructure:"quiz"`
	Autosave AutosaveConfig `mapstructure:"autosave"`
}

// BotConfig holds the Telegram settings
type BotConfig struct {
	Token string `mapstructure:"token"`
	// Comma separated Telegram user IDs, empty means everyone
	AllowedUsers string        `mapstructure:"allowed_users"`
	Timeout      time.Duration `mapstructure:"timeout" validate:"min=0"`
}

// DBConfig selects the database driver and location
type DBConfig struct {
	Type string `mapstructure:"type" validate:"oneof=sqlite postgres"`
	Path string `mapstructure:"path" validate:"required_if=Type sqlite"`
	DSN  string `mapstructure:"dsn" validate:"required_if=Type postgres"`
}

// StorageConfig selects the vocabulary backend
type StorageConfig struct {
	Backend      string `mapstructure:"backend" validate:"oneof=database keyvalue"`
	DefaultsFile string `mapstructure:"defaults_file"`
}

// QuizConfig tunes answer scoring and question selection
type QuizConfig struct {
	RightAnswerDelta int `mapstructure:"right_answer_delta" validate:"min=1,max=100"`
	WrongAnswerDelta int `mapstructure:"wrong_answer_delta" validate:"min=0,max=100"`
	TopSlice         int `mapstructure:"top_slice" validate:"min=1"`
}

// AutosaveConfig controls how often changes are saved
type AutosaveConfig struct {
	Interval time.Duration `mapstructure:"interval" validate:"min=1s"`
}

var envBindings = map[string]string{
	"env":                     "ENV",
	"bot.token":               "TELEGRAM_BOT_TOKEN",
	"bot.allowed_users":       "ALLOWED_USER_IDS",
	"bot.timeout":             "BOT_TIMEOUT",
	"db.type":                 "DB_TYPE",
	"db.path":                 "DB_PATH",
	"db.dsn":                  "DB_DSN",
	"storage.backend":         "STORAGE_BACKEND",
	"storage.defaults_file":   "DEFAULT_WORDS_FILE",
	"quiz.right_answer_delta": "QUIZ_RIGHT_ANSWER_DELTA",
	"quiz.wrong_answer_delta": "QUIZ_WRONG_ANSWER_DELTA",
	"quiz.top_slice":          "QUIZ_TOP_SLICE",
	"autosave.interval":       "AUTOSAVE_INTERVAL",
}

// Load reads .env (when present) and the process environment
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	if _, err := cfg.Bot.AllowedUserIDs(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "production")
	v.SetDefault("bot.timeout", 10*time.Second)
	v.SetDefault("db.type", "sqlite")
	v.SetDefault("db.path", "data/words.db")
	v.SetDefault("storage.backend", BackendDatabase)
	v.SetDefault("quiz.right_answer_delta", 10)
	v.SetDefault("quiz.wrong_answer_delta", 20)
	v.SetDefault("quiz.top_slice", 11)
	v.SetDefault("autosave.interval", time.Minute)
}

// AllowedUserIDs parses the allow list
func (c BotConfig) AllowedUserIDs() ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(c.AllowedUsers, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid allowed user id %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
