package bot

// Config represents the configuration for the bot
type Config struct {
	// Telegram users allowed to talk to the bot, empty means everyone
	AllowedUserIDs []int64
	// Long polling timeout in seconds
	UpdateTimeout int
	// Maximum number of words listed by /stats
	StatsLimit int
	// Log raw Telegram API traffic
	Debug bool
}

// DefaultConfig returns the default bot configuration
func DefaultConfig() *Config {
	return &Config{
		UpdateTimeout: 60,
		StatsLimit:    50,
	}
}
