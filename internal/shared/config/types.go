package config

import (
	"fmt"
	"time"
)

type DatabaseConfig struct {
	// Driver selects the backing store: "mysql" for deployments, "sqlite"
	// for local runs and tests.
	Driver   string `mapstructure:"driver" validate:"oneof=mysql sqlite"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database" validate:"required"`
	// Migration selects the schema strategy: "auto" runs gorm AutoMigrate,
	// "scripts" runs the versioned SQL migrations (mysql only).
	Migration    string `mapstructure:"migration" validate:"oneof=auto scripts"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	// ConnMaxLifetime accepts duration strings, e.g. "1h".
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format     string `mapstructure:"format" validate:"oneof=console json"`
	OutputPath string `mapstructure:"output_path"`
}

type DiscordConfig struct {
	// Token is the bot token; the session cannot start without it.
	Token string `mapstructure:"token" validate:"required"`
}

type TicketsConfig struct {
	// DeletionDelay is how long a closed ticket channel survives before the
	// reaper deletes it.
	DeletionDelay time.Duration `mapstructure:"deletion_delay" validate:"gt=0"`
	// SweepInterval is how often the reaper checks for due deletions.
	SweepInterval time.Duration `mapstructure:"sweep_interval" validate:"gt=0"`
	// RatingPolicy resolves duplicate rating reactions: "first" or "last".
	RatingPolicy string `mapstructure:"rating_policy" validate:"oneof=first last"`
}
