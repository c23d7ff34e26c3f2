package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Badges   *BadgesConfig   `mapstructure:"badges"`
	Fanout   *FanoutConfig   `mapstructure:"fanout"`
}

type APIConfig struct {
	Environment        string `mapstructure:"environment"`
	BaseURL            string `mapstructure:"base_url"`
	Port               string `mapstructure:"port"`
	JWTSigningKey      string `mapstructure:"jwt_signing_key"`
	AllowedCORSDomains string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"db_name"`
}

type BadgesConfig struct {
	// LeaderSettleDelay is how long the badge engine waits for the course
	// leader recompute before reading the lowman. Raising it trades award
	// latency for fewer missed lowman checks.
	LeaderSettleDelay time.Duration `mapstructure:"leader_settle_delay"`
}

type FanoutConfig struct {
	ThoughtLimit int `mapstructure:"thought_limit"`
	ChunkSize    int `mapstructure:"chunk_size"`
	QueueSize    int `mapstructure:"queue_size"`
	// LeaderSweepInterval drives the scheduled course-leader reconciliation.
	LeaderSweepInterval time.Duration `mapstructure:"leader_sweep_interval"`
}

func Load(configPath string) (*AppConfig, error) {
	viper.SetConfigFile(configPath)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	config := &AppConfig{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	viper.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("config file changed", zap.String("file", e.Name))

		if err := viper.Unmarshal(config); err != nil {
			zap.L().Error("failed to reload config", zap.Error(err))
		}
	})
	viper.WatchConfig()

	applyDefaults(config)

	return config, nil
}

func applyDefaults(conf *AppConfig) {
	if conf.Badges == nil {
		conf.Badges = &BadgesConfig{}
	}
	if conf.Badges.LeaderSettleDelay == 0 {
		conf.Badges.LeaderSettleDelay = 3 * time.Second
	}

	if conf.Fanout == nil {
		conf.Fanout = &FanoutConfig{}
	}
	if conf.Fanout.ThoughtLimit == 0 {
		conf.Fanout.ThoughtLimit = 200
	}
	if conf.Fanout.ChunkSize == 0 {
		conf.Fanout.ChunkSize = 450
	}
	if conf.Fanout.QueueSize == 0 {
		conf.Fanout.QueueSize = 64
	}
	if conf.Fanout.LeaderSweepInterval == 0 {
		conf.Fanout.LeaderSweepInterval = 10 * time.Minute
	}
}
