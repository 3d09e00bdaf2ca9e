package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/apper-canvas/skillhatch-orbit-dash/internal/progress"
)

// EnvPrefix prefixes every environment override, e.g. SKILLHATCH_STORE_DSN.
const EnvPrefix = "SKILLHATCH"

type Config struct {
	Store   StoreConfig   `mapstructure:"store"`
	User    UserConfig    `mapstructure:"user"`
	Skills  SkillsConfig  `mapstructure:"skills"`
	Streak  StreakConfig  `mapstructure:"streak"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type StoreConfig struct {
	DSN      string `mapstructure:"dsn"`
	Fixtures string `mapstructure:"fixtures"`
}

type UserConfig struct {
	ID int `mapstructure:"id"`
}

type SkillsConfig struct {
	AdvancedThreshold     int `mapstructure:"advanced_threshold"`
	IntermediateThreshold int `mapstructure:"intermediate_threshold"`
}

type StreakConfig struct {
	GraceDays int `mapstructure:"grace_days"`
}

type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Pretty  bool   `mapstructure:"pretty"`
	NoColor bool   `mapstructure:"no_color"`
}

// Options selects where configuration is read from. Empty File searches
// skillhatch.yaml in the working directory and $HOME/.skillhatch; empty
// EnvFile loads .env from the working directory when it exists.
type Options struct {
	File    string
	EnvFile string
}

// Load resolves configuration from defaults, the optional YAML file, the
// .env file and the environment, in increasing order of precedence.
func Load(opts Options) (*Config, error) {
	if err := loadEnvFile(opts.EnvFile); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	if opts.File != "" {
		v.SetConfigFile(opts.File)
	} else {
		v.SetConfigName("skillhatch")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".skillhatch"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.File != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("store.dsn", ":memory:")
	v.SetDefault("store.fixtures", "")

	v.SetDefault("user.id", 1)

	def := progress.DefaultLevelPolicy()
	v.SetDefault("skills.advanced_threshold", def.AdvancedThreshold)
	v.SetDefault("skills.intermediate_threshold", def.IntermediateThreshold)

	v.SetDefault("streak.grace_days", progress.DefaultStreakPolicy().GraceDays)

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.pretty", true)
	v.SetDefault("logging.no_color", false)
}

func (c *Config) Validate() error {
	var errs []error
	if c.Store.DSN == "" {
		errs = append(errs, fmt.Errorf("store.dsn is required"))
	}
	if c.User.ID <= 0 {
		errs = append(errs, fmt.Errorf("user.id must be positive, got %d", c.User.ID))
	}
	if err := c.LevelPolicy().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("skills: %w", err))
	}
	if c.Streak.GraceDays < 0 {
		errs = append(errs, fmt.Errorf("streak.grace_days must not be negative, got %d", c.Streak.GraceDays))
	}
	return errors.Join(errs...)
}

func (c *Config) LevelPolicy() progress.LevelPolicy {
	return progress.LevelPolicy{
		AdvancedThreshold:     c.Skills.AdvancedThreshold,
		IntermediateThreshold: c.Skills.IntermediateThreshold,
	}
}

func (c *Config) StreakPolicy() progress.StreakPolicy {
	return progress.StreakPolicy{GraceDays: c.Streak.GraceDays}
}

func loadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = ".env"
	}
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("loading env file %s: %w", path, err)
}
