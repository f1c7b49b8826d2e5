package update

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/sandeepkv93/todo/internal/model"
)

// DefaultConfigFile is read from the working directory when no path is given.
const DefaultConfigFile = "todo.toml"

type RuntimeConfig struct {
	Theme        string `toml:"theme" validate:"required,theme"`
	AutoContrast bool   `toml:"auto_contrast"`
	IDStrategy   string `toml:"id_strategy" validate:"oneof=counter uuid"`
	JournalDSN   string `toml:"journal_dsn"`
	JournalLimit int    `toml:"journal_limit" validate:"gte=1,lte=100"`
	LogFile      string `toml:"log_file"`
	LogLevel     string `toml:"log_level" validate:"oneof=debug info warn error"`
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		Theme:        model.LightTheme.Name,
		AutoContrast: false,
		IDStrategy:   "counter",
		JournalDSN:   ":memory:",
		JournalLimit: 10,
		LogLevel:     "info",
	}
}

// LoadRuntimeConfig layers defaults, the TOML file and the environment, then
// validates. An empty path falls back to DefaultConfigFile if it exists.
func LoadRuntimeConfig(path string) (RuntimeConfig, error) {
	cfg := DefaultRuntimeConfig()
	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		path = DefaultConfigFile
	}
	fromFile, err := RuntimeConfigFromFile(cfg, path)
	switch {
	case err == nil:
		cfg = fromFile
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return RuntimeConfig{}, err
	}
	cfg = RuntimeConfigFromEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return RuntimeConfig{}, err
	}
	return cfg, nil
}

func RuntimeConfigFromFile(base RuntimeConfig, path string) (RuntimeConfig, error) {
	cfg := base
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return base, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("TODO_THEME")); v != "" {
		cfg.Theme = strings.ToLower(v)
	}
	if v, ok := getEnvBool("TODO_AUTO_CONTRAST"); ok {
		cfg.AutoContrast = v
	}
	if v := strings.TrimSpace(os.Getenv("TODO_ID_STRATEGY")); v != "" {
		cfg.IDStrategy = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv("TODO_JOURNAL_DSN")); v != "" {
		cfg.JournalDSN = v
	}
	if v, ok := getEnvInt("TODO_JOURNAL_LIMIT"); ok && v > 0 {
		cfg.JournalLimit = v
	}
	if v := strings.TrimSpace(os.Getenv("TODO_LOG_FILE")); v != "" {
		cfg.LogFile = v
	}
	if v := strings.TrimSpace(os.Getenv("TODO_LOG_LEVEL")); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	return cfg
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func configValidator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
			_, ok := model.LookupTheme(fl.Field().String())
			return ok
		})
		validateInst = v
	})
	return validateInst
}

func (c RuntimeConfig) Validate() error {
	if err := configValidator().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			first := verrs[0]
			return fmt.Errorf("invalid config: %s fails %q (value %v)", strings.ToLower(first.Field()), first.Tag(), first.Value())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
