package config

import (
	"strings"

	"github.com/spf13/viper"

	"jobsweep/errors"
)

var globalConfig *Config
var viperInstance *viper.Viper

// Load reads the jobsweep configuration using Viper
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	globalConfig = &config
	return globalConfig, nil
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	SetDefaults(v)
	BindSensitiveEnvVars(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", configPath)
	}

	return &config, nil
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// initViper initializes Viper with configuration sources and defaults
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	// Environment variable binding: JOBSWEEP_API_PAGE_LIMIT etc.
	v.SetEnvPrefix("JOBSWEEP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	BindSensitiveEnvVars(v)
	SetDefaults(v)

	// Optional jobsweep.toml in the working directory; defaults and env
	// vars carry a run when no file is present
	v.SetConfigName("jobsweep")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig()

	viperInstance = v
	return v
}

// Validate reports missing required values. The API identity is required for
// extraction; SMTP credentials are required because every successful run ends
// by emailing the reports.
func (c *Config) Validate() error {
	var missing []string

	if c.API.UserAgent == "" {
		missing = append(missing, "api.user_agent (JOBSWEEP_USER_AGENT)")
	}
	if c.API.Key == "" {
		missing = append(missing, "api.key (JOBSWEEP_API_KEY)")
	}
	if c.SMTP.Host == "" {
		missing = append(missing, "smtp.host (JOBSWEEP_SMTP_HOST)")
	}
	if c.SMTP.Sender == "" {
		missing = append(missing, "smtp.sender (JOBSWEEP_SENDER_EMAIL)")
	}
	if c.SMTP.Password == "" {
		missing = append(missing, "smtp.password (JOBSWEEP_SENDER_PASSWORD)")
	}
	if c.SMTP.Recipient == "" {
		missing = append(missing, "smtp.recipient (JOBSWEEP_RECIPIENT_EMAIL)")
	}

	if len(missing) > 0 {
		return errors.Newf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}
