// Package config provides jobsweep configuration via Viper.
//
// Configuration is merged from, in increasing precedence: built-in defaults,
// a jobsweep.toml file in the working directory, and JOBSWEEP_-prefixed
// environment variables. Secrets (API key, SMTP credentials) are only ever
// read from the environment.
package config

// Config is the root configuration for a pipeline run
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Search  SearchConfig  `mapstructure:"search"`
	Storage StorageConfig `mapstructure:"storage"`
	Reports ReportsConfig `mapstructure:"reports"`
	SMTP    SMTPConfig    `mapstructure:"smtp"`
}

// APIConfig configures the USAJobs API client
type APIConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	UserAgent      string `mapstructure:"user_agent"`
	Key            string `mapstructure:"key"`
	PageLimit      int    `mapstructure:"page_limit"`
	SortField      string `mapstructure:"sort_field"`
	SortOrder      string `mapstructure:"sort_order"`
	RequestDelayMS int    `mapstructure:"request_delay_ms"`
}

// SearchConfig holds the default search terms
type SearchConfig struct {
	Titles   []string `mapstructure:"titles"`
	Keywords []string `mapstructure:"keywords"`
}

// StorageConfig locates the SQLite database file
type StorageConfig struct {
	Path string `mapstructure:"path"`
}

// ReportsConfig locates the CSV export tree
type ReportsConfig struct {
	ExportsDir string `mapstructure:"exports_dir"`
}

// SMTPConfig configures outbound report email
type SMTPConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Sender    string `mapstructure:"sender"`
	Password  string `mapstructure:"password"`
	Recipient string `mapstructure:"recipient"`
}
