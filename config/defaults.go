package config

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// API defaults
	v.SetDefault("api.base_url", "https://data.usajobs.gov/api/")
	v.SetDefault("api.page_limit", 500)
	v.SetDefault("api.sort_field", "DatePosted")
	v.SetDefault("api.sort_order", "Descending")
	v.SetDefault("api.request_delay_ms", 2000) // polite delay between paged requests

	// Default search terms
	v.SetDefault("search.titles", []string{"Data Analyst", "Data Scientist", "Data Engineering"})
	v.SetDefault("search.keywords", []string{"data", "analysis", "analytics"})

	// Storage defaults
	v.SetDefault("storage.path", "jobsweep.db")

	// Report defaults
	v.SetDefault("reports.exports_dir", "exports")

	// SMTP defaults
	v.SetDefault("smtp.port", 587)
}

// BindSensitiveEnvVars explicitly binds sensitive configuration to environment
// variables so credentials never need to live in a config file
func BindSensitiveEnvVars(v *viper.Viper) {
	v.BindEnv("api.key", "JOBSWEEP_API_KEY")
	v.BindEnv("api.user_agent", "JOBSWEEP_USER_AGENT")
	v.BindEnv("smtp.host", "JOBSWEEP_SMTP_HOST")
	v.BindEnv("smtp.port", "JOBSWEEP_SMTP_PORT")
	v.BindEnv("smtp.sender", "JOBSWEEP_SENDER_EMAIL")
	v.BindEnv("smtp.password", "JOBSWEEP_SENDER_PASSWORD")
	v.BindEnv("smtp.recipient", "JOBSWEEP_RECIPIENT_EMAIL")
}
