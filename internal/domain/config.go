package domain

import "time"

// Config represents the railinfo configuration loaded from railinfo.yaml.
type Config struct {
	API      APIConfig
	Defaults DefaultsConfig
	Logs     LogsConfig
}

type APIConfig struct {
	BaseURL string
	Key     string
	Timeout time.Duration
}

type DefaultsConfig struct {
	Quota  string
	Format string
}

type LogsConfig struct {
	Dir string
}

// DefaultConfig provides sane defaults if railinfo.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL: "https://indianrailapi.com/api/v2",
			Timeout: 30 * time.Second,
		},
		Defaults: DefaultsConfig{
			Quota:  DefaultQuota,
			Format: "pretty",
		},
		Logs: LogsConfig{
			Dir: ".railinfo/logs",
		},
	}
}
