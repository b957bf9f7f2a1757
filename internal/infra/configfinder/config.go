package configfinder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/railinfo/internal/domain"
)

// EnvAPIKey names the environment variable that may carry the API key.
const EnvAPIKey = "RAILINFO_API_KEY"

// LoadConfig loads railinfo.yaml from root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	return LoadFile(filepath.Join(root, ConfigFile))
}

// LoadFile loads a config file at an explicit path and applies defaults.
func LoadFile(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "configfinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "configfinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	api := y.Railinfo.API
	if strings.TrimSpace(api.BaseURL) != "" {
		cfg.API.BaseURL = strings.TrimSpace(api.BaseURL)
	}
	if strings.TrimSpace(api.Key) != "" {
		cfg.API.Key = strings.TrimSpace(api.Key)
	}
	if strings.TrimSpace(api.Timeout) != "" {
		d, err := time.ParseDuration(strings.TrimSpace(api.Timeout))
		if err != nil || d <= 0 {
			return cfg, &domain.OpError{
				Op:   "configfinder.loadconfig",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  fmt.Errorf("field railinfo.api.timeout: invalid duration %q: %w", api.Timeout, domain.ErrInvalidConfig),
			}
		}
		cfg.API.Timeout = d
	}

	defs := y.Railinfo.Defaults
	if strings.TrimSpace(defs.Quota) != "" {
		cfg.Defaults.Quota = domain.NormalizeCode(defs.Quota)
	}
	switch f := strings.TrimSpace(defs.Format); f {
	case "":
	case "pretty", "json":
		cfg.Defaults.Format = f
	default:
		return cfg, &domain.OpError{
			Op:   "configfinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  fmt.Errorf("field railinfo.defaults.format: unsupported format %q: %w", f, domain.ErrInvalidConfig),
		}
	}

	if strings.TrimSpace(y.Railinfo.Logs.Dir) != "" {
		cfg.Logs.Dir = strings.TrimSpace(y.Railinfo.Logs.Dir)
	}

	return cfg, nil
}

// ResolveAPIKey applies the key precedence: key file > environment > config file.
func ResolveAPIKey(cfg domain.Config, keyFile string, getenv func(string) string) (domain.Config, error) {
	if p := strings.TrimSpace(keyFile); p != "" {
		b, err := os.ReadFile(p)
		if err != nil {
			return cfg, &domain.OpError{
				Op:   "configfinder.apikey",
				Kind: domain.KindInvalidConfig,
				Path: p,
				Err:  err,
			}
		}
		cfg.API.Key = strings.TrimSpace(string(b))
	} else if getenv != nil {
		if v := strings.TrimSpace(getenv(EnvAPIKey)); v != "" {
			cfg.API.Key = v
		}
	}

	if cfg.API.Key == "" {
		return cfg, &domain.OpError{
			Op:   "configfinder.apikey",
			Kind: domain.KindInvalidConfig,
			Err: fmt.Errorf("missing API key (set %s, --api-key-file, or railinfo.api.key): %w",
				EnvAPIKey, domain.ErrInvalidConfig),
		}
	}
	return cfg, nil
}

type yamlConfig struct {
	Railinfo struct {
		API struct {
			BaseURL string `yaml:"base_url"`
			Key     string `yaml:"key"`
			Timeout string `yaml:"timeout"`
		} `yaml:"api"`

		Defaults struct {
			Quota  string `yaml:"quota"`
			Format string `yaml:"format"`
		} `yaml:"defaults"`

		Logs struct {
			Dir string `yaml:"dir"`
		} `yaml:"logs"`
	} `yaml:"railinfo"`
}
