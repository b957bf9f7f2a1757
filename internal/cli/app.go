package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/aalvaropc/railinfo/internal/domain"
	"github.com/aalvaropc/railinfo/internal/infra/browser"
	"github.com/aalvaropc/railinfo/internal/infra/configfinder"
	"github.com/aalvaropc/railinfo/internal/infra/httpclient"
	"github.com/aalvaropc/railinfo/internal/infra/logger"
	"github.com/aalvaropc/railinfo/internal/infra/railapi"
	"github.com/aalvaropc/railinfo/internal/ports"
	"github.com/aalvaropc/railinfo/internal/report"
	"github.com/aalvaropc/railinfo/internal/usecase"
)

type rootFlags struct {
	configPath string
	apiKeyFile string
	debug      bool
	format     string
	timeout    time.Duration
}

// state carries what commands share: flags, the loaded config and the API client.
type state struct {
	flags rootFlags

	root   string
	cfg    domain.Config
	cfgErr error

	locator ports.ConfigLocator
	getenv  func(string) string
	now     func() time.Time
	browser ports.BrowserOpener

	client  *railapi.Client
	cleanup func() error
}

func newState() *state {
	return &state{
		cfg:     domain.DefaultConfig(),
		locator: configfinder.NewFinder(),
		getenv:  os.Getenv,
		now:     time.Now,
		browser: browser.New(),
	}
}

// setup loads the config and starts the logger. A broken config is kept in
// cfgErr so that commands which do not need it still run.
func (s *state) setup(cmd *cobra.Command) error {
	s.root, s.cfg, s.cfgErr = loadConfig(s.locator, s.flags.configPath)

	cleanup, err := logger.Setup(logger.Config{
		Root:  s.root,
		Dir:   s.cfg.Logs.Dir,
		Debug: s.flags.debug,
	})
	if err == nil {
		s.cleanup = cleanup
	}

	logger.L().Debug("cli.command",
		"command", cmd.CommandPath(),
		"config_root", s.root,
		"config_error", errString(s.cfgErr),
	)
	return nil
}

func (s *state) close() {
	if s.client != nil && s.flags.debug {
		dumpMetrics(s.client.Registry())
	}
	if s.cleanup != nil {
		logger.L().Debug("cli.done",
			"log_path", logger.Path(),
			"elapsed_ms", time.Since(logger.InitTime()).Milliseconds(),
		)
		_ = s.cleanup()
		s.cleanup = nil
	}
}

func loadConfig(locator ports.ConfigLocator, configPath string) (string, domain.Config, error) {
	if p := strings.TrimSpace(configPath); p != "" {
		abs, err := filepath.Abs(p)
		if err != nil {
			return "", domain.DefaultConfig(), &domain.OpError{Op: "cli.config", Kind: domain.KindInvalidConfig, Path: p, Err: err}
		}
		cfg, err := configfinder.LoadFile(abs)
		return filepath.Dir(abs), cfg, err
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", domain.DefaultConfig(), nil
	}

	root, err := locator.FindRoot(wd)
	if err != nil {
		// Without a config file, defaults plus the environment still work.
		if domain.IsKind(err, domain.KindNotFound) {
			return "", domain.DefaultConfig(), nil
		}
		return "", domain.DefaultConfig(), err
	}

	cfg, err := configfinder.LoadConfig(root)
	return root, cfg, err
}

func (s *state) timeout() time.Duration {
	if s.flags.timeout > 0 {
		return s.flags.timeout
	}
	if s.cfg.API.Timeout > 0 {
		return s.cfg.API.Timeout
	}
	return defaultTimeout()
}

// railClient builds the API client once the config and key are known.
func (s *state) railClient() (*railapi.Client, error) {
	if s.client != nil {
		return s.client, nil
	}
	if s.cfgErr != nil {
		return nil, s.cfgErr
	}

	cfg, err := configfinder.ResolveAPIKey(s.cfg, s.flags.apiKeyFile, s.getenv)
	if err != nil {
		return nil, err
	}

	timeout := s.timeout()
	hc := httpclient.DefaultConfig()
	hc.Timeout = timeout

	exec := httpclient.NewExecutor(
		httpclient.WithClient(httpclient.New(hc)),
		httpclient.WithTimeout(timeout),
	)

	c, err := railapi.New(cfg.API.BaseURL, cfg.API.Key,
		railapi.WithExecutor(exec),
		railapi.WithLogger(logger.L()),
	)
	if err != nil {
		return nil, err
	}
	s.client = c
	return c, nil
}

func (s *state) reporter(w io.Writer) (*report.Reporter, error) {
	format := s.flags.format
	if strings.TrimSpace(format) == "" {
		format = s.cfg.Defaults.Format
	}
	return report.New(w, format)
}

func (s *state) quota(flag string) string {
	if q := domain.NormalizeCode(flag); q != "" {
		return q
	}
	if s.cfg.Defaults.Quota != "" {
		return s.cfg.Defaults.Quota
	}
	return domain.DefaultQuota
}

func (s *state) usecaseOptions() []usecase.Option {
	return []usecase.Option{
		usecase.WithLogger(logger.L()),
		usecase.WithClock(s.now),
	}
}

// dumpMetrics writes the client's counters to the debug log.
func dumpMetrics(reg *prometheus.Registry) {
	mfs, err := reg.Gather()
	if err != nil {
		logger.L().Debug("metrics.gather.failed", "err", err)
		return
	}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			attrs := []any{"name", mf.GetName(), "value", m.GetCounter().GetValue()}
			for _, lp := range m.GetLabel() {
				attrs = append(attrs, lp.GetName(), lp.GetValue())
			}
			logger.L().Debug("metrics.counter", attrs...)
		}
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
