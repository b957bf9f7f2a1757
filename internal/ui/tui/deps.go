package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/aalvaropc/railinfo/internal/ports"
	"github.com/aalvaropc/railinfo/internal/report"
	"github.com/aalvaropc/railinfo/internal/usecase"
)

// InfoRunner runs the full train lookup.
type InfoRunner interface {
	Execute(ctx context.Context, req usecase.InfoRequest) (usecase.InfoResult, error)
}

type Deps struct {
	Info    InfoRunner
	Browser ports.BrowserOpener

	// Timeout bounds a whole lookup. Zero means one minute.
	Timeout time.Duration
	Now     func() time.Time

	Logger  *slog.Logger
	LogPath string // shown with unexpected errors when Debug is set
	Debug   bool
}

func (d Deps) timeout() time.Duration {
	if d.Timeout > 0 {
		return d.Timeout
	}
	return time.Minute
}

func (d Deps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

// errorText is report.UserMessage, pointing at the log file in debug mode.
func (d Deps) errorText(err error) string {
	msg := report.UserMessage(err)
	if msg == report.MsgUnexpected {
		return d.unexpected()
	}
	return msg
}

func (d Deps) unexpected() string {
	if d.Debug && d.LogPath != "" {
		return "Unexpected error (see " + d.LogPath + ")"
	}
	return report.MsgUnexpected
}

func (d Deps) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}
