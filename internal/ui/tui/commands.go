package tui

import (
	"bytes"
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/railinfo/internal/domain"
	"github.com/aalvaropc/railinfo/internal/report"
	"github.com/aalvaropc/railinfo/internal/usecase"
)

func cmdLookup(deps Deps, theme report.Theme, req usecase.InfoRequest) tea.Cmd {
	return func() tea.Msg {
		if deps.Info == nil {
			return lookupDoneMsg{err: errors.New("Info runner is nil")}
		}

		log := deps.logger()
		log.Info("wizard.lookup.start",
			"train", req.Train.String(),
			"journey", req.Journey != nil,
			"coach", req.Coach,
		)

		ctx, cancel := context.WithTimeout(context.Background(), deps.timeout())
		defer cancel()

		res, err := deps.Info.Execute(ctx, req)
		if err != nil {
			log.Error("wizard.lookup.failed", "train", req.Train.String(), "err", err)
			return lookupDoneMsg{res: res, err: err}
		}

		var buf bytes.Buffer
		r, err := report.New(&buf, report.FormatPretty, report.WithTheme(theme))
		if err == nil {
			err = r.Info(res)
		}
		if err != nil {
			log.Error("wizard.render.failed", "err", err)
			return lookupDoneMsg{res: res, err: err}
		}

		log.Info("wizard.lookup.ok", "train", req.Train.String())
		return lookupDoneMsg{res: res, report: buf.String()}
	}
}

func cmdOpenMap(deps Deps, code string) tea.Cmd {
	return func() tea.Msg {
		u := domain.StationMapURL(code)
		if deps.Browser == nil {
			return mapOpenedMsg{code: code, url: u, err: errors.New("no browser available")}
		}
		err := deps.Browser.Open(u)
		if err != nil {
			deps.logger().Warn("browser.open.failed", "url", u, "err", err)
		}
		return mapOpenedMsg{code: code, url: u, err: err}
	}
}
