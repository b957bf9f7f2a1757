package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/railinfo/internal/domain"
	"github.com/aalvaropc/railinfo/internal/usecase"
)

type step int

const (
	stepTrain step = iota
	stepFrom
	stepTo
	stepDate
	stepClass
	stepWantCoach
	stepCoach
	stepRunning
	stepResult
)

var inputSteps = []step{stepTrain, stepFrom, stepTo, stepDate, stepClass, stepWantCoach, stepCoach}

var stepLabels = map[step]string{
	stepTrain:     "Train",
	stepFrom:      "Source",
	stepTo:        "Destination",
	stepDate:      "Journey date",
	stepClass:     "Class",
	stepWantCoach: "Coach info",
	stepCoach:     "Coach",
}

var stepPrompts = map[step]string{
	stepTrain:     "Enter Train Number",
	stepFrom:      "Enter Source Station Code (e.g., NDLS)",
	stepTo:        "Enter Destination Station Code (e.g., BCT)",
	stepDate:      "Enter Journey Date (DD-MM-YYYY)",
	stepClass:     "Enter Class Code (e.g., SL, 3A, 2A, CC)",
	stepWantCoach: "Do you want coach layout and position info? (y/n)",
	stepCoach:     "Enter Coach Number (e.g., B1, S2)",
}

type model struct {
	theme Theme
	deps  Deps

	step    step
	input   textinput.Model
	answers map[step]string
	toast   string

	running bool
	result  *usecase.InfoResult
	errMsg  string
	view    viewport.Model
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	in := textinput.New()
	in.CharLimit = 32
	in.Width = 32
	in.Focus()

	m := model{
		theme:   DefaultTheme(),
		deps:    deps,
		input:   in,
		answers: map[step]string{},
		view:    viewport.New(80, 20),
	}
	return m.enter(stepTrain)
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.view.Width = max(msg.Width-8, 20)
		m.view.Height = max(msg.Height-12, 5)
		return m, nil

	case lookupDoneMsg:
		m.running = false
		m.step = stepResult
		if msg.err != nil {
			m.result = nil
			m.errMsg = "Lookup failed: " + m.deps.errorText(msg.err)
			return m, nil
		}
		res := msg.res
		m.result = &res
		m.errMsg = ""
		m.view.SetContent(msg.report)
		m.view.GotoTop()
		return m, nil

	case mapOpenedMsg:
		if msg.err != nil {
			m.toast = "Could not open browser, visit " + msg.url
		} else {
			m.toast = "Opened " + msg.url
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	switch {
	case m.step == stepResult:
		m.view, cmd = m.view.Update(msg)
	case m.step < stepRunning:
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.step {
	case stepRunning:
		return m, nil

	case stepResult:
		switch key {
		case "q":
			return m, tea.Quit
		case "n", "esc":
			return m.restart(), textinput.Blink
		case "o", "d":
			if m.result == nil || len(m.result.Stations) < 2 {
				return m, nil
			}
			code := m.result.Stations[0]
			if key == "d" {
				code = m.result.Stations[1]
			}
			return m, cmdOpenMap(m.deps, code)
		}
		var cmd tea.Cmd
		m.view, cmd = m.view.Update(msg)
		return m, cmd
	}

	switch key {
	case "esc":
		return m.back(), nil
	case "enter":
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) submit() (tea.Model, tea.Cmd) {
	val := strings.TrimSpace(m.input.Value())
	if m.step == stepDate && val == "" {
		val = domain.FormatDate(m.deps.now())
	}

	val, err := validateStep(m.step, val)
	if err != nil {
		m.toast = m.deps.errorText(err)
		return m, nil
	}
	m.answers[m.step] = val
	m.toast = ""

	next := m.step + 1
	if m.step == stepWantCoach && !domain.IsYes(val) {
		delete(m.answers, stepCoach)
		next = stepRunning
	}

	if next >= stepRunning {
		req := m.request()
		m.step = stepRunning
		m.running = true
		m.input.Blur()
		return m, cmdLookup(m.deps, m.theme.Report, req)
	}
	return m.enter(next), nil
}

func (m model) back() model {
	if m.step == stepTrain {
		return m
	}
	m.toast = ""
	return m.enter(m.step - 1)
}

func (m model) restart() model {
	m.answers = map[step]string{}
	m.result = nil
	m.errMsg = ""
	m.toast = ""
	m.running = false
	return m.enter(stepTrain)
}

// enter moves to s and restores any previous answer into the input.
func (m model) enter(s step) model {
	m.step = s
	m.input.Reset()
	m.input.Placeholder = ""
	if s == stepDate {
		m.input.Placeholder = domain.FormatDate(m.deps.now())
	}
	if s == stepWantCoach {
		m.input.Placeholder = "n"
	}
	m.input.SetValue(m.answers[s])
	m.input.Focus()
	return m
}

func (m model) request() usecase.InfoRequest {
	train, _ := domain.ParseTrainNumber(m.answers[stepTrain])

	req := usecase.InfoRequest{
		Train: train,
		Journey: &domain.JourneyQuery{
			From:  m.answers[stepFrom],
			To:    m.answers[stepTo],
			Date:  m.answers[stepDate],
			Class: m.answers[stepClass],
		},
	}
	if domain.IsYes(m.answers[stepWantCoach]) {
		req.Coach = m.answers[stepCoach]
	}
	return req
}

func validateStep(s step, val string) (string, error) {
	switch s {
	case stepTrain:
		n, err := domain.ParseTrainNumber(val)
		return n.String(), err
	case stepDate:
		return domain.ParseDate(val)
	case stepWantCoach:
		if val == "" {
			return "n", nil
		}
		v := strings.ToLower(val)
		if v != "y" && v != "n" {
			return "", invalidInput("answer y or n")
		}
		return v, nil
	default:
		code := domain.NormalizeCode(val)
		if code == "" {
			return "", invalidInput(strings.ToLower(stepLabels[s]) + " is required")
		}
		return code, nil
	}
}

func invalidInput(msg string) error {
	return &domain.OpError{
		Op:   "tui.wizard",
		Kind: domain.KindInvalidArgument,
		Err:  fmt.Errorf("%s: %w", msg, domain.ErrInvalidArgument),
	}
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("railinfo") + "\n" +
		m.theme.Subtitle.Render("Indian Railways train information") + "\n"

	switch {
	case m.step < stepRunning:
		body := summary(m.answers)
		if body != "" {
			body = m.theme.Subtitle.Render(strings.TrimRight(body, "\n")) + "\n\n"
		}
		body += m.theme.Title.Render(stepPrompts[m.step]) + "\n" + m.input.View()
		if m.toast != "" {
			body += "\n\n" + m.theme.Error.Render(m.toast)
		}
		help := m.theme.Help.Render("enter next • esc back • ctrl+c quit")
		return wrap.Render(header + "\n" + m.theme.Card.Render(body) + "\n" + help)

	case m.step == stepRunning:
		train := m.answers[stepTrain]
		return wrap.Render(header + "\n" + m.theme.Card.Render("Fetching train details for "+train+"…"))

	case m.errMsg != "":
		help := m.theme.Help.Render("n new lookup • q quit")
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.theme.Error.Render(m.errMsg)) + "\n" + help)

	default:
		help := m.theme.Help.Render("↑/↓ scroll • o source map • d destination map • n new lookup • q quit")
		out := header + "\n" + m.theme.Card.Render(m.view.View()) + "\n"
		if m.toast != "" {
			out += m.theme.Subtitle.Render(m.toast) + "\n"
		}
		return wrap.Render(out + help)
	}
}
