package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/railinfo/internal/domain"
	"github.com/aalvaropc/railinfo/internal/usecase"
)

type fakeInfo struct {
	got usecase.InfoRequest
	res usecase.InfoResult
	err error
}

func (f *fakeInfo) Execute(_ context.Context, req usecase.InfoRequest) (usecase.InfoResult, error) {
	f.got = req
	return f.res, f.err
}

type fakeBrowser struct {
	opened []string
	err    error
}

func (f *fakeBrowser) Open(url string) error {
	f.opened = append(f.opened, url)
	return f.err
}

func testDeps(info *fakeInfo, br *fakeBrowser) Deps {
	return Deps{
		Info:    info,
		Browser: br,
		Now:     func() time.Time { return time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC) },
	}
}

func typeText(t *testing.T, m model, s string) model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return next.(model)
}

func press(t *testing.T, m model, k tea.KeyType) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: k})
	return next.(model), cmd
}

func answer(t *testing.T, m model, s string) (model, tea.Cmd) {
	t.Helper()
	if s != "" {
		m = typeText(t, m, s)
	}
	return press(t, m, tea.KeyEnter)
}

func TestWizard_FullFlowRunsLookup(t *testing.T) {
	info := &fakeInfo{res: usecase.InfoResult{
		Train:    usecase.TrainResult{Train: "12951"},
		Stations: []string{"NDLS", "BCT"},
	}}
	br := &fakeBrowser{}
	m := newModel(testDeps(info, br))

	var cmd tea.Cmd
	for _, a := range []string{"12951", "ndls", "bct", "", "3a", "y"} {
		m, cmd = answer(t, m, a)
		if cmd != nil {
			t.Fatalf("unexpected command before last step (answer %q)", a)
		}
	}
	if m.step != stepCoach {
		t.Fatalf("expected coach step, got %v", m.step)
	}

	m, cmd = answer(t, m, "b1")
	if m.step != stepRunning || cmd == nil {
		t.Fatalf("expected lookup to start, step=%v", m.step)
	}

	msg := cmd()
	done, ok := msg.(lookupDoneMsg)
	if !ok {
		t.Fatalf("expected lookupDoneMsg, got %T", msg)
	}
	if done.err != nil {
		t.Fatalf("unexpected lookup error: %v", done.err)
	}

	req := info.got
	if req.Train != "12951" || req.Coach != "B1" || req.Journey == nil {
		t.Fatalf("unexpected request: %+v", req)
	}
	if req.Journey.From != "NDLS" || req.Journey.To != "BCT" || req.Journey.Class != "3A" || req.Journey.Date != "05-03-2024" {
		t.Fatalf("unexpected journey: %+v", *req.Journey)
	}

	next, _ := m.Update(done)
	m = next.(model)
	if m.step != stepResult || m.result == nil {
		t.Fatalf("expected result step, got %v", m.step)
	}
	if !strings.Contains(m.View(), "Train Schedule for Train No: 12951") {
		t.Fatalf("expected rendered report in view, got:\n%s", m.View())
	}

	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")})
	m = next.(model)
	if cmd == nil {
		t.Fatalf("expected open-map command")
	}
	opened := cmd().(mapOpenedMsg)
	if opened.err != nil || len(br.opened) != 1 || br.opened[0] != domain.StationMapURL("BCT") {
		t.Fatalf("unexpected browser calls: %v (err %v)", br.opened, opened.err)
	}
}

func TestWizard_InvalidTrainNumberStaysOnStep(t *testing.T) {
	m := newModel(testDeps(&fakeInfo{}, nil))

	m, cmd := answer(t, m, "12a")
	if cmd != nil || m.step != stepTrain {
		t.Fatalf("expected to stay on train step, got %v", m.step)
	}
	if !strings.Contains(m.toast, "invalid train number") {
		t.Fatalf("expected validation toast, got %q", m.toast)
	}
}

func TestWizard_NoCoachSkipsCoachStep(t *testing.T) {
	info := &fakeInfo{}
	m := newModel(testDeps(info, nil))

	var cmd tea.Cmd
	for _, a := range []string{"1", "A", "B", "06-03-2024", "SL", "n"} {
		m, cmd = answer(t, m, a)
	}
	if m.step != stepRunning || cmd == nil {
		t.Fatalf("expected lookup after declining coach info, step=%v", m.step)
	}
	cmd()
	if info.got.Coach != "" {
		t.Fatalf("expected no coach in request, got %q", info.got.Coach)
	}
}

func TestWizard_EscGoesBackAndRestoresAnswer(t *testing.T) {
	m := newModel(testDeps(&fakeInfo{}, nil))

	m, _ = answer(t, m, "12951")
	if m.step != stepFrom {
		t.Fatalf("expected source step, got %v", m.step)
	}

	m, _ = press(t, m, tea.KeyEsc)
	if m.step != stepTrain {
		t.Fatalf("expected train step, got %v", m.step)
	}
	if m.input.Value() != "12951" {
		t.Fatalf("expected previous answer restored, got %q", m.input.Value())
	}
}

func TestWizard_LookupErrorShowsMessage(t *testing.T) {
	m := newModel(testDeps(&fakeInfo{}, nil))
	m.step = stepRunning

	err := &domain.OpError{Op: "railapi.trainschedule", Kind: domain.KindAPI, Err: errors.New("Invalid train: api error")}
	next, _ := m.Update(lookupDoneMsg{err: err})
	m = next.(model)

	if m.step != stepResult || !strings.Contains(m.errMsg, "API Error") {
		t.Fatalf("expected error result, got step=%v msg=%q", m.step, m.errMsg)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	m = next.(model)
	if m.step != stepTrain || len(m.answers) != 0 {
		t.Fatalf("expected wizard restart, got step=%v answers=%v", m.step, m.answers)
	}
}

func TestWizard_CtrlCQuits(t *testing.T) {
	m := newModel(testDeps(&fakeInfo{}, nil))

	_, cmd := press(t, m, tea.KeyCtrlC)
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestSafeModel_RecoversFromPanic(t *testing.T) {
	inner := newModel(Deps{Info: &fakeInfo{}})
	inner.answers = nil // writing the first answer panics
	s := wrapSafe(inner, nil)

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")})
	s = next.(safeModel)

	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatalf("expected no command after panic")
	}
	sm := next.(safeModel)
	if sm.m.toast != "Unexpected error (see logs)" || sm.m.step != stepTrain {
		t.Fatalf("expected reset model, got step=%v toast=%q", sm.m.step, sm.m.toast)
	}
	if sm.m.answers == nil {
		t.Fatalf("expected answers to be reinitialized")
	}
}

func TestSafeModel_DebugPointsAtLogFile(t *testing.T) {
	inner := newModel(Deps{Info: &fakeInfo{}, Debug: true, LogPath: "/var/log/railinfo.log"})
	inner.answers = nil
	s := wrapSafe(inner, nil)

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")})
	next, _ = next.(safeModel).Update(tea.KeyMsg{Type: tea.KeyEnter})

	if got := next.(safeModel).m.toast; got != "Unexpected error (see /var/log/railinfo.log)" {
		t.Fatalf("expected log path in toast, got %q", got)
	}
}

func TestWizard_UnexpectedLookupError(t *testing.T) {
	tests := []struct {
		name  string
		debug bool
		want  string
	}{
		{name: "default", want: "Lookup failed: Unexpected error (see logs)"},
		{name: "debug", debug: true, want: "Lookup failed: Unexpected error (see /tmp/railinfo.log)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := testDeps(&fakeInfo{}, nil)
			deps.Debug = tt.debug
			deps.LogPath = "/tmp/railinfo.log"

			m := newModel(deps)
			m.step = stepRunning
			next, _ := m.Update(lookupDoneMsg{err: errors.New("boom")})

			if got := next.(model).errMsg; got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
