package fractioncli

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/aalvaropc/railinfo/internal/rational"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestDefaultsPrintFourResults(t *testing.T) {
	out, err := runCmd(t)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "13/4\n7/4\n15/8\n10/3\n"
	if out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestCustomOperands(t *testing.T) {
	out, err := runCmd(t, "--", "1/2", "-1/3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	want := []string{"1/6", "5/6", "-1/6", "-3/2"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %q", len(want), out)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: expected %s, got %s", i, want[i], lines[i])
		}
	}
}

func TestDivideByZeroFails(t *testing.T) {
	_, err := runCmd(t, "1/2", "0/5")
	if !errors.Is(err, rational.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestZeroDenominatorArgFails(t *testing.T) {
	_, err := runCmd(t, "1/0")
	if !errors.Is(err, rational.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestJSONFormat(t *testing.T) {
	out, err := runCmd(t, "--format", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var payload map[string]string
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, out)
	}
	if payload["sum"] != "13/4" || payload["quotient"] != "10/3" {
		t.Fatalf("unexpected payload: %v", payload)
	}
}

func TestUnknownFormat(t *testing.T) {
	_, err := runCmd(t, "--format", "xml")
	if err == nil || !strings.Contains(err.Error(), "xml") {
		t.Fatalf("expected format error, got %v", err)
	}
}
