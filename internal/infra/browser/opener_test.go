package browser

import (
	"errors"
	"strings"
	"testing"
)

func TestOpener_Open(t *testing.T) {
	var got string
	o := &Opener{open: func(u string) error { got = u; return nil }}

	if err := o.Open("https://example.com/x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "https://example.com/x" {
		t.Fatalf("expected url to be passed through, got %q", got)
	}
}

func TestOpener_OpenWrapsError(t *testing.T) {
	cause := errors.New("no display")
	o := &Opener{open: func(string) error { return cause }}

	err := o.Open("https://example.com/x")
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
	if !strings.Contains(err.Error(), "https://example.com/x") {
		t.Fatalf("expected url in error, got %v", err)
	}
}
