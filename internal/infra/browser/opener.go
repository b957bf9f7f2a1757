package browser

import (
	"fmt"
	"io"

	pkgbrowser "github.com/pkg/browser"

	"github.com/aalvaropc/railinfo/internal/ports"
)

// Opener opens URLs with the platform's default browser.
type Opener struct {
	open func(string) error
}

func New() *Opener {
	return &Opener{open: pkgbrowser.OpenURL}
}

var _ ports.BrowserOpener = (*Opener)(nil)

func init() {
	// The launcher's own output would corrupt the terminal UI.
	pkgbrowser.Stdout = io.Discard
	pkgbrowser.Stderr = io.Discard
}

func (o *Opener) Open(url string) error {
	if err := o.open(url); err != nil {
		return fmt.Errorf("open %s in browser: %w", url, err)
	}
	return nil
}
