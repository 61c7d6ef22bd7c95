package host

import (
	"context"
	"io"

	"github.com/pkg/browser"
)

type browserOpener struct {
	open func(string) error
}

// NewBrowserOpener returns an [Opener] using the system default browser.
// The launcher's own output is discarded so it can not garble a TUI.
func NewBrowserOpener() Opener {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return &browserOpener{open: browser.OpenURL}
}

func (o *browserOpener) Open(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return o.open(url)
}
