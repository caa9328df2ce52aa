package cli

import (
	"bytes"
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/libforge/phpgen/internal/composer"
	"github.com/libforge/phpgen/internal/ui"
)

// installTitle is shown while composer install runs.
const installTitle = "Running composer install..."

// progressInstaller wraps the Composer installer with a spinner. While the
// spinner is animated, Composer output is captured and only shown when the
// install fails.
type progressInstaller struct {
	inner    composer.Installer
	captured *bytes.Buffer
	out      io.Writer
	theme    *ui.Theme
	headless *ui.HeadlessManager
}

func newProgressInstaller(cmd *cobra.Command, d *Dependencies) *progressInstaller {
	out := cmd.OutOrStdout()
	p := &progressInstaller{out: out, theme: d.Theme, headless: d.Headless}

	if !d.Headless.IsHeadless() && !d.Theme.NoColor && ui.IsTerminal(out) {
		p.captured = &bytes.Buffer{}
		p.inner = withRetries(composer.NewInstaller(d.Env.ComposerBin, p.captured, p.captured, d.Logger), d)
		return p
	}
	p.inner = withRetries(composer.NewInstaller(d.Env.ComposerBin, out, cmd.ErrOrStderr(), d.Logger), d)
	return p
}

func withRetries(inner composer.Installer, d *Dependencies) composer.Installer {
	if d.Env.InstallRetries == 0 {
		return inner
	}
	return composer.NewRetryInstaller(inner, composer.DefaultRetryPolicy(d.Env.InstallRetries), d.Logger)
}

// Install runs the wrapped installer behind a spinner.
func (p *progressInstaller) Install(ctx context.Context, dir string) error {
	sp := ui.NewSpinner(p.theme, p.headless, p.out, installTitle)
	err := p.inner.Install(ctx, dir)
	sp.Stop()

	if err != nil && p.captured != nil {
		_, _ = p.out.Write(p.captured.Bytes())
	}
	return err
}
