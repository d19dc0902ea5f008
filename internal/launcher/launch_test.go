package launcher

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/paso/internal/app"
	"github.com/thenoetrevino/paso/internal/cli"
	"github.com/thenoetrevino/paso/internal/events"
	"github.com/thenoetrevino/paso/internal/testutil"
)

func TestLaunch_RunsViewerWithInjectedApp(t *testing.T) {
	_, testApp := testutil.SetupTestApp(t)

	stubRunTUI(t)
	var gotApp *app.App
	var gotUpdates <-chan events.Event
	runTUI = func(_ context.Context, a *app.App, updates <-chan events.Event) error {
		gotApp, gotUpdates = a, updates
		return nil
	}

	require.NoError(t, Launch(cli.WithApp(context.Background(), testApp)))
	assert.Same(t, testApp, gotApp)
	assert.Nil(t, gotUpdates, "an injected app has no daemon connection")
}

func TestLaunch_WrapsViewerError(t *testing.T) {
	_, testApp := testutil.SetupTestApp(t)

	stubRunTUI(t)
	runTUI = func(context.Context, *app.App, <-chan events.Event) error {
		return errors.New("no terminal")
	}

	err := Launch(cli.WithApp(context.Background(), testApp))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no terminal")
}

func stubRunTUI(t *testing.T) {
	t.Helper()
	orig := runTUI
	t.Cleanup(func() { runTUI = orig })
}
