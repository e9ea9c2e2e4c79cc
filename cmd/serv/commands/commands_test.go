package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/serv/cmd/serv/commands"
	"go.trai.ch/serv/internal/app"
	"go.trai.ch/serv/internal/build"
)

type mockApp struct {
	serveFunc func(ctx context.Context, opts app.ServeOptions) error
}

func (m *mockApp) Serve(ctx context.Context, opts app.ServeOptions) error {
	if m.serveFunc != nil {
		return m.serveFunc(ctx, opts)
	}
	return nil
}

func TestCommands_Serve(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.ServeOptions
		called := false

		mock := &mockApp{
			serveFunc: func(_ context.Context, opts app.ServeOptions) error {
				capturedOpts = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"serve", "--port", "4000", "--root", "/tmp/site"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, 4000, capturedOpts.Port)
		assert.Equal(t, "/tmp/site", capturedOpts.Root)
	})

	t.Run("defaults leave overrides unset", func(t *testing.T) {
		var capturedOpts app.ServeOptions

		mock := &mockApp{
			serveFunc: func(_ context.Context, opts app.ServeOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"serve"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Zero(t, capturedOpts.Port)
		assert.Empty(t, capturedOpts.Root)
	})

	t.Run("returns error on serve failure", func(t *testing.T) {
		mock := &mockApp{
			serveFunc: func(_ context.Context, _ app.ServeOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"serve"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}

	cli := commands.New(mock)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "serv version "+build.Version)
}
