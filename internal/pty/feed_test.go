package pty

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devdash/internal/ui"
)

// pipeRWC reads from a pipe and discards writes.
type pipeRWC struct {
	*io.PipeReader
}

func (pipeRWC) Write(p []byte) (int, error) { return len(p), nil }

type failingRunner struct{ err error }

func (r failingRunner) Start(context.Context, *exec.Cmd, Size) (io.ReadWriteCloser, error) {
	return nil, r.err
}

func (failingRunner) Resize(io.ReadWriteCloser, Size) error { return nil }

func TestFeed_DeliversLinesThenCloses(t *testing.T) {
	pr, pw := io.Pipe()
	go func() {
		_, _ = io.WriteString(pw, "hello\r\n\x1b[31mred\x1b[0m\n")
		_ = pw.Close()
	}()
	f := NewFeed("terminal", pipeRWC{pr}, nil, nil)

	msg := f.Next()()
	out, ok := msg.(ui.TerminalOutputMsg)
	require.True(t, ok, "got %T", msg)
	assert.Equal(t, "terminal", out.PanelID)
	assert.Equal(t, []string{"hello"}, out.Lines)
	require.NotNil(t, out.Next)

	msg = out.Next()
	out, ok = msg.(ui.TerminalOutputMsg)
	require.True(t, ok, "got %T", msg)
	assert.Equal(t, []string{"red"}, out.Lines)

	msg = out.Next()
	closed, ok := msg.(ui.TerminalClosedMsg)
	require.True(t, ok, "got %T", msg)
	assert.Equal(t, "terminal", closed.PanelID)
	assert.NoError(t, closed.Err)
}

func TestFeed_ReportsReadError(t *testing.T) {
	pr, pw := io.Pipe()
	boom := errors.New("boom")
	_ = pw.CloseWithError(boom)

	msg := NewFeed("terminal", pipeRWC{pr}, nil, nil).Next()()
	closed, ok := msg.(ui.TerminalClosedMsg)
	require.True(t, ok, "got %T", msg)
	assert.ErrorIs(t, closed.Err, boom)
}

func TestFeed_LongLine(t *testing.T) {
	pr, pw := io.Pipe()
	long := strings.Repeat("x", 70000)
	go func() {
		_, _ = io.WriteString(pw, long+"\nafter\n")
		_ = pw.Close()
	}()
	f := NewFeed("terminal", pipeRWC{pr}, nil, nil)

	msg := f.Next()()
	out, ok := msg.(ui.TerminalOutputMsg)
	require.True(t, ok, "got %T", msg)
	assert.Equal(t, []string{long}, out.Lines)

	msg = out.Next()
	out, ok = msg.(ui.TerminalOutputMsg)
	require.True(t, ok, "got %T", msg)
	assert.Equal(t, []string{"after"}, out.Lines)
}

// recordingRunner records Resize calls.
type recordingRunner struct {
	failingRunner
	sizes []Size
	err   error
}

func (r *recordingRunner) Resize(_ io.ReadWriteCloser, size Size) error {
	r.sizes = append(r.sizes, size)
	return r.err
}

func TestFeed_Resize(t *testing.T) {
	pr, _ := io.Pipe()
	runner := &recordingRunner{}
	f := NewFeed("terminal", pipeRWC{pr}, nil, runner)

	require.NoError(t, f.Resize(Size{Rows: 8, Cols: 48}))
	require.NoError(t, f.Resize(Size{Rows: 8, Cols: 48}), "same size again")
	require.NoError(t, f.Resize(Size{Rows: 0, Cols: 48}), "collapsed region")
	require.NoError(t, f.Resize(Size{Rows: 20, Cols: 100}))
	assert.Equal(t, []Size{{Rows: 8, Cols: 48}, {Rows: 20, Cols: 100}}, runner.sizes)

	runner.err = errors.New("bad ioctl")
	err := f.Resize(Size{Rows: 1, Cols: 1})
	assert.ErrorIs(t, err, runner.err)

	assert.NoError(t, NewFeed("terminal", pipeRWC{pr}, nil, nil).Resize(Size{Rows: 1, Cols: 1}))
}

func TestStartFeed_Errors(t *testing.T) {
	_, err := StartFeed(context.Background(), failingRunner{}, "terminal", "  ", Size{})
	assert.ErrorContains(t, err, "empty command")

	boom := errors.New("no pty")
	_, err = StartFeed(context.Background(), failingRunner{err: boom}, "terminal", "make test", Size{Rows: 10, Cols: 80})
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, `"make test"`)
}

func TestCleanLine(t *testing.T) {
	tests := map[string]string{
		"plain":                    "plain",
		"crlf\r":                   "crlf",
		"\x1b[1;32mok\x1b[0m done": "ok done",
		"":                         "",
	}
	for in, want := range tests {
		assert.Equal(t, want, cleanLine(in), "%q", in)
	}
}

func TestCreackPTY_ResizeIgnoresNonFiles(t *testing.T) {
	pr, _ := io.Pipe()
	assert.NoError(t, (&CreackPTY{}).Resize(pipeRWC{pr}, Size{Rows: 1, Cols: 1}))
}
