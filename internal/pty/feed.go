package pty

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"devdash/internal/ui"
)

// MaxLineBytes bounds a single output line. Longer lines end the feed.
const MaxLineBytes = 1 << 20

// Feed streams a command's output, line by line, to a terminal panel as
// ui.TerminalOutputMsg. Reads happen inside Bubble Tea commands, so panel
// state is only touched from Update.
type Feed struct {
	PanelID string

	rwc     io.ReadWriteCloser
	scanner *bufio.Scanner
	cmd     *exec.Cmd
	runner  Runner
	size    Size
}

// StartFeed runs the shell command line in a PTY via runner.
func StartFeed(ctx context.Context, runner Runner, panelID, command string, size Size) (*Feed, error) {
	if strings.TrimSpace(command) == "" {
		return nil, errors.New("start feed: empty command")
	}
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/sh"
	}
	cmd := exec.CommandContext(ctx, shell, "-c", command)
	rwc, err := runner.Start(ctx, cmd, size)
	if err != nil {
		return nil, fmt.Errorf("start feed %q: %w", command, err)
	}
	f := NewFeed(panelID, rwc, cmd, runner)
	f.size = size
	return f, nil
}

// NewFeed wraps an already-open output stream. cmd and runner may be nil;
// without a runner Resize is a no-op.
func NewFeed(panelID string, rwc io.ReadWriteCloser, cmd *exec.Cmd, runner Runner) *Feed {
	scanner := bufio.NewScanner(rwc)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)
	return &Feed{
		PanelID: panelID,
		rwc:     rwc,
		scanner: scanner,
		cmd:     cmd,
		runner:  runner,
	}
}

// Resize sets the PTY window size. Repeating the current size does nothing,
// and neither does a size with zero rows or columns.
func (f *Feed) Resize(size Size) error {
	if f.runner == nil || size.Rows == 0 || size.Cols == 0 || size == f.size {
		return nil
	}
	if err := f.runner.Resize(f.rwc, size); err != nil {
		return fmt.Errorf("resize feed %s: %w", f.PanelID, err)
	}
	f.size = size
	return nil
}

// Next returns a command that blocks for the next output line. Each
// delivered message carries the command for the line after it.
func (f *Feed) Next() tea.Cmd {
	return func() tea.Msg {
		if !f.scanner.Scan() {
			return f.closed()
		}
		return ui.TerminalOutputMsg{
			PanelID: f.PanelID,
			Lines:   []string{cleanLine(f.scanner.Text())},
			Next:    f.Next(),
		}
	}
}

func (f *Feed) closed() tea.Msg {
	err := f.scanner.Err()
	// Reading a PTY whose child exited fails with EIO on Linux; that is EOF.
	if errors.Is(err, syscall.EIO) || errors.Is(err, os.ErrClosed) {
		err = nil
	}
	_ = f.rwc.Close()
	if f.cmd != nil {
		if werr := f.cmd.Wait(); werr != nil && err == nil {
			err = werr
		}
	}
	return ui.TerminalClosedMsg{PanelID: f.PanelID, Err: err}
}

// Close stops the feed.
func (f *Feed) Close() error {
	return f.rwc.Close()
}

func cleanLine(s string) string {
	return ansi.Strip(strings.TrimRight(s, "\r"))
}
