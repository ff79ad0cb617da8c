// Package dashboard assembles the standard panel set from configuration.
package dashboard

import (
	"fmt"
	"log"

	"devdash/internal/config"
	"devdash/internal/ui"
	"devdash/internal/ui/panels"
)

// Panel IDs.
const (
	FileTreeID    = "filetree"
	DiagnosticsID = "diagnostics"
	TerminalID    = "terminal"
)

// Dashboard is a configured manager plus the shortcuts that toggle its panels.
type Dashboard struct {
	Manager   *ui.PanelManager
	Shortcuts []ui.PanelShortcut
	Terminal  *panels.TerminalPanel
}

// Build registers the file tree, diagnostics and terminal panels at their
// configured positions. opts are applied after the configured extents.
func Build(cfg config.Config, opts ...ui.ManagerOption) (*Dashboard, error) {
	mgrOpts := append([]ui.ManagerOption{
		ui.WithLeftWidth(cfg.Layout.LeftWidth),
		ui.WithRightWidth(cfg.Layout.RightWidth),
		ui.WithBottomHeight(cfg.Layout.BottomHeight),
	}, opts...)
	mgr := ui.NewPanelManager(mgrOpts...)

	term := panels.NewTerminalPanel(cfg.Panels.Terminal.Visible)
	term.SetScrollback(cfg.Terminal.Scrollback)

	entries := []struct {
		id    string
		panel ui.Panel
		pc    config.PanelConfig
		lead  string
		desc  string
	}{
		{FileTreeID, panels.NewFileTreePanel(cfg.Panels.FileTree.Visible), cfg.Panels.FileTree, "f", "Toggle file tree"},
		{DiagnosticsID, panels.NewDiagnosticsPanel(cfg.Panels.Diagnostics.Visible), cfg.Panels.Diagnostics, "d", "Toggle diagnostics"},
		{TerminalID, term, cfg.Panels.Terminal, "t", "Toggle terminal"},
	}

	d := &Dashboard{Manager: mgr, Terminal: term}
	for _, e := range entries {
		pos, err := ui.ParsePosition(e.pc.Position)
		if err != nil {
			return nil, fmt.Errorf("panel %s: %w", e.id, err)
		}
		mgr.Register(e.id, e.panel, pos)
		d.Shortcuts = append(d.Shortcuts, ui.PanelShortcut{
			PanelID: e.id,
			Key:     e.pc.Key,
			Leader:  e.lead,
			Desc:    e.desc,
		})
	}

	if cfg.Panels.Active != "" {
		if err := mgr.SetActive(cfg.Panels.Active); err != nil {
			log.Printf("dashboard: %v", err)
		}
	}
	return d, nil
}
