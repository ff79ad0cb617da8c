package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"devdash/internal/config"
	"devdash/internal/dashboard"
	"devdash/internal/ui"
)

// regionRow is one line of `devdash layout` output.
type regionRow struct {
	Position string `json:"position"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Panel    string `json:"panel,omitempty"`
}

func newLayoutCmd(cfgFile *string) *cobra.Command {
	var (
		width, height int
		show          []string
		asJSON        bool
	)
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the regions the dashboard would allocate for a screen size",
		Example: `  devdash layout --width 80 --height 24
  devdash layout --width 80 --height 24 --show diagnostics --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			d, err := dashboard.Build(cfg)
			if err != nil {
				return err
			}
			for _, id := range show {
				if err := d.Manager.Toggle(id); err != nil {
					return err
				}
			}
			rows := layoutRows(d.Manager, ui.Region{Width: width, Height: height})
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), rows)
			}
			return writeTable(cmd.OutOrStdout(), rows)
		},
	}
	cmd.Flags().IntVar(&width, "width", 80, "screen width in cells")
	cmd.Flags().IntVar(&height, "height", 24, "screen height in cells")
	cmd.Flags().StringSliceVar(&show, "show", nil, "toggle these panel IDs before computing the layout")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output JSON")
	return cmd
}

// layoutRows lists each allocated region in carving order with the visible
// panel drawn there.
func layoutRows(m *ui.PanelManager, total ui.Region) []regionRow {
	regions := m.ComputeLayout(total)
	occupant := make(map[ui.Position]string)
	for _, id := range m.VisibleIDs() {
		if pos, err := m.Position(id); err == nil {
			occupant[pos] = id
		}
	}
	var rows []regionRow
	for _, pos := range ui.Positions {
		r, ok := regions[pos]
		if !ok {
			continue
		}
		rows = append(rows, regionRow{
			Position: pos.String(),
			X:        r.X,
			Y:        r.Y,
			Width:    r.Width,
			Height:   r.Height,
			Panel:    occupant[pos],
		})
	}
	return rows
}

func writeJSON(w io.Writer, rows []regionRow) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	return nil
}

func writeTable(w io.Writer, rows []regionRow) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("POSITION", "X", "Y", "WIDTH", "HEIGHT", "PANEL")
	for _, r := range rows {
		panel := r.Panel
		if panel == "" {
			panel = "-"
		}
		t.Row(r.Position, strconv.Itoa(r.X), strconv.Itoa(r.Y),
			strconv.Itoa(r.Width), strconv.Itoa(r.Height), panel)
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

