package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
)

// RenderKeybindHelp renders the transient hint bar shown while the leader key
// is pending. Returns "" when nothing is bound under the current prefix.
func RenderKeybindHelp(keyHandler *KeyHandler) string {
	if keyHandler == nil {
		return ""
	}
	bindings := NewKeyMap(keyHandler).ShortHelp()
	if len(bindings) == 0 {
		return ""
	}

	helpModel := help.New()
	helpModel.Styles.ShortKey = Styles.Selected
	helpModel.Styles.ShortDesc = Styles.Muted
	helpModel.Styles.ShortSeparator = Styles.Muted

	prefix := strings.Join(keyHandler.Buffer, " ")
	if prefix == "" {
		prefix = keyHandler.LeaderSeq
	}
	return Styles.HelpBar.Render(Styles.Muted.Render(prefix) + " " + helpModel.ShortHelpView(bindings))
}
