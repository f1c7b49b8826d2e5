package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/todo/internal/views"
)

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) renderHelpView() string {
	nav := []key.Binding{m.Keys.Up, m.Keys.Down, m.Keys.Toggle, m.Keys.Delete, m.Keys.Edit}
	global := []key.Binding{m.Keys.Theme, m.Keys.Swatch, m.Keys.Journal, m.Keys.Palette, m.Keys.Help, m.Keys.Quit}

	return views.RenderHelpPanel(views.HelpPanelData{
		ThemeName: m.List.Theme.Name,
		Bindings:  m.modeBindings(),
		HelpView: m.helpModel.View(helpKeyMap{
			short: append(append([]key.Binding{}, nav...), global...),
			full:  [][]key.Binding{nav, global},
		}),
	}, m.List.Theme)
}

func (m Model) modeBindings() []string {
	if m.Palette.Active {
		return []string{
			"`enter`: run command",
			"`esc`: close palette",
			"commands: `add <text>`, `toggle <id>`, `delete <id>`, `theme <name|toggle>`, `themes`, `log [n]`",
		}
	}
	switch m.Mode {
	case ModeInput:
		return []string{
			"`enter`: add the typed task",
			"`esc`/`tab`: move to the list",
			"`ctrl+c`: quit",
		}
	default:
		out := make([]string, 0, 11)
		for _, b := range []key.Binding{m.Keys.Up, m.Keys.Down, m.Keys.Toggle, m.Keys.Delete, m.Keys.Edit, m.Keys.Theme, m.Keys.Swatch, m.Keys.Journal, m.Keys.Palette, m.Keys.Help, m.Keys.Quit} {
			h := b.Help()
			out = append(out, fmt.Sprintf("`%s`: %s", h.Key, h.Desc))
		}
		return out
	}
}
