package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/sandeepkv93/todo/internal/model"
)

const panelWidth = 58

type AppData struct {
	Header     string
	Body       string
	Side       string
	StatusLine string
	IsError    bool
	Footer     string
	Theme      model.Theme
}

// Styles are the lipgloss styles for one theme.
type Styles struct {
	Frame     lipgloss.Style
	Header    lipgloss.Style
	Panel     lipgloss.Style
	Row       lipgloss.Style
	Selected  lipgloss.Style
	Done      lipgloss.Style
	Delete    lipgloss.Style
	Muted     lipgloss.Style
	Status    lipgloss.Style
	Error     lipgloss.Style
	Footer    lipgloss.Style
	SwatchOn  lipgloss.Style
	SwatchOff lipgloss.Style
}

func BuildStyles(theme model.Theme) Styles {
	bg := ResolveToken(theme.BackgroundClass)
	fg := ResolveToken(theme.TextClass)
	return Styles{
		Frame:     lipgloss.NewStyle().Background(bg).Foreground(fg).Padding(1, 2),
		Header:    lipgloss.NewStyle().Bold(true).Foreground(fg),
		Panel:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(fg).Padding(0, 1),
		Row:       lipgloss.NewStyle().Foreground(fg),
		Selected:  lipgloss.NewStyle().Foreground(fg).Bold(true),
		Done:      lipgloss.NewStyle().Foreground(fg).Strikethrough(true).Faint(true),
		Delete:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Muted:     lipgloss.NewStyle().Foreground(fg).Faint(true),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Footer:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		SwatchOn:  lipgloss.NewStyle().Bold(true).Underline(true),
		SwatchOff: lipgloss.NewStyle().Faint(true),
	}
}

// StatusFor picks the status bar style from the status kind, never its text.
func (s Styles) StatusFor(isError bool) lipgloss.Style {
	if isError {
		return s.Error
	}
	return s.Status
}

func RenderApp(data AppData) string {
	st := BuildStyles(data.Theme)
	body := st.Panel.Width(panelWidth).Render(data.Body)
	if data.Side != "" {
		side := st.Panel.Width(panelWidth).Render(data.Side)
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, side)
	}

	status := st.StatusFor(data.IsError).Render(data.StatusLine)

	lines := []string{
		st.Header.Render(data.Header),
		body,
	}
	if data.StatusLine != "" {
		lines = append(lines, status)
	}
	if data.Footer != "" {
		lines = append(lines, st.Footer.Render(data.Footer))
	}
	return st.Frame.Render(strings.Join(lines, "\n"))
}

// RenderScreen draws the list panel: input, rows or placeholder, counter.
func RenderScreen(s Screen, inputView string, progressView string) string {
	st := BuildStyles(s.Theme)
	var b strings.Builder
	b.WriteString(st.Header.Render(s.Title) + "\n")
	b.WriteString(inputView + "  [enter] Add\n\n")
	if s.Empty() {
		b.WriteString(st.Muted.Render(s.Placeholder))
		return b.String()
	}
	for _, row := range s.Rows {
		b.WriteString(renderRow(st, row) + "\n")
	}
	b.WriteString("\n" + st.Row.Render(s.Footer))
	if progressView != "" {
		b.WriteString("\n" + progressView)
	}
	return b.String()
}

func renderRow(st Styles, row Row) string {
	cursor := "  "
	if row.Selected {
		cursor = "> "
	}
	box := "[ ]"
	if row.Completed {
		box = "[x]"
	}
	text := st.Row.Render(row.Text)
	switch {
	case row.Completed:
		text = st.Done.Render(row.Text)
	case row.Selected:
		text = st.Selected.Render(row.Text)
	}
	return fmt.Sprintf("%s%s %s %s", cursor, box, text, st.Delete.Render("✕"))
}

func RenderSwatches(swatches []ThemeSwatch) string {
	parts := make([]string, 0, len(swatches))
	for _, sw := range swatches {
		chip := lipgloss.NewStyle().
			Background(ResolveToken(sw.Settings.BackgroundClass)).
			Foreground(ResolveToken(sw.Settings.TextClass)).
			Padding(0, 1)
		label := sw.Name
		if sw.Current {
			label = "*" + label
		}
		parts = append(parts, chip.Render(label))
	}
	return "swatches: " + strings.Join(parts, " ")
}

func RenderHelpPanel(data HelpPanelData, theme model.Theme) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("help (theme: %s)\n", data.ThemeName))
	if md := RenderMarkdown(data.HelpMarkdown(), theme); md != "" {
		b.WriteString(md + "\n")
	}
	b.WriteString(data.HelpView)
	return strings.TrimSpace(b.String())
}

func RenderJournalPanel(data JournalPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("journal: %d entries\n", data.Count))
	if data.ErrorText != "" {
		b.WriteString("error: " + data.ErrorText + "\n")
	}
	b.WriteString(data.TableView)
	return strings.TrimSpace(b.String())
}

// RenderMarkdown renders md with the glamour style matching the theme.
func RenderMarkdown(md string, theme model.Theme) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	style := "light"
	if theme.IsDark() {
		style = "dark"
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
