package ui

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/todoterm/internal/page"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n\n")
	b.WriteString(m.listView())
	b.WriteString("\n")
	b.WriteString(m.statusView())
	b.WriteString("\n")
	b.WriteString(m.helpView())

	content := b.String()
	if m.mode == modeAdd || m.mode == modeSearch || m.mode == modeFrom || m.mode == modeTo {
		content += "\n" + inputBarStyle.Render(m.inputTitle()+"\n"+m.ti.View())
	}
	if m.mode == modeConfirm {
		prompt := fmt.Sprintf("Delete %q? (y/n)", m.pendingTitle)
		content += "\n" + inputBarStyle.Render(errorStyle.Render(prompt))
	}
	return panelString(content)
}

func (m Model) headerView() string {
	c := m.snap.Counts
	header := fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render("Todos"),
		successStyle.Render("✔"), c.Completed,
		pendingStyle.Render("•"), c.Pending,
		accentStyle.Render("Total"), c.Total,
	)
	if m.snap.Spec.Active() {
		header += mutedStyle.Render(fmt.Sprintf("  (%d match)", m.snap.Filtered))
	}
	if m.snap.Loading {
		header += "  " + m.spin.View() + mutedStyle.Render("loading")
	}
	return header
}

func (m Model) listView() string {
	if len(m.snap.Visible) == 0 {
		if m.snap.Spec.Active() {
			return mutedStyle.Render("  No todos match the current filters.")
		}
		return mutedStyle.Render("  Nothing to do.")
	}

	var lines []string
	for i, t := range m.snap.Visible {
		box := mutedStyle.Render(boxUnchecked)
		text := t.Title
		if t.Completed {
			box = successStyle.Render(boxChecked)
			text = doneStyle.Render(text)
		}
		date := mutedStyle.Render(t.CreatedOn().Format(dateLayout))

		prefix := "  "
		if i == m.cursor && m.mode == modeList {
			prefix = selectedStyle.Render("> ")
		}
		lines = append(lines, fmt.Sprintf("%s%s %s  %s", prefix, box, text, date))
	}
	return strings.Join(lines, "\n")
}

func (m Model) statusView() string {
	bar := mutedStyle.Render(m.snap.Range)
	if win := renderWindow(m.snap.Window, m.snap.Page); win != "" {
		bar += "   " + win
	}
	if m.status != "" {
		style := warnStyle
		if m.statusErr {
			style = errorStyle
		}
		bar += "\n" + style.Render("✖ "+m.status) + mutedStyle.Render("  (esc to dismiss)")
	}
	return bar
}

// renderWindow draws the page-number bar, e.g. "1 … 4 5 [6] 7 8 … 12".
func renderWindow(win []page.Entry, current int) string {
	if len(win) == 0 {
		return ""
	}
	parts := make([]string, 0, len(win))
	for _, e := range win {
		switch {
		case e.Gap:
			parts = append(parts, mutedStyle.Render("…"))
		case e.Page == current:
			parts = append(parts, curPageStyle.Render(fmt.Sprintf("%d", e.Page)))
		default:
			parts = append(parts, pageStyle.Render(fmt.Sprintf("%d", e.Page)))
		}
	}
	return strings.Join(parts, "")
}

func (m Model) inputTitle() string {
	switch m.mode {
	case modeAdd:
		return "Add new todo"
	case modeSearch:
		return "Search"
	case modeFrom:
		return "Filter: from date"
	case modeTo:
		return "Filter: to date"
	}
	return ""
}

func (m Model) helpView() string {
	return helpStyle.Render("a add · space toggle · d delete · / search · f dates · c clear · ←/→ page · r reload · q quit")
}
