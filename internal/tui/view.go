package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Alp4ka/tableview"
)

// View - implements tea.Model.
func (m Model) View() string {
	if m.state == ViewStateQuitting {
		return ""
	}

	sections := []string{m.renderTitle()}

	switch {
	case m.state == ViewStateSearch:
		sections = append(sections, m.search.View())
	case m.table.Query() != "":
		sections = append(sections, MutedStyle.Render("filter: "+m.table.Query()+" (esc to clear)"))
	default:
		sections = append(sections, "")
	}

	sections = append(sections,
		m.grid.View(),
		m.renderStatus(),
		RenderPageLinks(m.table.Page().Links, m.table.CurrentPage()),
	)

	if m.err != nil {
		sections = append(sections, ErrorStyle.Render("error: "+m.err.Error()))
	}

	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTitle() string {
	title := TitleStyle.Render(m.dataset.Title)
	if m.dataset.Description == "" {
		return title
	}

	return title + "  " + MutedStyle.Render(m.dataset.Description)
}

func (m Model) renderStatus() string {
	status := m.printer.Sprintf("Page %d of %d · %d rows", m.table.CurrentPage(), m.table.TotalPages(), m.table.Len())
	if m.table.Query() != "" {
		status += m.printer.Sprintf(" · %d matching", m.table.FilteredLen())
	}

	if sort := m.table.Sort(); sort.Field != "" {
		status += " · sorted by " + sort.String()
	}

	return MutedStyle.Render(status)
}

// RenderPageLinks renders the page navigation sequence with the current page
// highlighted.
func RenderPageLinks(links []tableview.PageLink, current int) string {
	parts := make([]string, 0, len(links))
	for _, link := range links {
		switch {
		case link.IsEllipsis():
			parts = append(parts, EllipsisStyle.Render(link.String()))
		case link.Page == current:
			parts = append(parts, CurrentPageStyle.Render(link.String()))
		default:
			parts = append(parts, PageStyle.Render(link.String()))
		}
	}

	return strings.Join(parts, "")
}
