// Package tui implements the interactive dataset browser: a bubbletea model
// that renders one page of a tableview.Table and maps keys onto its sort,
// search and page operations.
package tui

import (
	"context"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/text/message"

	"github.com/Alp4ka/tableview"
	"github.com/Alp4ka/tableview/internal/dataset"
)

// ViewState represents the current input mode of the browser.
type ViewState int

const (
	// ViewStateList routes keys to navigation and sorting.
	ViewStateList ViewState = iota
	// ViewStateSearch routes keys to the search input.
	ViewStateSearch
	// ViewStateQuitting is set once a quit key was pressed.
	ViewStateQuitting
)

const (
	chromeHeight   = 8 // lines rendered around the table
	headerHeight   = 2 // header row and its bottom border
	minTableHeight = 3
	maxColumnWidth = 32
	searchLimit    = 64
)

// ItemsLoadedMsg carries the result of a reload from the dataset source.
type ItemsLoadedMsg struct {
	Items []dataset.Record
	Err   error
}

// Model is the bubbletea model of the browser.
type Model struct {
	ctx     context.Context
	dataset *dataset.Dataset
	table   *tableview.Table[dataset.Record]
	source  tableview.Source[dataset.Record]
	printer *message.Printer

	keys   KeyMap
	help   help.Model
	grid   table.Model
	search textinput.Model

	state  ViewState
	column int
	width  int
	height int
	err    error
}

// New creates a browser over t, which holds the records of d. The reload key
// fetches the records again from d's source.
func New(ctx context.Context, d *dataset.Dataset, t *tableview.Table[dataset.Record], printer *message.Printer) Model {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = lo.Ternary(len(d.Search) > 0, "search", "no searchable columns")
	search.CharLimit = searchLimit
	search.SetValue(t.Query())

	grid := table.New(table.WithFocused(true))
	styles := table.DefaultStyles()
	styles.Header = TableHeaderStyle
	styles.Selected = TableSelectedStyle
	grid.SetStyles(styles)

	m := Model{
		ctx:     ctx,
		dataset: d,
		table:   t,
		source:  d.Source(),
		printer: printer,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		grid:    grid,
		search:  search,
		state:   ViewStateList,
	}

	if sort := t.Sort(); sort.Field != "" {
		m.column = max(0, slices.IndexFunc(d.Columns, func(col dataset.Column) bool {
			return col.Key == sort.Field
		}))
	}

	m.refresh()

	return m
}

// Init - implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update - implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.refresh()
		return m, nil
	case ItemsLoadedMsg:
		return m.handleItemsLoaded(msg), nil
	}

	if m.state == ViewStateSearch {
		return m.handleSearchInput(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.grid, cmd = m.grid.Update(msg)
		return m, cmd
	}

	return m.handleKeypress(keyMsg)
}

func (m Model) handleKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.state = ViewStateQuitting
		return m, tea.Quit
	case key.Matches(msg, m.keys.Search):
		m.state = ViewStateSearch
		m.grid.Blur()
		m.search.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Clear):
		if m.table.Query() != "" {
			m.search.SetValue("")
			m.setQuery("")
		}
		m.err = nil
		return m, nil
	case key.Matches(msg, m.keys.PrevColumn):
		m.column = max(0, m.column-1)
		m.refresh()
		return m, nil
	case key.Matches(msg, m.keys.NextColumn):
		m.column = min(len(m.dataset.Columns)-1, m.column+1)
		m.refresh()
		return m, nil
	case key.Matches(msg, m.keys.Sort):
		m.toggleSort()
		return m, nil
	case key.Matches(msg, m.keys.PrevPage):
		m.table.PrevPage()
		m.pageChanged()
		return m, nil
	case key.Matches(msg, m.keys.NextPage):
		m.table.NextPage()
		m.pageChanged()
		return m, nil
	case key.Matches(msg, m.keys.FirstPage):
		m.table.GoToPage(1)
		m.pageChanged()
		return m, nil
	case key.Matches(msg, m.keys.LastPage):
		m.table.GoToPage(m.table.TotalPages())
		m.pageChanged()
		return m, nil
	case key.Matches(msg, m.keys.Reload):
		return m, m.reload()
	}

	var cmd tea.Cmd
	m.grid, cmd = m.grid.Update(msg)
	return m, cmd
}

func (m Model) handleSearchInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			m.leaveSearch()
			return m, nil
		case "esc":
			m.search.SetValue("")
			m.setQuery("")
			m.leaveSearch()
			return m, nil
		case "ctrl+c":
			m.state = ViewStateQuitting
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.setQuery(m.search.Value())

	return m, cmd
}

func (m Model) handleItemsLoaded(msg ItemsLoadedMsg) Model {
	if msg.Err != nil {
		m.err = msg.Err
		zerolog.Ctx(m.ctx).Error().Err(msg.Err).Str("dataset", m.dataset.Name).Msg("reload failed")
		return m
	}

	m.err = nil
	m.table.SetItems(msg.Items)
	m.refresh()

	zerolog.Ctx(m.ctx).Debug().
		Str("dataset", m.dataset.Name).
		Int("items", len(msg.Items)).
		Msg("dataset reloaded")

	return m
}

// reload fetches the records off the update loop; the table is only touched
// when ItemsLoadedMsg arrives.
func (m Model) reload() tea.Cmd {
	ctx, src := m.ctx, m.source

	return func() tea.Msg {
		items, err := src.Fetch(ctx)
		return ItemsLoadedMsg{Items: items, Err: err}
	}
}

func (m *Model) leaveSearch() {
	m.state = ViewStateList
	m.search.Blur()
	m.grid.Focus()
}

func (m *Model) setQuery(query string) {
	if query == m.table.Query() {
		return
	}

	m.table.SetQuery(query)
	m.pageChanged()
}

func (m *Model) toggleSort() {
	col := m.dataset.Columns[m.column]
	if err := m.table.ToggleSort(col.Key); err != nil {
		m.err = err
		return
	}

	m.err = nil
	m.pageChanged()
}

// pageChanged redraws the grid and moves the row cursor to the top.
func (m *Model) pageChanged() {
	m.refresh()
	if len(m.grid.Rows()) > 0 {
		m.grid.SetCursor(0)
	}
}

// refresh rebuilds the grid columns and rows from the current page.
func (m *Model) refresh() {
	page := m.table.Page()
	sort := m.table.Sort()

	rows := lo.Map(page.Items, func(r dataset.Record, _ int) table.Row {
		return lo.Map(m.dataset.Columns, func(col dataset.Column, _ int) string {
			return col.Format(m.printer, r)
		})
	})

	columns := make([]table.Column, 0, len(m.dataset.Columns))
	for i, col := range m.dataset.Columns {
		title := ColumnTitle(col, sort)
		if i == m.column {
			title = "›" + title
		}

		width := lipgloss.Width(title)
		for _, row := range rows {
			width = max(width, lipgloss.Width(row[i]))
		}

		columns = append(columns, table.Column{Title: title, Width: min(width, maxColumnWidth)})
	}

	// Columns are replaced before rows so every row matches the column count.
	m.grid.SetRows(nil)
	m.grid.SetColumns(columns)
	m.grid.SetRows(rows)
	m.grid.SetHeight(m.tableHeight())
}

func (m Model) tableHeight() int {
	height := m.table.PageSize() + headerHeight
	if m.height > 0 {
		height = min(height, max(minTableHeight+headerHeight, m.height-chromeHeight))
	}

	return height
}

// ColumnTitle returns the header of col with an arrow marking the active
// sort direction.
func ColumnTitle(col dataset.Column, sort tableview.SortSpec) string {
	title := col.Header()
	if sort.Field == col.Key {
		title += lo.Ternary(sort.Direction == tableview.DirectionASC, " ▲", " ▼")
	}

	return title
}

// State returns the current input mode.
func (m Model) State() ViewState {
	return m.state
}

// Table returns the table driven by the browser.
func (m Model) Table() *tableview.Table[dataset.Record] {
	return m.table
}
