package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/Alp4ka/tableview"
	"github.com/Alp4ka/tableview/internal/dataset"
	"github.com/Alp4ka/tableview/internal/tui"
)

// pageOutput is the structured form of one printed page.
type pageOutput struct {
	Dataset    string               `json:"dataset"         yaml:"dataset"`
	Query      string               `json:"query,omitempty" yaml:"query,omitempty"`
	Sort       *tableview.SortSpec  `json:"sort,omitempty"  yaml:"sort,omitempty"`
	Pagination tableview.PageMeta   `json:"pagination"      yaml:"pagination"`
	Links      []tableview.PageLink `json:"links"           yaml:"links"`
	Rows       []map[string]any     `json:"rows"            yaml:"rows"`
	State      string               `json:"state"           yaml:"state"`
}

func newListCmd(a *app) *cobra.Command {
	var (
		flags  tableFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "list <dataset>",
		Short: "Print one page of a dataset",
		Long: "Print one page of a dataset together with the page navigation and a state token. " +
			"Pass the token to --state to continue from the same query, sort and page.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}

			d, t, err := a.openTable(cmd, args[0], flags)
			if err != nil {
				return err
			}

			if format == outputTable {
				return a.renderPage(cmd.OutOrStdout(), d, t)
			}

			return renderStructured(cmd.OutOrStdout(), format, newPageOutput(d, t))
		},
	}

	flags.bind(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", string(outputTable), "output format: table, json or yaml")

	return cmd
}

func newPageOutput(d *dataset.Dataset, t *tableview.Table[dataset.Record]) pageOutput {
	page := t.Page()

	out := pageOutput{
		Dataset:    d.Name,
		Query:      t.Query(),
		Pagination: page.Meta(),
		Links:      page.Links,
		Rows: lo.Map(page.Items, func(r dataset.Record, _ int) map[string]any {
			return r.Map()
		}),
		State: t.State().String(),
	}

	if sort := t.Sort(); sort.Field != "" {
		out.Sort = &sort
	}

	return out
}

// renderPage prints the page as a grid followed by the status line, the page
// links and the state token.
func (a *app) renderPage(w io.Writer, d *dataset.Dataset, t *tableview.Table[dataset.Record]) error {
	page := t.Page()
	sort := t.Sort()

	headers := lo.Map(d.Columns, func(col dataset.Column, _ int) string {
		return tui.ColumnTitle(col, sort)
	})
	rows := lo.Map(page.Items, func(r dataset.Record, _ int) []string {
		return lo.Map(d.Columns, func(col dataset.Column, _ int) string {
			return col.Format(a.printer, r)
		})
	})
	numeric := lo.Map(d.Columns, func(col dataset.Column, _ int) bool {
		return col.Kind == dataset.KindNumber
	})

	if err := renderGrid(w, headers, rows, numeric); err != nil {
		return err
	}

	if len(page.Items) == 0 {
		fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("no rows match %q", t.Query())))
	}

	status := a.printer.Sprintf("Page %d of %d · %d rows", page.CurrentPage, page.TotalPages, t.Len())
	if t.Query() != "" {
		status += a.printer.Sprintf(" · %d matching %q", t.FilteredLen(), t.Query())
	}
	if sort.Field != "" {
		status += " · sorted by " + sort.String()
	}

	fmt.Fprintln(w, status)
	fmt.Fprintln(w, formatLinks(page.Links, page.CurrentPage))
	_, err := fmt.Fprintln(w, mutedStyle.Render("state: "+t.State().String()))

	return err
}

// formatLinks renders the page navigation sequence as plain text with the
// current page in brackets, e.g. "1 … 4 5 [6] 7 8 … 20".
func formatLinks(links []tableview.PageLink, current int) string {
	return strings.Join(lo.Map(links, func(link tableview.PageLink, _ int) string {
		if !link.IsEllipsis() && link.Page == current {
			return "[" + link.String() + "]"
		}

		return link.String()
	}), " ")
}
