package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/Alp4ka/tableview"
	"github.com/Alp4ka/tableview/internal/dataset"
)

// tableFlags are the view flags shared by list and browse.
type tableFlags struct {
	query    string
	sort     string
	page     int
	pageSize int
	state    string
}

func (f *tableFlags) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.query, "query", "q", "", "filter rows by text in the searchable columns")
	flags.StringVarP(&f.sort, "sort", "s", "", `sort expression "field [asc|desc]"`)
	flags.IntVarP(&f.page, "page", "p", 1, "page number, clamped to the available pages")
	flags.IntVar(&f.pageSize, "page-size", 0, "rows per page (0 uses the config or dataset default)")
	flags.StringVar(&f.state, "state", "", "resume from a state token printed by an earlier run")
}

// openTable builds the table of the named dataset. The state token is applied
// first; query, sort and page flags given explicitly override it in that
// order, so the page always refers to the final view.
func (a *app) openTable(cmd *cobra.Command, name string, f tableFlags) (*dataset.Dataset, *tableview.Table[dataset.Record], error) {
	d, err := a.catalog.Get(name)
	if err != nil {
		return nil, nil, err
	}

	if _, ok := tableview.IsNormalizedPageSizeMax(f.pageSize, tableview.MaxPageSize); f.pageSize != 0 && !ok {
		return nil, nil, fmt.Errorf("--page-size must be between 1 and %d, got %d", tableview.MaxPageSize, f.pageSize)
	}

	var opts []tableview.TableOption
	if size := lo.CoalesceOrEmpty(f.pageSize, a.cfg.PageSize); size > 0 {
		opts = append(opts, tableview.WithPageSize(size))
	}

	t, err := d.NewTable(opts...)
	if err != nil {
		return nil, nil, err
	}

	state, err := tableview.DecodePageState(f.state)
	if err != nil {
		return nil, nil, err
	}

	if !state.IsEmpty() {
		if err = t.Restore(state); err != nil {
			return nil, nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("query") {
		t.SetQuery(f.query)
	}

	if flags.Changed("sort") {
		spec, err := tableview.ParseSort(f.sort, d.Fields)
		if err != nil {
			return nil, nil, err
		}

		if err = t.SetSort(spec.Field, spec.Direction); err != nil {
			return nil, nil, err
		}
	}

	if flags.Changed("page") {
		t.GoToPage(f.page)
	}

	zerolog.Ctx(cmd.Context()).Debug().
		Str("dataset", d.Name).
		Str("query", t.Query()).
		Stringer("sort", t.Sort()).
		Int("page", t.CurrentPage()).
		Int("total_pages", t.TotalPages()).
		Msg("table opened")

	return d, t, nil
}
