package cli

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/Alp4ka/tableview/internal/dataset"
)

// datasetSummary describes one catalog entry in structured output.
type datasetSummary struct {
	Name        string           `json:"name"                   yaml:"name"`
	Title       string           `json:"title"                  yaml:"title"`
	Description string           `json:"description,omitempty"  yaml:"description,omitempty"`
	Rows        int              `json:"rows"                   yaml:"rows"`
	PageSize    int              `json:"page_size"              yaml:"page_size"`
	DefaultSort string           `json:"default_sort,omitempty" yaml:"default_sort,omitempty"`
	Search      []string         `json:"search,omitempty"       yaml:"search,omitempty"`
	Columns     []dataset.Column `json:"columns"                yaml:"columns"`
}

func newDatasetsCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "datasets",
		Short: "List the available datasets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}

			summaries := lo.Map(a.catalog.List(), func(d *dataset.Dataset, _ int) datasetSummary {
				return summarize(d)
			})

			if format != outputTable {
				return renderStructured(cmd.OutOrStdout(), format, summaries)
			}

			headers := []string{"Name", "Title", "Rows", "Page Size", "Default Sort", "Columns"}
			rows := lo.Map(summaries, func(s datasetSummary, _ int) []string {
				keys := lo.Map(s.Columns, func(col dataset.Column, _ int) string {
					return col.Key
				})

				return []string{
					s.Name,
					s.Title,
					strconv.Itoa(s.Rows),
					strconv.Itoa(s.PageSize),
					lo.Ternary(s.DefaultSort != "", s.DefaultSort, "-"),
					strings.Join(keys, ", "),
				}
			})

			return renderGrid(cmd.OutOrStdout(), headers, rows, []bool{false, false, true, true})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", string(outputTable), "output format: table, json or yaml")

	return cmd
}

func summarize(d *dataset.Dataset) datasetSummary {
	s := datasetSummary{
		Name:        d.Name,
		Title:       d.Title,
		Description: d.Description,
		Rows:        len(d.Records),
		PageSize:    d.PageSize,
		Search:      d.Search,
		Columns:     d.Columns,
	}

	if d.DefaultSort.Field != "" {
		s.DefaultSort = d.DefaultSort.String()
	}

	return s
}
