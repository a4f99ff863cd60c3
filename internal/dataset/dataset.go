// Package dataset loads the dashboard record sets browsed by the tableview
// command. A dataset is a YAML document with a column schema and rows; the
// schema is turned into tableview fields when the document is parsed, so a
// cell whose value does not match its column kind is rejected up front.
package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/samber/lo"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/Alp4ka/tableview"
)

const idKey = "id"

var _nameSymbols = append(append([]rune("-"), lo.LowerCaseLettersCharset...), lo.NumbersCharset...)

type definition struct {
	Name        string           `yaml:"name"`
	Title       string           `yaml:"title"`
	Description string           `yaml:"description"`
	PageSize    int              `yaml:"page_size"`
	DefaultSort *sortDefinition  `yaml:"default_sort"`
	Search      []string         `yaml:"search"`
	Columns     []Column         `yaml:"columns"`
	Rows        []map[string]any `yaml:"rows"`
}

type sortDefinition struct {
	Field     string `yaml:"field"`
	Direction string `yaml:"direction"`
}

// Dataset is a parsed, validated record set.
type Dataset struct {
	Name        string
	Title       string
	Description string
	Columns     []Column
	Records     []Record
	Fields      tableview.Fields[Record]
	PageSize    int
	// DefaultSort has an empty Field when rows keep file order.
	DefaultSort tableview.SortSpec
	Search      []string
}

// Parse decodes and validates a dataset document. String columns collate
// according to locale.
func Parse(data []byte, locale language.Tag) (*Dataset, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var def definition
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDataset)
		}

		return nil, fmt.Errorf("%w: %w", ErrInvalidDataset, err)
	}

	return def.build(locale)
}

func (def definition) build(locale language.Tag) (*Dataset, error) {
	if def.Name == "" || !lo.Every(_nameSymbols, []rune(def.Name)) {
		return nil, fmt.Errorf("%w: name %q must be lowercase letters, digits and dashes", ErrInvalidDataset, def.Name)
	}

	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: dataset %q: %s", ErrInvalidDataset, def.Name, fmt.Sprintf(format, args...))
	}

	if len(def.Columns) == 0 {
		return nil, invalid("no columns")
	}

	if _, ok := tableview.IsNormalizedPageSizeMax(def.PageSize, tableview.MaxPageSize); def.PageSize != 0 && !ok {
		return nil, invalid("page_size must be between 1 and %d", tableview.MaxPageSize)
	}

	fieldList := make([]tableview.Field[Record], 0, len(def.Columns))
	for _, col := range def.Columns {
		if err := col.validate(); err != nil {
			return nil, invalid("%v", err)
		}

		fieldList = append(fieldList, col.field(locale))
	}

	fields, err := tableview.NewFields(fieldList...)
	if err != nil {
		return nil, invalid("%v", err)
	}

	records, err := def.records()
	if err != nil {
		return nil, fmt.Errorf("dataset %q: %w", def.Name, err)
	}

	d := &Dataset{
		Name:        def.Name,
		Title:       lo.Ternary(def.Title != "", def.Title, def.Name),
		Description: def.Description,
		Columns:     def.Columns,
		Records:     records,
		Fields:      fields,
		PageSize:    tableview.NormalizePageSize(def.PageSize),
		Search:      def.Search,
	}

	if def.DefaultSort != nil {
		expr := def.DefaultSort.Field
		if def.DefaultSort.Direction != "" {
			expr += " " + def.DefaultSort.Direction
		}

		if d.DefaultSort, err = tableview.ParseSort(expr, fields); err != nil {
			return nil, invalid("default_sort: %v", err)
		}
	}

	if _, err = d.NewTable(); err != nil {
		return nil, invalid("%v", err)
	}

	return d, nil
}

func (def definition) records() ([]Record, error) {
	columns := lo.SliceToMap(def.Columns, func(col Column) (string, Column) {
		return col.Key, col
	})

	seen := make(map[string]struct{}, len(def.Rows))
	records := make([]Record, 0, len(def.Rows))

	for i, row := range def.Rows {
		id, err := rowID(row[idKey])
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", ErrInvalidDataset, i+1, err)
		}

		if _, ok := seen[id]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, id)
		}
		seen[id] = struct{}{}

		for key := range row {
			if _, ok := columns[key]; !ok && key != idKey {
				return nil, fmt.Errorf("%w: record %q: unknown column %q", ErrInvalidDataset, id, key)
			}
		}

		cells := make(map[string]any, len(def.Columns))
		for _, col := range def.Columns {
			raw, ok := row[col.Key]
			if !ok {
				return nil, fmt.Errorf("%w: record %q: missing column %q", ErrCellType, id, col.Key)
			}

			if cells[col.Key], err = col.decode(raw); err != nil {
				return nil, fmt.Errorf("record %q: %w", id, err)
			}
		}

		records = append(records, Record{id: id, cells: cells})
	}

	return records, nil
}

func rowID(raw any) (string, error) {
	switch v := raw.(type) {
	case string:
		if v != "" {
			return v, nil
		}
	case int:
		return strconv.Itoa(v), nil
	case nil:
		return "", fmt.Errorf("missing %q", idKey)
	}

	return "", fmt.Errorf("%q must be a non-empty string or an integer, got %v", idKey, raw)
}

// NewTable creates a table over the records using the dataset's page size,
// search fields and default sort. opts are applied last.
func (d *Dataset) NewTable(opts ...tableview.TableOption) (*tableview.Table[Record], error) {
	base := []tableview.TableOption{
		tableview.WithPageSize(d.PageSize),
		tableview.WithSearchFields(d.Search...),
	}
	if d.DefaultSort.Field != "" {
		base = append(base,
			tableview.WithDefaultSort(d.DefaultSort.Field),
			tableview.WithDefaultSortDirection(d.DefaultSort.Direction),
		)
	}

	table, err := tableview.NewTable(d.Fields, append(base, opts...)...)
	if err != nil {
		return nil, err
	}

	table.SetItems(d.Records)

	return table, nil
}

// Source serves the records of the dataset.
func (d *Dataset) Source() tableview.Source[Record] {
	return tableview.SliceSource[Record](d.Records)
}

// Column returns the column registered under key.
func (d *Dataset) Column(key string) (Column, bool) {
	return lo.Find(d.Columns, func(col Column) bool {
		return col.Key == key
	})
}
