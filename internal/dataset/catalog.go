package dataset

import (
	"embed"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/language"
)

//go:embed data/*.yaml
var builtinFS embed.FS

// Catalog is a set of datasets addressed by name.
type Catalog struct {
	datasets map[string]*Dataset
}

func NewCatalog() *Catalog {
	return &Catalog{datasets: make(map[string]*Dataset)}
}

// Builtin returns a catalog with the datasets shipped with the binary.
func Builtin(locale language.Tag) (*Catalog, error) {
	sub, err := fs.Sub(builtinFS, "data")
	if err != nil {
		return nil, err
	}

	c := NewCatalog()
	if _, err = c.LoadFS(sub, locale); err != nil {
		return nil, fmt.Errorf("built-in datasets: %w", err)
	}

	return c, nil
}

// LoadDir adds every *.yaml and *.yml file of dir. See LoadFS.
func (c *Catalog) LoadDir(dir string, locale language.Tag) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("datasets dir: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("datasets dir %s is not a directory", dir)
	}

	return c.LoadFS(os.DirFS(dir), locale)
}

// LoadFS adds every *.yaml and *.yml file at the root of fsys and returns the
// names of the loaded datasets. A dataset replaces an earlier one with the
// same name. Nothing is added when any file fails to load.
func (c *Catalog) LoadFS(fsys fs.FS, locale language.Tag) ([]string, error) {
	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := fs.Glob(fsys, pattern)
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}
	slices.Sort(files)

	loaded := make([]*Dataset, 0, len(files))
	for _, file := range files {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, err
		}

		d, err := Parse(data, locale)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path.Base(file), err)
		}

		loaded = append(loaded, d)
	}

	for _, d := range loaded {
		c.Add(d)
	}

	return lo.Map(loaded, func(d *Dataset, _ int) string {
		return d.Name
	}), nil
}

// Add registers d and reports whether it replaced a dataset of the same name.
func (c *Catalog) Add(d *Dataset) bool {
	_, replaced := c.datasets[d.Name]
	c.datasets[d.Name] = d

	return replaced
}

// Get returns the dataset registered under name.
func (c *Catalog) Get(name string) (*Dataset, error) {
	if d, ok := c.datasets[name]; ok {
		return d, nil
	}

	return nil, fmt.Errorf("%w: %q (available: %s)", ErrDatasetNotFound, name, strings.Join(c.Names(), ", "))
}

// Names returns the dataset names in lexical order.
func (c *Catalog) Names() []string {
	return slices.Sorted(maps.Keys(c.datasets))
}

// List returns the datasets ordered by name.
func (c *Catalog) List() []*Dataset {
	return lo.Map(c.Names(), func(name string, _ int) *Dataset {
		return c.datasets[name]
	})
}

func (c *Catalog) Len() int {
	return len(c.datasets)
}
