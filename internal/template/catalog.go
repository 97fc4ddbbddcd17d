package template

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
)

// CatalogFileName is the name of the embedded authored catalog.
const CatalogFileName = "templates.json"

//go:embed templates.json
var dataFS embed.FS

// CatalogFile is the structure of templates.json.
type CatalogFile struct {
	Templates []Template `json:"templates"`
}

// Catalog holds authored templates keyed by ID.
type Catalog struct {
	templates map[string]*Template
}

// NewCatalog builds a catalog from template definitions. IDs must be unique
// and non-empty.
func NewCatalog(templates []Template) (*Catalog, error) {
	c := &Catalog{templates: make(map[string]*Template, len(templates))}
	for i := range templates {
		t := templates[i]
		if t.ID == "" {
			return nil, fmt.Errorf("template %d has no id", i)
		}
		if t.ID == FallbackID {
			return nil, fmt.Errorf("template id %q is reserved", FallbackID)
		}
		if _, dup := c.templates[t.ID]; dup {
			return nil, fmt.Errorf("duplicate template id %q", t.ID)
		}
		t.Synthesized = false
		c.templates[t.ID] = &t
	}
	return c, nil
}

// LoadCatalog loads the embedded templates.json.
func LoadCatalog() (*Catalog, error) {
	return LoadCatalogFS(dataFS, CatalogFileName)
}

// LoadCatalogFS loads a catalog file in the templates.json format from fsys.
func LoadCatalogFS(fsys fs.FS, filename string) (*Catalog, error) {
	file, err := loadJSON[CatalogFile](fsys, filename)
	if err != nil {
		return nil, err
	}
	if len(file.Templates) == 0 {
		return nil, fmt.Errorf("no templates loaded from %s", filename)
	}
	return NewCatalog(file.Templates)
}

func loadJSON[T any](fsys fs.FS, filename string) (T, error) {
	var result T

	content, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return result, fmt.Errorf("failed to read %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// MustLoadCatalog loads the embedded catalog, panicking on error.
func MustLoadCatalog() *Catalog {
	catalog, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return catalog
}

// Lookup returns the template with the given ID, or nil if not found.
// A nil catalog has no templates.
func (c *Catalog) Lookup(id string) *Template {
	if c == nil {
		return nil
	}
	return c.templates[id]
}

// IDs returns the registered template IDs in sorted order.
func (c *Catalog) IDs() []string {
	if c == nil {
		return nil
	}
	ids := make([]string, 0, len(c.templates))
	for id := range c.templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Count returns the number of templates in the catalog.
func (c *Catalog) Count() int {
	if c == nil {
		return 0
	}
	return len(c.templates)
}
