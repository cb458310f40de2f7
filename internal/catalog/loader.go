// Package catalog provides the machine, grinder and bean reference data the
// recommendation engine ranks. The default catalog is embedded in the binary.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/denisok6893-rgb/brew-matching/internal/domain"
)

//go:embed catalog.yaml
var catalogRawData []byte

// Catalog provides lazy-loaded access to the embedded reference catalog.
type Catalog struct {
	once sync.Once
	data domain.Catalog
	err  error
}

// New creates a Catalog that parses the embedded YAML on first access.
func New() *Catalog {
	return &Catalog{}
}

// Load returns a copy of the embedded catalog.
func (c *Catalog) Load() (domain.Catalog, error) {
	c.once.Do(c.load)
	if c.err != nil {
		return domain.Catalog{}, c.err
	}
	return clone(c.data), nil
}

func (c *Catalog) load() {
	c.data, c.err = parseYAML(catalogRawData)
	if c.err == nil {
		normalize(&c.data)
		c.err = Validate(c.data)
	}
}

// Open returns the catalog stored at path, or the embedded one when path is empty.
func Open(path string) (domain.Catalog, error) {
	if path == "" {
		return New().Load()
	}
	return LoadFile(path)
}

// LoadFile reads a catalog from a YAML or JSON file, chosen by extension.
func LoadFile(path string) (domain.Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("read catalog file: %w", err)
	}

	var cat domain.Catalog
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(b, &cat); err != nil {
			return domain.Catalog{}, fmt.Errorf("unmarshal catalog: %w", err)
		}
	default:
		if cat, err = parseYAML(b); err != nil {
			return domain.Catalog{}, err
		}
	}

	normalize(&cat)
	if err := Validate(cat); err != nil {
		return domain.Catalog{}, err
	}
	return cat, nil
}

// normalize rewrites accepted machine type aliases to their canonical value.
func normalize(cat *domain.Catalog) {
	for i := range cat.Machines {
		if t, err := domain.ParseMachineType(string(cat.Machines[i].Type)); err == nil {
			cat.Machines[i].Type = t
		}
	}
}

func parseYAML(b []byte) (domain.Catalog, error) {
	var cat domain.Catalog
	if err := yaml.Unmarshal(b, &cat); err != nil {
		return domain.Catalog{}, fmt.Errorf("catalog: parse yaml: %w", err)
	}
	return cat, nil
}

func clone(c domain.Catalog) domain.Catalog {
	return domain.Catalog{
		Machines: append([]domain.EspressoMachine(nil), c.Machines...),
		Grinders: append([]domain.CoffeeGrinder(nil), c.Grinders...),
		Beans:    append([]domain.CoffeeBean(nil), c.Beans...),
	}
}
