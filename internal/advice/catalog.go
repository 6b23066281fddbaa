package advice

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

var ErrIncompleteCatalog = errors.New("advice catalog is incomplete")

// Bundle is the advice copy shown for one category.
type Bundle struct {
	Diet      []string `json:"diet" yaml:"diet"`
	Exercise  []string `json:"exercise" yaml:"exercise"`
	Hydration []string `json:"hydration" yaml:"hydration"`
	Tips      []string `json:"tips" yaml:"tips"`
}

func (b Bundle) clone() Bundle {
	return Bundle{
		Diet:      cloneLines(b.Diet),
		Exercise:  cloneLines(b.Exercise),
		Hydration: cloneLines(b.Hydration),
		Tips:      cloneLines(b.Tips),
	}
}

// cloneLines never returns nil so empty sections encode as [].
func cloneLines(lines []string) []string {
	return append(make([]string, 0, len(lines)), lines...)
}

type catalogDoc struct {
	Categories  map[string]Bundle `yaml:"categories"`
	GeneralTips []string          `yaml:"general_tips"`
}

// Catalog is the category -> bundle lookup table.
type Catalog struct {
	bundles     map[Category]Bundle
	generalTips []string
}

var defaultCatalog = mustLoadDefault()

func mustLoadDefault() *Catalog {
	c, err := ParseCatalog(defaultCatalogYAML)
	if err != nil {
		panic(fmt.Sprintf("advice: embedded catalog: %v", err))
	}
	return c
}

// DefaultCatalog returns the catalog compiled into the binary.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// LoadCatalog parses a YAML catalog from r.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("advice.LoadCatalog(): read: %w", err)
	}
	return ParseCatalog(data)
}

// LoadCatalogFile parses the YAML catalog at path.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadCatalog(f)
}

// ParseCatalog decodes and checks a YAML catalog. Every category must be
// present with at least one diet and one exercise line.
func ParseCatalog(data []byte) (*Catalog, error) {
	var doc catalogDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("advice.ParseCatalog(): %w", err)
	}

	c := &Catalog{
		bundles:     make(map[Category]Bundle, len(Categories)),
		generalTips: doc.GeneralTips,
	}
	for key, b := range doc.Categories {
		cat := Category(key)
		if !slices.Contains(Categories, cat) {
			return nil, fmt.Errorf("advice.ParseCatalog(): unknown category %q", key)
		}
		c.bundles[cat] = b
	}
	for _, cat := range Categories {
		b, ok := c.bundles[cat]
		if !ok {
			return nil, fmt.Errorf("%w: missing %q", ErrIncompleteCatalog, cat)
		}
		if len(b.Diet) == 0 || len(b.Exercise) == 0 {
			return nil, fmt.Errorf("%w: %q needs diet and exercise entries", ErrIncompleteCatalog, cat)
		}
	}
	return c, nil
}

// Bundle returns the copy for cat, with the general tips appended to the
// category's own tips.
func (c *Catalog) Bundle(cat Category) (Bundle, bool) {
	b, ok := c.bundles[cat]
	if !ok {
		return Bundle{}, false
	}
	out := b.clone()
	out.Tips = append(out.Tips, c.generalTips...)
	return out, true
}

// GeneralTips returns the tips shared by every category.
func (c *Catalog) GeneralTips() []string {
	return cloneLines(c.generalTips)
}

// Recommend looks cat up in the embedded catalog. Unknown categories get an
// empty bundle.
func Recommend(cat Category) Bundle {
	b, _ := defaultCatalog.Bundle(cat)
	return b
}
