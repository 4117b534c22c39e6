package dataset

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed definitions/*.yml
var definitions embed.FS

// Provider supplies the three immutable tables the classifier depends
// on. The classifier never mutates what a Provider returns.
type Provider interface {
	// Languages returns the language table.
	Languages() Languages

	// Heuristics returns the disambiguation blocks and named patterns.
	Heuristics() *Heuristics

	// VendorPatterns returns the ordered vendor regex list.
	VendorPatterns() []string
}

// Dataset is an in-memory Provider backed by parsed YAML definitions.
type Dataset struct {
	Langs   Languages  `msgpack:"languages"`
	Heur    Heuristics `msgpack:"heuristics"`
	Vendors []string   `msgpack:"vendor"`
}

// Languages implements Provider.
func (d *Dataset) Languages() Languages { return d.Langs }

// Heuristics implements Provider.
func (d *Dataset) Heuristics() *Heuristics { return &d.Heur }

// VendorPatterns implements Provider.
func (d *Dataset) VendorPatterns() []string { return d.Vendors }

func parse(languages, heuristics, vendor []byte) (*Dataset, error) {
	d := &Dataset{}
	if err := yaml.Unmarshal(languages, &d.Langs); err != nil {
		return nil, fmt.Errorf("parsing languages.yml: %w", err)
	}
	if err := yaml.Unmarshal(heuristics, &d.Heur); err != nil {
		return nil, fmt.Errorf("parsing heuristics.yml: %w", err)
	}
	if err := yaml.Unmarshal(vendor, &d.Vendors); err != nil {
		return nil, fmt.Errorf("parsing vendor.yml: %w", err)
	}
	return d, nil
}

// Load reads languages.yml, heuristics.yml and vendor.yml from dir.
func Load(dir string) (*Dataset, error) {
	languages, err := os.ReadFile(filepath.Join(dir, "languages.yml"))
	if err != nil {
		return nil, fmt.Errorf("reading languages.yml: %w", err)
	}
	heuristics, err := os.ReadFile(filepath.Join(dir, "heuristics.yml"))
	if err != nil {
		return nil, fmt.Errorf("reading heuristics.yml: %w", err)
	}
	vendor, err := os.ReadFile(filepath.Join(dir, "vendor.yml"))
	if err != nil {
		return nil, fmt.Errorf("reading vendor.yml: %w", err)
	}
	return parse(languages, heuristics, vendor)
}

var (
	defaultDataset *Dataset
	defaultErr     error
	defaultOnce    sync.Once
)

// Default returns the dataset embedded in the binary. It is parsed once
// on first use and shared afterwards.
func Default() (*Dataset, error) {
	defaultOnce.Do(func() {
		languages, err := definitions.ReadFile("definitions/languages.yml")
		if err != nil {
			defaultErr = err
			return
		}
		heuristics, err := definitions.ReadFile("definitions/heuristics.yml")
		if err != nil {
			defaultErr = err
			return
		}
		vendor, err := definitions.ReadFile("definitions/vendor.yml")
		if err != nil {
			defaultErr = err
			return
		}
		defaultDataset, defaultErr = parse(languages, heuristics, vendor)
	})
	return defaultDataset, defaultErr
}
