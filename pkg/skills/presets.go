package skills

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"

	"go.yaml.in/yaml/v4"
)

// Names of the presets shipped in presets.yaml.
const (
	PresetTechnology = "technology"
	PresetKnown      = "known"
)

//go:embed presets.yaml
var defaultPresets []byte

// Presets maps a preset name to its vocabulary.
type Presets map[string]Vocabulary

type presetsFile struct {
	Presets map[string][]string `yaml:"presets"`
}

// DefaultPresets returns the embedded presets.
func DefaultPresets() Presets {
	p, err := parsePresets(defaultPresets)
	if err != nil {
		panic(fmt.Sprintf("embedded skill presets: %v", err))
	}
	return p
}

// LoadPresets reads a YAML preset document.
func LoadPresets(r io.Reader) (Presets, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read skill presets: %w", err)
	}
	return parsePresets(data)
}

// LoadPresetsFile reads presets from path, or the embedded defaults when
// path is empty.
func LoadPresetsFile(path string) (Presets, error) {
	if path == "" {
		return DefaultPresets(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open skill presets: %w", err)
	}
	defer f.Close()
	return LoadPresets(f)
}

func parsePresets(data []byte) (Presets, error) {
	var doc presetsFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse skill presets: %w", err)
	}
	if len(doc.Presets) == 0 {
		return nil, fmt.Errorf("parse skill presets: no presets defined")
	}
	out := make(Presets, len(doc.Presets))
	for name, terms := range doc.Presets {
		out[name] = NewVocabulary(name, terms...)
	}
	return out, nil
}

// Get returns the named vocabulary.
func (p Presets) Get(name string) (Vocabulary, error) {
	v, ok := p[name]
	if !ok {
		return Vocabulary{}, fmt.Errorf("unknown skill preset %q (have %v)", name, p.names())
	}
	return v, nil
}

func (p Presets) names() []string {
	out := make([]string, 0, len(p))
	for n := range p {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
