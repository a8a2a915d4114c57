package data

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/suderio/coup/internal/engine"
	"gopkg.in/yaml.v3"
)

//go:embed rulesets/*.yaml
var embedded embed.FS

// DefaultRuleset is the name of the ruleset used when none is configured.
const DefaultRuleset = "standard"

// Loader reads rulesets from a fallback hierarchy of directories, ending with
// the rulesets built into the binary.
type Loader struct {
	dataDirs []string
}

// NewLoader initializes a Loader with the given data directory fallback hierarchy
func NewLoader(dataDirs []string) *Loader {
	return &Loader{
		dataDirs: dataDirs,
	}
}

// LoadRuleset reads rulesets/<name>.yaml, overlays it onto the default rules
// and validates the result.
func (l *Loader) LoadRuleset(name string) (*RulesetDoc, error) {
	if name == "" {
		name = DefaultRuleset
	}
	doc := RulesetDoc{Name: name, Rules: engine.DefaultRuleset()}
	ref := filepath.Join("rulesets", fmt.Sprintf("%s.yaml", strings.ToLower(name)))
	if err := l.load(ref, &doc); err != nil {
		return nil, err
	}
	if err := doc.Rules.Validate(); err != nil {
		return nil, fmt.Errorf("ruleset %s: %w", name, err)
	}
	return &doc, nil
}

// ListRulesets returns the names of every ruleset reachable by the loader.
func (l *Loader) ListRulesets() ([]string, error) {
	seen := map[string]bool{}
	collect := func(fsys fs.FS) error {
		matches, err := fs.Glob(fsys, "rulesets/*.yaml")
		if err != nil {
			return err
		}
		for _, m := range matches {
			seen[strings.TrimSuffix(filepath.Base(m), ".yaml")] = true
		}
		return nil
	}
	for _, dir := range l.dataDirs {
		if err := collect(os.DirFS(dir)); err != nil {
			return nil, fmt.Errorf("failed to list rulesets in %s: %w", dir, err)
		}
	}
	if err := collect(embedded); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

func (l *Loader) load(ref string, target interface{}) error {
	for _, dir := range l.dataDirs {
		path := filepath.Join(dir, ref)
		f, err := os.Open(path)
		if err == nil {
			defer f.Close()
			return decode(ref, f, target)
		}
	}
	f, err := embedded.Open(filepath.ToSlash(ref))
	if err == nil {
		defer f.Close()
		return decode(ref, f, target)
	}
	return fmt.Errorf("could not find or open reference %s in any available data directory", ref)
}

func decode(ref string, r io.Reader, target interface{}) error {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("failed to decode yaml reference %s: %w", ref, err)
	}
	return nil
}
