package capability

import (
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/probelab/lawspace/internal/log"
)

// ManifestFile is the root structure of a capability manifest YAML file.
type ManifestFile struct {
	Capabilities []TypeDef `yaml:"capabilities"`
}

// TypeDef declares one target type's supported operations in YAML.
type TypeDef struct {
	Type       string   `yaml:"type"`       // e.g. "Chain"
	Operations []string `yaml:"operations"` // e.g. ["map", "filter", "fold"]
}

// Manifest is the statically declared capability table: a fixed mapping
// from target type to the operation names it supports. It replaces live
// type-system introspection as the host-supplied primitive.
type Manifest struct {
	types map[string][]string
}

// NewManifest builds a manifest from an explicit mapping. Mostly for tests;
// production code loads YAML via LoadManifests.
func NewManifest(types map[string][]string) *Manifest {
	if types == nil {
		types = make(map[string][]string)
	}
	return &Manifest{types: types}
}

// LoadManifests loads every *.yaml manifest under root in the given
// filesystem and merges the declarations. A type declared in several files
// ends up with the union of its operation lists.
func LoadManifests(fsys fs.FS, root string) (*Manifest, error) {
	merged := make(map[string][]string)

	err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".yaml") {
			return nil
		}

		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("reading manifest %s: %w", path, err)
		}

		var file ManifestFile
		if err := yaml.Unmarshal(content, &file); err != nil {
			return fmt.Errorf("parsing manifest %s: %w", path, err)
		}

		for _, def := range file.Capabilities {
			if def.Type == "" {
				return fmt.Errorf("manifest %s: capability entry with empty type", path)
			}
			if _, exists := merged[def.Type]; exists {
				log.Debug(log.CatManifest, "Merging duplicate type declaration", "type", def.Type, "path", path)
			}
			merged[def.Type] = mergeNames(merged[def.Type], def.Operations)
		}

		log.Debug(log.CatManifest, "Loaded manifest", "path", path, "types", len(file.Capabilities))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking manifests: %w", err)
	}

	log.Info(log.CatManifest, "Capability manifests loaded", "types", len(merged))
	return &Manifest{types: merged}, nil
}

func mergeNames(existing, extra []string) []string {
	seen := make(map[string]bool, len(existing)+len(extra))
	var out []string
	for _, name := range append(slices.Clone(existing), extra...) {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

// Types returns the declared type names, sorted for determinism.
func (m *Manifest) Types() []string {
	out := make([]string, 0, len(m.types))
	for name := range m.types {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// Operations returns the declared operations for a type.
func (m *Manifest) Operations(typeName string) ([]string, bool) {
	ops, ok := m.types[typeName]
	return ops, ok
}

// Introspector adapts the manifest to the host-supplied introspection
// contract consumed by From.
func (m *Manifest) Introspector() Introspector {
	return func(typeName string) ([]string, bool) {
		ops, ok := m.types[typeName]
		return ops, ok
	}
}
