package variants

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// Load reads and decodes a single variant file from fsys.
func Load(fsys fs.FS, name string) (*Variant, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("variants: load %s: %w", name, err)
	}
	v, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

// Set is every variant found in a directory, keyed by name.
type Set struct {
	byName map[string]*Variant
	names  []string
}

// LoadAll decodes every .yaml/.yml file in dir. Variant names must be
// unique across files.
func LoadAll(fsys fs.FS, dir string) (*Set, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("variants: read %s: %w", dir, err)
	}

	set := &Set{byName: make(map[string]*Variant)}
	for _, e := range entries {
		if e.IsDir() || !IsVariantFile(e.Name()) {
			continue
		}
		v, err := Load(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		if _, dup := set.byName[v.Name]; dup {
			return nil, fmt.Errorf("variants: duplicate variant %q in %s", v.Name, e.Name())
		}
		set.byName[v.Name] = v
		set.names = append(set.names, v.Name)
	}
	if len(set.names) == 0 {
		return nil, fmt.Errorf("variants: no variant files in %s", dir)
	}
	sort.Strings(set.names)
	return set, nil
}

// Names returns the variant names in sorted order.
func (s *Set) Names() []string {
	return append([]string(nil), s.names...)
}

// Get returns the named variant.
func (s *Set) Get(name string) (*Variant, bool) {
	v, ok := s.byName[name]
	return v, ok
}

// MustGet is Get for names known at build time.
func (s *Set) MustGet(name string) *Variant {
	v, ok := s.byName[name]
	if !ok {
		panic(fmt.Sprintf("unknown variant %q", name))
	}
	return v
}

// Put adds or replaces a variant, used when a file is reloaded.
func (s *Set) Put(v *Variant) {
	if _, ok := s.byName[v.Name]; !ok {
		s.names = append(s.names, v.Name)
		sort.Strings(s.names)
	}
	s.byName[v.Name] = v
}

func IsVariantFile(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
