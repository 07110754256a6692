package sig

import (
	"fmt"
	"sort"
)

// Catalog is a process-wide, immutable-after-build ordered collection of
// Signature definitions: constructed once, read-only thereafter, shared
// across all scans.
type Catalog struct {
	entries []Signature
	byName  map[string]int
}

// NewCatalog builds a Catalog from every signature registered via Register.
// include/exclude, if non-empty, restrict the result to (or remove) the
// named signatures; an unknown name is a ConfigError-class error.
func NewCatalog(include, exclude []string) (*Catalog, error) {
	all := registered()

	var names map[string]bool
	if len(include) > 0 {
		names = make(map[string]bool, len(include))
		for _, n := range include {
			names[n] = true
		}
	}
	excl := make(map[string]bool, len(exclude))
	for _, n := range exclude {
		excl[n] = true
	}

	known := make(map[string]bool, len(all))
	for _, s := range all {
		known[s.Name] = true
	}
	for _, n := range include {
		if !known[n] {
			return nil, fmt.Errorf("binscan: unknown signature %q", n)
		}
	}
	for _, n := range exclude {
		if !known[n] {
			return nil, fmt.Errorf("binscan: unknown signature %q", n)
		}
	}

	c := &Catalog{byName: make(map[string]int)}
	for _, s := range all {
		if names != nil && !names[s.Name] {
			continue
		}
		if excl[s.Name] {
			continue
		}
		c.byName[s.Name] = len(c.entries)
		c.entries = append(c.entries, s)
	}

	sort.Slice(c.entries, func(i, j int) bool { return c.entries[i].Name < c.entries[j].Name })
	// rebuild index after sort
	for i, s := range c.entries {
		c.byName[s.Name] = i
	}
	return c, nil
}

// Entries returns the catalog's signatures in a stable, name-sorted order.
func (c *Catalog) Entries() []Signature { return c.entries }

// Get looks up a signature by name.
func (c *Catalog) Get(name string) (Signature, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Signature{}, false
	}
	return c.entries[i], true
}

var registry []Signature

// Register adds a signature to the process-wide registry. Called from each
// format's init() in internal/signatures; panics on duplicate names since
// that indicates a programming error in this repository, not bad input.
func Register(s Signature) {
	for _, existing := range registry {
		if existing.Name == s.Name {
			panic(fmt.Sprintf("binscan: duplicate signature name %q", s.Name))
		}
	}
	registry = append(registry, s)
}

func registered() []Signature {
	out := make([]Signature, len(registry))
	copy(out, registry)
	return out
}
