package rule

import (
	"sort"
	"strings"
)

var registry []Rule

// Register adds a rule to the global registry. Rule packages call it from
// init.
func Register(r Rule) {
	registry = append(registry, r)
}

// All returns a copy of all registered rules ordered by code, which is
// also the order they are evaluated in.
func All() []Rule {
	result := make([]Rule, len(registry))
	copy(result, registry)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].ID() < result[j].ID()
	})
	return result
}

// Lookup returns the registered rule with the given code (case-insensitive)
// or name, or nil.
func Lookup(query string) Rule {
	for _, r := range registry {
		if strings.EqualFold(r.ID(), query) || r.Name() == query {
			return r
		}
	}
	return nil
}

// Reset clears the registry. Used for testing.
func Reset() {
	registry = nil
}
