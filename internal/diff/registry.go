// Package diff provides bounded difference metrics between words.
package diff

import (
	"fmt"
	"sort"
	"strings"
)

// Metric names accepted by Lookup.
const (
	NameFurry      = "furry"
	NameMewtations = "mewtations"
	NameDamerau    = "damerau"
	NameFinal      = "final"
)

// Lookup resolves a metric by name. Each call to "mewtations" returns a
// metric with its own counter; use NewMewtations directly to read it.
func Lookup(name string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameFurry:
		return FurryFixes, nil
	case NameMewtations:
		return NewMewtations().Distance, nil
	case NameDamerau:
		return Damerau, nil
	case NameFinal:
		return FinalDiff, nil
	default:
		return nil, fmt.Errorf("unknown metric %q (available: %s)", name, strings.Join(Names(), ", "))
	}
}

// Names lists the metrics accepted by Lookup.
func Names() []string {
	names := []string{NameFurry, NameMewtations, NameDamerau, NameFinal}
	sort.Strings(names)
	return names
}
