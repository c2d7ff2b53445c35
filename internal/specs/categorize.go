package specs

import "sort"

// Categorize groups descriptors by resolved category, with each category's
// entries sorted and de-duplicated. Descriptors of unrecognized shapes are
// silently skipped.
func Categorize(descriptors []interface{}) map[string][]string {
	seen := make(map[string]map[string]struct{})
	for _, d := range descriptors {
		category, entries := resolveDescriptor(d)
		if category == "" {
			continue
		}
		if seen[category] == nil {
			seen[category] = make(map[string]struct{})
		}
		for _, entry := range entries {
			seen[category][entry] = struct{}{}
		}
	}

	results := make(map[string][]string, len(seen))
	for category, entries := range seen {
		sorted := make([]string, 0, len(entries))
		for entry := range entries {
			sorted = append(sorted, entry)
		}
		sort.Strings(sorted)
		results[category] = sorted
	}
	return results
}
