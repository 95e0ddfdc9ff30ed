package catalog

import "strings"

// NormalizeCategories resolves the two category representations the projects
// table has carried over time. New rows store a categories array; older rows
// store a single scalar that may itself be a comma-joined list. The array
// wins when present.
func NormalizeCategories(legacy *string, categories []string) []string {
	if cleaned := cleanList(categories); len(cleaned) > 0 {
		return cleaned
	}
	if legacy == nil {
		return nil
	}
	return cleanList(strings.Split(*legacy, ","))
}

// NormalizeMachines trims and drops empty machine names so the ownership
// rule never has to special-case blank entries.
func NormalizeMachines(machines []string) []string {
	return cleanList(machines)
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		it = strings.TrimSpace(it)
		if it == "" {
			continue
		}
		out = append(out, it)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
