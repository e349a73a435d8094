package recommend

import "strings"

// ContainsFold reports whether s contains query, ignoring case
func ContainsFold(s, query string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(query))
}

// AnyContainsFold reports whether any of values contains query, ignoring case
func AnyContainsFold(values []string, query string) bool {
	for _, v := range values {
		if ContainsFold(v, query) {
			return true
		}
	}
	return false
}

// Distinct returns values without duplicates, keeping first occurrences
func Distinct(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// Contains reports whether values holds v exactly
func Contains[T comparable](values []T, v T) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
