package httpmetrics

import (
	"regexp"
	"strings"
)

var (
	uuidRegex = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)
)

// NormalizePath collapses user ids so that metric label cardinality stays
// bounded: /api/users/<anything>/logs becomes /api/users/{id}/logs.
func NormalizePath(path string) string {
	if path == "" {
		return "/"
	}

	normalized := uuidRegex.ReplaceAllString(path, "{id}")

	parts := strings.Split(normalized, "/")
	for i, part := range parts {
		if part == "" {
			continue
		}
		if i == 3 && parts[1] == "api" && parts[2] == "users" {
			parts[i] = "{id}"
			continue
		}
		if isNumeric(part) {
			parts[i] = "{param}"
		}
	}

	result := strings.Join(parts, "/")
	if result == "" {
		return "/"
	}

	return result
}

func isNumeric(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
