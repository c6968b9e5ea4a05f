package ui

import "strings"

func formString(values map[string][]string, key string) string {
	if values == nil {
		return ""
	}
	return strings.TrimSpace(first(values[key]))
}

// formPassword returns the raw value: trimming a password would silently
// change the credential.
func formPassword(values map[string][]string, key string) string {
	if values == nil {
		return ""
	}
	return first(values[key])
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
