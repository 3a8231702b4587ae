// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"regexp"
	"strings"
)

// CleanNames trims every entry and drops the blank ones, keeping order.
// Duplicates are left for the storage constraint to reject.
func CleanNames(names []string) []string {
	clean := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n != "" {
			clean = append(clean, n)
		}
	}
	return clean
}

// firstDuplicate returns the first name that occurs twice in names.
func firstDuplicate(names []string) (string, bool) {
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			return n, true
		}
		seen[n] = struct{}{}
	}
	return "", false
}

// Matches list numbering such as "1. ", "(2) ", "3 - ", "4: " or "05) - ".
var numberPrefix = regexp.MustCompile(`^\s*[(\[]?\s*\d+\s*[)\]]?\s*[:.\-–—)]*\s*`)

// FormatDisplayName strips a leading list number from a roster name.
func FormatDisplayName(name string) string {
	if name == "" {
		return ""
	}
	return strings.TrimSpace(numberPrefix.ReplaceAllString(name, ""))
}
