package models

import (
	"strings"

	"golang.org/x/text/cases"
)

// fold normalizes a user supplied label for caseless comparison. A Caser
// is not safe for concurrent use, so each call gets its own.
func fold(s string) string {
	return cases.Fold().String(strings.Join(strings.Fields(s), " "))
}

// lookup resolves label against a table of accepted spellings.
func lookup[T any](table map[string]T, label string) (T, bool) {
	v, ok := table[fold(label)]
	return v, ok
}

// foldedTable builds a lookup table keyed by folded spelling.
func foldedTable[T comparable](entries map[T][]string) map[string]T {
	out := make(map[string]T)
	for v, spellings := range entries {
		for _, s := range spellings {
			out[fold(s)] = v
		}
	}
	return out
}
