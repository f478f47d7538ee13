package discovery

import (
	"path/filepath"
	"strings"
)

// Filter narrows a list of test files by name
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps the tests whose file name matches pattern.
// Patterns with * or ? are shell globs against the base name, optionally
// prefixed by the category directory ("real/*arbiter*"). Anything else is a
// plain substring match. An empty pattern keeps everything.
func (f *Filter) FilterByName(tests []string, pattern string) []string {
	if pattern == "" {
		return tests
	}

	var filtered []string
	for _, test := range tests {
		if matchName(test, pattern) {
			filtered = append(filtered, test)
		}
	}
	return filtered
}

func matchName(test, pattern string) bool {
	name := filepath.Base(test)
	if !strings.ContainsAny(pattern, "*?[") {
		return strings.Contains(name, pattern)
	}

	candidate := name
	if strings.Contains(pattern, "/") {
		candidate = filepath.Base(filepath.Dir(test)) + "/" + name
	}
	matched, err := filepath.Match(pattern, candidate)
	return err == nil && matched
}
