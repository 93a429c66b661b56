// Package moderation implements the banned-word filter applied to posts and
// comments on every write.
package moderation

import (
	"os"
	"regexp"
	"strings"
)

// Filter tests free text for whole-word, case-insensitive matches against a
// fixed banned-word list. The zero value bans nothing.
type Filter struct {
	patterns []*regexp.Regexp
}

// New builds a filter from an explicit word list.
func New(words []string) *Filter {
	f := &Filter{}
	for _, word := range words {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
		if err != nil {
			continue
		}
		f.patterns = append(f.patterns, re)
	}
	return f
}

// Load reads a banned-word list from a file, one word per line. A missing
// file yields an empty filter rather than an error: moderation degrades to
// permissive instead of failing startup.
func Load(path string) *Filter {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Filter{}
	}
	return New(strings.Split(string(data), "\n"))
}

// IsProfane reports whether text contains any banned word as a separate
// token. Substrings inside larger words do not match.
func (f *Filter) IsProfane(text string) bool {
	for _, re := range f.patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
