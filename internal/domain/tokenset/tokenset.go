// Package tokenset edits colon-separated lists of component names stored in a
// single settings value. Each feature owns its own token; edits never touch
// other tokens and never introduce empty tokens.
package tokenset

import "strings"

// Separator joins tokens inside a stored value.
const Separator = ":"

// Split returns the non-empty tokens of value in stored order.
func Split(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, Separator)
	tokens := parts[:0]
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// Join concatenates tokens with Separator.
func Join(tokens []string) string {
	return strings.Join(tokens, Separator)
}

// Contains reports whether token is one of the exact tokens in value.
// Prefix or substring matches do not count.
func Contains(value, token string) bool {
	if value == "" || token == "" {
		return false
	}
	for _, t := range strings.Split(value, Separator) {
		if t == token {
			return true
		}
	}
	return false
}

// Add appends token to value unless it is already present.
// It reports whether the value changed.
func Add(value, token string) (string, bool) {
	if token == "" || Contains(value, token) {
		return value, false
	}
	tokens := Split(value)
	tokens = append(tokens, token)
	return Join(tokens), true
}

// Remove drops every occurrence of token and any empty token from value,
// keeping the order of the survivors. It reports whether the value changed.
func Remove(value, token string) (string, bool) {
	if value == "" {
		return value, false
	}
	survivors := make([]string, 0, strings.Count(value, Separator)+1)
	for _, t := range strings.Split(value, Separator) {
		if t == "" || t == token {
			continue
		}
		survivors = append(survivors, t)
	}
	next := Join(survivors)
	return next, next != value
}

// Normalize drops empty and duplicate tokens, keeping first occurrences.
func Normalize(value string) string {
	tokens := Split(value)
	seen := make(map[string]struct{}, len(tokens))
	out := tokens[:0]
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return Join(out)
}
