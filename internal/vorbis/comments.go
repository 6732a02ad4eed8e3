// Package vorbis provides helpers for Vorbis comment entries.
//
// Vorbis comments are UTF-8 strings, conventionally in "KEY=VALUE" form.
// Field names are case-insensitive ASCII; values are free text and may
// themselves contain '='.
package vorbis

import (
	"fmt"
	"strings"
)

// ParseComment splits a single comment into its key and value.
//
// The key is returned exactly as stored. Returns an error if the comment
// has no '=' separator.
func ParseComment(comment string) (key, value string, err error) {
	eq := strings.IndexByte(comment, '=')
	if eq == -1 {
		return "", "", fmt.Errorf("missing '=' in comment: %s", comment)
	}
	return comment[:eq], comment[eq+1:], nil
}

// Lookup returns the values of every entry whose key matches key,
// case-insensitively, in stored order.
func Lookup(entries []string, key string) []string {
	var values []string
	for _, entry := range entries {
		k, v, err := ParseComment(entry)
		if err != nil {
			continue
		}
		if strings.EqualFold(k, key) {
			values = append(values, v)
		}
	}
	return values
}

// Fields groups entries by upper-cased key. Repeated keys (several ARTIST
// entries, for example) keep their stored order. Entries without '=' are
// skipped.
func Fields(entries []string) map[string][]string {
	fields := make(map[string][]string)
	for _, entry := range entries {
		k, v, err := ParseComment(entry)
		if err != nil {
			continue
		}
		k = strings.ToUpper(k)
		fields[k] = append(fields[k], v)
	}
	return fields
}
