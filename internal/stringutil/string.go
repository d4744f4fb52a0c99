/*
Copyright (c) 2025 fluidos-contrib
Distributed under the terms of the MIT license
*/

// Package stringutil provides string utility functions.
package stringutil

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// maxLabelLength is the RFC 1123 label limit enforced by the apiserver.
const maxLabelLength = 63

// SanitizeName converts an arbitrary identifier into a valid object name:
// lowercase, alphanumerics and dashes only, no leading or trailing dash.
// Names over the label limit are truncated and suffixed with a short hash so
// distinct inputs stay distinct.
func SanitizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}

	sanitized := strings.Trim(b.String(), "-")
	if len(sanitized) <= maxLabelLength {
		return sanitized
	}

	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	suffix := fmt.Sprintf("-%08x", h.Sum32())
	return sanitized[:maxLabelLength-len(suffix)] + suffix
}
