/*
MIT License

Copyright (c) 2025 fluidos-contrib

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.
*/

package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidQuantity reports a CPU or memory string outside the supported
// grammar. Unknown suffixes fail loudly rather than being truncated.
var ErrInvalidQuantity = errors.New("invalid quantity")

// NormalizeCPU converts a CPU quantity string to nanocores.
// Accepted forms: "<int>n" (nanocores), "<int>m" (millicores), "<int>" (cores).
func NormalizeCPU(spec string) (int64, error) {
	if spec == "" {
		return 0, fmt.Errorf("%w: empty cpu quantity", ErrInvalidQuantity)
	}

	switch {
	case strings.HasSuffix(spec, "n"):
		return parseMagnitude(spec[:len(spec)-1], spec, 1)
	case strings.HasSuffix(spec, "m"):
		return parseMagnitude(spec[:len(spec)-1], spec, 1000)
	default:
		return parseMagnitude(spec, spec, 1000*1000)
	}
}

// NormalizeMemory converts a memory quantity string to kibibytes.
// Accepted suffixes: Ki, Mi, Gi. Decimal SI units are rejected.
func NormalizeMemory(spec string) (int64, error) {
	if len(spec) < 3 {
		return 0, fmt.Errorf("%w: malformed memory quantity %q", ErrInvalidQuantity, spec)
	}

	unit := spec[len(spec)-2:]
	magnitude := spec[:len(spec)-2]

	switch unit {
	case "Ki":
		return parseMagnitude(magnitude, spec, 1)
	case "Mi":
		return parseMagnitude(magnitude, spec, 1024)
	case "Gi":
		return parseMagnitude(magnitude, spec, 1024*1024)
	default:
		return 0, fmt.Errorf("%w: unknown memory unit %q in %q", ErrInvalidQuantity, unit, spec)
	}
}

func parseMagnitude(digits, spec string, scale int64) (int64, error) {
	value, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidQuantity, spec)
	}
	return value * scale, nil
}
