// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ids generates identifiers for records that arrive without one.
package ids

import (
	"strings"

	"github.com/google/uuid"
)

// DefaultPrefix is used when no prefix is given.
const DefaultPrefix = "DOC"

const suffixLen = 10

// Generate returns "<PREFIX>-<10 uppercase hex digits>" taken from a random
// UUID. An empty prefix selects DefaultPrefix.
func Generate(prefix string) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "-" + strings.ToUpper(hex[:suffixLen])
}

// Generator returns a function that produces identifiers with prefix.
func Generator(prefix string) func() string {
	return func() string { return Generate(prefix) }
}
