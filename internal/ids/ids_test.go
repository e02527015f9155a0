// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ids

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^BOOK-[0-9A-F]{10}$`), Generate("BOOK"))
	assert.Regexp(t, regexp.MustCompile(`^DOC-[0-9A-F]{10}$`), Generate(""))
}

func TestGenerateUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := Generate("")
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestGenerator(t *testing.T) {
	gen := Generator("REC")
	assert.Regexp(t, `^REC-`, gen())
	assert.NotEqual(t, gen(), gen())
}
