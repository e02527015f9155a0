// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/researchlib/pkg/types"
)

func TestAuthorName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"first last", "john doe", "Doe, John"},
		{"single token", "Madonna", "Madonna"},
		{"single token lowercase", "madonna", "Madonna"},
		{"middle names", "mary ann evans", "Evans, Mary Ann"},
		{"shouting", "JANE SMITH", "Smith, Jane"},
		{"extra whitespace", "  jane   smith  ", "Smith, Jane"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AuthorName(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthorNameEmpty(t *testing.T) {
	for _, in := range []string{"", "   "} {
		_, err := AuthorName(in)
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrInvalidInput), "input %q", in)
	}
}
