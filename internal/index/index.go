// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index builds an inverted keyword index over record titles and
// abstracts.
package index

import (
	"regexp"
	"strings"

	"github.com/pdiddy/researchlib/pkg/types"
)

// MinTokenLength is the shortest word that gets indexed.
const MinTokenLength = 3

var wordRe = regexp.MustCompile(`[a-z]+`)

// Tokenize lowercases text and returns its maximal runs of ASCII letters
// that are at least MinTokenLength long, deduplicated in first-seen order.
func Tokenize(text string) []string {
	seen := make(map[string]struct{})
	var tokens []string
	for _, w := range wordRe.FindAllString(strings.ToLower(text), -1) {
		if len(w) < MinTokenLength {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		tokens = append(tokens, w)
	}
	return tokens
}

// documentText joins the indexed fields of r. Absent fields count as "".
func documentText(r types.Record) string {
	return types.Value(r.Title) + " " + types.Value(r.Abstract)
}

// Build returns an inverted index from each keyword in a document's title
// and abstract to the identifiers of the documents containing it. Each
// document contributes its identifier at most once per keyword, in document
// order. Documents without an identifier are listed as "".
func Build(docs []types.Record) types.InvertedIndex {
	idx := make(types.InvertedIndex)
	for _, doc := range docs {
		id := doc.ID()
		for _, tok := range Tokenize(documentText(doc)) {
			idx[tok] = append(idx[tok], id)
		}
	}
	return idx
}

// Search returns the identifiers listed under every token of query, in the
// order they appear under the query's first token. Tokens are produced by
// Tokenize, so short words in the query are ignored.
func Search(idx types.InvertedIndex, query string) []string {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return nil
	}

	var out []string
	for _, id := range idx[tokens[0]] {
		if inAll(idx, tokens[1:], id) {
			out = append(out, id)
		}
	}
	return out
}

func inAll(idx types.InvertedIndex, tokens []string, id string) bool {
	for _, tok := range tokens {
		found := false
		for _, other := range idx[tok] {
			if other == id {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
