package index

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeToken puts a single search token in the form used as an index key.
// It does not split or trim.
func NormalizeToken(token string) string {
	return strings.ToLower(norm.NFC.String(token))
}

// Tokenize splits a display name on whitespace runs and normalizes every
// token. A name with no non-space characters yields exactly one empty token,
// so entities with blank names stay reachable through the "" key.
func Tokenize(name string) []string {
	fields := strings.Fields(norm.NFC.String(name))
	if len(fields) == 0 {
		return []string{""}
	}
	tokens := make([]string, len(fields))
	for i, f := range fields {
		tokens[i] = strings.ToLower(f)
	}
	return tokens
}

// NameTokenIndex indexes entity ids by each token of their display name.
type NameTokenIndex struct {
	tokens *SetIndex
}

// NewNameTokenIndex creates an empty name-token index.
func NewNameTokenIndex() *NameTokenIndex {
	return &NameTokenIndex{tokens: NewSetIndex()}
}

// Add indexes id under every token of name.
func (x *NameTokenIndex) Add(name, id string) {
	for _, t := range Tokenize(name) {
		x.tokens.Add(t, id)
	}
}

// Remove retracts id from every token of name. name must be the value that
// was passed to Add.
func (x *NameTokenIndex) Remove(name, id string) {
	for _, t := range Tokenize(name) {
		x.tokens.Remove(t, id)
	}
}

// Lookup returns the ids indexed under token, matched case-insensitively as
// one whole token. "John Doe" is never a key, only "john" and "doe" are.
func (x *NameTokenIndex) Lookup(token string) []string {
	return x.tokens.Members(NormalizeToken(token))
}

// Len returns the number of distinct tokens.
func (x *NameTokenIndex) Len() int {
	return x.tokens.Len()
}
