// Package vectorizer builds token vocabularies and the count matrices the
// scorers consume. All matrices are oriented tokens-by-columns, where a column
// is either one question or one answer class.
package vectorizer

// Vocabulary maps token strings to stable integer ids in first-seen order.
// Build it from training tokens only; test data is counted against it and
// unknown tokens are silently ignored.
type Vocabulary struct {
	Index  map[string]int
	Tokens []string
}

// NewVocabulary assigns an id to every distinct token in docs, in first-seen
// order. If allowed is non-nil, tokens outside it are excluded.
func NewVocabulary(docs [][]string, allowed map[string]bool) *Vocabulary {
	v := &Vocabulary{Index: make(map[string]int)}
	for _, doc := range docs {
		for _, tok := range doc {
			if allowed != nil && !allowed[tok] {
				continue
			}
			if _, ok := v.Index[tok]; !ok {
				v.Index[tok] = len(v.Tokens)
				v.Tokens = append(v.Tokens, tok)
			}
		}
	}
	return v
}

// ID returns the id for token, or -1 if the token is not in the vocabulary.
func (v *Vocabulary) ID(token string) int {
	if id, ok := v.Index[token]; ok {
		return id
	}
	return -1
}

// Size returns the number of tokens in the vocabulary.
func (v *Vocabulary) Size() int {
	return len(v.Tokens)
}
