package intent

import (
	"strings"
	"unicode/utf8"
)

// Extractor reduces a message that already matched product intent down to
// a compact search query. Stop words are discarded; configured two-word
// style phrases (e.g. "casual chic") survive intact even when their halves
// would individually be filtered.
type Extractor struct {
	stopWords    map[string]struct{}
	stylePhrases map[string]struct{}
	phraseList   []string
}

func NewExtractor(stopWords, stylePhrases []string) *Extractor {
	e := &Extractor{
		stopWords:    make(map[string]struct{}, len(stopWords)),
		stylePhrases: make(map[string]struct{}, len(stylePhrases)),
	}
	for _, w := range stopWords {
		e.stopWords[strings.ToLower(w)] = struct{}{}
	}
	for _, p := range stylePhrases {
		p = strings.ToLower(p)
		e.stylePhrases[p] = struct{}{}
		e.phraseList = append(e.phraseList, p)
	}
	return e
}

// Extract returns the normalized search query, possibly empty.
//
// The phrase-aware branch is selected when any configured style phrase
// occurs as a substring of the lowered message. The walk itself only
// re-detects a phrase via exact adjacent-token concatenation, so an
// occurrence split by punctuation selects the branch and then falls
// through to single-word filtering. That split is intentional and covered
// in the tests; do not merge the two checks.
func (e *Extractor) Extract(message string) string {
	lower := strings.ToLower(message)
	tokens := strings.Fields(lower)

	if e.containsStylePhrase(lower) {
		return strings.Join(e.phraseWalk(tokens), " ")
	}

	var out []string
	for _, t := range tokens {
		if e.keep(t) {
			out = append(out, t)
		}
	}
	return strings.Join(out, " ")
}

func (e *Extractor) containsStylePhrase(lower string) bool {
	for _, p := range e.phraseList {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

func (e *Extractor) phraseWalk(tokens []string) []string {
	var out []string
	for i := 0; i < len(tokens); {
		if i+1 < len(tokens) {
			pair := tokens[i] + " " + tokens[i+1]
			if _, ok := e.stylePhrases[pair]; ok {
				out = append(out, pair)
				i += 2
				continue
			}
		}
		if e.keep(tokens[i]) {
			out = append(out, tokens[i])
		}
		i++
	}
	return out
}

// keep drops single-character tokens unconditionally, then stop words.
func (e *Extractor) keep(token string) bool {
	if utf8.RuneCountInString(token) <= 1 {
		return false
	}
	_, stop := e.stopWords[token]
	return !stop
}
