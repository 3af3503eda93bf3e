package intent

import (
	"regexp"
	"strings"
)

// Detector decides whether a customer message is asking for product
// discovery. It is a fixed lexicon lookup, not a learned classifier: the
// message is lower-cased and tested against compiled trigger patterns,
// first match wins.
type Detector struct {
	patterns []*regexp.Regexp
}

// NewDetector compiles the given trigger phrases. Multi-word phrases match
// with any whitespace or hyphens between their sub-words, so "t-shirt"
// also catches "t shirt" and "tshirt".
func NewDetector(triggers []string) *Detector {
	d := &Detector{}
	for _, t := range triggers {
		re, err := compileTrigger(t)
		if err != nil {
			continue
		}
		d.patterns = append(d.patterns, re)
	}
	return d
}

func (d *Detector) Detect(message string) bool {
	lower := strings.ToLower(message)
	for _, re := range d.patterns {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

func compileTrigger(phrase string) (*regexp.Regexp, error) {
	parts := strings.FieldsFunc(strings.ToLower(phrase), func(r rune) bool {
		return r == ' ' || r == '-'
	})
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	return regexp.Compile(strings.Join(parts, `[\s-]*`))
}
