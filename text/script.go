package text

import (
	"unicode/utf8"

	"github.com/go-text/typesetting/language"
	"golang.org/x/text/unicode/bidi"
)

// Classifier reports whether a piece of text contains right-to-left script.
type Classifier func(s string) bool

// ContainsRTL reports whether s contains at least one strong right-to-left
// character. The Unicode bidi class decides (R or AL); runes the bidi
// tables do not know are resolved through their script.
func ContainsRTL(s string) bool {
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if IsRTLRune(r) {
			return true
		}
		s = s[size:]
	}
	return false
}

// IsRTLRune reports whether r is a strong right-to-left character.
func IsRTLRune(r rune) bool {
	props, sz := bidi.LookupRune(r)
	if sz > 0 {
		switch props.Class() {
		case bidi.R, bidi.AL:
			return true
		case bidi.L, bidi.EN, bidi.AN, bidi.WS, bidi.CS, bidi.ES, bidi.ET, bidi.ON:
			return false
		}
	}
	return isRTLScript(language.LookupScript(r))
}

// isRTLScript returns true if the script is written right-to-left.
func isRTLScript(s language.Script) bool {
	switch s {
	case language.Arabic, language.Hebrew, language.Syriac, language.Thaana, language.Nko:
		return true
	default:
		return false
	}
}

// detectScript returns the script of the first strong character in s,
// Latin if there is none.
func detectScript(s string) language.Script {
	for _, r := range s {
		if sc := language.LookupScript(r); sc.Strong() {
			return sc
		}
	}
	return language.Latin
}
