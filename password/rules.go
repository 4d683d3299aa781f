package password

import (
	"strings"
	"unicode"
)

// CharacterClass identifies the set of characters a [Rule] looks for.
type CharacterClass int

const (
	// ClassUpper matches upper case letters in any script.
	ClassUpper CharacterClass = iota + 1
	// ClassLower matches lower case letters in any script.
	ClassLower
	// ClassPunctuation matches the ASCII characters listed in [Punctuation].
	ClassPunctuation
	// ClassDigit matches decimal digits (Unicode category Nd).
	ClassDigit
)

// Punctuation is the exact set of characters [ClassPunctuation] accepts:
// every printable ASCII character that is neither a letter, a digit nor a
// space.
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var classNames = map[CharacterClass]string{
	ClassUpper:       "uppercase",
	ClassLower:       "lowercase",
	ClassPunctuation: "punctuation",
	ClassDigit:       "digit",
}

// String returns the class name, e.g. "uppercase".
func (c CharacterClass) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return "unknown"
}

// Match reports whether r belongs to the class.
func (c CharacterClass) Match(r rune) bool {
	switch c {
	case ClassUpper:
		return unicode.IsUpper(r)
	case ClassLower:
		return unicode.IsLower(r)
	case ClassPunctuation:
		return r < unicode.MaxASCII && strings.ContainsRune(Punctuation, r)
	case ClassDigit:
		return unicode.IsDigit(r)
	default:
		return false
	}
}

// Contains reports whether s holds at least one character of the class.
func (c CharacterClass) Contains(s string) bool {
	return strings.ContainsFunc(s, c.Match)
}

// Rule is a named predicate over a whole candidate.
type Rule struct {
	Name  string
	Class CharacterClass
	// Match overrides Class when set.
	Match func(rune) bool
}

// ClassRule builds the rule requiring at least one character of class.
func ClassRule(class CharacterClass) Rule {
	return Rule{Name: class.String(), Class: class}
}

// Check reports whether candidate satisfies the rule.
func (r Rule) Check(candidate string) bool {
	if r.Match != nil {
		return strings.ContainsFunc(candidate, r.Match)
	}
	return r.Class.Contains(candidate)
}

// DefaultRules returns the four character-class rules: uppercase, lowercase,
// punctuation and digit.
func DefaultRules() []Rule {
	return []Rule{
		ClassRule(ClassUpper),
		ClassRule(ClassLower),
		ClassRule(ClassPunctuation),
		ClassRule(ClassDigit),
	}
}
