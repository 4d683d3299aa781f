package password

import (
	"github.com/hasbyte1/go-closures/collections"
)

// Validator checks candidates against a fixed set of rules.
//
// A Validator is immutable after construction and safe for concurrent use.
type Validator struct {
	rules *collections.Collection[Rule]
}

// NewValidator returns a Validator enforcing rules. With no rules it
// enforces [DefaultRules].
func NewValidator(rules ...Rule) *Validator {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Validator{rules: collections.From(rules)}
}

var defaultValidator = NewValidator()

// Validate checks candidate against the default rules.
// See [Validator.Validate].
func Validate(candidate string) (string, error) {
	return defaultValidator.Validate(candidate)
}

// Rules returns a copy of the rules the validator enforces.
func (v *Validator) Rules() []Rule { return v.rules.All() }

// Validate returns candidate unchanged when it satisfies every rule.
// Otherwise it returns "" and a [*ValidationError] naming each failed rule.
// Passing three rules out of four is still a failure.
func (v *Validator) Validate(candidate string) (string, error) {
	failed := v.rules.Reject(func(r Rule, _ int) bool { return r.Check(candidate) })
	if !failed.IsEmpty() {
		return "", &ValidationError{
			Failed: collections.Pluck(failed, func(r Rule) string { return r.Name }).All(),
		}
	}
	return candidate, nil
}

// Valid reports whether candidate satisfies every rule.
func (v *Validator) Valid(candidate string) bool {
	return v.rules.Every(func(r Rule) bool { return r.Check(candidate) })
}
