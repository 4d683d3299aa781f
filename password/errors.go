package password

import (
	"errors"
	"strings"
)

// Sentinel errors returned by this package.
//
// Use [errors.Is] for comparisons:
//
//	if _, err := password.Validate(pw); errors.Is(err, password.ErrWeakPassword) {
//	    // ask for a stronger password
//	}
var (
	// ErrWeakPassword is matched by every [*ValidationError].
	ErrWeakPassword = errors.New("password: candidate does not satisfy every rule")

	// ErrInvalidOption is returned when [NewHasher] receives an option value
	// outside the allowed range.
	ErrInvalidOption = errors.New("password: invalid option value")
)

// ValidationError reports a rejected candidate. Failed holds the names of
// every rule the candidate broke, in rule order.
type ValidationError struct {
	Failed []string
}

func (e *ValidationError) Error() string {
	if len(e.Failed) == 0 {
		return ErrWeakPassword.Error()
	}
	return ErrWeakPassword.Error() + ": missing " + strings.Join(e.Failed, ", ")
}

// Is makes errors.Is(err, ErrWeakPassword) true for any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrWeakPassword
}
