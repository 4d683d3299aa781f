// Package password validates password candidates against a set of
// character-class rules and hashes the ones that pass.
//
// # Rules
//
// A candidate is accepted only when every rule holds. The default rules
// require at least one character from each of these classes:
//
//   - upper case letter ([unicode.IsUpper])
//   - lower case letter ([unicode.IsLower])
//   - decimal digit ([unicode.IsDigit], Unicode category Nd)
//   - punctuation: one of the 32 ASCII punctuation and symbol characters
//     !"#$%&'()*+,-./:;<=>?@[\]^_`{|}~
//
// There is no minimum length: "Aa1!" is a valid password.
//
// # Quick start
//
//	pw, err := password.Validate("12345KNKJNJkjnbjn@")
//	if errors.Is(err, password.ErrWeakPassword) {
//	    var verr *password.ValidationError
//	    errors.As(err, &verr)
//	    fmt.Println(verr.Failed) // names of the rules that failed
//	}
//
// # Hashing
//
// [Hasher] runs the same validation before hashing with bcrypt, so a weak
// password never reaches storage:
//
//	h, _ := password.NewHasher(password.DefaultOptions())
//	hash, err := h.Make(candidate)
package password
