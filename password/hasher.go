package password

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the bcrypt work factor used by [DefaultOptions].
	// At cost 12 one hash takes roughly 250 ms on a modern server CPU.
	DefaultCost = 12
)

// Options configures a [Hasher].
type Options struct {
	// Cost is the bcrypt work factor (logarithmic).
	// Valid range: [bcrypt.MinCost (4), bcrypt.MaxCost (31)].
	Cost int

	// Validator screens candidates before hashing. Nil means the default
	// rules.
	Validator *Validator
}

// DefaultOptions returns Options with [DefaultCost] and the default rules.
func DefaultOptions() Options {
	return Options{Cost: DefaultCost}
}

// Hasher hashes validated passwords with bcrypt.
//
// Hasher is immutable after construction and safe for concurrent use.
type Hasher struct {
	cost      int
	validator *Validator
}

// NewHasher constructs a Hasher. Returns [ErrInvalidOption] if Cost is
// outside [bcrypt.MinCost, bcrypt.MaxCost].
func NewHasher(opts Options) (*Hasher, error) {
	if opts.Cost < bcrypt.MinCost || opts.Cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: bcrypt cost %d must be in [%d, %d]",
			ErrInvalidOption, opts.Cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	v := opts.Validator
	if v == nil {
		v = defaultValidator
	}
	return &Hasher{cost: opts.Cost, validator: v}, nil
}

// Cost returns the configured bcrypt work factor.
func (h *Hasher) Cost() int { return h.cost }

// Make validates candidate and returns its bcrypt hash in Modular Crypt
// Format ("$2a$12$..."). A weak candidate yields a [*ValidationError] and
// is never hashed.
//
// bcrypt rejects input longer than 72 bytes; that error is returned wrapped.
func (h *Hasher) Make(candidate string) (string, error) {
	pw, err := h.validator.Validate(candidate)
	if err != nil {
		return "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pw), h.cost)
	if err != nil {
		return "", fmt.Errorf("password: bcrypt: %w", err)
	}
	return string(hash), nil
}

// Check reports whether candidate matches hash. The comparison runs in
// constant time. A mismatch is (false, nil); a malformed hash is an error.
func (h *Hasher) Check(candidate, hash string) (bool, error) {
	if !looksLikeBcrypt(hash) {
		return false, errors.New("password: hash is not bcrypt")
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("password: bcrypt: %w", err)
	}
	return true, nil
}

// NeedsRehash reports whether hash was produced with a different cost than
// the hasher's.
func (h *Hasher) NeedsRehash(hash string) (bool, error) {
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		return false, fmt.Errorf("password: bcrypt: %w", err)
	}
	return cost != h.cost, nil
}

// bcrypt hashes start with $2a$, $2b$ or $2y$.
func looksLikeBcrypt(hash string) bool {
	for _, prefix := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(hash, prefix) {
			return true
		}
	}
	return false
}
