package random

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// ErrInvalidRange is returned when the caller asks for an empty range.
var ErrInvalidRange = errors.New("min must not be greater than max")

// Int returns a cryptographically secure uniform integer in [min, max].
// min == max returns min without consuming randomness.
func Int(min, max int64) (int64, error) {
	if min > max {
		return 0, ErrInvalidRange
	}
	if min == max {
		return min, nil
	}
	span := new(big.Int).Sub(big.NewInt(max), big.NewInt(min))
	span.Add(span, big.NewInt(1))
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return 0, fmt.Errorf("read randomness: %w", err)
	}
	return new(big.Int).Add(big.NewInt(min), n).Int64(), nil
}

// IntFrom returns a cryptographically secure uniform integer in
// [min, math.MaxInt64].
func IntFrom(min int64) (int64, error) {
	return Int(min, math.MaxInt64)
}

// Float returns a random value in (0, 1) used to seed key derivation.
//
// The value is (r-1) / 10^digits(r) for a uniform r in [2, MaxInt64], so
// the distribution depends on the decimal magnitude of r and is not
// uniform over (0, 1). Downstream key files depend on this exact
// construction; keep it as is.
func Float() (float64, error) {
	r, err := IntFrom(2)
	if err != nil {
		return 0, err
	}
	digits := len(strconv.FormatInt(r, 10))
	return float64(r-1) / math.Pow10(digits), nil
}
