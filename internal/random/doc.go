// Package random is the CSPRNG source for key generation: uniform
// integers in a closed range and the derived fractional seed value.
package random
