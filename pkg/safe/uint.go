// Package safe provides numeric conversions with range checks for explorer payloads.
package safe

import "fmt"

// Signed lists the signed integer kinds explorer payloads decode into.
type Signed interface {
	~int | ~int32 | ~int64
}

// Uint64 converts a signed amount to uint64, rejecting negatives.
func Uint64[T Signed](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}
