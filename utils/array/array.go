// Package array provides checked allocation and element-level editing of slices.
package array

import (
	"slices"
	"unsafe"

	"github.com/fastfhir/fhir-r5-go/model"
)

// MaxBytes caps the size of a single allocation made by Make and Resize.
var MaxBytes uint64 = 1 << 40

// Make allocates a zeroed slice of n elements.
// A request for zero elements returns nil without an error.
func Make[T any](n int) ([]T, error) {
	if n == 0 {
		return nil, nil
	}
	if n < 0 {
		return nil, model.NewError(model.KindOutOfMemory, "", "negative element count %d", n)
	}
	var zero T
	size := uint64(unsafe.Sizeof(zero))
	if size > 0 && uint64(n) > MaxBytes/size {
		return nil, model.NewError(model.KindOutOfMemory, "", "cannot allocate %d elements of %d bytes", n, size)
	}
	return make([]T, n), nil
}

// Resize returns a copy of s with n elements.
// New slots are zero; n == 0 releases the backing array and returns nil.
func Resize[T any](s []T, n int) ([]T, error) {
	if n < 0 {
		return nil, model.NewError(model.KindInvalidArgument, "", "negative element count %d", n)
	}
	out, err := Make[T](n)
	if err != nil {
		return s, err
	}
	copy(out, s)
	return out, nil
}

// Add appends v to s.
func Add[T any](s []T, v T) []T {
	return append(s, v)
}

// Remove deletes the element at index i, shifting the following elements left.
func Remove[T any](s []T, i int) ([]T, error) {
	if i < 0 || i >= len(s) {
		return s, model.NewError(model.KindInvalidArgument, "", "index %d out of range [0,%d)", i, len(s))
	}
	s = slices.Delete(s, i, i+1)
	if len(s) == 0 {
		return nil, nil
	}
	return s, nil
}
