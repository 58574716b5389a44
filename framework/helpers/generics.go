package helpers

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// IfElse returns valueIfTrue or valueIfFalse depending on isTrue.
func IfElse[V any](isTrue bool, valueIfTrue, valueIfFalse V) V {
	if isTrue {
		return valueIfTrue
	}
	return valueIfFalse
}

// SliceContains returns true if and only if the slice has an element that equals the value.
func SliceContains[V comparable](value V, slice []V) bool {
	return slices.Contains(slice, value)
}

// CopyOf returns a shallow copy of a slice. A nil slice stays nil.
func CopyOf[V any](slice []V) []V {
	if slice == nil {
		return nil
	}
	return append(make([]V, 0, len(slice)), slice...)
}

// FirstUnsorted returns the index of the first element that is less than its predecessor, or
// -1 if the slice is sorted.
func FirstUnsorted[V constraints.Ordered](slice []V) int {
	for i := 1; i < len(slice); i++ {
		if slice[i] < slice[i-1] {
			return i
		}
	}
	return -1
}
