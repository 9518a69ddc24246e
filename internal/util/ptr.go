package util

// Ptr returns a pointer to the given value.
// This is a generic helper for creating pointers to literals.
func Ptr[T any](v T) *T {
	return &v
}

// Deref returns the value p points to, or the zero value when p is nil.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
