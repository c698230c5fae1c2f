package ptr

func To[T any](v T) *T {
	return &v
}

// NonZero returns nil for the zero value, so optional query parameters stay unset.
func NonZero[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}

// Or dereferences p, or returns fallback when p is nil.
func Or[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
