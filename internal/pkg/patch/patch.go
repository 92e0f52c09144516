package patch

// Coalesce returns *ptr when set, otherwise current. Used for partial updates
// where a nil field means "leave unchanged".
func Coalesce[T any](ptr *T, current T) T {
	if ptr != nil {
		return *ptr
	}
	return current
}

// CoalesceSlice is Coalesce for slices; an explicit null clears to an empty slice.
func CoalesceSlice[T any](ptr *[]T, current []T) []T {
	if ptr == nil {
		return current
	}
	if *ptr == nil {
		return []T{}
	}
	return *ptr
}
