package ptr

// Ptr возвращает указатель на копию значения
func Ptr[T any](v T) *T {
	return &v
}

// Value возвращает значение по указателю или нулевое значение для nil
func Value[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Apply записывает значение patch в dst, если patch задан
func Apply[T any](dst *T, patch *T) {
	if patch != nil {
		*dst = *patch
	}
}
