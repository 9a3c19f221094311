package ptr

// Ptr devuelve un puntero al valor recibido
func Ptr[T any](v T) *T {
	return &v
}
