package domain

// Optional representa un parámetro con tres estados: omitido, None (limpiar
// explícitamente) y valor presente.
//
// La distinción importa en actualizaciones parciales: un campo omitido no se
// toca, un campo None se limpia en el servidor, y un valor presente se
// escribe. Con punteros simples los dos primeros casos colapsan en nil.
//
// Example:
//
//	upd := domain.UpdateOrder{
//	    Price:      domain.Some(newPrice),   // escribir
//	    ValidUntil: domain.None[time.Time](), // limpiar
//	    // Quantity omitido: no se toca
//	}
type Optional[T any] struct {
	present bool
	none    bool
	value   T
}

// Some crea un Optional con valor presente.
func Some[T any](v T) Optional[T] {
	return Optional[T]{present: true, value: v}
}

// None crea un Optional que limpia explícitamente el campo.
func None[T any]() Optional[T] {
	return Optional[T]{present: true, none: true}
}

// Omitted retorna true cuando el parámetro no fue provisto.
func (o Optional[T]) Omitted() bool {
	return !o.present
}

// IsNone retorna true cuando el parámetro es un None explícito.
func (o Optional[T]) IsNone() bool {
	return o.present && o.none
}

// HasValue retorna true cuando el parámetro trae un valor.
func (o Optional[T]) HasValue() bool {
	return o.present && !o.none
}

// Value retorna el valor. Solo es significativo cuando HasValue() es true.
func (o Optional[T]) Value() T {
	return o.value
}

// Get retorna el valor y si está presente, al estilo de una lectura de mapa.
func (o Optional[T]) Get() (T, bool) {
	if !o.HasValue() {
		var zero T
		return zero, false
	}
	return o.value, true
}
