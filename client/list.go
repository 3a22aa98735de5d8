package client

import "context"

// page es el resultado de una llamada de listado: los items decodificados y
// el token de continuación (vacío cuando no hay más páginas).
type page[T any] struct {
	items     []T
	nextToken string
}

// Iterator recorre un listado paginado de forma perezosa.
//
// Cada página se pide al servicio recién cuando el consumidor agota la
// anterior. El iterador solo guarda su token de continuación: es una
// secuencia forward-only de un solo uso. Para re-listar se pide un iterador
// nuevo al cliente, que arranca desde la primera página.
//
// No es seguro para uso concurrente; cada goroutine consume su propio
// iterador.
type Iterator[T any] struct {
	fetch func(ctx context.Context, token string) (page[T], error)

	buf     []T
	token   string
	started bool
	done    bool
}

func newIterator[T any](fetch func(ctx context.Context, token string) (page[T], error)) *Iterator[T] {
	return &Iterator[T]{fetch: fetch}
}

// Next retorna el siguiente item del listado.
//
// ok es false cuando el listado se agotó sin error. Un error de página
// detiene el iterador; el error del servicio se retorna sin alterar.
//
// Example:
//
//	it := client.ListGridpoolOrders(gridpoolID, filter)
//	for {
//	    detail, ok, err := it.Next(ctx)
//	    if err != nil {
//	        return err
//	    }
//	    if !ok {
//	        break
//	    }
//	    use(detail)
//	}
func (it *Iterator[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T

	for len(it.buf) == 0 {
		if it.done {
			return zero, false, nil
		}
		if it.started && it.token == "" {
			it.done = true
			return zero, false, nil
		}

		p, err := it.fetch(ctx, it.token)
		if err != nil {
			it.done = true
			return zero, false, err
		}
		it.started = true
		it.buf = p.items
		it.token = p.nextToken

		if len(it.buf) == 0 && it.token == "" {
			it.done = true
			return zero, false, nil
		}
	}

	next := it.buf[0]
	it.buf = it.buf[1:]
	return next, true, nil
}

// Collect consume el iterador completo y retorna todos los items.
func (it *Iterator[T]) Collect(ctx context.Context) ([]T, error) {
	var all []T
	for {
		next, ok, err := it.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return all, nil
		}
		all = append(all, next)
	}
}
