// Package client orquesta las operaciones contra el servicio de trading de
// gridpools.
//
// # Responsabilidades
//
// - Validación local de parámetros antes de cada llamada de red
// - Operaciones unary: crear, actualizar, cancelar y consultar órdenes
// - Listados paginados perezosos (Iterator)
// - Streams multiplexados con cache por clave de filtro (Broadcaster)
// - Timeouts por llamada (WithCallTimeout) distinguiendo TIMEOUT de un
//   rechazo del servidor
// - Registry explícito de clientes por (target, API key)
//
// # Uso típico
//
//	c, err := client.Dial(ctx, "trading.example.com:443", apiKey)
//	if err != nil {
//	    return err
//	}
//	defer c.Close()
//
//	detail, err := c.CreateGridpoolOrder(ctx, gridpoolID, order,
//	    client.WithCallTimeout(5*time.Second))
//
// # Streams compartidos
//
// Dos suscripciones con filtros de igual contenido comparten un solo stream
// upstream. El stream se abre en la primera suscripción y se reemplaza solo
// cuando el anterior murió; no hay reintento automático.
//
//	rx, err := c.StreamGridpoolOrders(gridpoolID, filter)
//	if err != nil {
//	    return err
//	}
//	defer rx.Close()
//	for {
//	    detail, err := rx.Recv(ctx)
//	    if err != nil {
//	        return err
//	    }
//	    handle(detail)
//	}
package client
