// Package dayahead lista precios day-ahead de electricidad desde la API de
// transparencia de ENTSO-E.
//
// # Responsabilidades
//
//   - Consultar el documento de publicación A44 (precios day-ahead) por área
//     de entrega y ventana temporal
//   - Parsear el XML de publicación a puntos de precio horarios tipados
//   - Resolver códigos de país (DE_LU, FR, ...) a códigos EIC de área
//
// El paquete es independiente del cliente de trading: los precios day-ahead
// vienen de ENTSO-E, no del servicio de órdenes. La CLI los combina para
// contextualizar las órdenes que crea.
//
// Uso básico:
//
//	c := dayahead.NewClient(entsoeKey)
//	points, err := c.DayAheadPrices(ctx, "DE_LU", start, end)
//	for _, p := range points {
//	    fmt.Printf("%s  %s %s/%s\n", p.Start.Format(time.RFC3339), p.Price, p.Currency, p.Unit)
//	}
package dayahead
