package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/xKoRx/gridpool/client"
	"github.com/xKoRx/gridpool/domain"
)

func orderCreate(args []string) {
	fs := flag.NewFlagSet("order create", flag.ExitOnError)
	url := fs.String("url", "", "Destino del servicio de trading (host:puerto)")
	apiKey := fs.String("api-key", "", "API key del servicio de trading")
	gridpoolID := fs.Int64("gridpool-id", 0, "Gridpool sobre el que crear la orden")
	price := fs.String("price", "50", "Precio límite de la orden")
	currency := fs.String("currency", "EUR", "Moneda del precio")
	quantity := fs.String("quantity", "0.1", "Cantidad en MW")
	side := fs.String("side", "BUY", "Lado del mercado: BUY o SELL")
	deliveryArea := fs.String("delivery-area", "10YDE-EON------1", "Código EIC del área de entrega")
	deliveryStart := fs.String("delivery-start", "", "Inicio de entrega RFC 3339 (default: mañana 12:00 Berlín)")
	duration := fs.Duration("duration", 15*time.Minute, "Duración de la ventana de entrega")
	tag := fs.String("tag", "", "Tag de la orden (default: generado)")
	timeout := fs.Duration("timeout", 15*time.Second, "Timeout de la llamada")
	insecure := fs.Bool("insecure", false, "Deshabilitar TLS (solo desarrollo)")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "error parseando flags: %v\n", err)
		os.Exit(1)
	}

	requireFlags(fs, *url != "", "--url es requerido")
	requireFlags(fs, *gridpoolID != 0, "--gridpool-id es requerido")

	start, err := parseTimeFlag(*deliveryStart, tomorrowNoon())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error parseando --delivery-start: %v\n", err)
		os.Exit(1)
	}

	order, err := buildOrder(*price, *currency, *quantity, *side, *deliveryArea, start, *duration)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error construyendo orden: %v\n", err)
		os.Exit(1)
	}
	order.Tag = *tag
	if order.Tag == "" {
		// Tag generado para poder rastrear la orden desde la CLI.
		order.Tag = "gridpool-cli-" + uuid.NewString()
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	c := dial(ctx, *url, *apiKey, *insecure)
	defer c.Close()

	detail, err := c.CreateGridpoolOrder(ctx, *gridpoolID, order)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error creando orden: %v\n", err)
		os.Exit(1)
	}

	printOrderDetail(*detail)
}

func orderList(args []string) {
	fs := flag.NewFlagSet("order list", flag.ExitOnError)
	url := fs.String("url", "", "Destino del servicio de trading (host:puerto)")
	apiKey := fs.String("api-key", "", "API key del servicio de trading")
	gridpoolID := fs.Int64("gridpool-id", 0, "Gridpool cuyas órdenes listar")
	deliveryStart := fs.String("delivery-start", "", "Filtrar por inicio de entrega RFC 3339")
	duration := fs.Duration("duration", 15*time.Minute, "Duración de la ventana de entrega del filtro")
	timeout := fs.Duration("timeout", 30*time.Second, "Timeout del listado completo")
	insecure := fs.Bool("insecure", false, "Deshabilitar TLS (solo desarrollo)")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "error parseando flags: %v\n", err)
		os.Exit(1)
	}

	requireFlags(fs, *url != "", "--url es requerido")
	requireFlags(fs, *gridpoolID != 0, "--gridpool-id es requerido")

	filter := domain.GridpoolOrderFilter{}
	if *deliveryStart != "" {
		start, err := time.Parse(time.RFC3339, *deliveryStart)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error parseando --delivery-start: %v\n", err)
			os.Exit(1)
		}
		period, err := domain.NewDeliveryPeriod(start, *duration)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error construyendo filtro: %v\n", err)
			os.Exit(1)
		}
		filter.DeliveryPeriod = &period
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	c := dial(ctx, *url, *apiKey, *insecure)
	defer c.Close()

	it := c.ListGridpoolOrders(*gridpoolID, filter)
	count := 0
	for {
		detail, ok, err := it.Next(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error listando órdenes: %v\n", err)
			os.Exit(1)
		}
		if !ok {
			break
		}
		printOrderDetail(detail)
		count++
	}
	fmt.Printf("%d órdenes\n", count)
}

func buildOrder(price, currency, quantity, side, deliveryArea string, start time.Time, duration time.Duration) (domain.Order, error) {
	priceDec, err := decimal.NewFromString(price)
	if err != nil {
		return domain.Order{}, fmt.Errorf("precio inválido %q: %w", price, err)
	}
	quantityDec, err := decimal.NewFromString(quantity)
	if err != nil {
		return domain.Order{}, fmt.Errorf("cantidad inválida %q: %w", quantity, err)
	}

	var marketSide domain.MarketSide
	switch strings.ToUpper(side) {
	case "BUY":
		marketSide = domain.SideBuy
	case "SELL":
		marketSide = domain.SideSell
	default:
		return domain.Order{}, fmt.Errorf("lado inválido %q: use BUY o SELL", side)
	}

	period, err := domain.NewDeliveryPeriod(start, duration)
	if err != nil {
		return domain.Order{}, err
	}

	return domain.Order{
		DeliveryArea:   domain.NewDeliveryArea(deliveryArea, domain.CodeTypeEuropeEIC),
		DeliveryPeriod: period,
		Type:           domain.OrderTypeLimit,
		Side:           marketSide,
		Price:          domain.NewPrice(priceDec, domain.Currency(strings.ToUpper(currency))),
		Quantity:       domain.NewPowerMW(quantityDec),
	}, nil
}

func printOrderDetail(detail domain.OrderDetail) {
	fmt.Printf("orden %d  %s %s MW @ %s %s  %s → %s  [%s]\n",
		detail.OrderID,
		detail.Order.Side,
		detail.Order.Quantity.MW,
		detail.Order.Price.Amount,
		detail.Order.Price.Currency,
		detail.Order.DeliveryPeriod.Start.Format(time.RFC3339),
		detail.Order.DeliveryPeriod.End().Format(time.RFC3339),
		detail.StateDetail.State)
}

func requireFlags(fs *flag.FlagSet, ok bool, msg string) {
	if !ok {
		fmt.Fprintln(os.Stderr, msg)
		fs.Usage()
		os.Exit(1)
	}
}

func dial(ctx context.Context, url, apiKey string, insecure bool) *client.Client {
	opts := []client.Option{}
	if insecure {
		opts = append(opts, client.WithInsecure())
	}

	c, err := client.Dial(ctx, url, apiKey, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error conectando con %s: %v\n", url, err)
		os.Exit(1)
	}
	return c
}
