package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/xKoRx/gridpool/domain"
)

func tradesWatch(args []string) {
	fs := flag.NewFlagSet("trades watch", flag.ExitOnError)
	url := fs.String("url", "", "Destino del servicio de trading (host:puerto)")
	apiKey := fs.String("api-key", "", "API key del servicio de trading")
	count := fs.Int("count", 5, "Cantidad de trades a recibir antes de salir")
	timeout := fs.Duration("timeout", 5*time.Minute, "Tiempo máximo de escucha")
	insecure := fs.Bool("insecure", false, "Deshabilitar TLS (solo desarrollo)")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "error parseando flags: %v\n", err)
		os.Exit(1)
	}

	requireFlags(fs, *url != "", "--url es requerido")

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	c := dial(ctx, *url, *apiKey, *insecure)
	defer c.Close()

	rx, err := c.StreamPublicTrades(domain.PublicTradeFilter{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error abriendo stream de trades: %v\n", err)
		os.Exit(1)
	}
	defer rx.Close()

	for received := 0; received < *count; received++ {
		trade, err := rx.Recv(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error recibiendo trade: %v\n", err)
			os.Exit(1)
		}
		printPublicTrade(trade)
	}
}

func printPublicTrade(trade domain.PublicTrade) {
	fmt.Printf("trade %d  %s MW @ %s %s  %s %s → %s  [%s]\n",
		trade.ID,
		trade.Quantity.MW,
		trade.Price.Amount,
		trade.Price.Currency,
		trade.BuyDeliveryArea.Code,
		trade.DeliveryPeriod.Start.Format(time.RFC3339),
		trade.DeliveryPeriod.End().Format(time.RFC3339),
		trade.State)
}
