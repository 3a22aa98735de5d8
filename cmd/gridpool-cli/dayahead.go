package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/xKoRx/gridpool/dayahead"
)

func listDayAhead(args []string) {
	fs := flag.NewFlagSet("list-day-ahead", flag.ExitOnError)
	entsoeKey := fs.String("entsoe-key", "", "Security token de la API de ENTSO-E")
	startFlag := fs.String("start", "", "Inicio de la ventana RFC 3339 (default: hoy medianoche Berlín)")
	endFlag := fs.String("end", "", "Fin de la ventana RFC 3339 (default: +2 días)")
	countryCode := fs.String("country-code", "DE_LU", "Zona de licitación o código EIC")
	timeout := fs.Duration("timeout", 30*time.Second, "Timeout de la consulta")
	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "error parseando flags: %v\n", err)
		os.Exit(1)
	}

	requireFlags(fs, *entsoeKey != "", "--entsoe-key es requerido")

	start, err := parseTimeFlag(*startFlag, midnight(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error parseando --start: %v\n", err)
		os.Exit(1)
	}
	end, err := parseTimeFlag(*endFlag, midnight(2))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error parseando --end: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	c := dayahead.NewClient(*entsoeKey)
	points, err := c.DayAheadPrices(ctx, *countryCode, start, end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error consultando precios day-ahead: %v\n", err)
		os.Exit(1)
	}

	if len(points) == 0 {
		fmt.Println("sin precios publicados para la ventana pedida")
		return
	}

	loc := berlin()
	for _, p := range points {
		fmt.Printf("%s → %s  %8s %s/%s\n",
			p.Start.In(loc).Format("2006-01-02 15:04"),
			p.End.In(loc).Format("15:04"),
			p.Price,
			p.Currency,
			p.Unit)
	}
}
