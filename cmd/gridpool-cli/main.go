package main

import (
	"fmt"
	"os"
	"time"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	switch command {
	case "order":
		runOrder(os.Args[2:])
	case "trades":
		runTrades(os.Args[2:])
	case "list-day-ahead":
		listDayAhead(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "comando desconocido: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	usage := `gridpool-cli - herramientas operativas para trading de gridpools

Uso:
  gridpool-cli order create --url <host:port> --api-key <key> --gridpool-id <id> [--price 50] [--quantity 0.1]
  gridpool-cli order list --url <host:port> --api-key <key> --gridpool-id <id>
  gridpool-cli trades watch --url <host:port> --api-key <key> [--count 5]
  gridpool-cli list-day-ahead --entsoe-key <key> [--start <rfc3339>] [--end <rfc3339>] [--country-code DE_LU]

Comandos:
  order create     Crea una orden limitada en el gridpool.
  order list       Lista las órdenes del gridpool.
  trades watch     Sigue el stream de trades públicos.
  list-day-ahead   Lista precios day-ahead desde ENTSO-E.
`
	fmt.Fprintln(os.Stderr, usage)
}

func runOrder(args []string) {
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	subcommand := args[0]
	switch subcommand {
	case "create":
		orderCreate(args[1:])
	case "list":
		orderList(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "subcomando order desconocido: %s\n", subcommand)
		printUsage()
		os.Exit(1)
	}
}

func runTrades(args []string) {
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	subcommand := args[0]
	switch subcommand {
	case "watch":
		tradesWatch(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "subcomando trades desconocido: %s\n", subcommand)
		printUsage()
		os.Exit(1)
	}
}

// berlin es la zona horaria de referencia del mercado.
func berlin() *time.Location {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error cargando zona horaria: %v\n", err)
		os.Exit(1)
	}
	return loc
}

// midnight retorna la medianoche de hoy en Berlín desplazada days días.
func midnight(days int) time.Time {
	now := time.Now().In(berlin())
	base := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return base.AddDate(0, 0, days)
}

// tomorrowNoon retorna mañana a las 12:00 en Berlín, el inicio de entrega
// por defecto para órdenes de prueba.
func tomorrowNoon() time.Time {
	return midnight(1).Add(12 * time.Hour)
}

func parseTimeFlag(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}
	return time.Parse(time.RFC3339, value)
}
