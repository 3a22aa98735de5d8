package dayahead

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// publicationDocument es el Publication_MarketDocument de ENTSO-E, reducido a
// lo que el listado de precios necesita.
type publicationDocument struct {
	XMLName    xml.Name     `xml:"Publication_MarketDocument"`
	TimeSeries []timeSeries `xml:"TimeSeries"`
}

type timeSeries struct {
	Currency string         `xml:"currency_Unit.name"`
	Unit     string         `xml:"price_Measure_Unit.name"`
	Periods  []seriesPeriod `xml:"Period"`
}

type seriesPeriod struct {
	TimeInterval seriesInterval `xml:"timeInterval"`
	Resolution   string         `xml:"resolution"`
	Points       []seriesPoint  `xml:"Point"`
}

type seriesInterval struct {
	Start string `xml:"start"`
	End   string `xml:"end"`
}

type seriesPoint struct {
	Position int    `xml:"position"`
	Amount   string `xml:"price.amount"`
}

// acknowledgement es el documento que ENTSO-E responde cuando la consulta no
// produce datos (sin publicación para la ventana, token inválido, etc.).
type acknowledgement struct {
	XMLName xml.Name `xml:"Acknowledgement_MarketDocument"`
	Reason  struct {
		Code string `xml:"code"`
		Text string `xml:"text"`
	} `xml:"Reason"`
}

// intervalTimeLayout es el formato de tiempos del XML de ENTSO-E.
const intervalTimeLayout = "2006-01-02T15:04Z07:00"

// parsePublication convierte un documento de publicación A44 en puntos de
// precio. Cada Point cubre la ventana
// [inicio + (posición-1)·resolución, inicio + posición·resolución).
func parsePublication(body []byte) ([]PricePoint, error) {
	var doc publicationDocument
	if err := xml.Unmarshal(body, &doc); err != nil || len(doc.TimeSeries) == 0 {
		// Sin series: puede ser un acknowledgement con la razón del rechazo.
		var ack acknowledgement
		if ackErr := xml.Unmarshal(body, &ack); ackErr == nil && ack.Reason.Text != "" {
			return nil, fmt.Errorf("entsoe rejected query (code %s): %s", ack.Reason.Code, ack.Reason.Text)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse entsoe publication: %w", err)
		}
		return nil, nil
	}

	var points []PricePoint
	for _, series := range doc.TimeSeries {
		for _, period := range series.Periods {
			start, err := time.Parse(intervalTimeLayout, period.TimeInterval.Start)
			if err != nil {
				return nil, fmt.Errorf("invalid period start %q: %w", period.TimeInterval.Start, err)
			}
			resolution, err := parseResolution(period.Resolution)
			if err != nil {
				return nil, err
			}

			for _, point := range period.Points {
				if point.Position < 1 {
					return nil, fmt.Errorf("invalid point position %d", point.Position)
				}
				price, err := decimal.NewFromString(point.Amount)
				if err != nil {
					return nil, fmt.Errorf("invalid price amount %q: %w", point.Amount, err)
				}

				pointStart := start.Add(time.Duration(point.Position-1) * resolution)
				points = append(points, PricePoint{
					Start:    pointStart,
					End:      pointStart.Add(resolution),
					Price:    price,
					Currency: series.Currency,
					Unit:     series.Unit,
				})
			}
		}
	}
	return points, nil
}

// parseResolution traduce la resolución ISO 8601 del período a una duración.
func parseResolution(resolution string) (time.Duration, error) {
	switch resolution {
	case "PT15M":
		return 15 * time.Minute, nil
	case "PT30M":
		return 30 * time.Minute, nil
	case "PT60M", "PT1H":
		return time.Hour, nil
	case "P1D":
		return 24 * time.Hour, nil
	default:
		return 0, fmt.Errorf("unsupported period resolution %q", resolution)
	}
}
