package dayahead

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	"github.com/xKoRx/gridpool/telemetry"
)

// DefaultBaseURL es el endpoint público de la API de transparencia de ENTSO-E.
const DefaultBaseURL = "https://web-api.tp.entsoe.eu/api"

// documentTypeDayAhead identifica el documento de publicación de precios
// day-ahead en la nomenclatura de ENTSO-E.
const documentTypeDayAhead = "A44"

// PricePoint es un precio de mercado para una ventana de entrega.
type PricePoint struct {
	Start    time.Time
	End      time.Time
	Price    decimal.Decimal
	Currency string
	Unit     string
}

// Client consulta precios day-ahead contra la API de ENTSO-E.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	tel     *telemetry.Client
}

// Option configura un Client.
type Option func(*Client)

// WithBaseURL reemplaza el endpoint de la API. Útil en tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient reemplaza el cliente HTTP.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.http = httpClient
	}
}

// WithTelemetry instala un cliente de telemetría.
func WithTelemetry(tel *telemetry.Client) Option {
	return func(c *Client) {
		c.tel = tel
	}
}

// NewClient crea un cliente de precios day-ahead.
//
// apiKey es el security token de la API de transparencia de ENTSO-E.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DayAheadPrices lista los precios day-ahead del área para la ventana
// [start, end), ordenados por inicio de entrega.
//
// area acepta un código de país conocido (DE_LU, FR, ...) o un código EIC de
// área de licitación directamente.
func (c *Client) DayAheadPrices(ctx context.Context, area string, start, end time.Time) ([]PricePoint, error) {
	eic, err := ResolveArea(area)
	if err != nil {
		return nil, err
	}
	if !end.After(start) {
		return nil, fmt.Errorf("end %s must be after start %s", end, start)
	}

	if c.tel != nil {
		c.tel.Debug(ctx, "fetching day-ahead prices",
			attribute.String("area", eic),
			attribute.String("start", start.Format(time.RFC3339)),
			attribute.String("end", end.Format(time.RFC3339)))
	}

	body, err := c.fetch(ctx, eic, start, end)
	if err != nil {
		return nil, err
	}

	points, err := parsePublication(body)
	if err != nil {
		return nil, err
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Start.Before(points[j].Start)
	})
	return points, nil
}

func (c *Client) fetch(ctx context.Context, eic string, start, end time.Time) ([]byte, error) {
	query := url.Values{}
	query.Set("securityToken", c.apiKey)
	query.Set("documentType", documentTypeDayAhead)
	query.Set("in_Domain", eic)
	query.Set("out_Domain", eic)
	query.Set("periodStart", start.UTC().Format("200601021504"))
	query.Set("periodEnd", end.UTC().Format("200601021504"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("entsoe request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read entsoe response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("entsoe returned status %d: %s", resp.StatusCode, snippet(body))
	}
	return body, nil
}

// snippet recorta un cuerpo de respuesta para incluirlo en un error.
func snippet(body []byte) string {
	const max = 200
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
