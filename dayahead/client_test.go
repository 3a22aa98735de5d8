package dayahead

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const publicationFixture = `<?xml version="1.0" encoding="UTF-8"?>
<Publication_MarketDocument xmlns="urn:iec62325.351:tc57wg16:451-3:publicationdocument:7:0">
  <mRID>fixture</mRID>
  <TimeSeries>
    <currency_Unit.name>EUR</currency_Unit.name>
    <price_Measure_Unit.name>MWH</price_Measure_Unit.name>
    <Period>
      <timeInterval>
        <start>2025-06-01T22:00Z</start>
        <end>2025-06-02T22:00Z</end>
      </timeInterval>
      <resolution>PT60M</resolution>
      <Point>
        <position>1</position>
        <price.amount>84.51</price.amount>
      </Point>
      <Point>
        <position>2</position>
        <price.amount>79.30</price.amount>
      </Point>
      <Point>
        <position>3</position>
        <price.amount>-5.00</price.amount>
      </Point>
    </Period>
  </TimeSeries>
</Publication_MarketDocument>`

const acknowledgementFixture = `<?xml version="1.0" encoding="UTF-8"?>
<Acknowledgement_MarketDocument xmlns="urn:iec62325.351:tc57wg16:451-1:acknowledgementdocument:8:1">
  <Reason>
    <code>999</code>
    <text>No matching data found</text>
  </Reason>
</Acknowledgement_MarketDocument>`

func TestDayAheadPrices(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"securityToken": q.Get("securityToken"),
			"documentType":  q.Get("documentType"),
			"in_Domain":     q.Get("in_Domain"),
			"out_Domain":    q.Get("out_Domain"),
			"periodStart":   q.Get("periodStart"),
			"periodEnd":     q.Get("periodEnd"),
		}
		w.Write([]byte(publicationFixture))
	}))
	defer server.Close()

	c := NewClient("test-key", WithBaseURL(server.URL))
	start := time.Date(2025, 6, 1, 22, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	points, err := c.DayAheadPrices(context.Background(), "DE_LU", start, end)
	require.NoError(t, err)

	require.Equal(t, "test-key", gotQuery["securityToken"])
	require.Equal(t, "A44", gotQuery["documentType"])
	require.Equal(t, "10Y1001A1001A82H", gotQuery["in_Domain"])
	require.Equal(t, gotQuery["in_Domain"], gotQuery["out_Domain"])
	require.Equal(t, "202506012200", gotQuery["periodStart"])
	require.Equal(t, "202506022200", gotQuery["periodEnd"])

	require.Len(t, points, 3)
	require.Equal(t, "84.51", points[0].Price.String())
	require.Equal(t, "EUR", points[0].Currency)
	require.Equal(t, "MWH", points[0].Unit)
	require.True(t, points[0].Start.Equal(start))
	require.True(t, points[0].End.Equal(start.Add(time.Hour)))

	// Las posiciones siguientes desplazan la ventana una resolución cada una.
	require.True(t, points[1].Start.Equal(start.Add(time.Hour)))
	require.Equal(t, "-5", points[2].Price.String())
	require.True(t, points[2].Start.Equal(start.Add(2*time.Hour)))
}

func TestDayAheadPricesAcknowledgement(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(acknowledgementFixture))
	}))
	defer server.Close()

	c := NewClient("test-key", WithBaseURL(server.URL))
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	_, err := c.DayAheadPrices(context.Background(), "DE_LU", start, start.Add(time.Hour))
	require.Error(t, err)
	require.Contains(t, err.Error(), "No matching data found")
}

func TestDayAheadPricesHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	c := NewClient("bad-key", WithBaseURL(server.URL))
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	_, err := c.DayAheadPrices(context.Background(), "DE_LU", start, start.Add(time.Hour))
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 401")
}

func TestDayAheadPricesInvalidWindow(t *testing.T) {
	c := NewClient("test-key")
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	_, err := c.DayAheadPrices(context.Background(), "DE_LU", start, start)
	require.Error(t, err)
}

func TestResolveArea(t *testing.T) {
	tests := []struct {
		name    string
		area    string
		want    string
		wantErr bool
	}{
		{name: "country code", area: "DE_LU", want: "10Y1001A1001A82H"},
		{name: "lowercase country code", area: "fr", want: "10YFR-RTE------C"},
		{name: "raw EIC passthrough", area: "10YDE-EON------1", want: "10YDE-EON------1"},
		{name: "unknown zone", area: "XX", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveArea(tt.area)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseResolution(t *testing.T) {
	d, err := parseResolution("PT15M")
	require.NoError(t, err)
	require.Equal(t, 15*time.Minute, d)

	_, err = parseResolution("PT7M")
	require.Error(t, err)
}
