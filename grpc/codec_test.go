package grpc

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/xKoRx/gridpool/wire"
)

func TestJSONCodec_WireFieldNames(t *testing.T) {
	codec := jsonCodec{}

	req := &wire.CreateGridpoolOrderRequest{
		GridpoolID: 7,
		Order: &wire.Order{
			DeliveryArea: &wire.DeliveryArea{
				Code:     "10YDE-EON------1",
				CodeType: wire.EnergyMarketCodeTypeEuropeEIC,
			},
			DeliveryPeriod: &wire.DeliveryPeriod{
				Start:    timestamppb.New(time.Date(2027, 1, 15, 12, 0, 0, 0, time.UTC)),
				Duration: wire.DeliveryDuration15,
			},
			Type:     wire.OrderTypeLimit,
			Side:     wire.MarketSideBuy,
			Price:    &wire.Price{Amount: &wire.Decimal{Value: "50.25"}, Currency: wire.CurrencyEUR},
			Quantity: &wire.Power{MW: &wire.Decimal{Value: "2.5"}},
		},
	}

	data, err := codec.Marshal(req)
	require.NoError(t, err)

	// Los nombres de campo del JSON son los del esquema del servicio.
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Contains(t, raw, "gridpool_id")
	order := raw["order"].(map[string]interface{})
	require.Contains(t, order, "delivery_area")
	require.Contains(t, order, "delivery_period")

	var back wire.CreateGridpoolOrderRequest
	require.NoError(t, codec.Unmarshal(data, &back))
	require.Equal(t, int64(7), back.GridpoolID)
	require.Equal(t, "50.25", back.Order.Price.Amount.Value)
	require.Equal(t, wire.MarketSideBuy, back.Order.Side)
}

func TestAuthUnaryClientInterceptor(t *testing.T) {
	interceptor := AuthUnaryClientInterceptor("secret-key")

	var captured metadata.MD
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpclib.ClientConn, opts ...grpclib.CallOption) error {
		captured, _ = metadata.FromOutgoingContext(ctx)
		return nil
	}

	err := interceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.NoError(t, err)
	require.Equal(t, []string{"secret-key"}, captured.Get(authMetadataKey))
}

func TestAuthUnaryClientInterceptor_EmptyKey(t *testing.T) {
	interceptor := AuthUnaryClientInterceptor("")

	var captured metadata.MD
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpclib.ClientConn, opts ...grpclib.CallOption) error {
		captured, _ = metadata.FromOutgoingContext(ctx)
		return nil
	}

	err := interceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.NoError(t, err)
	require.Empty(t, captured.Get(authMetadataKey))
}
