package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Filtros server-side de las operaciones de listado y streaming.
//
// Cada filtro expone Key(), una representación canónica: los campos lista se
// ordenan antes de serializar, de modo que dos filtros con el mismo contenido
// producen la misma clave sin importar el orden de construcción. Las claves
// son las llaves de de-duplicación del cache de streams.

// GridpoolOrderFilter filtra órdenes de un gridpool.
type GridpoolOrderFilter struct {
	States         []OrderState
	Side           *MarketSide
	DeliveryArea   *DeliveryArea
	DeliveryPeriod *DeliveryPeriod
	Tag            *string
}

// Key retorna la representación canónica del filtro.
func (f GridpoolOrderFilter) Key() string {
	states := make([]string, 0, len(f.States))
	for _, s := range f.States {
		states = append(states, string(s))
	}
	sort.Strings(states)

	var b strings.Builder
	b.WriteString("states=")
	b.WriteString(strings.Join(states, ","))
	writeSideKey(&b, f.Side)
	writeAreaKey(&b, "area", f.DeliveryArea)
	writePeriodKey(&b, f.DeliveryPeriod)
	if f.Tag != nil {
		fmt.Fprintf(&b, ";tag=%s", *f.Tag)
	}
	return b.String()
}

// GridpoolTradeFilter filtra trades de un gridpool.
type GridpoolTradeFilter struct {
	States         []TradeState
	TradeIDs       []int64
	Side           *MarketSide
	DeliveryArea   *DeliveryArea
	DeliveryPeriod *DeliveryPeriod
}

// Key retorna la representación canónica del filtro.
func (f GridpoolTradeFilter) Key() string {
	states := make([]string, 0, len(f.States))
	for _, s := range f.States {
		states = append(states, string(s))
	}
	sort.Strings(states)

	ids := make([]int64, len(f.TradeIDs))
	copy(ids, f.TradeIDs)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	idStrs := make([]string, 0, len(ids))
	for _, id := range ids {
		idStrs = append(idStrs, fmt.Sprintf("%d", id))
	}

	var b strings.Builder
	b.WriteString("states=")
	b.WriteString(strings.Join(states, ","))
	fmt.Fprintf(&b, ";trade_ids=%s", strings.Join(idStrs, ","))
	writeSideKey(&b, f.Side)
	writeAreaKey(&b, "area", f.DeliveryArea)
	writePeriodKey(&b, f.DeliveryPeriod)
	return b.String()
}

// PublicTradeFilter filtra trades públicos de todo el mercado.
type PublicTradeFilter struct {
	States           []TradeState
	BuyDeliveryArea  *DeliveryArea
	SellDeliveryArea *DeliveryArea
	DeliveryPeriod   *DeliveryPeriod
}

// Key retorna la representación canónica del filtro.
func (f PublicTradeFilter) Key() string {
	states := make([]string, 0, len(f.States))
	for _, s := range f.States {
		states = append(states, string(s))
	}
	sort.Strings(states)

	var b strings.Builder
	b.WriteString("states=")
	b.WriteString(strings.Join(states, ","))
	writeAreaKey(&b, "buy_area", f.BuyDeliveryArea)
	writeAreaKey(&b, "sell_area", f.SellDeliveryArea)
	writePeriodKey(&b, f.DeliveryPeriod)
	return b.String()
}

func writeSideKey(b *strings.Builder, side *MarketSide) {
	if side != nil {
		fmt.Fprintf(b, ";side=%s", *side)
	}
}

func writeAreaKey(b *strings.Builder, label string, area *DeliveryArea) {
	if area != nil {
		fmt.Fprintf(b, ";%s=%s/%s", label, area.Code, area.CodeType)
	}
}

func writePeriodKey(b *strings.Builder, period *DeliveryPeriod) {
	if period != nil {
		fmt.Fprintf(b, ";period=%s/%s", period.Start.UTC().Format("2006-01-02T15:04:05Z"), period.Duration)
	}
}
