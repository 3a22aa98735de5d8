package domain

import (
	"time"

	"google.golang.org/protobuf/types/known/fieldmaskpb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/xKoRx/gridpool/wire"
)

// UpdateOrder reúne los campos actualizables de una orden existente.
//
// Cada campo distingue tres estados: omitido (no se toca), None (el servidor
// limpia el campo) y valor presente (el servidor escribe el valor). Solo los
// campos no-omitidos entran al field mask.
type UpdateOrder struct {
	Price           Optional[Price]
	Quantity        Optional[Power]
	StopPrice       Optional[Price]
	PeakPriceDelta  Optional[Price]
	DisplayQuantity Optional[Power]
	ExecutionOption Optional[OrderExecutionOption]
	ValidUntil      Optional[time.Time]
	Payload         Optional[map[string]*structpb.Value]
	Tag             Optional[string]
}

// UpdateMask construye el field mask y los campos wire de la actualización.
//
// Los paths siguen el orden de declaración de los campos, estable entre
// llamadas. Sin ningún campo presente la actualización se rechaza antes de
// tocar la red.
//
// Example:
//
//	upd := domain.UpdateOrder{Price: domain.Some(newPrice)}
//	mask, fields, err := upd.UpdateMask()
//	// mask.Paths == []string{"price"}
func (u UpdateOrder) UpdateMask() (*fieldmaskpb.FieldMask, *wire.UpdateOrder, error) {
	paths := make([]string, 0, 9)
	fields := &wire.UpdateOrder{}

	if !u.Price.Omitted() {
		paths = append(paths, "price")
		if price, ok := u.Price.Get(); ok {
			fields.Price = PriceToWire(price)
		}
	}
	if !u.Quantity.Omitted() {
		paths = append(paths, "quantity")
		if quantity, ok := u.Quantity.Get(); ok {
			fields.Quantity = PowerToWire(quantity)
		}
	}
	if !u.StopPrice.Omitted() {
		paths = append(paths, "stop_price")
		if sp, ok := u.StopPrice.Get(); ok {
			fields.StopPrice = PriceToWire(sp)
		}
	}
	if !u.PeakPriceDelta.Omitted() {
		paths = append(paths, "peak_price_delta")
		if ppd, ok := u.PeakPriceDelta.Get(); ok {
			fields.PeakPriceDelta = PriceToWire(ppd)
		}
	}
	if !u.DisplayQuantity.Omitted() {
		paths = append(paths, "display_quantity")
		if dq, ok := u.DisplayQuantity.Get(); ok {
			fields.DisplayQuantity = PowerToWire(dq)
		}
	}
	if !u.ExecutionOption.Omitted() {
		paths = append(paths, "execution_option")
		if opt, ok := u.ExecutionOption.Get(); ok {
			fields.ExecutionOption = ExecutionOptionToWire(opt)
		}
	}
	if !u.ValidUntil.Omitted() {
		paths = append(paths, "valid_until")
		if vu, ok := u.ValidUntil.Get(); ok {
			fields.ValidUntil = timestamppb.New(vu.UTC())
		}
	}
	if !u.Payload.Omitted() {
		paths = append(paths, "payload")
		if payload, ok := u.Payload.Get(); ok {
			fields.Payload = payload
		}
	}
	if !u.Tag.Omitted() {
		paths = append(paths, "tag")
		if tag, ok := u.Tag.Get(); ok {
			fields.Tag = tag
		}
	}

	if len(paths) == 0 {
		return nil, nil, NewValidationError("update_mask", paths,
			"At least one field to update must be provided.")
	}

	return &fieldmaskpb.FieldMask{Paths: paths}, fields, nil
}

// Params mapea los campos de la actualización a OrderParams para reusar la
// validación de órdenes.
func (u UpdateOrder) Params() OrderParams {
	return OrderParams{
		Price:           u.Price,
		Quantity:        u.Quantity,
		StopPrice:       u.StopPrice,
		PeakPriceDelta:  u.PeakPriceDelta,
		DisplayQuantity: u.DisplayQuantity,
		ValidUntil:      u.ValidUntil,
		ExecutionOption: u.ExecutionOption,
	}
}
