package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUpdateMask_Empty(t *testing.T) {
	mask, fields, err := UpdateOrder{}.UpdateMask()
	require.Nil(t, mask)
	require.Nil(t, fields)
	require.Error(t, err)
	require.True(t, IsInvalidArgument(err))
	require.Contains(t, err.Error(), "At least one field to update must be provided.")
}

func TestUpdateMask_SingleField(t *testing.T) {
	upd := UpdateOrder{Price: Some(NewPrice(dec("51.5"), CurrencyEUR))}

	mask, fields, err := upd.UpdateMask()
	require.NoError(t, err)
	require.Equal(t, []string{"price"}, mask.Paths)
	require.NotNil(t, fields.Price)
	require.Equal(t, "51.5", fields.Price.Amount.Value)
	require.Nil(t, fields.Quantity)
}

func TestUpdateMask_DeclarationOrder(t *testing.T) {
	validUntil := time.Now().UTC().Add(time.Hour)
	upd := UpdateOrder{
		ValidUntil: Some(validUntil),
		Tag:        Some("rebalance"),
		Price:      Some(NewPrice(dec("48"), CurrencyEUR)),
		Quantity:   Some(NewPowerMW(dec("2.5"))),
	}

	mask, fields, err := upd.UpdateMask()
	require.NoError(t, err)
	// El orden de los paths es el de declaración de los campos, no el de
	// construcción del struct.
	require.Equal(t, []string{"price", "quantity", "valid_until", "tag"}, mask.Paths)
	require.Equal(t, "rebalance", fields.Tag)
	require.Equal(t, validUntil.Unix(), fields.ValidUntil.AsTime().Unix())
}

func TestUpdateMask_StableAcrossCalls(t *testing.T) {
	upd := UpdateOrder{
		Price:    Some(NewPrice(dec("48"), CurrencyEUR)),
		Quantity: Some(NewPowerMW(dec("2.5"))),
	}

	first, _, err := upd.UpdateMask()
	require.NoError(t, err)
	second, _, err := upd.UpdateMask()
	require.NoError(t, err)
	require.Equal(t, first.Paths, second.Paths)
}

func TestUpdateMask_ExplicitNone(t *testing.T) {
	upd := UpdateOrder{ValidUntil: None[time.Time]()}

	mask, fields, err := upd.UpdateMask()
	require.NoError(t, err)
	// None entra al mask con valor wire nil: el servidor limpia el campo.
	require.Equal(t, []string{"valid_until"}, mask.Paths)
	require.Nil(t, fields.ValidUntil)
}

func TestUpdateMask_NoneDistinctFromOmitted(t *testing.T) {
	omitted := UpdateOrder{Price: Some(NewPrice(dec("48"), CurrencyEUR))}
	cleared := UpdateOrder{
		Price:      Some(NewPrice(dec("48"), CurrencyEUR)),
		ValidUntil: None[time.Time](),
	}

	omittedMask, _, err := omitted.UpdateMask()
	require.NoError(t, err)
	clearedMask, _, err := cleared.UpdateMask()
	require.NoError(t, err)

	require.Equal(t, []string{"price"}, omittedMask.Paths)
	require.Equal(t, []string{"price", "valid_until"}, clearedMask.Paths)
}

func TestUpdateOrder_ParamsValidation(t *testing.T) {
	upd := UpdateOrder{Quantity: Some(NewPowerMW(dec("0.05")))}
	err := ValidateOrderParams(upd.Params())
	require.Error(t, err)
	require.Contains(t, err.Error(), "Quantity must be at least 0.1 MW.")
}
