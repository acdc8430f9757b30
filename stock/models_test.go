package stock

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDemand(t *testing.T) {
	t.Run(
		"1. valid demand",
		func(t *testing.T) {
			demand, errCr := NewDemand(
				&ParamsNewDemand{
					ProductID: "P-1",
					Quantity:  12.5,
				},
			)
			require.NoError(t, errCr)
			require.Equal(t, 12.5, demand.Quantity)
			require.False(t, demand.Timestamp.IsZero())
		},
	)

	t.Run(
		"2. negative quantity",
		func(t *testing.T) {
			demand, errCr := NewDemand(
				&ParamsNewDemand{
					ProductID: "P-1",
					Quantity:  -1,
				},
			)
			require.Error(t, errCr)
			require.Nil(t, demand)
		},
	)

	t.Run(
		"3. missing product",
		func(t *testing.T) {
			demand, errCr := NewDemand(&ParamsNewDemand{Quantity: 1})
			require.Error(t, errCr)
			require.Nil(t, demand)
		},
	)
}

func TestNewOrder(t *testing.T) {
	t.Run(
		"1. valid order",
		func(t *testing.T) {
			order, errCr := NewOrder(
				&ParamsNewOrder{
					ProductID:    "P-1",
					Quantity:     100,
					OrderCost:    50,
					LeadTimeDays: 7,
				},
			)
			require.NoError(t, errCr)
			require.Equal(t, 7, order.LeadTimeDays)
		},
	)

	t.Run(
		"2. zero quantity",
		func(t *testing.T) {
			order, errCr := NewOrder(
				&ParamsNewOrder{
					ProductID: "P-1",
					OrderCost: 50,
				},
			)
			require.Error(t, errCr)
			require.Nil(t, order)
		},
	)

	t.Run(
		"3. negative lead time",
		func(t *testing.T) {
			order, errCr := NewOrder(
				&ParamsNewOrder{
					ProductID:    "P-1",
					Quantity:     100,
					LeadTimeDays: -1,
				},
			)
			require.Error(t, errCr)
			require.Nil(t, order)
		},
	)
}

func TestInventory(t *testing.T) {
	newInventory := func(t *testing.T) *Inventory {
		t.Helper()

		inv, errCr := NewInventory(
			&ParamsNewInventory{
				ProductID:          "P-1",
				CurrentStock:       100,
				HoldingCostPerUnit: 2,
				UnitCost:           10,
				MinStockLevel:      20,
				MaxStockLevel:      150,
			},
		)
		require.NoError(t, errCr)

		return inv
	}

	t.Run(
		"1. add and remove stock",
		func(t *testing.T) {
			inv := newInventory(t)

			require.NoError(t, inv.AddStock(30))
			require.Equal(t, 130.0, inv.CurrentStock)

			require.NoError(t, inv.RemoveStock(120))
			require.Equal(t, 10.0, inv.CurrentStock)
			require.True(t, inv.IsBelowMinimum())
		},
	)

	t.Run(
		"2. cannot remove more than available",
		func(t *testing.T) {
			inv := newInventory(t)

			require.Error(t, inv.RemoveStock(1000))
			require.Equal(t, 100.0, inv.CurrentStock)
		},
	)

	t.Run(
		"3. maximum level",
		func(t *testing.T) {
			inv := newInventory(t)

			require.False(t, inv.IsAboveMaximum())
			require.NoError(t, inv.AddStock(100))
			require.True(t, inv.IsAboveMaximum())
		},
	)

	t.Run(
		"4. holding cost",
		func(t *testing.T) {
			inv := newInventory(t)

			require.Equal(t, 200.0, inv.HoldingCost())
		},
	)

	t.Run(
		"5. max below min rejected",
		func(t *testing.T) {
			inv, errCr := NewInventory(
				&ParamsNewInventory{
					ProductID:     "P-1",
					MinStockLevel: 50,
					MaxStockLevel: 10,
				},
			)
			require.Error(t, errCr)
			require.Nil(t, inv)
		},
	)
}
