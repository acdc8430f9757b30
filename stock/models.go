// Package stock holds inventory replenishment models and formulas. It shares
// no code or data model with the scheduler; the two ship together but solve
// unrelated problems.
package stock

import (
	"fmt"
	"time"

	goerrors "github.com/TudorHulban/go-errors"
)

// Demand is observed demand for a product at a point in time.
type Demand struct {
	ProductID string
	Quantity  float64
	Timestamp time.Time
}

type ParamsNewDemand struct {
	ProductID string
	Quantity  float64
}

func NewDemand(params *ParamsNewDemand) (*Demand, error) {
	if len(params.ProductID) == 0 {
		return nil,
			goerrors.ErrValidation{
				Caller: "NewDemand",
				Issue: goerrors.ErrNilInput{
					InputName: "ProductID",
				},
			}
	}

	if params.Quantity < 0 {
		return nil,
			goerrors.ErrValidation{
				Caller: "NewDemand",
				Issue: goerrors.ErrNegativeInput{
					InputName: "Quantity",
				},
			}
	}

	return &Demand{
			ProductID: params.ProductID,
			Quantity:  params.Quantity,
			Timestamp: time.Now(),
		},
		nil
}

// Order is a purchase order for replenishment.
type Order struct {
	ProductID    string
	Quantity     float64
	OrderCost    float64
	LeadTimeDays int
	Timestamp    time.Time
}

type ParamsNewOrder struct {
	ProductID    string
	Quantity     float64
	OrderCost    float64
	LeadTimeDays int
}

func NewOrder(params *ParamsNewOrder) (*Order, error) {
	if len(params.ProductID) == 0 {
		return nil,
			goerrors.ErrValidation{
				Caller: "NewOrder",
				Issue: goerrors.ErrNilInput{
					InputName: "ProductID",
				},
			}
	}

	if params.Quantity <= 0 {
		return nil,
			goerrors.ErrValidation{
				Caller: "NewOrder",
				Issue: goerrors.ErrInvalidInput{
					InputName: "Quantity",
				},
			}
	}

	if params.OrderCost < 0 {
		return nil,
			goerrors.ErrValidation{
				Caller: "NewOrder",
				Issue: goerrors.ErrNegativeInput{
					InputName: "OrderCost",
				},
			}
	}

	if params.LeadTimeDays < 0 {
		return nil,
			goerrors.ErrValidation{
				Caller: "NewOrder",
				Issue: goerrors.ErrNegativeInput{
					InputName: "LeadTimeDays",
				},
			}
	}

	return &Order{
			ProductID:    params.ProductID,
			Quantity:     params.Quantity,
			OrderCost:    params.OrderCost,
			LeadTimeDays: params.LeadTimeDays,
			Timestamp:    time.Now(),
		},
		nil
}

// Inventory is the current stock state of one product. MaxStockLevel of zero
// means unbounded.
type Inventory struct {
	ProductID          string
	CurrentStock       float64
	HoldingCostPerUnit float64
	UnitCost           float64
	MinStockLevel      float64
	MaxStockLevel      float64
}

type ParamsNewInventory struct {
	ProductID          string
	CurrentStock       float64
	HoldingCostPerUnit float64
	UnitCost           float64
	MinStockLevel      float64
	MaxStockLevel      float64
}

func (params *ParamsNewInventory) IsValid() error {
	if len(params.ProductID) == 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewInventory",
			Issue: goerrors.ErrNilInput{
				InputName: "ProductID",
			},
		}
	}

	for name, value := range map[string]float64{
		"CurrentStock":       params.CurrentStock,
		"HoldingCostPerUnit": params.HoldingCostPerUnit,
		"UnitCost":           params.UnitCost,
		"MinStockLevel":      params.MinStockLevel,
	} {
		if value < 0 {
			return goerrors.ErrValidation{
				Caller: "IsValid - ParamsNewInventory",
				Issue: goerrors.ErrNegativeInput{
					InputName: name,
				},
			}
		}
	}

	if params.MaxStockLevel != 0 && params.MaxStockLevel < params.MinStockLevel {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsNewInventory",
			Issue: goerrors.ErrInvalidInput{
				InputName: "MaxStockLevel below MinStockLevel",
			},
		}
	}

	return nil
}

func NewInventory(params *ParamsNewInventory) (*Inventory, error) {
	if errValidation := params.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	return &Inventory{
			ProductID:          params.ProductID,
			CurrentStock:       params.CurrentStock,
			HoldingCostPerUnit: params.HoldingCostPerUnit,
			UnitCost:           params.UnitCost,
			MinStockLevel:      params.MinStockLevel,
			MaxStockLevel:      params.MaxStockLevel,
		},
		nil
}

func (inv *Inventory) AddStock(quantity float64) error {
	if quantity <= 0 {
		return goerrors.ErrValidation{
			Caller: "AddStock",
			Issue: goerrors.ErrInvalidInput{
				InputName: "quantity",
			},
		}
	}

	inv.CurrentStock += quantity

	return nil
}

func (inv *Inventory) RemoveStock(quantity float64) error {
	if quantity <= 0 {
		return goerrors.ErrValidation{
			Caller: "RemoveStock",
			Issue: goerrors.ErrInvalidInput{
				InputName: "quantity",
			},
		}
	}

	if quantity > inv.CurrentStock {
		return goerrors.ErrValidation{
			Caller: "RemoveStock",
			Issue: goerrors.ErrInvalidInput{
				InputName: fmt.Sprintf(
					"cannot remove %.2f units, only %.2f available",
					quantity,
					inv.CurrentStock,
				),
			},
		}
	}

	inv.CurrentStock -= quantity

	return nil
}

func (inv *Inventory) IsBelowMinimum() bool {
	return inv.CurrentStock < inv.MinStockLevel
}

func (inv *Inventory) IsAboveMaximum() bool {
	if inv.MaxStockLevel == 0 {
		return false
	}

	return inv.CurrentStock > inv.MaxStockLevel
}

func (inv *Inventory) HoldingCost() float64 {
	return inv.CurrentStock * inv.HoldingCostPerUnit
}
