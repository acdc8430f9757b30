package stock

import (
	"math"
	"sort"

	goerrors "github.com/TudorHulban/go-errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// EOQ returns the economic order quantity sqrt(2*D*S/H): the order size
// minimizing combined ordering and holding cost.
func EOQ(annualDemand, orderingCost, holdingCost float64) (float64, error) {
	if annualDemand <= 0 {
		return 0,
			goerrors.ErrValidation{
				Caller: "EOQ",
				Issue: goerrors.ErrInvalidInput{
					InputName: "annualDemand",
				},
			}
	}

	if orderingCost < 0 {
		return 0,
			goerrors.ErrValidation{
				Caller: "EOQ",
				Issue: goerrors.ErrNegativeInput{
					InputName: "orderingCost",
				},
			}
	}

	if holdingCost <= 0 {
		return 0,
			goerrors.ErrValidation{
				Caller: "EOQ",
				Issue: goerrors.ErrInvalidInput{
					InputName: "holdingCost",
				},
			}
	}

	return math.Sqrt((2 * annualDemand * orderingCost) / holdingCost),
		nil
}

type EOQCostBreakdown struct {
	Total    float64
	Ordering float64
	Holding  float64
}

// EOQTotalCost evaluates the annual cost of an arbitrary order quantity.
func EOQTotalCost(annualDemand, orderingCost, holdingCost, orderQuantity float64) (*EOQCostBreakdown, error) {
	if orderQuantity <= 0 {
		return nil,
			goerrors.ErrValidation{
				Caller: "EOQTotalCost",
				Issue: goerrors.ErrInvalidInput{
					InputName: "orderQuantity",
				},
			}
	}

	ordering := annualDemand / orderQuantity * orderingCost
	holding := orderQuantity / 2 * holdingCost

	return &EOQCostBreakdown{
			Total:    ordering + holding,
			Ordering: ordering,
			Holding:  holding,
		},
		nil
}

// ReorderFrequency is the number of orders per year at the given quantity.
func ReorderFrequency(annualDemand, orderQuantity float64) float64 {
	if orderQuantity <= 0 {
		return 0
	}

	return annualDemand / orderQuantity
}

// ReorderPoint is daily demand * lead time + safety stock.
func ReorderPoint(dailyDemand float64, leadTimeDays int, safetyStock float64) (float64, error) {
	if dailyDemand < 0 {
		return 0,
			goerrors.ErrValidation{
				Caller: "ReorderPoint",
				Issue: goerrors.ErrNegativeInput{
					InputName: "dailyDemand",
				},
			}
	}

	if leadTimeDays < 0 {
		return 0,
			goerrors.ErrValidation{
				Caller: "ReorderPoint",
				Issue: goerrors.ErrNegativeInput{
					InputName: "leadTimeDays",
				},
			}
	}

	if safetyStock < 0 {
		return 0,
			goerrors.ErrValidation{
				Caller: "ReorderPoint",
				Issue: goerrors.ErrNegativeInput{
					InputName: "safetyStock",
				},
			}
	}

	return dailyDemand*float64(leadTimeDays) + safetyStock,
		nil
}

// ReorderPointFromAnnual derives daily demand from annual figures first.
func ReorderPointFromAnnual(annualDemand float64, leadTimeDays int, safetyStock float64, workingDays int) (float64, error) {
	if workingDays <= 0 {
		return 0,
			goerrors.ErrValidation{
				Caller: "ReorderPointFromAnnual",
				Issue: goerrors.ErrInvalidInput{
					InputName: "workingDays",
				},
			}
	}

	return ReorderPoint(
		annualDemand/float64(workingDays),
		leadTimeDays,
		safetyStock,
	)
}

// SafetyStock is z * sigma * sqrt(lead time): the buffer against demand
// variability over the replenishment window.
func SafetyStock(serviceLevelZ, demandStdDev float64, leadTimeDays int) (float64, error) {
	for name, value := range map[string]float64{
		"serviceLevelZ": serviceLevelZ,
		"demandStdDev":  demandStdDev,
		"leadTimeDays":  float64(leadTimeDays),
	} {
		if value < 0 {
			return 0,
				goerrors.ErrValidation{
					Caller: "SafetyStock",
					Issue: goerrors.ErrNegativeInput{
						InputName: name,
					},
				}
		}
	}

	return serviceLevelZ * demandStdDev * math.Sqrt(float64(leadTimeDays)),
		nil
}

// ZScoreForServiceLevel converts a service level percentage (e.g. 95, 99)
// to the standard-normal quantile. Out-of-range input clamps to the valid
// percentage interval.
func ZScoreForServiceLevel(serviceLevelPercent float64) float64 {
	p := serviceLevelPercent / 100

	if p <= 0.5 {
		return 0
	}

	if p >= 0.999 {
		p = 0.999
	}

	normal := distuv.Normal{Mu: 0, Sigma: 1}

	return normal.Quantile(p)
}

type ABCClass string

const (
	ClassA ABCClass = "A"
	ClassB ABCClass = "B"
	ClassC ABCClass = "C"
)

type ItemValue struct {
	ProductID    string
	UnitCost     float64
	AnnualDemand float64
}

// ABCClassify buckets items by share of total annual value: the cumulative
// value ahead of an item decides its class, below 80% is A, below 95% is B,
// the tail is C.
func ABCClassify(items []ItemValue) map[string]ABCClass {
	classification := make(map[string]ABCClass, len(items))

	if len(items) == 0 {
		return classification
	}

	type valued struct {
		ProductID string
		Value     float64
	}

	values := make([]valued, 0, len(items))

	var totalValue float64

	for _, item := range items {
		value := item.UnitCost * item.AnnualDemand

		values = append(
			values,
			valued{
				ProductID: item.ProductID,
				Value:     value,
			},
		)

		totalValue += value
	}

	if totalValue == 0 {
		for _, item := range values {
			classification[item.ProductID] = ClassC
		}

		return classification
	}

	sort.SliceStable(
		values,
		func(i, j int) bool {
			return values[i].Value > values[j].Value
		},
	)

	var cumulativeValue float64

	for _, item := range values {
		cumulativePercent := cumulativeValue / totalValue * 100

		switch {
		case cumulativePercent < 80:
			classification[item.ProductID] = ClassA
		case cumulativePercent < 95:
			classification[item.ProductID] = ClassB
		default:
			classification[item.ProductID] = ClassC
		}

		cumulativeValue += item.Value
	}

	return classification
}
