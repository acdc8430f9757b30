package stock

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEOQ(t *testing.T) {
	t.Run(
		"1. basic quantity",
		func(t *testing.T) {
			eoq, errCalc := EOQ(1000, 50, 2)
			require.NoError(t, errCalc)
			require.InDelta(t, math.Sqrt(2*1000*50/2), eoq, 0.01)
		},
	)

	t.Run(
		"2. high demand",
		func(t *testing.T) {
			eoq, errCalc := EOQ(10000, 100, 5)
			require.NoError(t, errCalc)
			require.InDelta(t, 632.45, eoq, 0.01)
		},
	)

	t.Run(
		"3. non-positive demand rejected",
		func(t *testing.T) {
			_, errCalc := EOQ(-1000, 50, 2)
			require.Error(t, errCalc)
		},
	)

	t.Run(
		"4. zero holding cost rejected",
		func(t *testing.T) {
			_, errCalc := EOQ(1000, 50, 0)
			require.Error(t, errCalc)
		},
	)

	t.Run(
		"5. total cost breakdown",
		func(t *testing.T) {
			breakdown, errCalc := EOQTotalCost(1000, 50, 2, 100)
			require.NoError(t, errCalc)

			require.InDelta(t, 500, breakdown.Ordering, 1e-9)
			require.InDelta(t, 100, breakdown.Holding, 1e-9)
			require.InDelta(t, breakdown.Ordering+breakdown.Holding, breakdown.Total, 1e-9)
		},
	)

	t.Run(
		"6. reorder frequency",
		func(t *testing.T) {
			require.InDelta(t, 10, ReorderFrequency(1000, 100), 1e-9)
			require.Zero(t, ReorderFrequency(1000, 0))
		},
	)
}

func TestReorderPoint(t *testing.T) {
	tests := []struct {
		name string

		dailyDemand  float64
		leadTimeDays int
		safetyStock  float64

		expectedResult float64
		expectError    bool
	}{
		{
			name: "1. without safety stock",

			dailyDemand:  10,
			leadTimeDays: 5,

			expectedResult: 50,
		},
		{
			name: "2. with safety stock",

			dailyDemand:  10,
			leadTimeDays: 5,
			safetyStock:  20,

			expectedResult: 70,
		},
		{
			name: "3. negative daily demand",

			dailyDemand:  -10,
			leadTimeDays: 5,

			expectError: true,
		},
		{
			name: "4. negative lead time",

			dailyDemand:  10,
			leadTimeDays: -5,

			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name,
			func(t *testing.T) {
				rop, errCalc := ReorderPoint(tt.dailyDemand, tt.leadTimeDays, tt.safetyStock)

				if tt.expectError {
					require.Error(t, errCalc)

					return
				}

				require.NoError(t, errCalc)
				require.InDelta(t, tt.expectedResult, rop, 1e-9)
			},
		)
	}

	t.Run(
		"5. from annual demand",
		func(t *testing.T) {
			rop, errCalc := ReorderPointFromAnnual(3650, 5, 20, 365)
			require.NoError(t, errCalc)
			require.InDelta(t, 70, rop, 1e-9)
		},
	)

	t.Run(
		"6. zero working days rejected",
		func(t *testing.T) {
			_, errCalc := ReorderPointFromAnnual(3650, 5, 20, 0)
			require.Error(t, errCalc)
		},
	)
}

func TestSafetyStock(t *testing.T) {
	t.Run(
		"1. basic buffer",
		func(t *testing.T) {
			buffer, errCalc := SafetyStock(1.65, 5, 4)
			require.NoError(t, errCalc)
			require.InDelta(t, 1.65*5*2, buffer, 0.01)
		},
	)

	t.Run(
		"2. zero deviation needs no buffer",
		func(t *testing.T) {
			buffer, errCalc := SafetyStock(1.65, 0, 4)
			require.NoError(t, errCalc)
			require.Zero(t, buffer)
		},
	)

	t.Run(
		"3. negative z rejected",
		func(t *testing.T) {
			_, errCalc := SafetyStock(-1, 5, 4)
			require.Error(t, errCalc)
		},
	)
}

func TestZScoreForServiceLevel(t *testing.T) {
	tests := []struct {
		name    string
		percent float64

		expectedZ float64
	}{
		{name: "1. 95 percent", percent: 95, expectedZ: 1.65},
		{name: "2. 99 percent", percent: 99, expectedZ: 2.33},
		{name: "3. 90 percent", percent: 90, expectedZ: 1.28},
		{name: "4. 50 percent", percent: 50, expectedZ: 0},
	}

	for _, tt := range tests {
		t.Run(
			tt.name,
			func(t *testing.T) {
				require.InDelta(
					t,
					tt.expectedZ,
					ZScoreForServiceLevel(tt.percent),
					0.01,
				)
			},
		)
	}
}

func TestABCClassify(t *testing.T) {
	t.Run(
		"1. empty input",
		func(t *testing.T) {
			require.Empty(t, ABCClassify(nil))
		},
	)

	t.Run(
		"2. dominant item is class A",
		func(t *testing.T) {
			classification := ABCClassify(
				[]ItemValue{
					{ProductID: "low-1", UnitCost: 1, AnnualDemand: 10},
					{ProductID: "high", UnitCost: 100, AnnualDemand: 100},
					{ProductID: "mid", UnitCost: 10, AnnualDemand: 100},
					{ProductID: "low-2", UnitCost: 1, AnnualDemand: 5},
				},
			)

			require.Equal(t, ClassA, classification["high"])
			require.Equal(t, ClassB, classification["mid"])
			require.Equal(t, ClassC, classification["low-1"])
			require.Equal(t, ClassC, classification["low-2"])
		},
	)

	t.Run(
		"3. zero total value classifies everything C",
		func(t *testing.T) {
			classification := ABCClassify(
				[]ItemValue{
					{ProductID: "a", UnitCost: 0, AnnualDemand: 10},
					{ProductID: "b", UnitCost: 5, AnnualDemand: 0},
				},
			)

			require.Equal(t, ClassC, classification["a"])
			require.Equal(t, ClassC, classification["b"])
		},
	)
}
