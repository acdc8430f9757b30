package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/flexshop/scheduler/stock"
)

var stockCmd = &cobra.Command{
	Use:   "stock",
	Short: "Stock replenishment formulas",
}

var (
	stockAnnualDemand  float64
	stockOrderingCost  float64
	stockHoldingCost   float64
	stockOrderQuantity float64
)

var stockEOQCmd = &cobra.Command{
	Use:   "eoq",
	Short: "Economic order quantity",
	RunE: func(cmd *cobra.Command, args []string) error {
		eoq, errCalc := stock.EOQ(stockAnnualDemand, stockOrderingCost, stockHoldingCost)
		if errCalc != nil {
			return errCalc
		}

		fmt.Printf("eoq: %.2f\n", eoq)
		fmt.Printf("orders per year: %.2f\n", stock.ReorderFrequency(stockAnnualDemand, eoq))

		quantity := stockOrderQuantity
		if quantity == 0 {
			quantity = eoq
		}

		breakdown, errCost := stock.EOQTotalCost(
			stockAnnualDemand,
			stockOrderingCost,
			stockHoldingCost,
			quantity,
		)
		if errCost != nil {
			return errCost
		}

		fmt.Printf(
			"annual cost at %.2f: %.2f (ordering %.2f, holding %.2f)\n",

			quantity,
			breakdown.Total,
			breakdown.Ordering,
			breakdown.Holding,
		)

		return nil
	},
}

var (
	stockDailyDemand float64
	stockLeadTime    int
	stockSafetyStock float64
)

var stockReorderPointCmd = &cobra.Command{
	Use:   "reorder-point",
	Short: "Reorder point from daily demand and lead time",
	RunE: func(cmd *cobra.Command, args []string) error {
		rop, errCalc := stock.ReorderPoint(stockDailyDemand, stockLeadTime, stockSafetyStock)
		if errCalc != nil {
			return errCalc
		}

		fmt.Printf("reorder point: %.2f\n", rop)

		return nil
	},
}

var (
	stockServiceLevel float64
	stockStdDev       float64
)

var stockSafetyStockCmd = &cobra.Command{
	Use:   "safety-stock",
	Short: "Safety stock for a service level",
	RunE: func(cmd *cobra.Command, args []string) error {
		z := stock.ZScoreForServiceLevel(stockServiceLevel)

		buffer, errCalc := stock.SafetyStock(z, stockStdDev, stockLeadTime)
		if errCalc != nil {
			return errCalc
		}

		fmt.Printf("z-score: %.2f\n", z)
		fmt.Printf("safety stock: %.2f\n", buffer)

		return nil
	},
}

var stockItemsPath string

type stockItemDescription struct {
	Product      string  `json:"product"`
	UnitCost     float64 `json:"unit_cost"`
	AnnualDemand float64 `json:"annual_demand"`
}

var stockABCCmd = &cobra.Command{
	Use:   "abc",
	Short: "ABC classification of inventory items",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, errRead := os.ReadFile(stockItemsPath)
		if errRead != nil {
			return fmt.Errorf("read items: %w", errRead)
		}

		var descriptions []stockItemDescription
		if errDecode := json.Unmarshal(raw, &descriptions); errDecode != nil {
			return fmt.Errorf("decode items: %w", errDecode)
		}

		items := make([]stock.ItemValue, 0, len(descriptions))
		for _, description := range descriptions {
			items = append(
				items,
				stock.ItemValue{
					ProductID:    description.Product,
					UnitCost:     description.UnitCost,
					AnnualDemand: description.AnnualDemand,
				},
			)
		}

		classification := stock.ABCClassify(items)

		products := make([]string, 0, len(classification))
		for product := range classification {
			products = append(products, product)
		}

		sort.Strings(products)

		for _, product := range products {
			fmt.Printf("%s: %s\n", product, classification[product])
		}

		return nil
	},
}

func init() {
	stockEOQCmd.Flags().Float64Var(&stockAnnualDemand, "annual-demand", 0, "annual demand in units")
	stockEOQCmd.Flags().Float64Var(&stockOrderingCost, "ordering-cost", 0, "fixed cost per order")
	stockEOQCmd.Flags().Float64Var(&stockHoldingCost, "holding-cost", 0, "holding cost per unit per year")
	stockEOQCmd.Flags().Float64Var(&stockOrderQuantity, "order-quantity", 0, "quantity to cost, defaults to the EOQ")

	stockReorderPointCmd.Flags().Float64Var(&stockDailyDemand, "daily-demand", 0, "average daily demand")
	stockReorderPointCmd.Flags().IntVar(&stockLeadTime, "lead-time", 0, "lead time in days")
	stockReorderPointCmd.Flags().Float64Var(&stockSafetyStock, "safety-stock", 0, "safety stock level")

	stockSafetyStockCmd.Flags().Float64Var(&stockServiceLevel, "service-level", 95, "service level percentage")
	stockSafetyStockCmd.Flags().Float64Var(&stockStdDev, "std-dev", 0, "standard deviation of daily demand")
	stockSafetyStockCmd.Flags().IntVar(&stockLeadTime, "lead-time", 0, "lead time in days")

	stockABCCmd.Flags().StringVar(&stockItemsPath, "items", "", "items file")
	if err := stockABCCmd.MarkFlagRequired("items"); err != nil {
		panic(err)
	}

	stockCmd.AddCommand(stockEOQCmd, stockReorderPointCmd, stockSafetyStockCmd, stockABCCmd)
	rootCmd.AddCommand(stockCmd)
}
