package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Catalog management (admin session required)",
}

var adminProductsCmd = &cobra.Command{
	Use:   "products",
	Short: "List the full unfiltered catalog",
	RunE:  runAdminProducts,
}

var adminSizesCmd = &cobra.Command{
	Use:   "sizes [product-id]",
	Short: "Replace a product's size run",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminSizes,
}

var adminDiscountCmd = &cobra.Command{
	Use:   "discount [product-id]",
	Short: "Set a product's discount rate and sale window",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminDiscount,
}

var adminSalesCmd = &cobra.Command{
	Use:   "sales [product-id]",
	Short: "Show the sales report, optionally for one product",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAdminSales,
}

func init() {
	adminSizesCmd.Flags().IntSlice("size", nil, "Size to offer (repeatable, required)")
	adminSizesCmd.MarkFlagRequired("size")

	adminDiscountCmd.Flags().Float64("rate", 0, "Discount rate between 0 and 1")
	adminDiscountCmd.Flags().String("start", "", "Sale window start (RFC3339)")
	adminDiscountCmd.Flags().String("end", "", "Sale window end (RFC3339)")

	adminSalesCmd.Flags().String("from", "", "Report range start (RFC3339)")
	adminSalesCmd.Flags().String("to", "", "Report range end (RFC3339)")

	adminCmd.AddCommand(adminProductsCmd)
	adminCmd.AddCommand(adminSizesCmd)
	adminCmd.AddCommand(adminDiscountCmd)
	adminCmd.AddCommand(adminSalesCmd)
	rootCmd.AddCommand(adminCmd)
}

func runAdminProducts(cmd *cobra.Command, args []string) error {
	api, err := buildOrderAPI()
	if err != nil {
		return err
	}

	products, err := api.AdminProducts(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list products: %w", err)
	}
	for _, p := range products {
		fmt.Printf("%-36s  %-24s  %-6s  %8.2f  stock %d\n", p.ID, p.Name, p.Gender, p.Price, p.StockQuantity)
	}
	return nil
}

func runAdminSizes(cmd *cobra.Command, args []string) error {
	api, err := buildOrderAPI()
	if err != nil {
		return err
	}

	sizes, _ := cmd.Flags().GetIntSlice("size")

	product, err := api.UpdateProductSizes(context.Background(), args[0], sizes)
	if err != nil {
		return fmt.Errorf("failed to update sizes: %w", err)
	}
	fmt.Printf("%s now offered in sizes %v\n", product.Name, product.Sizes)
	return nil
}

func runAdminDiscount(cmd *cobra.Command, args []string) error {
	api, err := buildOrderAPI()
	if err != nil {
		return err
	}

	rate, _ := cmd.Flags().GetFloat64("rate")
	start, err := parseTimeFlag(cmd, "start")
	if err != nil {
		return err
	}
	end, err := parseTimeFlag(cmd, "end")
	if err != nil {
		return err
	}

	product, err := api.UpdateProductDiscount(context.Background(), args[0], rate, start, end)
	if err != nil {
		return fmt.Errorf("failed to update discount: %w", err)
	}
	fmt.Printf("%s: price %.2f (original %.2f, rate %.0f%%)\n", product.Name, product.Price, product.OriginalPrice, product.DiscountRate*100)
	return nil
}

func runAdminSales(cmd *cobra.Command, args []string) error {
	api, err := buildOrderAPI()
	if err != nil {
		return err
	}

	from, err := parseRangeFlag(cmd, "from")
	if err != nil {
		return err
	}
	to, err := parseRangeFlag(cmd, "to")
	if err != nil {
		return err
	}

	if len(args) == 1 {
		row, err := api.AdminProductSales(context.Background(), args[0], from, to)
		if err != nil {
			return fmt.Errorf("failed to build sales report: %w", err)
		}
		return printJSON(row)
	}

	report, err := api.AdminSalesReport(context.Background(), from, to)
	if err != nil {
		return fmt.Errorf("failed to build sales report: %w", err)
	}
	fmt.Printf("Sales %s to %s\n", report.From.Format("2006-01-02"), report.To.Format("2006-01-02"))
	for _, row := range report.Items {
		fmt.Printf("%-36s  %-24s  %5d units  %10.2f\n", row.ProductID, row.ProductName, row.Units, row.Revenue)
	}
	return nil
}

func parseTimeFlag(cmd *cobra.Command, name string) (*time.Time, error) {
	raw, _ := cmd.Flags().GetString(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("--%s must be an RFC3339 timestamp: %w", name, err)
	}
	return &parsed, nil
}

func parseRangeFlag(cmd *cobra.Command, name string) (time.Time, error) {
	raw, _ := cmd.Flags().GetString(name)
	if raw == "" {
		return time.Time{}, nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s must be an RFC3339 timestamp: %w", name, err)
	}
	return parsed, nil
}
