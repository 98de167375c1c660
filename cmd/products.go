package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"storefront/internal/catalog"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Browse the catalog",
	RunE:  runProducts,
}

var productsPopularCmd = &cobra.Command{
	Use:   "popular",
	Short: "List the best sellers",
	RunE:  runProductsPopular,
}

var productsShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one product",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductsShow,
}

func init() {
	productsCmd.Flags().String("gender", "men", "Gender view: men, women, unisex")
	productsCmd.Flags().StringSlice("category", nil, "Category filter (repeatable; includes new, sale)")
	productsCmd.Flags().StringSlice("size", nil, "Size filter (repeatable)")
	productsCmd.Flags().StringSlice("material", nil, "Material filter (repeatable)")
	productsCmd.Flags().String("sort", "recommended", "Sort: recommended, sales, price_low, price_high, newest")
	productsCmd.Flags().Int("page", 1, "Page number")
	productsCmd.Flags().Int("limit", 20, "Products per page")

	productsPopularCmd.Flags().Int("offset", 0, "Skip the first N best sellers")
	productsPopularCmd.Flags().Int("limit", 5, "Number of products")

	productsCmd.AddCommand(productsPopularCmd)
	productsCmd.AddCommand(productsShowCmd)
	rootCmd.AddCommand(productsCmd)
}

func runProducts(cmd *cobra.Command, args []string) error {
	api, _, err := buildAPI()
	if err != nil {
		return err
	}

	gender, _ := cmd.Flags().GetString("gender")
	categories, _ := cmd.Flags().GetStringSlice("category")
	sizes, _ := cmd.Flags().GetStringSlice("size")
	materials, _ := cmd.Flags().GetStringSlice("material")
	sortKey, _ := cmd.Flags().GetString("sort")
	page, _ := cmd.Flags().GetInt("page")
	limit, _ := cmd.Flags().GetInt("limit")

	f := catalog.FilterState{
		Gender:     gender,
		Categories: categories,
		Sizes:      sizes,
		Materials:  materials,
	}

	list, err := api.ListProducts(context.Background(), f, page, limit)
	if err != nil {
		return fmt.Errorf("failed to list products: %w", err)
	}

	sorted := catalog.Sort(list.Items, catalog.SortOption(sortKey))
	fmt.Printf("%d of %d products\n", len(sorted), list.TotalCount)
	for _, p := range sorted {
		flags := productFlags(p.IsNew, p.IsOnSale)
		fmt.Printf("%-36s  %-24s  %8.2f%s\n", p.ID, p.Name, p.Price, flags)
	}
	return nil
}

func productFlags(isNew, isOnSale bool) string {
	var tags []string
	if isNew {
		tags = append(tags, "new")
	}
	if isOnSale {
		tags = append(tags, "sale")
	}
	if len(tags) == 0 {
		return ""
	}
	return "  [" + strings.Join(tags, ", ") + "]"
}

func runProductsPopular(cmd *cobra.Command, args []string) error {
	api, _, err := buildAPI()
	if err != nil {
		return err
	}

	offset, _ := cmd.Flags().GetInt("offset")
	limit, _ := cmd.Flags().GetInt("limit")

	products, err := api.PopularProducts(context.Background(), offset, limit)
	if err != nil {
		return fmt.Errorf("failed to list popular products: %w", err)
	}
	return printJSON(products)
}

func runProductsShow(cmd *cobra.Command, args []string) error {
	api, _, err := buildAPI()
	if err != nil {
		return err
	}

	product, err := api.GetProduct(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get product: %w", err)
	}
	return printJSON(product)
}
