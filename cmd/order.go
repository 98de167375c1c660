package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"storefront/internal/storefront"
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Checkout and order history",
}

var orderCheckoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Turn the cart into an order",
	RunE:  runOrderCheckout,
}

var orderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your orders, newest first",
	RunE:  runOrderList,
}

var orderShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one order",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrderShow,
}

func init() {
	orderCheckoutCmd.Flags().String("payment", "CARD", "Payment method")

	orderListCmd.Flags().Int("page", 1, "Page number")
	orderListCmd.Flags().Int("limit", 10, "Orders per page")

	orderCmd.AddCommand(orderCheckoutCmd)
	orderCmd.AddCommand(orderListCmd)
	orderCmd.AddCommand(orderShowCmd)
	rootCmd.AddCommand(orderCmd)
}

func buildOrderAPI() (storefront.API, error) {
	api, carrier, err := buildAPI()
	if err != nil {
		return nil, err
	}
	if _, err := buildSession(api, carrier); err != nil {
		return nil, err
	}
	return api, nil
}

func runOrderCheckout(cmd *cobra.Command, args []string) error {
	api, err := buildOrderAPI()
	if err != nil {
		return err
	}

	payment, _ := cmd.Flags().GetString("payment")

	order, err := api.Checkout(context.Background(), payment)
	if err != nil {
		return fmt.Errorf("checkout failed: %w", err)
	}
	fmt.Printf("Order %s created, total %.2f\n", order.ID, order.TotalAmount)
	return nil
}

func runOrderList(cmd *cobra.Command, args []string) error {
	api, err := buildOrderAPI()
	if err != nil {
		return err
	}

	page, _ := cmd.Flags().GetInt("page")
	limit, _ := cmd.Flags().GetInt("limit")

	orders, err := api.Orders(context.Background(), page, limit)
	if err != nil {
		return fmt.Errorf("failed to list orders: %w", err)
	}
	for _, order := range orders {
		fmt.Printf("%-36s  %-10s  %8.2f  %s\n", order.ID, order.Status, order.TotalAmount, order.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func runOrderShow(cmd *cobra.Command, args []string) error {
	api, err := buildOrderAPI()
	if err != nil {
		return err
	}

	order, err := api.Order(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get order: %w", err)
	}
	return printJSON(order)
}
