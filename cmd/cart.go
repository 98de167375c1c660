package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"storefront/internal/models"
	"storefront/internal/storefront"
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show and edit the cart",
	RunE:  runCartShow,
}

var cartAddCmd = &cobra.Command{
	Use:   "add [product-id]",
	Short: "Add a product to the cart",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartAdd,
}

var cartUpdateCmd = &cobra.Command{
	Use:   "update [item-id]",
	Short: "Set a cart line's quantity",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartUpdate,
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove [item-id]",
	Short: "Remove a cart line",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartRemove,
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	RunE:  runCartClear,
}

func init() {
	cartAddCmd.Flags().Int("size", 0, "Shoe size (required)")
	cartAddCmd.Flags().Int("quantity", 1, "Quantity to add")
	cartAddCmd.MarkFlagRequired("size")

	cartUpdateCmd.Flags().Int("quantity", 1, "New absolute quantity")

	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartUpdateCmd)
	cartCmd.AddCommand(cartRemoveCmd)
	cartCmd.AddCommand(cartClearCmd)
	rootCmd.AddCommand(cartCmd)
}

func buildCartManager() (*storefront.CartManager, error) {
	api, carrier, err := buildAPI()
	if err != nil {
		return nil, err
	}
	if _, err := buildSession(api, carrier); err != nil {
		return nil, err
	}
	return storefront.NewCartManager(api), nil
}

func printCart(view models.CartView) {
	if len(view.Items) == 0 {
		fmt.Println("Cart is empty")
		return
	}
	for _, item := range view.Items {
		fmt.Printf("%-36s  %-24s  size %d  x%d  %8.2f\n", item.ID, item.ProductName, item.Size, item.Quantity, item.Price)
	}
	fmt.Printf("Total: %.2f (%d items)\n", view.Total, view.ItemCount())
}

func runCartShow(cmd *cobra.Command, args []string) error {
	manager, err := buildCartManager()
	if err != nil {
		return err
	}
	if err := manager.Refresh(context.Background()); err != nil {
		return fmt.Errorf("failed to fetch cart: %w", err)
	}
	printCart(manager.View())
	return nil
}

func runCartAdd(cmd *cobra.Command, args []string) error {
	manager, err := buildCartManager()
	if err != nil {
		return err
	}

	size, _ := cmd.Flags().GetInt("size")
	quantity, _ := cmd.Flags().GetInt("quantity")

	if err := manager.AddItem(context.Background(), args[0], size, quantity); err != nil {
		return fmt.Errorf("failed to add item: %w", err)
	}
	printCart(manager.View())
	return nil
}

func runCartUpdate(cmd *cobra.Command, args []string) error {
	manager, err := buildCartManager()
	if err != nil {
		return err
	}

	quantity, _ := cmd.Flags().GetInt("quantity")

	if err := manager.UpdateItem(context.Background(), args[0], quantity); err != nil {
		return fmt.Errorf("failed to update item: %w", err)
	}
	if err := manager.Refresh(context.Background()); err != nil {
		return fmt.Errorf("failed to fetch cart: %w", err)
	}
	printCart(manager.View())
	return nil
}

func runCartRemove(cmd *cobra.Command, args []string) error {
	manager, err := buildCartManager()
	if err != nil {
		return err
	}

	if err := manager.RemoveItem(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to remove item: %w", err)
	}
	printCart(manager.View())
	return nil
}

func runCartClear(cmd *cobra.Command, args []string) error {
	manager, err := buildCartManager()
	if err != nil {
		return err
	}

	if err := manager.Clear(context.Background()); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	fmt.Println("Cart cleared")
	return nil
}
