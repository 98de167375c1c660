package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"storefront/internal/app"
	"storefront/pkg/events"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the storefront API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	backend, err := app.NewBackend(cfg)
	if err != nil {
		return err
	}
	defer backend.Close()

	router := backend.Router()

	if backend.Publisher != nil {
		go func() {
			log.Println("Starting order event consumer...")
			handler := func(event events.OrderCreated) error {
				log.Printf("Order event received: order %s for user %s, total %.2f", event.OrderID, event.UserID, event.Total)
				return nil
			}
			if consumerErr := backend.Publisher.ConsumeOrderEvents(handler); consumerErr != nil {
				log.Printf("Failed to start order event consumer: %v", consumerErr)
			}
		}()
	}

	log.Printf("Starting server on port %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := router.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := router.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
	return nil
}
