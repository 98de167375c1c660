package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"storefront/internal/app"
	"storefront/internal/client"
	"storefront/internal/storefront"
)

var cfg app.Config

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Storefront - wool sneaker shop API server and CLI",
	Long:  "A Go-based storefront backend and command line client: catalog, cart, checkout, and catalog administration.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("api-url", "", "Base URL of the storefront API")
	rootCmd.PersistentFlags().Bool("offline", false, "Run against a local in-process demo backend")
	rootCmd.PersistentFlags().String("session-file", "", "Path of the saved session file")
}

func initConfig() {
	cfg = app.LoadConfig()

	// Override from flags
	if v, _ := rootCmd.PersistentFlags().GetString("api-url"); v != "" {
		cfg.APIBaseURL = v
	}
	if v, _ := rootCmd.PersistentFlags().GetBool("offline"); v {
		cfg.Offline = true
	}
	if v, _ := rootCmd.PersistentFlags().GetString("session-file"); v != "" {
		cfg.SessionFile = v
	}
}

// buildAPI assembles the API surface the subcommands run against: an HTTP
// client in the default mode, or an in-process demo backend with --offline.
func buildAPI() (storefront.API, storefront.CookieCarrier, error) {
	if cfg.Offline {
		backend, err := app.NewBackend(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to start offline backend: %w", err)
		}
		offline := storefront.NewOffline(backend.Products, backend.Carts, backend.Orders, backend.Reviews, backend.Auth)
		return offline, offline, nil
	}

	c, err := client.New(client.Config{BaseURL: cfg.APIBaseURL, Timeout: cfg.HTTPTimeout})
	if err != nil {
		return nil, nil, err
	}
	return c, c, nil
}

// buildSession wires a Session over the API, restoring any saved state.
func buildSession(api storefront.AuthAPI, carrier storefront.CookieCarrier) (*storefront.Session, error) {
	var store storefront.Store
	if cfg.SessionFile != "" {
		store = &storefront.FileStore{Path: cfg.SessionFile}
	}
	session := storefront.NewSession(api, store)
	if err := session.Restore(carrier); err != nil {
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}
	return session, nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
