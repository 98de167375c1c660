package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the signed-in session",
}

var authLoginCmd = &cobra.Command{
	Use:   "login [email] [password]",
	Short: "Sign in and save the session",
	Args:  cobra.ExactArgs(2),
	RunE:  runAuthLogin,
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the session",
	RunE:  runAuthLogout,
}

var authWhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE:  runAuthWhoami,
}

func init() {
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authLogoutCmd)
	authCmd.AddCommand(authWhoamiCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthLogin(cmd *cobra.Command, args []string) error {
	api, carrier, err := buildAPI()
	if err != nil {
		return err
	}
	session, err := buildSession(api, carrier)
	if err != nil {
		return err
	}

	user, err := session.Login(context.Background(), carrier, args[0], args[1])
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	fmt.Printf("Signed in as %s (%s)\n", user.Name, user.Email)
	return nil
}

func runAuthLogout(cmd *cobra.Command, args []string) error {
	api, carrier, err := buildAPI()
	if err != nil {
		return err
	}
	session, err := buildSession(api, carrier)
	if err != nil {
		return err
	}

	if err := session.Logout(context.Background()); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	fmt.Println("Signed out")
	return nil
}

func runAuthWhoami(cmd *cobra.Command, args []string) error {
	api, carrier, err := buildAPI()
	if err != nil {
		return err
	}
	if _, err := buildSession(api, carrier); err != nil {
		return err
	}

	user, err := api.Me(context.Background())
	if err != nil {
		return fmt.Errorf("failed to fetch session user: %w", err)
	}
	return printJSON(user)
}
