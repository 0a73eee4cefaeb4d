package client

import (
	"fmt"

	"github.com/spf13/cobra"

	creaturev1alpha1 "github.com/KirkDiggler/creature-forge/api/creature/v1alpha1"
)

var (
	username    string
	password    string
	displayName string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and print its session token",
	RunE:  runRegister,
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and print a session token",
	Long: `Log in and print a session token. Export it as ` + TokenEnv + ` or pass it
with --token to act as this account.`,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the session named by --token",
	RunE:  runLogout,
}

func init() {
	for _, cmd := range []*cobra.Command{registerCmd, loginCmd} {
		cmd.Flags().StringVar(&username, "username", "", "Username (required)")
		cmd.Flags().StringVar(&password, "password", "", "Password (required)")
		_ = cmd.MarkFlagRequired("username") // nolint:errcheck // safe to ignore in init
		_ = cmd.MarkFlagRequired("password") // nolint:errcheck // safe to ignore in init
	}
	registerCmd.Flags().StringVar(&displayName, "display-name", "", "Name shown in the gallery")
}

func runRegister(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := callContext()
	defer cancel()

	resp, err := client.Register(ctx, &creaturev1alpha1.RegisterRequest{
		Username:    username,
		Password:    password,
		DisplayName: displayName,
	})
	if err != nil {
		return describeError(err)
	}

	if outputJSON {
		return printJSON(cmd.OutOrStdout(), resp)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✅ Welcome, %s!\n", resp.User.DisplayName)
	fmt.Fprintf(cmd.OutOrStdout(), "export %s=%s\n", TokenEnv, resp.Session.Token)
	return nil
}

func runLogin(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := callContext()
	defer cancel()

	resp, err := client.Login(ctx, &creaturev1alpha1.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return describeError(err)
	}

	if outputJSON {
		return printJSON(cmd.OutOrStdout(), resp)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✅ Hi again, %s!\n", resp.Session.DisplayName)
	fmt.Fprintf(cmd.OutOrStdout(), "export %s=%s\n", TokenEnv, resp.Session.Token)
	return nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := callContext()
	defer cancel()

	if _, err := client.Logout(ctx, &creaturev1alpha1.LogoutRequest{}); err != nil {
		return describeError(err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "👋 Logged out")
	return nil
}
