// Package client provides commands that call the Creature Forge gRPC service
package client

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	creaturev1alpha1 "github.com/KirkDiggler/creature-forge/api/creature/v1alpha1"
	"github.com/KirkDiggler/creature-forge/internal/clients/forge"
)

// TokenEnv holds the bearer token when --token is not given
const TokenEnv = "CREATURE_FORGE_TOKEN"

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	token      string
	outputJSON bool
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the Creature Forge API",
	Long:  `Client commands call a running Creature Forge server over gRPC.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 60*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&token, "token", "", "Session token (default $"+TokenEnv+")")
	ClientCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Print responses as JSON")

	// Account commands
	ClientCmd.AddCommand(registerCmd)
	ClientCmd.AddCommand(loginCmd)
	ClientCmd.AddCommand(logoutCmd)

	// Creature commands
	ClientCmd.AddCommand(createCmd)
	ClientCmd.AddCommand(getCmd)
	ClientCmd.AddCommand(updateCmd)
	ClientCmd.AddCommand(listCmd)
	ClientCmd.AddCommand(deleteCmd)

	// Artwork commands
	ClientCmd.AddCommand(uploadCmd)
	ClientCmd.AddCommand(describeCmd)
	ClientCmd.AddCommand(generateCmd)

	ClientCmd.AddCommand(designCmd)
}

func sessionToken() string {
	if token != "" {
		return token
	}
	return os.Getenv(TokenEnv)
}

// createClient creates a creature service client
func createClient() (creaturev1alpha1.CreatureServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return creaturev1alpha1.NewCreatureServiceClient(conn), cleanup, nil
}

// callContext bounds one call and attaches the session token
func callContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	return forge.WithToken(ctx, sessionToken()), cancel
}
