// Package main is the entry point for the creature-forge server and CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/creature-forge/cmd/server/client"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "creature-forge",
	Short: "Creature Forge gRPC server",
	Long:  `Creature Forge stores creature designs, their drawings and artwork, and serves the gallery.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(relinkCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
