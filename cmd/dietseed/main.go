package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dietplan/config"

	"github.com/spf13/cobra"
)

var cfg *config.Config

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	rootCmd := &cobra.Command{
		Use:           "dietseed",
		Short:         "Manage the dietplan reference tables",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.New()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			return nil
		},
	}

	rootCmd.AddCommand(
		migrateCmd(),
		importCmd(),
		validateCmd(),
	)

	rootCmd.SetContext(ctx)

	err := rootCmd.Execute()
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
		os.Exit(1)
	}
}
