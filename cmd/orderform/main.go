package main

import (
	"fmt"
	"os"

	"github.com/Sharaj17/thottam-IQ/cmd/orderform/app"
	"github.com/spf13/cobra"
)

func main() {
	var (
		configDir string
		envName   string
	)

	root := &cobra.Command{
		Use:           "orderform",
		Short:         "Interactive order entry for the Thottam Organics storefront",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if envName == "" {
				envName = os.Getenv("APP_ENV") // dev | staging | prod
				if envName == "" {
					envName = "dev"
				}
			}
			return app.Run(cmd.Context(), configDir, envName)
		},
	}
	root.Flags().StringVar(&configDir, "config", "configs", "config directory")
	root.Flags().StringVar(&envName, "env", "", "environment overlay (dev|staging|prod)")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
