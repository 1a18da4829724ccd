package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/shopctl/config"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shopctl",
	Short: "shopctl — admin CLI for the online-shop API",
	Long: "shopctl manages the online-shop backend: categories, suppliers, products,\n" +
		"employees, customers, and orders. Log in once, then work with any entity.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.Load()
	},
}

func init() {
	// Auth
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)

	// Entities
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(suppliersCmd)
	rootCmd.AddCommand(productsCmd)
	rootCmd.AddCommand(employeesCmd)
	rootCmd.AddCommand(customersCmd)
	rootCmd.AddCommand(ordersCmd)

	// Local development
	rootCmd.AddCommand(stubCmd)
}
