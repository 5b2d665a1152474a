package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nc-news",
	Short: "NC News REST API",
	Long: `Serves the NC News API: topics, articles, comments and users
backed by PostgreSQL. Running without a subcommand starts the server.`,
	RunE:         runServe,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "Apply pending migrations before serving")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(routesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
