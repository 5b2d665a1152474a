package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/gin-gonic/gin"
	"github.com/nc-news-api/internal/api"
	"github.com/nc-news-api/internal/repository"
	"github.com/nc-news-api/internal/service"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "Print the registered route table",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Routes are registered without touching the services
		services := service.NewServices(&repository.Repositories{}, zerolog.Nop())
		router := api.NewRouter(services, nil, gin.ReleaseMode, zerolog.Nop())

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		for _, route := range router.Routes() {
			fmt.Fprintf(w, "%s\t%s\n", route.Method, route.Path)
		}
		return w.Flush()
	},
}
