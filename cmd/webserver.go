package cmd

import (
	"context"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/narasux/bloghub/pkg/envs"
	"github.com/narasux/bloghub/pkg/infras/database"
	"github.com/narasux/bloghub/pkg/logging"
	"github.com/narasux/bloghub/pkg/router"
)

var webServerCmd = &cobra.Command{
	Use:   "webserver",
	Short: "webserver start http server.",
	Run: func(cmd *cobra.Command, args []string) {
		logging.InitLogger()
		database.InitDBClient(context.Background())

		color.Green("Starting server at http://0.0.0.0:%s/", envs.ServerPort)
		router.Run()
	},
}

func init() {
	rootCmd.AddCommand(webServerCmd)
}
